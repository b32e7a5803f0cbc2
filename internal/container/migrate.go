package container

import (
	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/attempt"
	"github.com/NowarkCodes/EduAble-sub000/internal/certificate"
	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	"github.com/NowarkCodes/EduAble-sub000/internal/progress"
	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	"gorm.io/gorm"
)

// Migrate creates the tables and unique indexes the engine relies on for
// attempt numbering and single certificate issuance.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&accessibility.Profile{},
		&course.Course{},
		&course.Lesson{},
		&course.Enrollment{},
		&progress.LessonProgress{},
		&quiz.Quiz{},
		&quiz.Question{},
		&attempt.Attempt{},
		&certificate.Certificate{},
	)
}
