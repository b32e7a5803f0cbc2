package progress

import (
	"time"

	"github.com/google/uuid"
)

type LessonProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_lesson" json:"user_id"`
	LessonID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_lesson" json:"lesson_id"`
	CourseID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"course_id"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
