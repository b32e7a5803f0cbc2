package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LessonID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"lesson_id"`
	CourseID        uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Title           string    `gorm:"type:text;not null" json:"title"`
	PassingScore    int       `gorm:"not null;default:60" json:"passing_score"`
	TimeLimit       *int      `json:"time_limit"`
	MaxAttempts     *int      `json:"max_attempts"`
	CooldownMinutes *int      `json:"cooldown_minutes"`
	IsPublished     bool      `gorm:"not null;default:false" json:"is_published"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is the stored record. It is never written to a response directly:
// callers go through PublicView, GradingView or AdminView.
type Question struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"-"`
	QuizID         uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_question_quiz_position" json:"-"`
	Text           string                      `gorm:"type:text;not null" json:"-"`
	SimplifiedText string                      `gorm:"type:text" json:"-"`
	TopicTag       string                      `gorm:"type:text;not null;default:'General'" json:"-"`
	Options        datatypes.JSONSlice[Option] `gorm:"type:jsonb;not null" json:"-"`
	CorrectOption  string                      `gorm:"type:text;not null" json:"-"`
	Explanation    string                      `gorm:"type:text" json:"-"`
	Position       int                         `gorm:"not null;uniqueIndex:idx_question_quiz_position" json:"-"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime" json:"-"`
}
