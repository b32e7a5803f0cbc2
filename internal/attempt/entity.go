package attempt

import (
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Answer struct {
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedOption string    `json:"selected_option"`
}

// SnapshotQuestion is the question as the learner saw it, without the key.
type SnapshotQuestion struct {
	QuestionID uuid.UUID     `json:"question_id"`
	Text       string        `json:"text"`
	Options    []quiz.Option `json:"options"`
}

// Attempt rows are append-only. AIFeedback is the only column written after insert.
type Attempt struct {
	ID                      uuid.UUID                             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                  uuid.UUID                             `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_user_quiz_number;index:idx_attempt_user_course" json:"user_id"`
	QuizID                  uuid.UUID                             `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_user_quiz_number" json:"quiz_id"`
	CourseID                uuid.UUID                             `gorm:"type:uuid;not null;index:idx_attempt_user_course" json:"course_id"`
	LessonID                uuid.UUID                             `gorm:"type:uuid;not null" json:"lesson_id"`
	Answers                 datatypes.JSONSlice[Answer]           `gorm:"type:jsonb;not null" json:"answers"`
	QuestionsSnapshot       datatypes.JSONSlice[SnapshotQuestion] `gorm:"type:jsonb;not null" json:"questions_snapshot,omitempty"`
	Score                   int                                   `gorm:"not null" json:"score"`
	CorrectCount            int                                   `gorm:"not null" json:"correct_count"`
	TotalQuestions          int                                   `gorm:"not null" json:"total_questions"`
	Passed                  bool                                  `gorm:"not null" json:"passed"`
	AttemptNumber           int                                   `gorm:"not null;uniqueIndex:idx_attempt_user_quiz_number" json:"attempt_number"`
	ImprovementFromPrevious *int                                  `json:"improvement_from_previous"`
	UsedAccessibilityModes  datatypes.JSONSlice[string]           `gorm:"type:jsonb" json:"used_accessibility_modes"`
	AIFeedback              *string                               `gorm:"type:text" json:"ai_feedback"`
	AttemptedAt             time.Time                             `gorm:"not null;index" json:"attempted_at"`
}
