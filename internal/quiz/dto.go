package quiz

import (
	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/google/uuid"
)

type CreateQuizDTO struct {
	LessonID        uuid.UUID `json:"lesson_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=200"`
	PassingScore    int       `json:"passing_score" validate:"min=0,max=100"`
	TimeLimit       *int      `json:"time_limit" validate:"omitempty,min=1"`
	MaxAttempts     *int      `json:"max_attempts" validate:"omitempty,min=1"`
	CooldownMinutes *int      `json:"cooldown_minutes" validate:"omitempty,min=1"`
}

type OptionDTO struct {
	Label string `json:"label" validate:"required,max=8"`
	Text  string `json:"text" validate:"required"`
}

type AddQuestionDTO struct {
	Text           string      `json:"text" validate:"required"`
	SimplifiedText string      `json:"simplified_text"`
	TopicTag       string      `json:"topic_tag" validate:"max=100"`
	Options        []OptionDTO `json:"options" validate:"required,min=2,dive"`
	CorrectOption  string      `json:"correct_option" validate:"required"`
	Explanation    string      `json:"explanation"`
	Order          *int        `json:"order" validate:"omitempty,min=1"`
}

type DraftRequestDTO struct {
	Title         string `json:"title" validate:"max=200"`
	QuestionCount int    `json:"question_count" validate:"omitempty,min=1,max=20"`
}

type QuizMeta struct {
	ID              uuid.UUID `json:"id"`
	LessonID        uuid.UUID `json:"lesson_id"`
	CourseID        uuid.UUID `json:"course_id"`
	Title           string    `json:"title"`
	PassingScore    int       `json:"passing_score"`
	TimeLimit       *int      `json:"time_limit"`
	MaxAttempts     *int      `json:"max_attempts"`
	CooldownMinutes *int      `json:"cooldown_minutes"`
	TotalQuestions  int       `json:"total_questions"`
}

type LearnerQuizResponse struct {
	Quiz      QuizMeta            `json:"quiz"`
	A11yMeta  *accessibility.Meta `json:"a11y_meta"`
	Questions []PublicQuestion    `json:"questions"`
}

type AdminQuizResponse struct {
	Quiz      *Quiz           `json:"quiz"`
	Questions []AdminQuestion `json:"questions"`
}
