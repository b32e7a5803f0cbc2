package attempt

import (
	"github.com/NowarkCodes/EduAble-sub000/internal/analytics"
	"github.com/google/uuid"
)

type AnswerDTO struct {
	QuestionID     uuid.UUID `json:"question_id" validate:"required"`
	SelectedOption string    `json:"selected_option" validate:"required"`
}

type SubmitAttemptDTO struct {
	Answers []AnswerDTO `json:"answers" validate:"required,dive"`
}

type SubmitResponse struct {
	AttemptID               uuid.UUID             `json:"attempt_id"`
	Score                   int                   `json:"score"`
	Passed                  bool                  `json:"passed"`
	CorrectCount            int                   `json:"correct_count"`
	TotalQuestions          int                   `json:"total_questions"`
	AttemptNumber           int                   `json:"attempt_number"`
	ImprovementFromPrevious *int                  `json:"improvement_from_previous"`
	WeakTopics              []analytics.WeakTopic `json:"weak_topics"`
	AIFeedback              *string               `json:"ai_feedback"`
	CertificateIssued       bool                  `json:"certificate_issued"`
	DetailedResults         []Result              `json:"detailed_results"`
}
