package progress

import (
	"time"

	"github.com/google/uuid"
)

type CompletionResponse struct {
	LessonID    uuid.UUID `json:"lesson_id"`
	CourseID    uuid.UUID `json:"course_id"`
	CompletedAt time.Time `json:"completed_at"`
	Streak      int       `json:"streak"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}
