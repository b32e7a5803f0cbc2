package quiz

import (
	"context"
	"strings"

	"github.com/NowarkCodes/EduAble-sub000/internal/aiquiz"
	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/google/uuid"
)

var (
	ErrDraftUnavailable = apperror.ExternalService("text generation is not configured", nil)
	ErrNoTranscript     = apperror.Validation("lesson has no transcript or content to draft from")
)

type Drafter interface {
	GenerateDraft(ctx context.Context, req aiquiz.DraftRequest) (*aiquiz.Draft, error)
}

type DraftResponse struct {
	LessonID uuid.UUID     `json:"lesson_id"`
	CourseID uuid.UUID     `json:"course_id"`
	Draft    *aiquiz.Draft `json:"draft"`
}

// GenerateDraftFromTranscript proposes a quiz for admin review. Nothing is stored.
func (s *service) GenerateDraftFromTranscript(ctx context.Context, lessonID uuid.UUID, dto DraftRequestDTO) (*DraftResponse, error) {
	log := config.WithContext(ctx).WithField("lesson_id", lessonID)

	if err := s.validate.Struct(dto); err != nil {
		return nil, apperror.Validation("invalid draft request").WithDetails(map[string]any{"reason": err.Error()})
	}
	if s.drafter == nil {
		return nil, ErrDraftUnavailable
	}

	lesson, err := s.lessons.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	source := lesson.Transcript
	if strings.TrimSpace(source) == "" {
		source = lesson.Content
	}
	if strings.TrimSpace(source) == "" {
		return nil, ErrNoTranscript
	}

	title := dto.Title
	if strings.TrimSpace(title) == "" {
		title = lesson.Title
	}

	draft, err := s.drafter.GenerateDraft(ctx, aiquiz.DraftRequest{
		Title:         title,
		Transcript:    source,
		QuestionCount: dto.QuestionCount,
	})
	if err != nil {
		log.WithError(err).Error("quiz draft generation failed")
		return nil, err
	}

	return &DraftResponse{LessonID: lesson.ID, CourseID: lesson.CourseID, Draft: draft}, nil
}
