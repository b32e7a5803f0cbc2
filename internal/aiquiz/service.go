package aiquiz

import (
	"context"
	"strings"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
)

type Service interface {
	GenerateDraft(ctx context.Context, req DraftRequest) (*Draft, error)
	WriteFeedback(ctx context.Context, req FeedbackRequest) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateDraft(ctx context.Context, req DraftRequest) (*Draft, error) {
	log := config.WithContext(ctx)

	raw, err := s.provider.SendPrompt(ctx, draftSystemPrompt, BuildDraftPrompt(req))
	if err != nil {
		return nil, apperror.ExternalService("quiz draft generation failed", err)
	}

	draft, err := ParseDraft(raw)
	if err != nil {
		log.WithError(err).Error("could not parse quiz draft")
		return nil, apperror.ExternalService("quiz draft generation returned an unusable answer", err)
	}
	if draft.Title == "" {
		draft.Title = strings.TrimSpace(req.Title)
	}

	log.WithField("questions", len(draft.Questions)).Info("quiz draft generated")
	return draft, nil
}

func (s *service) WriteFeedback(ctx context.Context, req FeedbackRequest) (string, error) {
	raw, err := s.provider.SendPrompt(ctx, feedbackSystemPrompt, BuildFeedbackPrompt(req))
	if err != nil {
		return "", apperror.ExternalService("feedback generation failed", err)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", apperror.ExternalService("feedback generation failed", ErrEmptyResponse)
	}
	return text, nil
}
