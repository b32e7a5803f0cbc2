package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("empty response from model")

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider reads credentials from GEMINI_API_KEY or GOOGLE_API_KEY.
func NewGeminiProvider(ctx context.Context, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx).WithField("model", p.model)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("gemini generation failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.WithFields(logrus.Fields{"chars": len(raw)}).Debug("gemini response received")
	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}
