package aiquiz

import (
	"context"

	"github.com/NowarkCodes/EduAble-sub000/internal/config"
)

type Container struct {
	Service Service
}

// NewContainer leaves Service nil when no Gemini client can be created; callers
// treat a nil service as text generation being unavailable.
func NewContainer(ctx context.Context, model string) *Container {
	provider, err := NewGeminiProvider(ctx, model)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("text generation disabled")
		return &Container{}
	}
	return &Container{Service: NewService(provider)}
}
