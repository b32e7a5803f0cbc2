package feedback

import (
	"context"

	"github.com/NowarkCodes/EduAble-sub000/internal/config"
)

// NewComposer picks the AI composer when enabled and a writer is available,
// otherwise the template composer.
func NewComposer(ctx context.Context, aiEnabled bool, w Writer) Composer {
	if aiEnabled && w != nil {
		config.WithContext(ctx).Info("AI feedback enabled")
		return NewAIComposer(w)
	}
	return TemplateComposer{}
}
