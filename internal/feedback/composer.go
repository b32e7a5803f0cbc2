// Package feedback turns weak-topic analytics and the learner's streak into a
// short note attached to an attempt.
package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/NowarkCodes/EduAble-sub000/internal/aiquiz"
	"github.com/NowarkCodes/EduAble-sub000/internal/analytics"
)

const (
	TierStarting = "just getting started"
	TierMomentum = "building momentum"
	TierStrong   = "exceptionally strong"

	momentumStreak = 3
	strongStreak   = 7
)

type Input struct {
	WeakTopics []analytics.WeakTopic
	Streak     int
}

type Composer interface {
	Compose(ctx context.Context, in Input) (string, error)
}

func Tier(streak int) string {
	switch {
	case streak >= strongStreak:
		return TierStrong
	case streak >= momentumStreak:
		return TierMomentum
	default:
		return TierStarting
	}
}

// TemplateComposer is deterministic and never fails.
type TemplateComposer struct{}

func (TemplateComposer) Compose(_ context.Context, in Input) (string, error) {
	var b strings.Builder

	if names := topicNames(in.WeakTopics); len(names) > 0 {
		fmt.Fprintf(&b, "Review %s to strengthen your weakest areas. ", joinNames(names))
	} else {
		b.WriteString("No weak topics in your recent attempts. ")
	}

	if in.Streak > 0 {
		fmt.Fprintf(&b, "You are %s with a %d-day streak.", Tier(in.Streak), in.Streak)
	} else {
		fmt.Fprintf(&b, "You are %s: complete a lesson today to start a streak.", TierStarting)
	}
	return b.String(), nil
}

type Writer interface {
	WriteFeedback(ctx context.Context, req aiquiz.FeedbackRequest) (string, error)
}

// AIComposer asks the text-generation service for the note. Its errors are
// returned unchanged so callers can drop the feedback.
type AIComposer struct {
	writer Writer
}

func NewAIComposer(w Writer) *AIComposer {
	return &AIComposer{writer: w}
}

func (c *AIComposer) Compose(ctx context.Context, in Input) (string, error) {
	return c.writer.WriteFeedback(ctx, aiquiz.FeedbackRequest{
		Topics: topicNames(in.WeakTopics),
		Streak: in.Streak,
	})
}

func topicNames(topics []analytics.WeakTopic) []string {
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Topic)
	}
	return names
}

func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
