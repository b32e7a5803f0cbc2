package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoUsableQuestions = errors.New("draft contains no usable questions")

const defaultPassingScore = 60

// ParseDraft decodes a model answer into a Draft. Questions whose correct option
// is not one of their labels, or whose labels repeat, are dropped.
func ParseDraft(raw string) (*Draft, error) {
	clean := stripFences(raw)

	var draft Draft
	if err := json.Unmarshal([]byte(clean), &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}

	if draft.PassingScore <= 0 || draft.PassingScore > 100 {
		draft.PassingScore = defaultPassingScore
	}
	draft.Title = strings.TrimSpace(draft.Title)

	kept := draft.Questions[:0]
	for _, q := range draft.Questions {
		if usable(q) {
			kept = append(kept, q)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoUsableQuestions
	}
	draft.Questions = kept
	return &draft, nil
}

func usable(q DraftQuestion) bool {
	if strings.TrimSpace(q.Text) == "" || len(q.Options) < 2 {
		return false
	}
	labels := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o.Label == "" || labels[o.Label] {
			return false
		}
		labels[o.Label] = true
	}
	return labels[q.CorrectOption]
}

func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}
