package quiz

import (
	"errors"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/analytics"
	"github.com/google/uuid"
)

var ErrGradingViewNotSerializable = errors.New("grading view must not be serialized")

// PublicQuestion is what a learner sees before grading.
type PublicQuestion struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Options  []Option  `json:"options"`
	Order    int       `json:"order"`
	TopicTag string    `json:"topic_tag"`
}

// PublicView is the only constructor of PublicQuestion.
func PublicView(q *Question, caps *accessibility.Capabilities) PublicQuestion {
	options := make([]Option, len(q.Options))
	copy(options, q.Options)

	return PublicQuestion{
		ID:       q.ID,
		Text:     caps.Text(q.Text, q.SimplifiedText),
		Options:  options,
		Order:    q.Position,
		TopicTag: topicOf(q),
	}
}

// GradingQuestion carries the answer key for server-side grading.
type GradingQuestion struct {
	ID            uuid.UUID
	Text          string
	Options       []Option
	CorrectOption string
	Explanation   string
	TopicTag      string
}

// GradingView is the only constructor of GradingQuestion.
func GradingView(q *Question) GradingQuestion {
	options := make([]Option, len(q.Options))
	copy(options, q.Options)

	return GradingQuestion{
		ID:            q.ID,
		Text:          q.Text,
		Options:       options,
		CorrectOption: q.CorrectOption,
		Explanation:   q.Explanation,
		TopicTag:      topicOf(q),
	}
}

func (GradingQuestion) MarshalJSON() ([]byte, error) {
	return nil, ErrGradingViewNotSerializable
}

// AdminQuestion echoes a question with its key to quiz authors.
type AdminQuestion struct {
	ID             uuid.UUID `json:"id"`
	QuizID         uuid.UUID `json:"quiz_id"`
	Text           string    `json:"text"`
	SimplifiedText string    `json:"simplified_text,omitempty"`
	TopicTag       string    `json:"topic_tag"`
	Options        []Option  `json:"options"`
	CorrectOption  string    `json:"correct_option"`
	Explanation    string    `json:"explanation,omitempty"`
	Order          int       `json:"order"`
}

func AdminView(q *Question) AdminQuestion {
	return AdminQuestion{
		ID:             q.ID,
		QuizID:         q.QuizID,
		Text:           q.Text,
		SimplifiedText: q.SimplifiedText,
		TopicTag:       topicOf(q),
		Options:        append([]Option(nil), q.Options...),
		CorrectOption:  q.CorrectOption,
		Explanation:    q.Explanation,
		Order:          q.Position,
	}
}

func topicOf(q *Question) string {
	if q.TopicTag == "" {
		return analytics.DefaultTopic
	}
	return q.TopicTag
}
