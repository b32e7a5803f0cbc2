package aiquiz

type DraftOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type DraftQuestion struct {
	Text          string        `json:"text"`
	TopicTag      string        `json:"topic_tag"`
	Options       []DraftOption `json:"options"`
	CorrectOption string        `json:"correct_option"`
	Explanation   string        `json:"explanation"`
}

// Draft is a proposed quiz for admin review. It is never persisted as is.
type Draft struct {
	Title        string          `json:"title"`
	PassingScore int             `json:"passing_score"`
	Questions    []DraftQuestion `json:"questions"`
}

type DraftRequest struct {
	Title         string
	Transcript    string
	QuestionCount int
}

type FeedbackRequest struct {
	Topics []string
	Streak int
}
