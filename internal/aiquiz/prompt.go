package aiquiz

import (
	"fmt"
	"strings"
)

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 20
	maxTranscriptChars   = 12000
)

const draftSystemPrompt = `
You write multiple-choice quizzes for an accessible e-learning platform.

Rules:
1. Every question must be answerable from the lesson transcript alone.
2. Each question has exactly one correct option.
3. Use plain, direct wording. Avoid double negatives and trick questions.
4. Each question has 4 options labelled "A", "B", "C" and "D" of similar length.
5. "topic_tag" is a short topic name (one to three words) taken from the lesson.
6. "explanation" says briefly why the correct option is right.

Answer with pure, valid JSON only, no text outside the JSON:

{
  "title": "<quiz title>",
  "passing_score": 60,
  "questions": [
    {
      "text": "<question>",
      "topic_tag": "<topic>",
      "options": [
        {"label": "A", "text": "..."},
        {"label": "B", "text": "..."},
        {"label": "C", "text": "..."},
        {"label": "D", "text": "..."}
      ],
      "correct_option": "B",
      "explanation": "<why B is correct>"
    }
  ]
}
`

const feedbackSystemPrompt = `
You are a supportive tutor. Write two or three short sentences of feedback for a learner.
Name the topics they should review, encourage them according to their study streak,
and keep the language simple. Answer with plain text only.
`

func BuildDraftPrompt(req DraftRequest) string {
	count := req.QuestionCount
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	transcript := strings.TrimSpace(req.Transcript)
	if len(transcript) > maxTranscriptChars {
		transcript = transcript[:maxTranscriptChars]
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Lesson quiz"
	}

	return fmt.Sprintf(
		"Write %d questions for the quiz \"%s\" based on this lesson transcript:\n\n%s",
		count, title, transcript,
	)
}

func BuildFeedbackPrompt(req FeedbackRequest) string {
	topics := "none"
	if len(req.Topics) > 0 {
		topics = strings.Join(req.Topics, ", ")
	}
	return fmt.Sprintf(
		"Topics to review: %s. Current study streak: %d day(s).",
		topics, req.Streak,
	)
}
