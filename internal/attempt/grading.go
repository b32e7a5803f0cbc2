package attempt

import (
	"math"

	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	"github.com/google/uuid"
)

// Result is the per-question outcome returned to the learner after grading.
type Result struct {
	QuestionID     uuid.UUID `json:"question_id"`
	Text           string    `json:"text"`
	SelectedOption *string   `json:"selected_option"`
	IsCorrect      bool      `json:"is_correct"`
	CorrectOption  string    `json:"correct_option"`
	Explanation    string    `json:"explanation,omitempty"`
}

type Grade struct {
	Score          int
	CorrectCount   int
	TotalQuestions int
	Passed         bool
	Results        []Result
	Snapshot       []SnapshotQuestion
	// Answers holds the accepted answers: matched to a quiz question, first one per question.
	Answers []Answer
}

// GradeSubmission scores answers against the key. Answers for unknown questions
// are skipped and, for repeated questions, only the first answer counts.
func GradeSubmission(questions []quiz.GradingQuestion, answers []Answer, passingScore int) (*Grade, error) {
	total := len(questions)
	if total == 0 {
		return nil, quiz.ErrEmptyQuiz
	}

	byID := make(map[uuid.UUID]quiz.GradingQuestion, total)
	for _, q := range questions {
		byID[q.ID] = q
	}

	selected := make(map[uuid.UUID]string, len(answers))
	accepted := make([]Answer, 0, len(answers))
	correct := 0
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		if _, dup := selected[a.QuestionID]; dup {
			continue
		}
		selected[a.QuestionID] = a.SelectedOption
		accepted = append(accepted, a)
		if a.SelectedOption == q.CorrectOption {
			correct++
		}
	}

	g := &Grade{
		CorrectCount:   correct,
		TotalQuestions: total,
		Results:        make([]Result, 0, total),
		Snapshot:       make([]SnapshotQuestion, 0, total),
		Answers:        accepted,
	}
	g.Score = int(math.Round(float64(correct) / float64(total) * 100))
	g.Passed = g.Score >= passingScore

	for _, q := range questions {
		r := Result{
			QuestionID:    q.ID,
			Text:          q.Text,
			CorrectOption: q.CorrectOption,
			Explanation:   q.Explanation,
		}
		if choice, ok := selected[q.ID]; ok {
			c := choice
			r.SelectedOption = &c
			r.IsCorrect = choice == q.CorrectOption
		}
		g.Results = append(g.Results, r)
		g.Snapshot = append(g.Snapshot, SnapshotQuestion{
			QuestionID: q.ID,
			Text:       q.Text,
			Options:    q.Options,
		})
	}
	return g, nil
}
