package attempt

import (
	"github.com/NowarkCodes/EduAble-sub000/internal/analytics"
	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	"github.com/google/uuid"
)

const (
	weakTopicWindow = 20
	weakTopicLimit  = 3
)

// snapshotQuestionIDs lists every question seen across attempts, once.
func snapshotQuestionIDs(attempts []Attempt) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, a := range attempts {
		for _, q := range a.QuestionsSnapshot {
			if !seen[q.QuestionID] {
				seen[q.QuestionID] = true
				ids = append(ids, q.QuestionID)
			}
		}
	}
	return ids
}

// observations expands attempts against current question metadata. A snapshot
// question without an answer is a miss; questions no longer stored are skipped.
func observations(attempts []Attempt, questions []quiz.GradingQuestion) []analytics.Observation {
	byID := make(map[uuid.UUID]quiz.GradingQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var out []analytics.Observation
	for _, a := range attempts {
		chosen := make(map[uuid.UUID]string, len(a.Answers))
		for _, ans := range a.Answers {
			if _, dup := chosen[ans.QuestionID]; !dup {
				chosen[ans.QuestionID] = ans.SelectedOption
			}
		}
		for _, sq := range a.QuestionsSnapshot {
			q, ok := byID[sq.QuestionID]
			if !ok {
				continue
			}
			choice, answered := chosen[sq.QuestionID]
			out = append(out, analytics.Observation{
				Topic:   q.TopicTag,
				Correct: answered && choice == q.CorrectOption,
			})
		}
	}
	return out
}
