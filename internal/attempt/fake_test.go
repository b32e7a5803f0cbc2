package attempt_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/attempt"
	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	"github.com/NowarkCodes/EduAble-sub000/internal/feedback"
	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memRepo struct {
	mu       sync.Mutex
	attempts []attempt.Attempt
	// staleCounts makes Count under-report by one for that many calls.
	staleCounts int
}

func (m *memRepo) Create(_ context.Context, a *attempt.Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.attempts {
		if existing.UserID == a.UserID && existing.QuizID == a.QuizID && existing.AttemptNumber == a.AttemptNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	m.attempts = append(m.attempts, *a)
	return nil
}

func (m *memRepo) Count(_ context.Context, userID, quizID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.filter(userID, quizID))
	if m.staleCounts > 0 && n > 0 {
		m.staleCounts--
		n--
	}
	return n, nil
}

func (m *memRepo) Latest(_ context.Context, userID, quizID uuid.UUID) (*attempt.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *attempt.Attempt
	for _, a := range m.filter(userID, quizID) {
		if latest == nil || a.AttemptNumber > latest.AttemptNumber {
			cp := a
			latest = &cp
		}
	}
	return latest, nil
}

func (m *memRepo) List(_ context.Context, userID, quizID uuid.UUID) ([]attempt.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.filter(userID, quizID)
	sort.Slice(out, func(i, j int) bool { return out[i].AttemptNumber > out[j].AttemptNumber })
	return out, nil
}

func (m *memRepo) Best(_ context.Context, userID, quizID uuid.UUID) (*attempt.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.filter(userID, quizID)
	if len(all) == 0 {
		return nil, nil
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].AttemptedAt.After(all[j].AttemptedAt)
	})
	return &all[0], nil
}

func (m *memRepo) RecentInCourse(_ context.Context, userID, courseID uuid.UUID, limit int) ([]attempt.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []attempt.Attempt
	for _, a := range m.attempts {
		if a.UserID == userID && a.CourseID == courseID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AttemptedAt.After(out[j].AttemptedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) PassedQuizIDs(_ context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[uuid.UUID]bool{}
	var out []uuid.UUID
	for _, a := range m.attempts {
		if a.UserID == userID && a.CourseID == courseID && a.Passed && !seen[a.QuizID] {
			seen[a.QuizID] = true
			out = append(out, a.QuizID)
		}
	}
	return out, nil
}

func (m *memRepo) SetFeedback(_ context.Context, id uuid.UUID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.attempts {
		if m.attempts[i].ID == id {
			t := text
			m.attempts[i].AIFeedback = &t
			return nil
		}
	}
	return errors.New("attempt not found")
}

func (m *memRepo) filter(userID, quizID uuid.UUID) []attempt.Attempt {
	var out []attempt.Attempt
	for _, a := range m.attempts {
		if a.UserID == userID && a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out
}

func (m *memRepo) snapshot() []attempt.Attempt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]attempt.Attempt(nil), m.attempts...)
}

type fakeQuizzes struct {
	quizzes   map[uuid.UUID]*quiz.Quiz
	questions map[uuid.UUID][]*quiz.Question
}

func (f *fakeQuizzes) PublishedQuiz(_ context.Context, id uuid.UUID) (*quiz.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok || !q.IsPublished {
		return nil, quiz.ErrQuizNotFound
	}
	return q, nil
}

func (f *fakeQuizzes) GradingQuestions(_ context.Context, quizID uuid.UUID) ([]quiz.GradingQuestion, error) {
	var out []quiz.GradingQuestion
	for _, q := range f.questions[quizID] {
		out = append(out, quiz.GradingView(q))
	}
	return out, nil
}

func (f *fakeQuizzes) GradingQuestionsByIDs(_ context.Context, ids []uuid.UUID) ([]quiz.GradingQuestion, error) {
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []quiz.GradingQuestion
	for _, qs := range f.questions {
		for _, q := range qs {
			if want[q.ID] {
				out = append(out, quiz.GradingView(q))
			}
		}
	}
	return out, nil
}

type fakeEnrollment map[uuid.UUID]bool

func (f fakeEnrollment) EnsureEnrolled(_ context.Context, userID, _ uuid.UUID) error {
	if !f[userID] {
		return course.ErrNotEnrolled
	}
	return nil
}

type fakeStreaks struct {
	streak int
	err    error
}

func (f fakeStreaks) Streak(context.Context, uuid.UUID) (int, error) {
	return f.streak, f.err
}

type fakeIssuer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeIssuer) Issue(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.calls == 1, nil
}

type failingComposer struct{}

func (failingComposer) Compose(context.Context, feedback.Input) (string, error) {
	return "", errors.New("model unavailable")
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
