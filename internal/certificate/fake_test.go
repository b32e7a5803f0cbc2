package certificate_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/NowarkCodes/EduAble-sub000/internal/certificate"
	"github.com/google/uuid"
)

type key struct{ user, course uuid.UUID }

type memRepo struct {
	mu    sync.Mutex
	certs map[key]certificate.Certificate
}

func newMemRepo() *memRepo {
	return &memRepo{certs: map[key]certificate.Certificate{}}
}

func (m *memRepo) Get(_ context.Context, userID, courseID uuid.UUID) (*certificate.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.certs[key{userID, courseID}]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]certificate.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []certificate.Certificate
	for k, c := range m.certs {
		if k.user == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memRepo) CreateIfAbsent(_ context.Context, c *certificate.Certificate) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key{c.UserID, c.CourseID}
	if _, ok := m.certs[k]; ok {
		return false, nil
	}
	m.certs[k] = *c
	return true, nil
}

func (m *memRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.certs)
}

type ids []uuid.UUID

type courseState struct {
	quizzes   ids
	passed    ids
	lessons   ids
	completed ids
}

func (s *courseState) PublishedQuizIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return s.quizzes, nil
}

func (s *courseState) PassedQuizIDs(context.Context, uuid.UUID, uuid.UUID) ([]uuid.UUID, error) {
	return s.passed, nil
}

func (s *courseState) LessonIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return s.lessons, nil
}

func (s *courseState) CompletedLessonIDs(context.Context, uuid.UUID, uuid.UUID) ([]uuid.UUID, error) {
	return s.completed, nil
}

func (s *courseState) sources() certificate.Sources {
	return certificate.Sources{Quizzes: s, Attempts: s, Lessons: s, Progress: s}
}

type fakeGenerator struct {
	calls atomic.Int32
	fail  bool
}

func (g *fakeGenerator) Generate(_ context.Context, userID, courseID uuid.UUID) (string, error) {
	g.calls.Add(1)
	if g.fail {
		return "", errors.New("renderer down")
	}
	return "https://certs.example/" + userID.String() + "/" + courseID.String(), nil
}

type fakeEnrollment struct {
	err error
}

func (f fakeEnrollment) EnsureEnrolled(context.Context, uuid.UUID, uuid.UUID) error {
	return f.err
}
