package quiz_test

import (
	"context"
	"sort"
	"sync"

	"github.com/NowarkCodes/EduAble-sub000/internal/aiquiz"
	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memRepo struct {
	mu        sync.Mutex
	quizzes   map[uuid.UUID]*quiz.Quiz
	questions map[uuid.UUID]*quiz.Question
}

func newMemRepo() *memRepo {
	return &memRepo{
		quizzes:   make(map[uuid.UUID]*quiz.Quiz),
		questions: make(map[uuid.UUID]*quiz.Question),
	}
}

func (m *memRepo) CreateQuiz(_ context.Context, q *quiz.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.quizzes {
		if existing.LessonID == q.LessonID {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *q
	m.quizzes[q.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*quiz.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q, ok := m.quizzes[id]; ok {
		cp := *q
		return &cp, nil
	}
	return nil, nil
}

func (m *memRepo) GetByLessonID(_ context.Context, lessonID uuid.UUID) (*quiz.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.quizzes {
		if q.LessonID == lessonID {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRepo) SetPublished(_ context.Context, id uuid.UUID, published bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q, ok := m.quizzes[id]; ok {
		q.IsPublished = published
	}
	return nil
}

func (m *memRepo) PublishedIDsByCourse(_ context.Context, courseID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uuid.UUID
	for _, q := range m.quizzes {
		if q.CourseID == courseID && q.IsPublished {
			ids = append(ids, q.ID)
		}
	}
	return ids, nil
}

func (m *memRepo) AddQuestion(_ context.Context, q *quiz.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.questions {
		if existing.QuizID == q.QuizID && existing.Position == q.Position {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *q
	m.questions[q.ID] = &cp
	return nil
}

func (m *memRepo) ListQuestions(_ context.Context, quizID uuid.UUID) ([]*quiz.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*quiz.Question
	for _, q := range m.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *memRepo) QuestionsByIDs(_ context.Context, ids []uuid.UUID) ([]*quiz.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*quiz.Question
	for _, id := range ids {
		if q, ok := m.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memRepo) MaxPosition(_ context.Context, quizID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	last := 0
	for _, q := range m.questions {
		if q.QuizID == quizID && q.Position > last {
			last = q.Position
		}
	}
	return last, nil
}

type fakeLessons map[uuid.UUID]*course.Lesson

func (f fakeLessons) GetLesson(_ context.Context, id uuid.UUID) (*course.Lesson, error) {
	if l, ok := f[id]; ok {
		return l, nil
	}
	return nil, course.ErrLessonNotFound
}

type fakeDrafter struct {
	got aiquiz.DraftRequest
}

func (f *fakeDrafter) GenerateDraft(_ context.Context, req aiquiz.DraftRequest) (*aiquiz.Draft, error) {
	f.got = req
	return &aiquiz.Draft{Title: req.Title, PassingScore: 60}, nil
}
