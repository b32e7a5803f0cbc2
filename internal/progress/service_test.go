package progress_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	"github.com/NowarkCodes/EduAble-sub000/internal/progress"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu   sync.Mutex
	rows map[[2]uuid.UUID]*progress.LessonProgress
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[[2]uuid.UUID]*progress.LessonProgress)}
}

func (m *memRepo) MarkCompleted(_ context.Context, p *progress.LessonProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]uuid.UUID{p.UserID, p.LessonID}
	if existing, ok := m.rows[key]; ok {
		existing.Completed = true
		if existing.CompletedAt == nil {
			existing.CompletedAt = p.CompletedAt
		}
		existing.UpdatedAt = p.UpdatedAt
		return nil
	}
	cp := *p
	m.rows[key] = &cp
	return nil
}

func (m *memRepo) Get(_ context.Context, userID, lessonID uuid.UUID) (*progress.LessonProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[[2]uuid.UUID{userID, lessonID}], nil
}

func (m *memRepo) CompletionTimes(_ context.Context, userID uuid.UUID) ([]time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []time.Time
	for _, p := range m.rows {
		if p.UserID == userID && p.Completed && p.CompletedAt != nil {
			out = append(out, *p.CompletedAt)
		}
	}
	return out, nil
}

func (m *memRepo) CompletedLessonIDs(_ context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []uuid.UUID
	for _, p := range m.rows {
		if p.UserID == userID && p.CourseID == courseID && p.Completed {
			out = append(out, p.LessonID)
		}
	}
	return out, nil
}

type fakeLessons struct {
	lessons  map[uuid.UUID]*course.Lesson
	enrolled map[uuid.UUID]bool
}

func (f *fakeLessons) GetLesson(_ context.Context, id uuid.UUID) (*course.Lesson, error) {
	l, ok := f.lessons[id]
	if !ok {
		return nil, course.ErrLessonNotFound
	}
	return l, nil
}

func (f *fakeLessons) EnsureEnrolled(_ context.Context, userID, _ uuid.UUID) error {
	if !f.enrolled[userID] {
		return course.ErrNotEnrolled
	}
	return nil
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func TestCompleteLessonBuildsStreak(t *testing.T) {
	learner := uuid.New()
	courseID := uuid.New()
	l1 := &course.Lesson{ID: uuid.New(), CourseID: courseID}
	l2 := &course.Lesson{ID: uuid.New(), CourseID: courseID}
	l3 := &course.Lesson{ID: uuid.New(), CourseID: courseID}
	lessons := &fakeLessons{
		lessons:  map[uuid.UUID]*course.Lesson{l1.ID: l1, l2.ID: l2, l3.ID: l3},
		enrolled: map[uuid.UUID]bool{learner: true},
	}
	c := &clock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	repo := newMemRepo()
	svc := progress.NewService(repo, lessons, c.Now)
	ctx := context.Background()

	resp, err := svc.CompleteLesson(ctx, learner, l1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Streak)
	assert.Equal(t, courseID, resp.CourseID)

	c.now = c.now.Add(24 * time.Hour)
	resp, err = svc.CompleteLesson(ctx, learner, l2.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Streak)

	t.Run("RecompletionKeepsFirstTimestamp", func(t *testing.T) {
		first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		resp, err := svc.CompleteLesson(ctx, learner, l1.ID)
		require.NoError(t, err)
		assert.True(t, resp.CompletedAt.Equal(first))
		assert.Equal(t, 2, resp.Streak)
	})

	t.Run("LapsedStreak", func(t *testing.T) {
		c.now = c.now.Add(72 * time.Hour)
		streak, err := svc.Streak(ctx, learner)
		require.NoError(t, err)
		assert.Equal(t, 0, streak)
	})

	ids, err := svc.CompletedLessonIDs(ctx, learner, courseID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{l1.ID, l2.ID}, ids)
}

func TestCompleteLessonRequiresEnrollment(t *testing.T) {
	l := &course.Lesson{ID: uuid.New(), CourseID: uuid.New()}
	lessons := &fakeLessons{lessons: map[uuid.UUID]*course.Lesson{l.ID: l}}
	repo := newMemRepo()
	svc := progress.NewService(repo, lessons, nil)

	_, err := svc.CompleteLesson(context.Background(), uuid.New(), l.ID)

	assert.ErrorIs(t, err, course.ErrNotEnrolled)
	assert.Empty(t, repo.rows)

	_, err = svc.CompleteLesson(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, course.ErrLessonNotFound)
}
