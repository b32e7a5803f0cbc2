package course_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	lessons   map[uuid.UUID]*course.Lesson
	enrolled  map[[2]uuid.UUID]bool
	lookupErr error
}

func (f *fakeRepo) GetLesson(_ context.Context, id uuid.UUID) (*course.Lesson, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.lessons[id], nil
}

func (f *fakeRepo) ListLessonIDs(_ context.Context, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, l := range f.lessons {
		if l.CourseID == courseID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeRepo) IsEnrolled(_ context.Context, userID, courseID uuid.UUID) (bool, error) {
	return f.enrolled[[2]uuid.UUID{userID, courseID}], nil
}

func sampleLesson() *course.Lesson {
	return &course.Lesson{
		ID:                uuid.New(),
		CourseID:          uuid.New(),
		Title:             "Fractions",
		Content:           "A fraction represents a part of a whole.",
		SimplifiedContent: "A fraction is a piece of something.",
		VideoURL:          "https://cdn.example.com/fractions.mp4",
		Position:          2,
	}
}

func capsFor(types ...accessibility.DisabilityType) *accessibility.Capabilities {
	return accessibility.Derive(&accessibility.Profile{DisabilityTypes: types})
}

func TestTailorWithoutProfile(t *testing.T) {
	l := sampleLesson()
	l.Transcript = "stored transcript"

	view := course.Tailor(l, nil)

	assert.Equal(t, l.Content, view.Content)
	assert.Equal(t, "stored transcript", view.Transcript)
	assert.Nil(t, view.A11yMeta)
	assert.Equal(t, 2, view.Order)
}

func TestTailorDeafProfileBackfillsTranscript(t *testing.T) {
	l := sampleLesson()

	view := course.Tailor(l, capsFor(accessibility.DeafHardOfHearing))

	require.NotNil(t, view.A11yMeta)
	assert.True(t, view.A11yMeta.CaptionsEnabled)
	assert.False(t, view.A11yMeta.Narration)
	assert.NotEmpty(t, view.Transcript)
	assert.Equal(t, l.Content, view.Transcript)
}

func TestTailorCognitiveProfileSimplifies(t *testing.T) {
	l := sampleLesson()

	view := course.Tailor(l, capsFor(accessibility.CognitiveDisability))

	assert.Equal(t, l.SimplifiedContent, view.Content)
	assert.True(t, view.A11yMeta.SimplifiedText)
	assert.Empty(t, view.Transcript)
}

func TestGetLessonForLearner(t *testing.T) {
	l := sampleLesson()
	learner := uuid.New()
	repo := &fakeRepo{
		lessons:  map[uuid.UUID]*course.Lesson{l.ID: l},
		enrolled: map[[2]uuid.UUID]bool{{learner, l.CourseID}: true},
	}
	svc := course.NewService(repo)
	ctx := context.Background()

	t.Run("Enrolled", func(t *testing.T) {
		view, err := svc.GetLessonForLearner(ctx, learner, l.ID, capsFor(accessibility.BlindLowVision))
		require.NoError(t, err)
		assert.Equal(t, l.ID, view.ID)
		assert.True(t, view.A11yMeta.Narration)
		assert.Equal(t, l.Content, view.Transcript)
	})

	t.Run("NotEnrolled", func(t *testing.T) {
		_, err := svc.GetLessonForLearner(ctx, uuid.New(), l.ID, nil)
		assert.ErrorIs(t, err, course.ErrNotEnrolled)
	})

	t.Run("MissingLesson", func(t *testing.T) {
		_, err := svc.GetLessonForLearner(ctx, learner, uuid.New(), nil)
		assert.ErrorIs(t, err, course.ErrLessonNotFound)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		failing := course.NewService(&fakeRepo{lookupErr: errors.New("db down")})
		_, err := failing.GetLessonForLearner(ctx, learner, l.ID, nil)
		assert.EqualError(t, err, "db down")
	})
}
