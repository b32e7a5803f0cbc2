package course

import (
	"context"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrLessonNotFound = apperror.NotFound("lesson not found")
	ErrNotEnrolled    = apperror.AccessDenied("learner is not enrolled in this course")
)

type Service interface {
	GetLesson(ctx context.Context, lessonID uuid.UUID) (*Lesson, error)
	GetLessonForLearner(ctx context.Context, userID, lessonID uuid.UUID, caps *accessibility.Capabilities) (*LessonView, error)
	EnsureEnrolled(ctx context.Context, userID, courseID uuid.UUID) error
	LessonIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetLesson returns ErrLessonNotFound rather than a nil lesson.
func (s *service) GetLesson(ctx context.Context, lessonID uuid.UUID) (*Lesson, error) {
	lesson, err := s.repo.GetLesson(ctx, lessonID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to load lesson")
		return nil, err
	}
	if lesson == nil {
		return nil, ErrLessonNotFound
	}
	return lesson, nil
}

func (s *service) GetLessonForLearner(ctx context.Context, userID, lessonID uuid.UUID, caps *accessibility.Capabilities) (*LessonView, error) {
	lesson, err := s.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if err := s.EnsureEnrolled(ctx, userID, lesson.CourseID); err != nil {
		return nil, err
	}

	view := Tailor(lesson, caps)
	config.WithContext(ctx).WithFields(logrus.Fields{
		"lesson_id":    lesson.ID,
		"capabilities": caps.Names(),
	}).Debug("lesson delivered")
	return &view, nil
}

func (s *service) EnsureEnrolled(ctx context.Context, userID, courseID uuid.UUID) error {
	ok, err := s.repo.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to check enrollment")
		return err
	}
	if !ok {
		return ErrNotEnrolled
	}
	return nil
}

func (s *service) LessonIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.ListLessonIDs(ctx, courseID)
}
