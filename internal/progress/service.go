package progress

import (
	"context"

	"github.com/NowarkCodes/EduAble-sub000/internal/analytics"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	util "github.com/NowarkCodes/EduAble-sub000/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Lessons is the slice of the course service progress depends on.
type Lessons interface {
	GetLesson(ctx context.Context, lessonID uuid.UUID) (*course.Lesson, error)
	EnsureEnrolled(ctx context.Context, userID, courseID uuid.UUID) error
}

type Service interface {
	CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID) (*CompletionResponse, error)
	Streak(ctx context.Context, userID uuid.UUID) (int, error)
	CompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type service struct {
	repo    Repository
	lessons Lessons
	now     util.Clock
}

func NewService(repo Repository, lessons Lessons, now util.Clock) Service {
	if now == nil {
		now = util.SystemClock
	}
	return &service{repo: repo, lessons: lessons, now: now}
}

func (s *service) CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID) (*CompletionResponse, error) {
	log := config.WithContext(ctx).WithField("lesson_id", lessonID)

	lesson, err := s.lessons.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if err := s.lessons.EnsureEnrolled(ctx, userID, lesson.CourseID); err != nil {
		return nil, err
	}

	now := s.now()
	p := &LessonProgress{
		ID:          uuid.New(),
		UserID:      userID,
		LessonID:    lesson.ID,
		CourseID:    lesson.CourseID,
		Completed:   true,
		CompletedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.MarkCompleted(ctx, p); err != nil {
		log.WithError(err).Error("failed to record lesson completion")
		return nil, err
	}

	completedAt := now
	if stored, err := s.repo.Get(ctx, userID, lesson.ID); err == nil && stored != nil && stored.CompletedAt != nil {
		completedAt = *stored.CompletedAt
	}

	streak, err := s.Streak(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{"course_id": lesson.CourseID, "streak": streak}).Info("lesson completed")
	return &CompletionResponse{
		LessonID:    lesson.ID,
		CourseID:    lesson.CourseID,
		CompletedAt: completedAt,
		Streak:      streak,
	}, nil
}

func (s *service) Streak(ctx context.Context, userID uuid.UUID) (int, error) {
	times, err := s.repo.CompletionTimes(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to load completion history")
		return 0, err
	}
	return analytics.Streak(times, s.now()), nil
}

func (s *service) CompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.CompletedLessonIDs(ctx, userID, courseID)
}

