package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// MarkCompleted upserts the row for (user, lesson). A lesson completed
	// earlier keeps its original completion time.
	MarkCompleted(ctx context.Context, p *LessonProgress) error
	Get(ctx context.Context, userID, lessonID uuid.UUID) (*LessonProgress, error)
	CompletionTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	CompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) MarkCompleted(ctx context.Context, p *LessonProgress) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":    true,
			"completed_at": gorm.Expr("COALESCE(lesson_progress.completed_at, EXCLUDED.completed_at)"),
			"updated_at":   p.UpdatedAt,
		}),
	}).Create(p).Error
}

func (r *repository) Get(ctx context.Context, userID, lessonID uuid.UUID) (*LessonProgress, error) {
	var p LessonProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Limit(1).
		Find(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, nil
	}
	return &p, nil
}

func (r *repository) CompletionTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	var times []time.Time
	if err := r.db.WithContext(ctx).
		Model(&LessonProgress{}).
		Where("user_id = ? AND completed = ? AND completed_at IS NOT NULL", userID, true).
		Pluck("completed_at", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *repository) CompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&LessonProgress{}).
		Where("user_id = ? AND course_id = ? AND completed = ?", userID, courseID, true).
		Pluck("lesson_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
