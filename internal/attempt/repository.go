package attempt

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Create inserts a new attempt. A concurrent writer holding the same
	// (user, quiz, attempt_number) makes it fail with a unique violation.
	Create(ctx context.Context, a *Attempt) error
	Count(ctx context.Context, userID, quizID uuid.UUID) (int, error)
	Latest(ctx context.Context, userID, quizID uuid.UUID) (*Attempt, error)
	List(ctx context.Context, userID, quizID uuid.UUID) ([]Attempt, error)
	Best(ctx context.Context, userID, quizID uuid.UUID) (*Attempt, error)
	RecentInCourse(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]Attempt, error)
	PassedQuizIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
	SetFeedback(ctx context.Context, id uuid.UUID, feedback string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attempt) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Count(ctx context.Context, userID, quizID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&Attempt{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *repository) Latest(ctx context.Context, userID, quizID uuid.UUID) (*Attempt, error) {
	return r.first(r.db.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("attempt_number DESC"))
}

func (r *repository) Best(ctx context.Context, userID, quizID uuid.UUID) (*Attempt, error) {
	return r.first(r.db.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("score DESC").
		Order("attempted_at DESC"))
}

func (r *repository) first(q *gorm.DB) (*Attempt, error) {
	var a Attempt
	if err := q.First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) List(ctx context.Context, userID, quizID uuid.UUID) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.WithContext(ctx).
		Omit("questions_snapshot").
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("attempt_number DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *repository) RecentInCourse(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("attempted_at DESC").
		Limit(limit).
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *repository) PassedQuizIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&Attempt{}).
		Distinct("quiz_id").
		Where("user_id = ? AND course_id = ? AND passed = ?", userID, courseID, true).
		Pluck("quiz_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) SetFeedback(ctx context.Context, id uuid.UUID, feedback string) error {
	return r.db.WithContext(ctx).
		Model(&Attempt{}).
		Where("id = ?", id).
		Update("ai_feedback", feedback).Error
}
