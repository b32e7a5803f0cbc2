package certificate

import (
	"context"
	"errors"

	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Get(ctx context.Context, userID, courseID uuid.UUID) (*Certificate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Certificate, error)
	// CreateIfAbsent reports false when a certificate for (user, course)
	// already exists, including one written concurrently.
	CreateIfAbsent(ctx context.Context, c *Certificate) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, userID, courseID uuid.UUID) (*Certificate, error) {
	var c Certificate
	if err := r.db.WithContext(ctx).First(&c, "user_id = ? AND course_id = ?", userID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Certificate, error) {
	var certs []Certificate
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *repository) CreateIfAbsent(ctx context.Context, c *Certificate) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(c)
	if res.Error != nil {
		if config.IsUniqueViolation(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
