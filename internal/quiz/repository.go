package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateQuiz(ctx context.Context, q *Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (*Quiz, error)
	GetByLessonID(ctx context.Context, lessonID uuid.UUID) (*Quiz, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
	PublishedIDsByCourse(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error)

	AddQuestion(ctx context.Context, q *Question) error
	ListQuestions(ctx context.Context, quizID uuid.UUID) ([]*Question, error)
	QuestionsByIDs(ctx context.Context, ids []uuid.UUID) ([]*Question, error)
	MaxPosition(ctx context.Context, quizID uuid.UUID) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateQuiz(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *repository) GetByLessonID(ctx context.Context, lessonID uuid.UUID) (*Quiz, error) {
	return r.first(ctx, "lesson_id = ?", lessonID)
}

func (r *repository) first(ctx context.Context, query string, arg interface{}) (*Quiz, error) {
	var q Quiz
	if err := r.db.WithContext(ctx).First(&q, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	return r.db.WithContext(ctx).
		Model(&Quiz{}).
		Where("id = ?", id).
		Update("is_published", published).Error
}

func (r *repository) PublishedIDsByCourse(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&Quiz{}).
		Where("course_id = ? AND is_published = ?", courseID, true).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) AddQuestion(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("position ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) QuestionsByIDs(ctx context.Context, ids []uuid.UUID) ([]*Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []*Question
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) MaxPosition(ctx context.Context, quizID uuid.UUID) (int, error) {
	var last int
	if err := r.db.WithContext(ctx).
		Model(&Question{}).
		Where("quiz_id = ?", quizID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&last).Error; err != nil {
		return 0, err
	}
	return last, nil
}
