package quiz

import (
	"context"
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuizNotFound      = apperror.NotFound("quiz not found")
	ErrNoPublishedQuiz   = apperror.NotFound("no published quiz for this lesson")
	ErrQuizExists        = apperror.Conflict("lesson already has a quiz")
	ErrEmptyQuiz         = apperror.Validation("quiz has no questions")
	ErrDuplicateLabel    = apperror.Validation("option labels must be unique")
	ErrUnknownCorrect    = apperror.Validation("correct_option must match one of the option labels")
	ErrPositionTaken     = apperror.Conflict("question order already taken in this quiz")
	ErrInvalidQuizFields = apperror.Validation("invalid quiz fields")
)

// Lessons is the slice of the course service the quiz service depends on.
type Lessons interface {
	GetLesson(ctx context.Context, lessonID uuid.UUID) (*course.Lesson, error)
}

type Service interface {
	CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error)
	AddQuestion(ctx context.Context, quizID uuid.UUID, dto AddQuestionDTO) (*AdminQuestion, error)
	PublishQuiz(ctx context.Context, quizID uuid.UUID) (*AdminQuizResponse, error)
	GenerateDraftFromTranscript(ctx context.Context, lessonID uuid.UUID, dto DraftRequestDTO) (*DraftResponse, error)

	GetQuizForLearner(ctx context.Context, lessonID uuid.UUID, caps *accessibility.Capabilities) (*LearnerQuizResponse, error)

	PublishedQuiz(ctx context.Context, quizID uuid.UUID) (*Quiz, error)
	GradingQuestions(ctx context.Context, quizID uuid.UUID) ([]GradingQuestion, error)
	GradingQuestionsByIDs(ctx context.Context, ids []uuid.UUID) ([]GradingQuestion, error)
	PublishedQuizIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error)
}

type service struct {
	repo     Repository
	lessons  Lessons
	drafter  Drafter
	validate *validator.Validate
}

func NewService(repo Repository, lessons Lessons, drafter Drafter) Service {
	return &service{
		repo:     repo,
		lessons:  lessons,
		drafter:  drafter,
		validate: validator.New(),
	}
}

func (s *service) CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	if err := s.validate.Struct(dto); err != nil {
		log.WithError(err).Warn("invalid quiz payload")
		return nil, ErrInvalidQuizFields.WithDetails(map[string]any{"reason": err.Error()})
	}

	lesson, err := s.lessons.GetLesson(ctx, dto.LessonID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByLessonID(ctx, lesson.ID)
	if err != nil {
		log.WithError(err).Error("failed to check existing quiz")
		return nil, err
	}
	if existing != nil {
		return nil, ErrQuizExists
	}

	now := time.Now().UTC()
	q := &Quiz{
		ID:              uuid.New(),
		LessonID:        lesson.ID,
		CourseID:        lesson.CourseID,
		Title:           dto.Title,
		PassingScore:    dto.PassingScore,
		TimeLimit:       dto.TimeLimit,
		MaxAttempts:     dto.MaxAttempts,
		CooldownMinutes: dto.CooldownMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.CreateQuiz(ctx, q); err != nil {
		if config.IsUniqueViolation(err) {
			return nil, ErrQuizExists
		}
		log.WithError(err).Error("failed to create quiz")
		return nil, err
	}

	log.WithFields(logrus.Fields{"quiz_id": q.ID, "lesson_id": q.LessonID}).Info("quiz created")
	return q, nil
}

func (s *service) AddQuestion(ctx context.Context, quizID uuid.UUID, dto AddQuestionDTO) (*AdminQuestion, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	if err := s.validate.Struct(dto); err != nil {
		log.WithError(err).Warn("invalid question payload")
		return nil, apperror.Validation("invalid question fields").WithDetails(map[string]any{"reason": err.Error()})
	}

	options := make([]Option, 0, len(dto.Options))
	labels := make(map[string]bool, len(dto.Options))
	for _, o := range dto.Options {
		if labels[o.Label] {
			return nil, ErrDuplicateLabel
		}
		labels[o.Label] = true
		options = append(options, Option{Label: o.Label, Text: o.Text})
	}
	if !labels[dto.CorrectOption] {
		return nil, ErrUnknownCorrect
	}

	qz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		log.WithError(err).Error("failed to load quiz")
		return nil, err
	}
	if qz == nil {
		return nil, ErrQuizNotFound
	}

	position := 0
	if dto.Order != nil {
		position = *dto.Order
	} else {
		last, err := s.repo.MaxPosition(ctx, quizID)
		if err != nil {
			log.WithError(err).Error("failed to read question order")
			return nil, err
		}
		position = last + 1
	}

	question := &Question{
		ID:             uuid.New(),
		QuizID:         qz.ID,
		Text:           dto.Text,
		SimplifiedText: dto.SimplifiedText,
		TopicTag:       dto.TopicTag,
		Options:        options,
		CorrectOption:  dto.CorrectOption,
		Explanation:    dto.Explanation,
		Position:       position,
		CreatedAt:      time.Now().UTC(),
	}
	question.TopicTag = topicOf(question)

	if err := s.repo.AddQuestion(ctx, question); err != nil {
		if config.IsUniqueViolation(err) {
			return nil, ErrPositionTaken.WithDetails(map[string]any{"order": position})
		}
		log.WithError(err).Error("failed to add question")
		return nil, err
	}

	log.WithField("question_id", question.ID).Info("question added")
	view := AdminView(question)
	return &view, nil
}

func (s *service) PublishQuiz(ctx context.Context, quizID uuid.UUID) (*AdminQuizResponse, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	qz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		log.WithError(err).Error("failed to load quiz")
		return nil, err
	}
	if qz == nil {
		return nil, ErrQuizNotFound
	}

	questions, err := s.repo.ListQuestions(ctx, quizID)
	if err != nil {
		log.WithError(err).Error("failed to list questions")
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}

	if err := s.repo.SetPublished(ctx, quizID, true); err != nil {
		log.WithError(err).Error("failed to publish quiz")
		return nil, err
	}
	qz.IsPublished = true

	resp := &AdminQuizResponse{Quiz: qz, Questions: make([]AdminQuestion, 0, len(questions))}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, AdminView(q))
	}
	log.Info("quiz published")
	return resp, nil
}

func (s *service) GetQuizForLearner(ctx context.Context, lessonID uuid.UUID, caps *accessibility.Capabilities) (*LearnerQuizResponse, error) {
	log := config.WithContext(ctx).WithField("lesson_id", lessonID)

	qz, err := s.repo.GetByLessonID(ctx, lessonID)
	if err != nil {
		log.WithError(err).Error("failed to load quiz for lesson")
		return nil, err
	}
	if qz == nil || !qz.IsPublished {
		return nil, ErrNoPublishedQuiz
	}

	questions, err := s.repo.ListQuestions(ctx, qz.ID)
	if err != nil {
		log.WithError(err).Error("failed to list questions")
		return nil, err
	}

	resp := &LearnerQuizResponse{
		Quiz: QuizMeta{
			ID:              qz.ID,
			LessonID:        qz.LessonID,
			CourseID:        qz.CourseID,
			Title:           qz.Title,
			PassingScore:    qz.PassingScore,
			TimeLimit:       caps.TimeLimit(qz.TimeLimit),
			MaxAttempts:     qz.MaxAttempts,
			CooldownMinutes: qz.CooldownMinutes,
			TotalQuestions:  len(questions),
		},
		A11yMeta:  caps.QuizMeta(),
		Questions: make([]PublicQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, PublicView(q, caps))
	}
	return resp, nil
}

// PublishedQuiz returns ErrQuizNotFound for missing and unpublished quizzes alike.
func (s *service) PublishedQuiz(ctx context.Context, quizID uuid.UUID) (*Quiz, error) {
	qz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to load quiz")
		return nil, err
	}
	if qz == nil || !qz.IsPublished {
		return nil, ErrQuizNotFound
	}
	return qz, nil
}

func (s *service) GradingQuestions(ctx context.Context, quizID uuid.UUID) ([]GradingQuestion, error) {
	questions, err := s.repo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return gradingViews(questions), nil
}

func (s *service) GradingQuestionsByIDs(ctx context.Context, ids []uuid.UUID) ([]GradingQuestion, error) {
	questions, err := s.repo.QuestionsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return gradingViews(questions), nil
}

func (s *service) PublishedQuizIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.PublishedIDsByCourse(ctx, courseID)
}

func gradingViews(questions []*Question) []GradingQuestion {
	out := make([]GradingQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, GradingView(q))
	}
	return out
}
