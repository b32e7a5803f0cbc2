package attempt

import (
	"context"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/analytics"
	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/NowarkCodes/EduAble-sub000/internal/feedback"
	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	util "github.com/NowarkCodes/EduAble-sub000/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAnswers    = apperror.Validation("answers must be a list of {question_id, selected_option}")
	ErrConcurrentAttempt = apperror.Conflict("another attempt for this quiz was recorded concurrently")
)

// Quizzes is the slice of the quiz service grading depends on.
type Quizzes interface {
	PublishedQuiz(ctx context.Context, quizID uuid.UUID) (*quiz.Quiz, error)
	GradingQuestions(ctx context.Context, quizID uuid.UUID) ([]quiz.GradingQuestion, error)
	GradingQuestionsByIDs(ctx context.Context, ids []uuid.UUID) ([]quiz.GradingQuestion, error)
}

type Enrollment interface {
	EnsureEnrolled(ctx context.Context, userID, courseID uuid.UUID) error
}

type Streaks interface {
	Streak(ctx context.Context, userID uuid.UUID) (int, error)
}

type CertificateIssuer interface {
	Issue(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
}

type Service interface {
	Submit(ctx context.Context, userID, quizID uuid.UUID, dto SubmitAttemptDTO, caps *accessibility.Capabilities) (*SubmitResponse, error)
	List(ctx context.Context, userID, quizID uuid.UUID) ([]Attempt, error)
	Best(ctx context.Context, userID, quizID uuid.UUID) (*Attempt, error)
	PassedQuizIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type Deps struct {
	Repo       Repository
	Quizzes    Quizzes
	Enrollment Enrollment
	Streaks    Streaks
	Composer   feedback.Composer
	Issuer     CertificateIssuer
	Clock      util.Clock
}

type service struct {
	repo       Repository
	quizzes    Quizzes
	enrollment Enrollment
	streaks    Streaks
	composer   feedback.Composer
	issuer     CertificateIssuer
	gate       *Gatekeeper
	now        util.Clock
	validate   *validator.Validate
}

func NewService(d Deps) Service {
	now := d.Clock
	if now == nil {
		now = util.SystemClock
	}
	composer := d.Composer
	if composer == nil {
		composer = feedback.TemplateComposer{}
	}
	return &service{
		repo:       d.Repo,
		quizzes:    d.Quizzes,
		enrollment: d.Enrollment,
		streaks:    d.Streaks,
		composer:   composer,
		issuer:     d.Issuer,
		gate:       NewGatekeeper(d.Repo, now),
		now:        now,
		validate:   validator.New(),
	}
}

func (s *service) Submit(ctx context.Context, userID, quizID uuid.UUID, dto SubmitAttemptDTO, caps *accessibility.Capabilities) (*SubmitResponse, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	if err := s.validate.Struct(dto); err != nil {
		log.WithError(err).Warn("invalid attempt payload")
		return nil, ErrInvalidAnswers
	}

	qz, err := s.quizzes.PublishedQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := s.enrollment.EnsureEnrolled(ctx, userID, qz.CourseID); err != nil {
		return nil, err
	}

	decision, err := s.gate.Check(ctx, userID, qz)
	if err != nil {
		log.WithError(err).Error("failed to evaluate attempt policy")
		return nil, err
	}
	if err := decision.Err(); err != nil {
		log.WithFields(logrus.Fields{
			"status":            decision.Status.String(),
			"remaining_minutes": decision.RemainingMinutes,
		}).Info("attempt blocked by policy")
		return nil, err
	}

	questions, err := s.quizzes.GradingQuestions(ctx, qz.ID)
	if err != nil {
		log.WithError(err).Error("failed to load answer key")
		return nil, err
	}

	answers := make([]Answer, 0, len(dto.Answers))
	for _, a := range dto.Answers {
		answers = append(answers, Answer{QuestionID: a.QuestionID, SelectedOption: a.SelectedOption})
	}
	grade, err := GradeSubmission(questions, answers, qz.PassingScore)
	if err != nil {
		return nil, err
	}

	var previousScore *int
	if decision.Previous != nil {
		previousScore = util.IntPtr(decision.Previous.Score)
	}

	a := &Attempt{
		ID:                      uuid.New(),
		UserID:                  userID,
		QuizID:                  qz.ID,
		CourseID:                qz.CourseID,
		LessonID:                qz.LessonID,
		Answers:                 grade.Answers,
		QuestionsSnapshot:       grade.Snapshot,
		Score:                   grade.Score,
		CorrectCount:            grade.CorrectCount,
		TotalQuestions:          grade.TotalQuestions,
		Passed:                  grade.Passed,
		AttemptNumber:           decision.AttemptNumber,
		ImprovementFromPrevious: analytics.ImprovementDelta(previousScore, grade.Score),
		UsedAccessibilityModes:  caps.Modes(),
		AttemptedAt:             s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if config.IsUniqueViolation(err) {
			log.WithField("attempt_number", a.AttemptNumber).Warn("lost concurrent attempt race")
			return nil, ErrConcurrentAttempt.WithDetails(map[string]any{"attempt_number": a.AttemptNumber})
		}
		log.WithError(err).Error("failed to record attempt")
		return nil, err
	}

	log = log.WithFields(logrus.Fields{
		"attempt_id":     a.ID,
		"attempt_number": a.AttemptNumber,
		"score":          a.Score,
		"passed":         a.Passed,
	})
	log.Info("attempt recorded")

	weak := s.weakTopics(ctx, userID, qz.CourseID)

	streak, err := s.streaks.Streak(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("streak unavailable for feedback")
		streak = 0
	}

	aiFeedback := s.attachFeedback(ctx, a.ID, weak, streak)

	issued := false
	if a.Passed && s.issuer != nil {
		issued, err = s.issuer.Issue(ctx, userID, qz.CourseID)
		if err != nil {
			log.WithError(err).Error("certificate issuance failed after passing attempt")
			issued = false
		}
	}

	return &SubmitResponse{
		AttemptID:               a.ID,
		Score:                   a.Score,
		Passed:                  a.Passed,
		CorrectCount:            a.CorrectCount,
		TotalQuestions:          a.TotalQuestions,
		AttemptNumber:           a.AttemptNumber,
		ImprovementFromPrevious: a.ImprovementFromPrevious,
		WeakTopics:              weak,
		AIFeedback:              aiFeedback,
		CertificateIssued:       issued,
		DetailedResults:         grade.Results,
	}, nil
}

// weakTopics degrades to an empty list when the history cannot be read.
func (s *service) weakTopics(ctx context.Context, userID, courseID uuid.UUID) []analytics.WeakTopic {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	recent, err := s.repo.RecentInCourse(ctx, userID, courseID, weakTopicWindow)
	if err != nil {
		log.WithError(err).Warn("weak topic history unavailable")
		return []analytics.WeakTopic{}
	}

	questions, err := s.quizzes.GradingQuestionsByIDs(ctx, snapshotQuestionIDs(recent))
	if err != nil {
		log.WithError(err).Warn("weak topic metadata unavailable")
		return []analytics.WeakTopic{}
	}

	ranked := analytics.RankWeakTopics(observations(recent, questions))
	return analytics.TopWeakTopics(ranked, weakTopicLimit)
}

// attachFeedback runs after the attempt is stored. Any failure leaves the
// attempt without feedback.
func (s *service) attachFeedback(ctx context.Context, attemptID uuid.UUID, weak []analytics.WeakTopic, streak int) *string {
	log := config.WithContext(ctx).WithField("attempt_id", attemptID)

	note, err := s.composer.Compose(ctx, feedback.Input{WeakTopics: weak, Streak: streak})
	if err != nil {
		log.WithError(err).Warn("feedback generation failed")
		return nil
	}
	if err := s.repo.SetFeedback(ctx, attemptID, note); err != nil {
		log.WithError(err).Error("failed to store feedback")
		return nil
	}
	return &note
}

func (s *service) List(ctx context.Context, userID, quizID uuid.UUID) ([]Attempt, error) {
	attempts, err := s.repo.List(ctx, userID, quizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to list attempts")
		return nil, err
	}
	for i := range attempts {
		attempts[i].QuestionsSnapshot = nil
	}
	return attempts, nil
}

func (s *service) Best(ctx context.Context, userID, quizID uuid.UUID) (*Attempt, error) {
	best, err := s.repo.Best(ctx, userID, quizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to load best attempt")
		return nil, err
	}
	return best, nil
}

func (s *service) PassedQuizIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.PassedQuizIDs(ctx, userID, courseID)
}
