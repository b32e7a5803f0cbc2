package certificate

import (
	"context"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	util "github.com/NowarkCodes/EduAble-sub000/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type QuizSource interface {
	PublishedQuizIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error)
}

type AttemptSource interface {
	PassedQuizIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type LessonSource interface {
	LessonIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error)
}

type ProgressSource interface {
	CompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type Sources struct {
	Quizzes  QuizSource
	Attempts AttemptSource
	Lessons  LessonSource
	Progress ProgressSource
}

type Issuer struct {
	repo      Repository
	src       Sources
	generator ArtifactGenerator
	now       util.Clock
}

func NewIssuer(repo Repository, src Sources, generator ArtifactGenerator, now util.Clock) *Issuer {
	if now == nil {
		now = util.SystemClock
	}
	return &Issuer{repo: repo, src: src, generator: generator, now: now}
}

// Issue creates the course certificate when the learner has passed every
// published quiz and completed every lesson. It returns true only for the call
// that actually wrote the row.
func (i *Issuer) Issue(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	existing, err := i.repo.Get(ctx, userID, courseID)
	if err != nil {
		log.WithError(err).Error("failed to check existing certificate")
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	complete, err := i.Complete(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	if !complete {
		log.Debug("course not complete, no certificate")
		return false, nil
	}

	certURL, err := i.generator.Generate(ctx, userID, courseID)
	if err != nil {
		log.WithError(err).Error("certificate artifact generation failed")
		return false, apperror.ExternalService("certificate generation failed", err)
	}

	cert := &Certificate{
		ID:             uuid.New(),
		UserID:         userID,
		CourseID:       courseID,
		CertificateURL: certURL,
		IssuedAt:       i.now(),
	}
	created, err := i.repo.CreateIfAbsent(ctx, cert)
	if err != nil {
		log.WithError(err).Error("failed to store certificate")
		return false, err
	}

	log.WithFields(logrus.Fields{"issued": created, "certificate_id": cert.ID}).Info("certificate issuance finished")
	return created, nil
}

// Complete reports whether every published quiz has a passing attempt and every
// lesson is completed. A course with neither is never complete.
func (i *Issuer) Complete(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	quizIDs, err := i.src.Quizzes.PublishedQuizIDs(ctx, courseID)
	if err != nil {
		return false, err
	}
	lessonIDs, err := i.src.Lessons.LessonIDs(ctx, courseID)
	if err != nil {
		return false, err
	}
	if len(quizIDs) == 0 && len(lessonIDs) == 0 {
		return false, nil
	}

	passed, err := i.src.Attempts.PassedQuizIDs(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	if !covers(passed, quizIDs) {
		return false, nil
	}

	completed, err := i.src.Progress.CompletedLessonIDs(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	return covers(completed, lessonIDs), nil
}

func covers(have, want []uuid.UUID) bool {
	set := make(map[uuid.UUID]struct{}, len(have))
	for _, id := range have {
		set[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
