package container

import (
	"context"
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/aiquiz"
	"github.com/NowarkCodes/EduAble-sub000/internal/attempt"
	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/certificate"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	"github.com/NowarkCodes/EduAble-sub000/internal/feedback"
	"github.com/NowarkCodes/EduAble-sub000/internal/progress"
	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	"github.com/NowarkCodes/EduAble-sub000/internal/router"
	"gorm.io/gorm"
)

type Container struct {
	Settings *config.Settings

	AccessibilityContainer *accessibility.Container
	CourseContainer        *course.Container
	ProgressContainer      *progress.Container
	QuizContainer          *quiz.Container
	AttemptContainer       *attempt.Container
	CertificateContainer   *certificate.Container
	AIQuizContainer        *aiquiz.Container
}

// New loads configuration, connects to the database and wires every module.
// It panics on misconfiguration, which only happens at process start.
func New(ctx context.Context) *Container {
	settings := config.Load()
	config.InitLogger(settings.LogLevel)
	auth.Init(settings.JWTSecret)
	config.InitCrypto(settings.CryptoKey)

	if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
		config.WithContext(ctx).WithError(err).Fatal("failed to connect to DB")
	}
	if settings.AutoMigrate {
		if err := Migrate(config.DB); err != nil {
			config.WithContext(ctx).WithError(err).Fatal("auto migration failed")
		}
	}

	return Wire(ctx, config.DB, settings)
}

// Wire builds the module graph on an existing connection.
func Wire(ctx context.Context, db *gorm.DB, settings *config.Settings) *Container {
	accessibilityContainer := accessibility.NewContainer(db)
	courseContainer := course.NewContainer(db)
	progressContainer := progress.NewContainer(db, courseContainer.Service)
	aiQuizContainer := aiquiz.NewContainer(ctx, settings.GeminiModel)

	quizContainer := quiz.NewContainer(db, courseContainer.Service, aiQuizContainer.Service)

	attemptRepo := attempt.NewRepository(db)
	certificateContainer := certificate.NewContainer(ctx, db, settings, certificate.Sources{
		Quizzes:  quizContainer.Service,
		Attempts: attemptRepo,
		Lessons:  courseContainer.Service,
		Progress: progressContainer.Service,
	}, courseContainer.Service)

	attemptContainer := attempt.NewContainer(
		attemptRepo,
		quizContainer.Service,
		courseContainer.Service,
		progressContainer.Service,
		feedback.NewComposer(ctx, settings.AIFeedbackEnabled, aiQuizContainer.Service),
		certificateContainer.Issuer,
	)

	return &Container{
		Settings:               settings,
		AccessibilityContainer: accessibilityContainer,
		CourseContainer:        courseContainer,
		ProgressContainer:      progressContainer,
		QuizContainer:          quizContainer,
		AttemptContainer:       attemptContainer,
		CertificateContainer:   certificateContainer,
		AIQuizContainer:        aiQuizContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		CORSOrigins:          c.Settings.CORSOrigins,
		AccessibilityHandler: c.AccessibilityContainer.Handler,
		ProfileRepo:          c.AccessibilityContainer.Repo,
		CourseHandler:        c.CourseContainer.Handler,
		ProgressHandler:      c.ProgressContainer.Handler,
		QuizHandler:          c.QuizContainer.Handler,
		AttemptHandler:       c.AttemptContainer.Handler,
		CertificateHandler:   c.CertificateContainer.Handler,
	})
}
