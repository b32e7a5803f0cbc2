package router

import (
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/attempt"
	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/certificate"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/NowarkCodes/EduAble-sub000/internal/course"
	"github.com/NowarkCodes/EduAble-sub000/internal/middlewares"
	"github.com/NowarkCodes/EduAble-sub000/internal/progress"
	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RouterConfig struct {
	CORSOrigins []string

	AccessibilityHandler *accessibility.Handler
	ProfileRepo          accessibility.Repository
	CourseHandler        *course.Handler
	ProgressHandler      *progress.Handler
	QuizHandler          *quiz.Handler
	AttemptHandler       *attempt.Handler
	CertificateHandler   *certificate.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/certificates/verify/{token}", cfg.CertificateHandler.Verify)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(accessibility.Middleware(cfg.ProfileRepo))

		r.Mount("/accessibility", accessibility.Routes(cfg.AccessibilityHandler))
		r.Mount("/lessons", course.Routes(cfg.CourseHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler, attempt.Routes(cfg.AttemptHandler)))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/certificates", certificate.Routes(cfg.CertificateHandler))

		r.Post("/lessons/{lessonID}/complete", cfg.ProgressHandler.CompleteLesson)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.RequireRole(auth.RoleAdmin))

		r.Mount("/admin", quiz.AdminRoutes(cfg.QuizHandler))
	})
	return r
}
