package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves learner quiz delivery with the attempt routes mounted per quiz.
func Routes(h *Handler, attempts http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/lessons/{lessonID}", h.GetQuizForLearner)
	r.Mount("/{quizID}/attempts", attempts)
	return r
}

// AdminRoutes must be mounted behind auth.RequireRole(auth.RoleAdmin).
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/quizzes", h.CreateQuiz)
	r.Post("/quizzes/{quizID}/questions", h.AddQuestion)
	r.Post("/quizzes/{quizID}/publish", h.PublishQuiz)
	r.Post("/lessons/{lessonID}/quiz-draft", h.GenerateDraft)
	return r
}
