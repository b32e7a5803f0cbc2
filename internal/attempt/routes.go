package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes is mounted under /quizzes/{quizID}/attempts.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Submit)
	r.Get("/", h.List)
	r.Get("/best", h.Best)
	return r
}
