package accessibility

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/me", h.GetMyProfile)
	r.Put("/me", h.UpsertMyProfile)
	return r
}
