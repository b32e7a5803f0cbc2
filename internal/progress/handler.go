package progress

import (
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// CompleteLesson godoc
// @Summary  Mark a lesson completed for the caller
// @Tags     progress
// @Produce  json
// @Param    lessonID path string true "Lesson ID"
// @Success  200 {object} CompletionResponse
// @Router   /lessons/{lessonID}/complete [post]
func (h *Handler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	lessonID, err := uuid.Parse(chi.URLParam(r, "lessonID"))
	if err != nil {
		config.Error(w, apperror.Validation("invalid lesson id"))
		return
	}

	resp, err := h.service.CompleteLesson(r.Context(), userID, lessonID)
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	streak, err := h.service.Streak(r.Context(), userID)
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, StreakResponse{Streak: streak})
}
