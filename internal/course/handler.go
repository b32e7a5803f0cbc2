package course

import (
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var ErrInvalidLessonID = apperror.Validation("invalid lesson id")

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GetLesson godoc
// @Summary  Lesson tailored to the caller's accessibility profile
// @Tags     lessons
// @Produce  json
// @Param    lessonID path string true "Lesson ID"
// @Success  200 {object} LessonView
// @Router   /lessons/{lessonID} [get]
func (h *Handler) GetLesson(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	lessonID, err := uuid.Parse(chi.URLParam(r, "lessonID"))
	if err != nil {
		config.Error(w, ErrInvalidLessonID)
		return
	}

	view, err := h.service.GetLessonForLearner(r.Context(), userID, lessonID, accessibility.FromContext(r.Context()))
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}
