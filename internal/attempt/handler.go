package attempt

import (
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var ErrInvalidQuizID = apperror.Validation("invalid quiz id")

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ids(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, err)
		return uuid.Nil, uuid.Nil, false
	}
	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		config.Error(w, ErrInvalidQuizID)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, quizID, true
}

// Submit godoc
// @Summary  Grade a quiz submission
// @Tags     attempts
// @Accept   json
// @Produce  json
// @Param    quizID path string true "Quiz ID"
// @Param    body body SubmitAttemptDTO true "Answers"
// @Success  201 {object} SubmitResponse
// @Failure  403 {object} config.ErrorBody
// @Failure  409 {object} config.ErrorBody
// @Failure  429 {object} config.ErrorBody
// @Router   /quizzes/{quizID}/attempts [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, quizID, ok := h.ids(w, r)
	if !ok {
		return
	}

	var dto SubmitAttemptDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.Error(w, ErrInvalidAnswers)
		return
	}

	resp, err := h.service.Submit(r.Context(), userID, quizID, dto, accessibility.FromContext(r.Context()))
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, quizID, ok := h.ids(w, r)
	if !ok {
		return
	}

	attempts, err := h.service.List(r.Context(), userID, quizID)
	if err != nil {
		config.Error(w, err)
		return
	}
	if attempts == nil {
		attempts = []Attempt{}
	}
	config.JSON(w, http.StatusOK, attempts)
}

// Best responds with null when the caller has no attempts.
func (h *Handler) Best(w http.ResponseWriter, r *http.Request) {
	userID, quizID, ok := h.ids(w, r)
	if !ok {
		return
	}

	best, err := h.service.Best(r.Context(), userID, quizID)
	if err != nil {
		config.Error(w, err)
		return
	}
	if best == nil {
		config.JSON(w, http.StatusOK, nil)
		return
	}
	config.JSON(w, http.StatusOK, best)
}
