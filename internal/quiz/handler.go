package quiz

import (
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
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

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid " + name)
	}
	return id, nil
}

// GetQuizForLearner godoc
// @Summary  Published quiz of a lesson, tailored to the caller
// @Tags     quizzes
// @Produce  json
// @Param    lessonID path string true "Lesson ID"
// @Success  200 {object} LearnerQuizResponse
// @Router   /quizzes/lessons/{lessonID} [get]
func (h *Handler) GetQuizForLearner(w http.ResponseWriter, r *http.Request) {
	lessonID, err := pathID(r, "lessonID")
	if err != nil {
		config.Error(w, err)
		return
	}

	resp, err := h.service.GetQuizForLearner(r.Context(), lessonID, accessibility.FromContext(r.Context()))
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var dto CreateQuizDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.Error(w, err)
		return
	}

	qz, err := h.service.CreateQuiz(r.Context(), dto)
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, qz)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathID(r, "quizID")
	if err != nil {
		config.Error(w, err)
		return
	}

	var dto AddQuestionDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.Error(w, err)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), quizID, dto)
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) PublishQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathID(r, "quizID")
	if err != nil {
		config.Error(w, err)
		return
	}

	resp, err := h.service.PublishQuiz(r.Context(), quizID)
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GenerateDraft(w http.ResponseWriter, r *http.Request) {
	lessonID, err := pathID(r, "lessonID")
	if err != nil {
		config.Error(w, err)
		return
	}

	var dto DraftRequestDTO
	if r.ContentLength != 0 {
		if err := config.DecodeJSON(r, &dto); err != nil {
			config.Error(w, err)
			return
		}
	}

	resp, err := h.service.GenerateDraftFromTranscript(r.Context(), lessonID, dto)
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}
