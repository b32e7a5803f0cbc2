package accessibility

import (
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	resp, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) UpsertMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	var dto UpsertProfileDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.Error(w, err)
		return
	}

	resp, err := h.service.UpsertProfile(r.Context(), userID, dto)
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}
