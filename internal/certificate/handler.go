package certificate

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

// List godoc
// @Summary  List the caller's certificates
// @Tags     certificates
// @Produce  json
// @Success  200 {array} Certificate
// @Router   /certificates [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	certs, err := h.service.List(r.Context(), userID)
	if err != nil {
		config.Error(w, err)
		return
	}
	if certs == nil {
		certs = []Certificate{}
	}
	config.JSON(w, http.StatusOK, certs)
}

func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		config.Error(w, apperror.Validation("invalid course id"))
		return
	}

	resp, err := h.service.Claim(r.Context(), userID, courseID)
	if err != nil {
		config.Error(w, err)
		return
	}

	status := http.StatusOK
	if resp.Issued {
		status = http.StatusCreated
	}
	config.JSON(w, status, resp)
}

// Verify godoc
// @Summary  Check a certificate verification token
// @Tags     certificates
// @Produce  json
// @Param    token path string true "Verification token"
// @Success  200 {object} VerifyResponse
// @Router   /certificates/verify/{token} [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Verify(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}
