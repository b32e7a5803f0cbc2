package config

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
)

type ErrorBody struct {
	Error   apperror.Kind  `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		_, _ = w.Write([]byte("null"))
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("failed to encode response body")
	}
}

// Error renders err with its specific reason. Errors outside the apperror
// taxonomy are reported as a generic internal error.
func Error(w http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		JSON(w, http.StatusInternalServerError, ErrorBody{
			Error:   apperror.KindInternal,
			Message: "internal server error",
		})
		return
	}

	body := ErrorBody{
		Error:   appErr.Kind,
		Message: appErr.Message,
		Details: appErr.Details,
	}
	if appErr.Kind == apperror.KindConflict {
		details := map[string]any{"retryable": true}
		for k, v := range appErr.Details {
			details[k] = v
		}
		body.Details = details
	}
	JSON(w, apperror.StatusCode(err), body)
}

func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.Validation("invalid request body")
	}
	return nil
}
