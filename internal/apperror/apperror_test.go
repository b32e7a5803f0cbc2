package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cooldown := apperror.PolicyViolation("cooldown active").
		WithDetails(map[string]any{"remaining_minutes": 5})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperror.Validation("bad"), http.StatusBadRequest},
		{"not found", apperror.NotFound("missing"), http.StatusNotFound},
		{"max attempts", apperror.PolicyViolation("max attempts"), http.StatusForbidden},
		{"cooldown", cooldown, http.StatusTooManyRequests},
		{"access denied", apperror.AccessDenied("no"), http.StatusForbidden},
		{"conflict", apperror.Conflict("race"), http.StatusConflict},
		{"external", apperror.ExternalService("down", errors.New("timeout")), http.StatusBadGateway},
		{"wrapped", fmt.Errorf("outer: %w", apperror.NotFound("inner")), http.StatusNotFound},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apperror.StatusCode(tc.err))
		})
	}
}

func TestSentinelMatchesAfterWithDetails(t *testing.T) {
	sentinel := apperror.PolicyViolation("cooldown active")
	detailed := sentinel.WithDetails(map[string]any{"remaining_minutes": 3})

	assert.True(t, errors.Is(detailed, sentinel))
	assert.Nil(t, sentinel.Details)
	assert.Equal(t, apperror.KindPolicyViolation, apperror.KindOf(detailed))
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(errors.New("x")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("gemini unavailable")
	err := apperror.ExternalService("text generation failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "text generation failed: gemini unavailable", err.Error())
}
