package attempt_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/attempt"
	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	util "github.com/NowarkCodes/EduAble-sub000/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(e *env) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := auth.ContextWithClaims(req.Context(), &auth.Claims{UserID: e.learner.String()})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Mount("/quizzes/{quizID}/attempts", attempt.Routes(attempt.NewHandler(e.service())))
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSubmitHandler(t *testing.T) {
	e := newEnv(5, 60)
	h := newRouter(e)
	path := fmt.Sprintf("/quizzes/%s/attempts", e.quiz.ID)

	rec := do(t, h, http.MethodPost, path, e.answers(3))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 60, body["score"])
	assert.Equal(t, true, body["passed"])
	assert.EqualValues(t, 1, body["attempt_number"])
	assert.Nil(t, body["improvement_from_previous"])
	assert.Equal(t, true, body["certificate_issued"])
	assert.Len(t, body["weak_topics"], 2)
	assert.Len(t, body["detailed_results"], 5)
}

func TestSubmitHandlerRejections(t *testing.T) {
	t.Run("AnswersNotAList", func(t *testing.T) {
		e := newEnv(2, 50)
		rec := do(t, newRouter(e), http.MethodPost, fmt.Sprintf("/quizzes/%s/attempts", e.quiz.ID), `{"answers": {"a": 1}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body config.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apperror.KindValidation, body.Error)
	})

	t.Run("InvalidQuizID", func(t *testing.T) {
		e := newEnv(2, 50)
		rec := do(t, newRouter(e), http.MethodPost, "/quizzes/not-a-uuid/attempts", e.answers(1))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		e := newEnv(2, 50)
		rec := do(t, newRouter(e), http.MethodPost, fmt.Sprintf("/quizzes/%s/attempts", uuid.New()), e.answers(1))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("CooldownCarriesRemainingMinutes", func(t *testing.T) {
		e := newEnv(2, 50)
		e.quiz.CooldownMinutes = util.IntPtr(30)
		h := newRouter(e)
		path := fmt.Sprintf("/quizzes/%s/attempts", e.quiz.ID)

		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, path, e.answers(1)).Code)
		e.clock.Advance(10 * time.Minute)
		rec := do(t, h, http.MethodPost, path, e.answers(1))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		var body config.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apperror.KindPolicyViolation, body.Error)
		assert.EqualValues(t, 20, body.Details["remaining_minutes"])
	})

	t.Run("MaxAttemptsForbidden", func(t *testing.T) {
		e := newEnv(2, 50)
		e.quiz.MaxAttempts = util.IntPtr(1)
		h := newRouter(e)
		path := fmt.Sprintf("/quizzes/%s/attempts", e.quiz.ID)

		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, path, e.answers(1)).Code)
		rec := do(t, h, http.MethodPost, path, e.answers(1))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ConflictIsRetryable", func(t *testing.T) {
		e := newEnv(2, 50)
		h := newRouter(e)
		path := fmt.Sprintf("/quizzes/%s/attempts", e.quiz.ID)

		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, path, e.answers(1)).Code)
		e.repo.staleCounts = 1
		rec := do(t, h, http.MethodPost, path, e.answers(1))

		assert.Equal(t, http.StatusConflict, rec.Code)
		var body config.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body.Details["retryable"])
	})
}

func TestListAndBestHandlers(t *testing.T) {
	e := newEnv(2, 50)
	h := newRouter(e)
	base := fmt.Sprintf("/quizzes/%s/attempts", e.quiz.ID)

	rec := do(t, h, http.MethodGet, base+"/best", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())

	rec = do(t, h, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, base, e.answers(2)).Code)

	rec = do(t, h, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "questions_snapshot")

	rec = do(t, h, http.MethodGet, base+"/best", nil)
	var best attempt.Attempt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &best))
	assert.Equal(t, 100, best.Score)
}
