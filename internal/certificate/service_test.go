package certificate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/certificate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(state *courseState, enrollErr error) (certificate.Service, *memRepo) {
	repo := newMemRepo()
	issuer := certificate.NewIssuer(repo, state.sources(), certificate.NewSignedURLGenerator("https://learn.example/certificates/verify"), nil)
	return certificate.NewService(repo, issuer, fakeEnrollment{err: enrollErr}), repo
}

func TestClaim(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(completeCourse(), nil)
	user, course := uuid.New(), uuid.New()

	first, err := svc.Claim(ctx, user, course)
	require.NoError(t, err)
	assert.True(t, first.Issued)
	require.NotNil(t, first.Certificate)

	second, err := svc.Claim(ctx, user, course)
	require.NoError(t, err)
	assert.False(t, second.Issued)
	assert.Equal(t, first.Certificate.ID, second.Certificate.ID)

	list, err := svc.List(ctx, user)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestClaimRejections(t *testing.T) {
	ctx := context.Background()

	incomplete := completeCourse()
	incomplete.passed = nil
	svc, _ := newService(incomplete, nil)
	_, err := svc.Claim(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, certificate.ErrCourseIncomplete)

	denied := apperror.AccessDenied("learner is not enrolled in this course")
	svc, repo := newService(completeCourse(), denied)
	_, err = svc.Claim(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, denied)
	assert.Zero(t, repo.count())
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(completeCourse(), nil)
	user, course := uuid.New(), uuid.New()

	token, err := certificate.NewVerificationToken(user, course)
	require.NoError(t, err)

	resp, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.False(t, resp.Valid, "no certificate issued yet")

	_, err = svc.Claim(ctx, user, course)
	require.NoError(t, err)

	resp, err = svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, course, resp.Certificate.CourseID)

	_, err = svc.Verify(ctx, "garbage")
	assert.ErrorIs(t, err, certificate.ErrInvalidToken)
}

func TestHandlers(t *testing.T) {
	svc, _ := newService(completeCourse(), nil)
	h := certificate.NewHandler(svc)
	user, course := uuid.New(), uuid.New()

	r := chi.NewRouter()
	r.Get("/certificates/verify/{token}", h.Verify)
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := auth.ContextWithClaims(req.Context(), &auth.Claims{UserID: user.String()})
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
		r.Mount("/certificates", certificate.Routes(h))
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec
	}

	rec := do(http.MethodGet, "/certificates")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = do(http.MethodPost, "/certificates/courses/"+course.String())
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(http.MethodPost, "/certificates/courses/"+course.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodPost, "/certificates/courses/nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	token, err := certificate.NewVerificationToken(user, course)
	require.NoError(t, err)
	rec = do(http.MethodGet, "/certificates/verify/"+token)
	require.Equal(t, http.StatusOK, rec.Code)
	var body certificate.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Valid)
}
