package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/google/uuid"
)

type contextKey string

const claimsKey contextKey = "user_claims"

var (
	ErrUnauthenticated = apperror.Unauthorized("authentication required")
	ErrForbidden       = apperror.AccessDenied("insufficient role")
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			config.Error(w, ErrUnauthenticated)
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			log.WithError(err).Warn("rejected invalid token")
			config.Error(w, ErrUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = config.WithUserID(ctx, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := GetUserClaimsFromContext(r.Context())
			if err != nil {
				config.Error(w, ErrUnauthenticated)
				return
			}
			if claims.Role != role {
				config.WithContext(r.Context()).Warnf("role %q required, got %q", role, claims.Role)
				config.Error(w, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, errors.New("no user claims in context")
	}
	return claims, nil
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthenticated
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return id, nil
}

// ContextWithClaims is used by tests and internal callers that already hold validated claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("jwt"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
