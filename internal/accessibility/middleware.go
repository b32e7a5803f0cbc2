package accessibility

import (
	"context"
	"net/http"

	"github.com/NowarkCodes/EduAble-sub000/internal/auth"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
)

type contextKey string

const capabilitiesKey contextKey = "a11y_capabilities"

// Middleware resolves the caller's profile once per request and stores the
// derived capabilities in the request context. It must run after auth.AuthMiddleware.
func Middleware(repo Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			userID, err := auth.UserIDFromContext(ctx)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			profile, err := repo.GetByUserID(ctx, userID)
			if err != nil {
				// Adaptation is best effort: serve the neutral view rather than fail delivery.
				config.WithContext(ctx).WithError(err).Warn("accessibility profile lookup failed")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCapabilities(ctx, Derive(profile))))
		})
	}
}

func WithCapabilities(ctx context.Context, caps *Capabilities) context.Context {
	return context.WithValue(ctx, capabilitiesKey, caps)
}

// FromContext returns the request's capabilities, or nil when the caller has no profile.
func FromContext(ctx context.Context) *Capabilities {
	caps, _ := ctx.Value(capabilitiesKey).(*Capabilities)
	return caps
}
