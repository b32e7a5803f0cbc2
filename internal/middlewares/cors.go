package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CorsMiddleware allows credentialed requests from the configured origins.
// A single "*" origin disables credentials, as browsers require.
func CorsMiddleware(origins []string) func(http.Handler) http.Handler {
	wildcard := len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}
