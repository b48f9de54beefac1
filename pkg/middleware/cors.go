package middleware

import (
	"net/http"

	"movies-api/pkg/utils"

	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// CORS accepts requests without an Origin header and requests from one of
// allowedOrigins. Any other origin is rejected with 403 before reaching next.
func CORS(allowedOrigins []string, logger *zap.Logger) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	headers := cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         86400,
	})

	return func(next http.Handler) http.Handler {
		withHeaders := headers(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := allowed[origin]; !ok {
				logger.Warn("Origin rejected",
					zap.String("origin", origin),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "not allowed by CORS")
				return
			}

			withHeaders.ServeHTTP(w, r)
		})
	}
}
