package middleware

import (
	"net/http"
	"strings"

	"github.com/oridashi/scrollhunt/internal/api/apierr"
	"github.com/oridashi/scrollhunt/internal/services/operator"
)

// Operator creates middleware requiring a valid operator key on the request
func Operator(operatorService *operator.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := extractKey(r)
			if key == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			if err := operatorService.ValidateKey(key); err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractKey extracts the operator key from the request
func extractKey(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
