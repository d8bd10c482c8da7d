package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sv-web/sve-backend/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// Auth guards the admin routes with a shared token carried in the
// X-Admin-Token header.
func Auth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
