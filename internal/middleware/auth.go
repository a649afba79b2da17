package middleware

import (
	"errors"
	"net/http"

	"fundforge/platform/internal/auth"
	"fundforge/platform/internal/common"
	"fundforge/platform/internal/logging"
)

const sessionCookieName = "_platform_session"

// AuthMiddleware resolves the session cookie against Redis and rejects the
// request before any handler runs. Mutating verbs additionally require the
// X-CSRF-Token header to match the token minted with the session.
func AuthMiddleware(sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Unauthorized. Missing session", http.StatusUnauthorized)
				return
			}

			session, err := sessions.GetSession(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, common.ErrSessionNotFound) {
					http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
					return
				}
				logging.Error("session lookup failed", "error", err.Error())
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if mutating(r.Method) && r.Header.Get("X-CSRF-Token") != session.CSRFToken {
				http.Error(w, "Forbidden. CSRF token mismatch", http.StatusForbidden)
				return
			}

			ctx := auth.SetSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
