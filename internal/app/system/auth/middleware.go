// internal/app/system/auth/middleware.go
package auth

import (
	"encoding/json"
	"net/http"
)

// Authenticate verifies the bearer token, if one is present, and loads the
// resulting Principal into the request context. Requests without a valid
// token continue unauthenticated; RequireSignedIn and RequireStaff decide
// whether that matters for a given route.
func (m *TokenManager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := ExtractToken(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		p, err := m.Verify(raw)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, withPrincipal(r, &p))
	})
}

// RequireSignedIn ensures a principal is in context (set by Authenticate).
// Missing or invalid credentials get a JSON 401 so callers can tell
// "sign in required" apart from "not allowed" and "not found".
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			writeAuthError(w, http.StatusUnauthorized, "No token provided or token invalid")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff ensures the principal holds the staff role. Unauthenticated
// requests get 401; authenticated non-staff get 403.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := CurrentUser(r)
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "No token provided or token invalid")
			return
		}
		// "staff" is authz.RoleStaff, spelled literally because importing
		// authz here would create an import cycle (authz imports auth).
		if p.Role != "staff" {
			writeAuthError(w, http.StatusForbidden, "Staff role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
