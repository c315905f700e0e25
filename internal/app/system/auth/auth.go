// Package auth resolves the authenticated principal for a request.
//
// Credentials arrive as a bearer token in the Authorization header. The
// Authenticate middleware verifies the token and places a Principal in the
// request context; RequireSignedIn and RequireStaff gate routes on it.
package auth

import (
	"context"
	"net/http"
)

// Principal is the authenticated caller carried in the request context.
// It mirrors the token claims; handlers never see the raw token.
type Principal struct {
	ID         string
	Name       string
	StudentID  string
	Role       string
	ProfileImg string
}

type ctxKey string

const principalKey ctxKey = "principal"

// CurrentUser returns the request's principal and a found flag.
func CurrentUser(r *http.Request) (*Principal, bool) {
	p, ok := r.Context().Value(principalKey).(*Principal)
	return p, ok
}

// WithTestUser injects a principal directly into the request context.
// For handler tests only; it bypasses token verification.
func WithTestUser(r *http.Request, p *Principal) *http.Request {
	return withPrincipal(r, p)
}

func withPrincipal(r *http.Request, p *Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), principalKey, p))
}
