package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/auth"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/authz"
	"github.com/thanachok11/CIS-Help-Me/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// MemberPrincipal returns a principal with the member role.
func MemberPrincipal() *auth.Principal {
	return &auth.Principal{
		ID:        primitive.NewObjectID().Hex(),
		Name:      "Test Member",
		StudentID: "65010001",
		Role:      authz.RoleMember,
	}
}

// StaffPrincipal returns a principal with the staff role.
func StaffPrincipal() *auth.Principal {
	return &auth.Principal{
		ID:        primitive.NewObjectID().Hex(),
		Name:      "Test Staff",
		StudentID: "staff-001",
		Role:      authz.RoleStaff,
	}
}

// PrincipalFor builds a principal from a stored user fixture.
func PrincipalFor(u models.User) *auth.Principal {
	return &auth.Principal{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		StudentID: u.StudentID,
		Role:      u.Role,
	}
}

// NewAuthenticatedRequest creates an HTTP request with a principal already
// in context, bypassing token verification.
func NewAuthenticatedRequest(method, target string, p *auth.Principal) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return auth.WithTestUser(req, p)
}

// NewJSONRequest creates a request carrying a JSON body and content type.
func NewJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks the recorded status code.
func AssertStatus(t interface{ Errorf(string, ...any) }, rec *httptest.ResponseRecorder, expected int) {
	if rec.Code != expected {
		t.Errorf("status code: got %d, want %d (body: %s)", rec.Code, expected, rec.Body.String())
	}
}

// AssertBodyContains checks that the response body contains the substring.
func AssertBodyContains(t interface{ Errorf(string, ...any) }, rec *httptest.ResponseRecorder, expected string) {
	if !strings.Contains(rec.Body.String(), expected) {
		t.Errorf("response body %q does not contain %q", rec.Body.String(), expected)
	}
}
