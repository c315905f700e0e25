// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/thanachok11/CIS-Help-Me/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The role set is closed: every caller is either a member or staff.
// Anything else in a token fails closed at the policy boundary.
const (
	RoleMember = "member"
	RoleStaff  = "staff"
)

// IsValidRole reports whether role is one of the two known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleMember, RoleStaff:
		return true
	default:
		return false
	}
}

// UserCtx returns the principal's role (lowercased), name, Mongo ObjectID,
// and a found flag. If no principal is present or the user ID is malformed,
// it returns "", "", NilObjectID, false, so ok=true means a valid,
// authenticated caller with a usable ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	p, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		// Malformed user ID in a signed token - fail closed.
		return "", "", primitive.NilObjectID, false
	}
	return strings.ToLower(p.Role), p.Name, userID, true
}

// IsStaff reports whether the current request's principal has the staff role.
func IsStaff(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleStaff
}

// IsMember reports whether the current request's principal has the member role.
func IsMember(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleMember
}
