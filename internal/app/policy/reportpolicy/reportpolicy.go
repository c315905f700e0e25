// Package reportpolicy provides authorization policies for report access.
//
// Authorization rules:
//   - Any signed-in principal can create reports and list their own
//   - Staff can list all reports, update report status, and read analytics
//   - Members cannot see other members' reports
//
// The policy is a pure decision over the principal in the request context;
// it performs no I/O. A denied scope is always distinguishable from a
// missing report: handlers return 401/403 from the scope before any lookup
// can 404.
package reportpolicy

import (
	"net/http"

	"github.com/thanachok11/CIS-Help-Me/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scope represents what the current principal may do with reports.
type Scope struct {
	// CanCreate indicates the principal may submit new reports.
	CanCreate bool
	// CanViewOwn indicates the principal may list reports they own.
	CanViewOwn bool
	// CanViewAll indicates the principal may list every report.
	CanViewAll bool
	// CanManage indicates the principal may change report status and notes.
	CanManage bool
	// CanViewStats indicates the principal may read aggregate statistics.
	CanViewStats bool
	// OwnerID is the principal's user ID; created reports are owned by it
	// and own-report listings are filtered to it.
	OwnerID primitive.ObjectID
}

// ForRequest determines the report scope of the current principal.
// Unauthenticated requests, unknown roles, and malformed principal IDs all
// get the zero scope (nothing allowed).
func ForRequest(r *http.Request) Scope {
	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return Scope{}
	}

	switch role {
	case authz.RoleStaff:
		return Scope{
			CanCreate:    true,
			CanViewOwn:   true,
			CanViewAll:   true,
			CanManage:    true,
			CanViewStats: true,
			OwnerID:      userID,
		}
	case authz.RoleMember:
		return Scope{
			CanCreate:  true,
			CanViewOwn: true,
			OwnerID:    userID,
		}
	default:
		return Scope{}
	}
}
