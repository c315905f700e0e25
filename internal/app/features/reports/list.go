// internal/app/features/reports/list.go
package reports

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/thanachok11/CIS-Help-Me/internal/app/features/errors"
	"github.com/thanachok11/CIS-Help-Me/internal/app/policy/reportpolicy"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/timeouts"
)

// ServeMyReports handles GET /api/reports/my-reports.
// Returns only the caller's reports, newest first.
func (h *Handler) ServeMyReports(w http.ResponseWriter, r *http.Request) {
	scope := reportpolicy.ForRequest(r)
	if !scope.CanViewOwn {
		apierrors.Fail(w, http.StatusUnauthorized, "Unauthorized: no user in request")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	reports, err := h.Reports.ListByOwner(ctx, scope.OwnerID)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error fetching reports", err)
		return
	}

	apierrors.JSON(w, http.StatusOK, reportListResponse{Success: true, Reports: reports})
}

// ServeAllReports handles GET /api/reports/all (staff only).
func (h *Handler) ServeAllReports(w http.ResponseWriter, r *http.Request) {
	scope := reportpolicy.ForRequest(r)
	if !scope.CanViewAll {
		h.denyStaffOnly(w, r, scope)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	reports, err := h.Reports.ListAll(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error fetching reports", err)
		return
	}

	apierrors.JSON(w, http.StatusOK, reportListResponse{Success: true, Reports: reports})
}

// ServeNewReports handles GET /api/reports/new?since=<RFC3339> (staff only).
// Returns reports created strictly after the supplied instant, so pollers
// pass the created_at of the newest report they have seen.
func (h *Handler) ServeNewReports(w http.ResponseWriter, r *http.Request) {
	scope := reportpolicy.ForRequest(r)
	if !scope.CanViewAll {
		h.denyStaffOnly(w, r, scope)
		return
	}

	since, err := time.Parse(time.RFC3339, r.URL.Query().Get("since"))
	if err != nil {
		apierrors.Fail(w, http.StatusBadRequest, "Invalid or missing since timestamp")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	reports, err := h.Reports.ListCreatedAfter(ctx, since)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error fetching new reports", err)
		return
	}

	apierrors.JSON(w, http.StatusOK, reportListResponse{Success: true, Reports: reports})
}

// denyStaffOnly writes 401 for anonymous callers and 403 for signed-in
// callers without the staff role, keeping the two outcomes distinct.
func (h *Handler) denyStaffOnly(w http.ResponseWriter, r *http.Request, scope reportpolicy.Scope) {
	if !scope.CanViewOwn { // zero scope: nobody signed in
		apierrors.Fail(w, http.StatusUnauthorized, "Unauthorized: no user in request")
		return
	}
	apierrors.Fail(w, http.StatusForbidden, "Staff role required")
}
