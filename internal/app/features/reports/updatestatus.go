// internal/app/features/reports/updatestatus.go
package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/thanachok11/CIS-Help-Me/internal/app/features/errors"
	"github.com/thanachok11/CIS-Help-Me/internal/app/policy/reportpolicy"
	reportstore "github.com/thanachok11/CIS-Help-Me/internal/app/store/reports"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/sanitize"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/status"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeUpdateStatus handles PUT /api/reports/{id}/status (staff only).
//
// The status value is validated before the report is looked up, so a bad
// status on a missing report is a 400, not a 404. Notes overwrite the
// stored action notes only when non-empty. The update is a single atomic
// write; concurrent updates to the same report are last-write-wins.
func (h *Handler) ServeUpdateStatus(w http.ResponseWriter, r *http.Request) {
	scope := reportpolicy.ForRequest(r)
	if !scope.CanManage {
		h.denyStaffOnly(w, r, scope)
		return
	}

	var in updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apierrors.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !status.IsValid(in.Status) {
		apierrors.Fail(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.Fail(w, http.StatusNotFound, "Report not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	report, err := h.Reports.UpdateStatus(ctx, id, in.Status, sanitize.Text(in.ActionNotes))
	if err != nil {
		switch {
		case errors.Is(err, reportstore.ErrBadStatus):
			apierrors.Fail(w, http.StatusBadRequest, "Invalid status value")
		case errors.Is(err, reportstore.ErrNotFound):
			apierrors.Fail(w, http.StatusNotFound, "Report not found")
		default:
			h.ErrLog.Internal(w, r, "Error updating report", err)
		}
		return
	}

	h.Log.Info("report status updated",
		zap.String("report_id", report.ID.Hex()),
		zap.String("status", report.Status))

	apierrors.JSON(w, http.StatusOK, reportResponse{
		Success: true,
		Message: "Status updated",
		Report:  *report,
	})
}
