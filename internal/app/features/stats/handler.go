// internal/app/features/stats/handler.go
package stats

import (
	"context"
	"net/http"

	apierrors "github.com/thanachok11/CIS-Help-Me/internal/app/features/errors"
	"github.com/thanachok11/CIS-Help-Me/internal/app/policy/reportpolicy"
	reportstore "github.com/thanachok11/CIS-Help-Me/internal/app/store/reports"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the aggregate statistics endpoints (staff only): type
// distribution, average response time, and the combined summary. Reads
// are a snapshot "approximately as of call time"; concurrent writes during
// an aggregation are tolerated.
type Handler struct {
	Reports *reportstore.Store
	Log     *zap.Logger
	ErrLog  *apierrors.ErrorLogger
}

// NewHandler constructs a stats Handler bound to the given Mongo database
// and logger.
func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Reports: reportstore.New(db),
		Log:     logger,
		ErrLog:  errLog,
	}
}

// ServeTypeDistribution handles GET /api/reports/statistics/type.
func (h *Handler) ServeTypeDistribution(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	rows, err := h.Reports.CountByType(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error fetching stats", err)
		return
	}

	_, dist := buildDistribution(rows)
	apierrors.JSON(w, http.StatusOK, distributionResponse{Success: true, Data: dist})
}

// ServeResponseTime handles GET /api/reports/statistics/response-time.
func (h *Handler) ServeResponseTime(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	resolved, err := h.Reports.ListResolved(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error calculating response times", err)
		return
	}

	avg := averageResponse(resolved)
	apierrors.JSON(w, http.StatusOK, responseTimeResponse{
		Success:             true,
		AverageResponseTime: avg.Value,
		Unit:                avg.Unit,
	})
}

// ServeSummary handles GET /api/reports/summary, composing the type
// distribution, the average response time, and the per-report breakdown.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	rows, err := h.Reports.CountByType(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error fetching report summary", err)
		return
	}
	resolved, err := h.Reports.ListResolved(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error fetching report summary", err)
		return
	}

	total, dist := buildDistribution(rows)
	apierrors.JSON(w, http.StatusOK, summaryResponse{
		Success: true,
		Summary: Summary{
			TotalReports:        total,
			CountByType:         dist,
			AverageResponseTime: averageResponse(resolved),
			DetailedReports:     buildDetailed(resolved),
		},
	})
}

// allow enforces the staff-only statistics policy, writing 401/403 as
// appropriate. Returns true when the request may proceed.
func (h *Handler) allow(w http.ResponseWriter, r *http.Request) bool {
	scope := reportpolicy.ForRequest(r)
	if scope.CanViewStats {
		return true
	}
	if !scope.CanViewOwn {
		apierrors.Fail(w, http.StatusUnauthorized, "Unauthorized: no user in request")
		return false
	}
	apierrors.Fail(w, http.StatusForbidden, "Staff role required")
	return false
}
