// internal/app/features/stats/routes.go
package stats

import (
	"github.com/go-chi/chi/v5"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/auth"
)

// Register attaches the statistics routes to the /api/reports subtree,
// alongside the lifecycle routes.
func Register(r chi.Router, h *Handler) {
	r.Group(func(rr chi.Router) {
		rr.Use(auth.RequireStaff)
		rr.Get("/statistics/type", h.ServeTypeDistribution)
		rr.Get("/statistics/response-time", h.ServeResponseTime)
		rr.Get("/summary", h.ServeSummary)
	})
}
