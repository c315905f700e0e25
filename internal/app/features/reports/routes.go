// internal/app/features/reports/routes.go
package reports

import (
	"github.com/go-chi/chi/v5"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/auth"
)

// Register attaches the report lifecycle routes. The stats feature
// registers its read-only endpoints on the same /api/reports subtree.
func Register(r chi.Router, h *Handler) {
	r.Group(func(rr chi.Router) {
		rr.Use(auth.RequireSignedIn)
		rr.Post("/create", h.ServeCreate)
		rr.Get("/my-reports", h.ServeMyReports)
	})

	r.Group(func(rr chi.Router) {
		rr.Use(auth.RequireStaff)
		rr.Get("/all", h.ServeAllReports)
		rr.Get("/new", h.ServeNewReports)
		rr.Put("/{id}/status", h.ServeUpdateStatus)
	})
}
