// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"
	sysauth "github.com/thanachok11/CIS-Help-Me/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.ServeRegister)
	r.Post("/login", h.ServeLogin)
	// Renew verifies the presented token itself, so it is not behind the
	// signed-in gate.
	r.Get("/renew", h.ServeRenew)

	r.Group(func(rr chi.Router) {
		rr.Use(sysauth.RequireStaff)
		rr.Get("/users", h.ServeUsers)
	})

	return r
}
