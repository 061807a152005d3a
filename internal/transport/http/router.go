package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterConfig carries the services the router wires handlers to.
type RouterConfig struct {
	Circulation   CirculationAPI
	Catalog       CatalogAPI
	Patrons       PatronAPI
	Notifications NotificationLister
	Settings      SettingsAPI
	Login         LoginService
	Verifier      TokenVerifier
}

// NewRouter builds the HTTP router. Health and login are open; everything
// else requires a staff bearer token.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", HealthHandler)
	r.Post("/auth/login", HandleLogin(cfg.Login))

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(cfg.Verifier))

		r.Route("/loans", func(r chi.Router) {
			r.Post("/", HandleCheckout(cfg.Circulation))
			r.Get("/overdue", HandleListOverdue(cfg.Circulation))
			r.Get("/{id}", HandleGetLoan(cfg.Circulation))
			r.Post("/{id}/renew", HandleRenew(cfg.Circulation))
			r.Post("/{id}/return", HandleReturn(cfg.Circulation))
		})

		r.Route("/books", func(r chi.Router) {
			r.Post("/", HandleCreateBook(cfg.Catalog))
			r.Get("/", HandleListBooks(cfg.Catalog))
			r.Post("/{id}/copies", HandleCreateCopy(cfg.Catalog))
			r.Get("/{id}/copies", HandleListCopies(cfg.Catalog))
		})

		r.Route("/patrons", func(r chi.Router) {
			r.Post("/", HandleCreatePatron(cfg.Patrons))
			r.Get("/", HandleListPatrons(cfg.Patrons))
			r.Post("/{id}/block", HandleBlockPatron(cfg.Patrons))
			r.Post("/{id}/reinstate", HandleReinstatePatron(cfg.Patrons))
			r.Get("/{id}/loans", HandleListPatronLoans(cfg.Circulation))
			r.Get("/{id}/notifications", HandleListNotifications(cfg.Notifications))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", HandleGetSettings(cfg.Settings))
			r.Put("/", HandleUpdateSettings(cfg.Settings))
		})
	})

	return r
}
