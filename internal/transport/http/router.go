// Package http exposes the admin operations as a JSON API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterOptions struct {
	Logger      *slog.Logger
	CORSOrigins []string
	DB          Pinger
}

// NewRouter mounts every admin route. Each request names the profile, event
// or ticket it acts on in its path.
func NewRouter(svc Services, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	profiles := &profileHandler{svc: svc.Profiles, logger: logger}
	events := &eventHandler{svc: svc.Events, logger: logger}
	tickets := &ticketHandler{svc: svc.Tickets, logger: logger}
	attendees := &attendeeHandler{svc: svc.Attendees, logger: logger}
	dashboard := &dashboardHandler{svc: svc.Dashboard, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(CORS(opts.CORSOrigins))

	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", HealthHandler)
	if opts.DB != nil {
		r.Get("/ready", ReadyHandler(opts.DB, logger))
	}

	r.Route("/profiles", func(r chi.Router) {
		r.Post("/", profiles.create)
		r.Route("/{profileID}", func(r chi.Router) {
			r.Get("/", profiles.get)
			r.Put("/", profiles.update)

			r.Get("/events", events.list)
			r.Post("/events", events.create)

			r.Get("/dashboard", dashboard.dashboard)
			r.Get("/dashboard/metrics", dashboard.metrics)
			r.Get("/dashboard/performance", dashboard.performance)
			r.Get("/dashboard/distribution", dashboard.distribution)
		})
	})

	r.Route("/events/{eventID}", func(r chi.Router) {
		r.Get("/", events.get)
		r.Put("/", events.update)
		r.Delete("/", events.delete)

		r.Get("/tickets", tickets.list)
		r.Post("/tickets", tickets.create)

		r.Get("/attendees", attendees.list)
		r.Post("/attendees", attendees.register)
	})

	r.Route("/tickets/{ticketID}", func(r chi.Router) {
		r.Get("/", tickets.get)
		r.Put("/", tickets.update)
		r.Delete("/", tickets.delete)
	})

	return r
}
