package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
	})

	// authorized routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/profile", h.profile)

		// notification ownership is enforced in the service layer, so the
		// read/respond transitions need no role gate here
		r.Put("/api/notifications/{id}/read", h.markNotificationRead)
		r.Put("/api/notifications/{id}/respond", h.respondNotification)

		r.Group(func(r chi.Router) {
			r.Use(h.requireResident)

			r.Get("/api/notifications/my-notifications", h.myNotifications)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Post("/api/users/residents", h.createResident)
			r.Get("/api/users/residents", h.listResidents)
			r.Get("/api/users/residents/{id}", h.getResident)
			r.Put("/api/users/residents/{id}", h.updateResident)
			r.Delete("/api/users/residents/{id}", h.deleteResident)
			r.Get("/api/users/dashboard-stats", h.dashboardStats)

			r.Post("/api/notifications/send", h.sendNotification)
			r.Get("/api/notifications/sent", h.sentNotifications)
		})
	})

	return router
}
