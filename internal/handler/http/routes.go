package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitRoutes builds the router with the full middleware chain and all API
// routes. Session resolution is applied everywhere; only /api/auth/user
// rejects anonymous callers.
func (h *Handler) InitRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.With(h.requireAuth).Get("/user", h.currentUser)
		})

		r.Post("/generate-excuse", h.generateExcuse)

		r.Route("/excuses", func(r chi.Router) {
			r.Get("/bookmarked", h.bookmarkedExcuses)
			r.Get("/recent", h.recentExcuses)
			r.Patch("/{id}/bookmark", h.setBookmark)
			r.Delete("/clear", h.clearExcuses)
		})

		r.Route("/usage", func(r chi.Router) {
			r.Get("/current-week", h.currentWeekUsage)
			r.Get("/history", h.usageHistory)
		})
	})

	return router
}
