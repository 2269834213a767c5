package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site surface and the authenticated admin
// dashboard surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/settings", handlers.settingsHandler.getSettings())
		r.Get("/social-links", handlers.socialLinksHandler.getLinks())
		r.Post("/contact", handlers.contactHandler.sendMessage())
		r.Post("/admin/login", handlers.authHandler.login())
	})

	// Authenticated admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/admin/project", handlers.projectHandler.createProject())
		r.Put("/admin/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/admin/projects/refresh", handlers.projectHandler.refreshProjects())

		r.Put("/admin/settings", handlers.settingsHandler.updateSettings())
		r.Put("/admin/social-links", handlers.socialLinksHandler.updateLinks())
		r.Put("/admin/profile", handlers.authHandler.updateProfile())
	})
}
