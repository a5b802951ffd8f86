package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.updateProfile)
		r.Put("/api/profile/password", h.changePassword)

		r.Get("/api/books", h.listBooks)
		r.Get("/api/books/{bookID}/contents", h.getBookContents)
	})

	return router
}
