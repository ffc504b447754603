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

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/google", h.googleLogin)
	})

	router.Route("/contacts", func(r chi.Router) {
		r.Get("/", h.listContacts)
		r.Post("/", h.createContact)
		r.Delete("/{id}", h.deleteContact)
	})

	return router
}
