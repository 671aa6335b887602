package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics)

	router.Get("/", h.home)
	router.Get("/api/version", h.getServerVersion)
	router.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(pathLoginGoogle, h.loginGoogle)
		r.Get("/api/logout", h.logout)
	})

	// routes with session authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me", h.me)
		r.Get("/api/fetch/{collection}", h.fetchCollection)
		r.Get("/api/add/{collection}/{id}", h.addToCollection)
		r.Get("/api/remove/{collection}/{id}", h.removeFromCollection)
		r.Post("/api/checkout", h.checkout)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
