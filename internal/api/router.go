package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/signup/internal/web"
)

// NewRouter assembles the full HTTP surface: roster endpoints, the embedded
// static site, health check, and metrics.
func NewRouter(h *Handler, allowedOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger)
	r.Use(corsMiddleware(allowedOrigin))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	r.Handle("/static/*", web.Handler())

	r.Get("/activities", h.listActivities)
	r.Post("/activities/{name}/signup", h.signup)
	r.Delete("/activities/{name}/unregister", h.unregister)

	r.Get("/healthz", healthz)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
