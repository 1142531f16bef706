package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"projecttracker/pkg/store"
)

// GetRouter initialises a new http router and applies all routes
func GetRouter(st store.RowStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	return applyRoutes(r, NewHandler(st))
}

func applyRoutes(r chi.Router, h *Handler) chi.Router {
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.getProjects)
		r.Post("/projects", h.addProject)
		r.Get("/projects/month", h.getProjectsByMonth)
		r.Put("/projects/{rowIndex}/status", h.updateStatus)
		r.Put("/projects/{rowIndex}/cell", h.updateCell)
		r.Get("/filters", h.getFilterOptions)
		r.Get("/stats", h.getSummaryStats)
	})

	return r
}
