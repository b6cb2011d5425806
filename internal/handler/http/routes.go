package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-deep-thoughts/internal/utils"
)

// Init builds the router. The whole API is a single POST /graphql endpoint;
// every route, including the SPA catch-all, goes through the same middleware
// chain, so an Authorization header is honoured regardless of path.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withAuthContext)

	router.Post("/graphql", h.graphql.ServeHTTP)
	router.Get("/health", h.health)

	if h.clientDir != "" {
		router.NotFound(h.spa)
	}

	return router
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("error writing health response")
	}
}
