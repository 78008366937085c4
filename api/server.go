/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontends

ROUTE GROUPS:
  /api/v1/transactions:*   Round-up pipeline endpoints
  /api/v1/returns:*        Projection endpoints
  /api/v1/performance      Process self-report
  /health                  Liveness

SECURITY NOTE:
  No authentication middleware. All endpoints are public and stateless.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/transactions:parse", h.ParseTransactions)
		r.Post("/transactions:validate", h.ValidateTransactions)
		r.Post("/transactions:filter", h.FilterTransactions)
		r.Post("/returns:pension", h.PensionReturns)
		r.Post("/returns:index", h.IndexReturns)
		r.Get("/performance", h.Performance)
	})

	r.Get("/health", h.Health)

	return r
}
