package main

import (
	"net/http"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/api"
	apiMiddleware "github.com/BenjaminTMilnes/PhysicsParticles/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	quantityHandler := api.NewQuantityHandler(app.engine, app.logger)
	particleHandler := api.NewParticleHandler(app.compiler, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/kinds", quantityHandler.ListKinds)
		r.Post("/quantities/{kind}/parse", quantityHandler.ParseQuantity)
		r.Post("/quantities/{kind}/render", quantityHandler.RenderQuantity)

		r.Post("/particles", particleHandler.CompileParticle)

		// Read-only catalog endpoints
		if app.database != nil {
			databaseHandler := api.NewDatabaseHandler(*app.database)
			r.Get("/particles", databaseHandler.ListParticles)
			r.Get("/particles/{reference}", databaseHandler.GetParticle)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
