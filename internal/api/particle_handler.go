package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/api/shared"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/catalog"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/platform/logger"
	"github.com/go-chi/chi/v5"
)

// ParticleCompiler compiles one raw particle record.
type ParticleCompiler interface {
	Compile(ctx context.Context, f catalog.Fields) (catalog.Particle, []catalog.FieldError, error)
}

// ParticleHandler handles particle compilation requests
type ParticleHandler struct {
	compiler ParticleCompiler
	logger   *slog.Logger
}

// NewParticleHandler creates a new ParticleHandler
func NewParticleHandler(compiler ParticleCompiler, logger *slog.Logger) *ParticleHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ParticleHandler")
	}

	return &ParticleHandler{
		compiler: compiler,
		logger:   logger.With(slog.String("component", "particle_handler")),
	}
}

// CompileParticle handles POST /api/particles requests.
// Fields that do not parse are reported alongside the compiled particle and
// do not fail the request.
func (h *ParticleHandler) CompileParticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var fields catalog.Fields
	if err := shared.DecodeJSON(r, &fields); err != nil {
		HandleDecodeError(w, r, err)
		return
	}

	particle, fieldErrors, err := h.compiler.Compile(r.Context(), fields)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err,
			shared.WithElevatedLogLevel())
		return
	}

	if len(fieldErrors) > 0 {
		log.Info("particle compiled with unparsed fields",
			slog.String("reference", particle.Reference),
			slog.Int("field_errors", len(fieldErrors)))
	}
	if fieldErrors == nil {
		fieldErrors = []catalog.FieldError{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ParticleResponse{
		Particle:    particle,
		FieldErrors: fieldErrors,
	})
}

// DatabaseHandler serves a catalog compiled at startup.
type DatabaseHandler struct {
	database catalog.Database
}

// NewDatabaseHandler creates a new DatabaseHandler
func NewDatabaseHandler(database catalog.Database) *DatabaseHandler {
	return &DatabaseHandler{database: database}
}

// ListParticles handles GET /api/particles requests
func (h *DatabaseHandler) ListParticles(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.database)
}

// GetParticle handles GET /api/particles/{reference} requests, where
// reference is the particle's URL reference.
func (h *DatabaseHandler) GetParticle(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	particle, ok := h.database.Find(reference)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Particle not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, particle)
}
