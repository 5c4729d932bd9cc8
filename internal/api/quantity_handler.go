package api

import (
	"log/slog"
	"net/http"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/api/shared"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/platform/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// QuantityService is the subset of the engine the quantity endpoints need.
type QuantityService interface {
	Parse(kind domain.Kind, text string) (domain.Quantity, error)
	Normalize(q domain.Quantity) (domain.Measurement, error)
	Render(m domain.Measurement, sigFigs int) (domain.Record, error)
	Representations(q domain.Quantity) ([]domain.Quantity, error)
	RenderQuantity(q domain.Quantity) ([]domain.Record, error)
}

// KindResponse describes one supported quantity kind.
type KindResponse struct {
	Kind        string   `json:"kind"`
	DefaultUnit string   `json:"default_unit"`
	Units       []string `json:"units"`
}

// QuantityHandler handles quantity parsing and rendering requests
type QuantityHandler struct {
	service   QuantityService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewQuantityHandler creates a new QuantityHandler
func NewQuantityHandler(service QuantityService, logger *slog.Logger) *QuantityHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuantityHandler")
	}

	return &QuantityHandler{
		service:   service,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "quantity_handler")),
	}
}

// ListKinds handles GET /api/kinds requests
func (h *QuantityHandler) ListKinds(w http.ResponseWriter, r *http.Request) {
	kinds := make([]KindResponse, 0, len(domain.Kinds))
	for _, k := range domain.Kinds {
		units := make([]string, 0, len(k.Units()))
		for _, u := range k.Units() {
			units = append(units, string(u))
		}
		kinds = append(kinds, KindResponse{
			Kind:        string(k),
			DefaultUnit: string(k.DefaultUnit()),
			Units:       units,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, kinds)
}

// ParseQuantity handles POST /api/quantities/{kind}/parse requests.
// It returns the normalized measurement together with its rendered records.
func (h *QuantityHandler) ParseQuantity(w http.ResponseWriter, r *http.Request) {
	kind, req, ok := h.decode(w, r)
	if !ok {
		return
	}

	q, err := h.service.Parse(kind, req.Text)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	m, err := h.service.Normalize(q)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	records, err := h.records(q, req.SigFigs)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ParseResponse{
		Kind:        string(kind),
		Quantity:    q.String(),
		Unit:        string(m.Unit),
		Significand: m.Significand.Text(),
		Exponent:    m.Exponent,
		Records:     records,
	})
}

// RenderQuantity handles POST /api/quantities/{kind}/render requests
func (h *QuantityHandler) RenderQuantity(w http.ResponseWriter, r *http.Request) {
	kind, req, ok := h.decode(w, r)
	if !ok {
		return
	}

	q, err := h.service.Parse(kind, req.Text)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	records, err := h.records(q, req.SigFigs)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RenderResponse{
		Kind:    string(kind),
		Records: records,
	})
}

// decode resolves the kind path parameter and the request body, writing the
// error response itself when either is invalid.
func (h *QuantityHandler) decode(w http.ResponseWriter, r *http.Request) (domain.Kind, QuantityRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	kind, err := domain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, "Unknown quantity kind", err)
		return "", QuantityRequest{}, false
	}

	var req QuantityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleDecodeError(w, r, err)
		return "", QuantityRequest{}, false
	}

	if err := h.validator.Struct(req); err != nil {
		log.Debug("quantity request failed validation", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return "", QuantityRequest{}, false
	}

	return kind, req, true
}

// records renders q at one level when sigFigs is set, otherwise at every
// configured level.
func (h *QuantityHandler) records(q domain.Quantity, sigFigs *int) ([]domain.Record, error) {
	if sigFigs == nil {
		return h.service.RenderQuantity(q)
	}

	representations, err := h.service.Representations(q)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(representations))
	for _, rep := range representations {
		m, err := h.service.Normalize(rep)
		if err != nil {
			return nil, err
		}
		record, err := h.service.Render(m, *sigFigs)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
