// Package engine ties parsing, conversion, normalization and rendering into
// the operations the server, CLI and catalog compiler use.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/config"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/convert"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/normalize"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/quantity"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/redact"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/render"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/sigfig"
)

// Engine is the quantity engine. Its precision and rounding levels are fixed
// at construction; an Engine is safe for concurrent use.
type Engine struct {
	ctx       *numeric.Context
	parser    *quantity.Parser
	converter *convert.Converter
	renderer  *render.Renderer
	sigFigs   []int
	logger    *slog.Logger
}

// New creates an Engine from cfg. A nil logger uses slog.Default().
func New(cfg config.EngineConfig, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, err := numeric.NewContext(cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("failed to create arithmetic context: %w", err)
	}

	levels := cfg.SigFigs
	if len(levels) == 0 {
		levels = config.DefaultSigFigs
	}
	for _, n := range levels {
		if err := sigfig.Validate(ctx, n); err != nil {
			return nil, err
		}
	}

	return &Engine{
		ctx:       ctx,
		parser:    quantity.NewParser(ctx),
		converter: convert.NewConverter(ctx),
		renderer:  render.NewRenderer(ctx),
		sigFigs:   append([]int(nil), levels...),
		logger:    logger.With(slog.String("component", "engine")),
	}, nil
}

// Precision returns the working precision in significant digits.
func (e *Engine) Precision() uint32 {
	return e.ctx.Precision()
}

// SigFigs returns the configured rendering levels.
func (e *Engine) SigFigs() []int {
	return append([]int(nil), e.sigFigs...)
}

// Parse reads text as a quantity of the given kind.
func (e *Engine) Parse(kind domain.Kind, text string) (domain.Quantity, error) {
	q, err := e.parser.Parse(kind, text)
	if err != nil {
		return domain.Quantity{}, newError("parse", kind, err)
	}
	return q, nil
}

// Normalize splits q into significand and exponent.
func (e *Engine) Normalize(q domain.Quantity) (domain.Measurement, error) {
	m, err := normalize.Normalize(q)
	if err != nil {
		return domain.Measurement{}, newError("normalize", q.Kind(), err)
	}
	return m, nil
}

// Render formats m at sigFigs significant figures; 0 means unrounded.
func (e *Engine) Render(m domain.Measurement, sigFigs int) (domain.Record, error) {
	record, err := e.renderer.Render(m, sigFigs)
	if err != nil {
		return domain.Record{}, newError("render", m.Unit.Kind(), err)
	}
	return record, nil
}

// ConvertMass expresses a mass in the given unit system.
func (e *Engine) ConvertMass(q domain.Quantity, system domain.UnitSystem) (domain.Quantity, error) {
	converted, err := e.converter.To(q, system)
	if err != nil {
		return domain.Quantity{}, newError("convert", q.Kind(), err)
	}
	return converted, nil
}

// Representations returns q in every unit system its kind has: a mass in
// kg, eV-family and u, anything else unchanged.
func (e *Engine) Representations(q domain.Quantity) ([]domain.Quantity, error) {
	if q.Kind() != domain.KindMass {
		return []domain.Quantity{q}, nil
	}

	all, err := e.converter.All(q)
	if err != nil {
		return nil, newError("convert", q.Kind(), err)
	}
	return all, nil
}

// RenderQuantity renders q in each of its unit systems at each configured
// rounding level, unit system first.
func (e *Engine) RenderQuantity(q domain.Quantity) ([]domain.Record, error) {
	representations, err := e.Representations(q)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(representations)*len(e.sigFigs))
	for _, r := range representations {
		m, err := e.Normalize(r)
		if err != nil {
			return nil, err
		}
		for _, n := range e.sigFigs {
			record, err := e.Render(m, n)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}

	return records, nil
}

// RenderField parses one raw field value and renders its full record set.
func (e *Engine) RenderField(kind domain.Kind, text string) ([]domain.Record, error) {
	q, err := e.Parse(kind, text)
	if err != nil {
		e.logger.Debug("field did not parse",
			slog.String("kind", string(kind)),
			slog.String("error", redact.Text(redact.Error(err))))
		return nil, err
	}

	records, err := e.RenderQuantity(q)
	if err != nil {
		e.logger.Error("failed to render field",
			slog.String("kind", string(kind)),
			slog.String("quantity", q.String()),
			slog.String("error", redact.Text(redact.Error(err))))
		return nil, err
	}

	return records, nil
}
