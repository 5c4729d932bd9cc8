package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/quantity"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/redact"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// QuantityEngine parses and renders raw quantity text.
type QuantityEngine interface {
	// Parse reads text as a quantity of the given kind.
	Parse(kind domain.Kind, text string) (domain.Quantity, error)

	// RenderQuantity renders q in all of its unit systems at every
	// configured rounding level.
	RenderQuantity(q domain.Quantity) ([]domain.Record, error)
}

// Result is the outcome of compiling one record in a batch. Err is set when
// the record was aborted; FieldErrors lists fields that were skipped.
type Result struct {
	Particle    Particle
	FieldErrors []FieldError
	Err         error
}

// Compiler turns records into particles.
type Compiler struct {
	engine   QuantityEngine
	workers  int
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCompiler creates a Compiler that runs up to workers records at once.
func NewCompiler(engine QuantityEngine, workers int, logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		logger.Warn("invalid worker count specified, using default",
			"specified_count", workers,
			"default_count", 1)
		workers = 1
	}

	return &Compiler{
		engine:   engine,
		workers:  workers,
		validate: validator.New(),
		logger:   logger.With(slog.String("component", "catalog_compiler")),
	}
}

// Compile renders every quantity field of f. Unparseable fields are returned
// as FieldErrors and kept in Particle.Unparsed; any other failure aborts the
// record and is returned as the error.
func (c *Compiler) Compile(ctx context.Context, f Fields) (Particle, []FieldError, error) {
	if err := ctx.Err(); err != nil {
		return Particle{}, nil, err
	}
	if err := c.validate.Struct(f); err != nil {
		return Particle{}, nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	p := Particle{
		Reference:      f.Reference,
		URLReference:   f.URLReference,
		Title:          f.Title,
		MainSymbol:     f.Symbol,
		Classes:        append([]string{}, f.Classes...),
		Antiparticle:   f.Antiparticle,
		Mass:           []domain.Record{},
		Charge:         []domain.Record{},
		MeanLifetime:   []domain.Record{},
		MagneticMoment: []domain.Record{},
	}
	if p.URLReference == "" {
		p.URLReference = URLReferenceFor(f.Reference)
	}

	var fieldErrors []FieldError
	fields := []struct {
		name string
		kind domain.Kind
		text string
		dest *[]domain.Record
	}{
		{FieldMass, domain.KindMass, f.Mass, &p.Mass},
		{FieldCharge, domain.KindCharge, f.Charge, &p.Charge},
		{FieldMeanLifetime, domain.KindTime, f.MeanLifetime, &p.MeanLifetime},
		{FieldMagneticMoment, domain.KindMagneticMoment, f.MagneticMoment, &p.MagneticMoment},
	}

	for _, field := range fields {
		if field.text == "" {
			continue
		}

		var (
			q   domain.Quantity
			err error
		)
		if field.kind == domain.KindTime {
			var lifetime Lifetime
			if lifetime, err = c.Lifetime(field.text); err == nil {
				if lifetime.IsStable() {
					p.Stable = true
					continue
				}
				q, _ = lifetime.Mean()
			}
		} else {
			q, err = c.engine.Parse(field.kind, field.text)
		}

		var records []domain.Record
		if err == nil {
			records, err = c.engine.RenderQuantity(q)
		}
		if err != nil {
			var parseErr *domain.ParseError
			if !errors.As(err, &parseErr) {
				return Particle{}, nil, fmt.Errorf("failed to compile %s of %s: %w", field.name, f.Reference, err)
			}

			fieldErrors = append(fieldErrors, FieldError{
				Reference: f.Reference,
				Field:     field.name,
				Text:      field.text,
				Message:   parseErr.Error(),
				Err:       err,
			})
			if p.Unparsed == nil {
				p.Unparsed = make(map[string]string)
			}
			p.Unparsed[field.name] = field.text
			continue
		}

		*field.dest = records
		if field.name == FieldCharge {
			if relative, ok := quantity.RelativeCharge(field.text); ok {
				p.RelativeCharge = relative
			}
		}
	}

	return p, fieldErrors, nil
}

// Lifetime interprets a mean lifetime field.
func (c *Compiler) Lifetime(text string) (Lifetime, error) {
	if IsStableText(text) {
		return Stable(), nil
	}
	q, err := c.engine.Parse(domain.KindTime, text)
	if err != nil {
		return Lifetime{}, err
	}
	return Decaying(q), nil
}

// CompileAll compiles records concurrently and returns one Result per record
// in input order. A failing record does not stop the others; the returned
// error is non-nil only if ctx is cancelled.
func (c *Compiler) CompileAll(ctx context.Context, records []Fields) ([]Result, error) {
	batchID := uuid.New()
	log := c.logger.With(slog.String("batch_id", batchID.String()))
	log.Info("compiling particle records",
		slog.Int("records", len(records)),
		slog.Int("workers", c.workers))

	results := make([]Result, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			p, fieldErrors, err := c.Compile(gctx, records[i])
			results[i] = Result{Particle: p, FieldErrors: fieldErrors, Err: err}

			switch {
			case err != nil:
				log.Error("particle record aborted",
					slog.String("reference", records[i].Reference),
					slog.String("error", redact.Text(redact.Error(err))))
			case len(fieldErrors) > 0:
				log.Warn("particle record has unparsed fields",
					slog.String("reference", records[i].Reference),
					slog.Int("unparsed", len(fieldErrors)))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("particle records compiled", slog.Int("records", len(records)))
	return results, nil
}

// NewDatabase collects the particles of every successful result.
func NewDatabase(results []Result) Database {
	db := Database{Particles: make([]Particle, 0, len(results))}
	for _, r := range results {
		if r.Err == nil {
			db.Particles = append(db.Particles, r.Particle)
		}
	}
	return db
}
