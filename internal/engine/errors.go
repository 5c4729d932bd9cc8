package engine

import (
	"errors"
	"fmt"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
)

// Error wraps a failure inside the engine with the operation that caused it.
type Error struct {
	// Operation is the engine operation that failed (e.g. "parse", "render").
	Operation string
	// Kind is the quantity kind being processed, if known.
	Kind domain.Kind
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("engine %s failed for %s: %v", e.Operation, e.Kind, e.Err)
	}
	return fmt.Sprintf("engine %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps err for operation. Caller errors (bad input text, unknown
// kinds, bad rounding levels) are returned unchanged so callers can match
// them directly.
func newError(operation string, kind domain.Kind, err error) error {
	if err == nil {
		return nil
	}

	var parseErr *domain.ParseError
	switch {
	case errors.As(err, &parseErr),
		errors.Is(err, domain.ErrUnknownKind),
		errors.Is(err, domain.ErrInvalidSigFigs),
		errors.Is(err, domain.ErrUnitMismatch):
		return err
	}

	return &Error{Operation: operation, Kind: kind, Err: err}
}
