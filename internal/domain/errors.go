package domain

import (
	"errors"
	"fmt"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
)

// Common domain errors used across the application.
var (
	// ErrUnparseableQuantity is returned when raw text matches no grammar
	// recognised for the requested quantity kind.
	ErrUnparseableQuantity = errors.New("unparseable quantity")

	// ErrArithmeticContract is returned when an arithmetic precondition is
	// violated, such as taking the order of magnitude of zero. It indicates
	// a bug in the caller and aborts processing of the affected record.
	ErrArithmeticContract = numeric.ErrContractViolation

	// ErrUnknownKind is returned when a quantity kind tag is not recognised.
	ErrUnknownKind = errors.New("unknown quantity kind")

	// ErrUnitMismatch is returned when a unit does not belong to the kind or
	// unit system an operation requires.
	ErrUnitMismatch = errors.New("unit does not match quantity kind")

	// ErrInvalidSigFigs is returned when a significant-figure count is
	// negative or exceeds the working precision.
	ErrInvalidSigFigs = errors.New("invalid significant figure count")
)

// ParseError describes raw text that could not be parsed as a quantity of
// the given kind. It matches ErrUnparseableQuantity with errors.Is.
type ParseError struct {
	Kind Kind
	Text string
	// Reason is an optional detail, such as a zero denominator.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unparseable %s quantity %q: %s", e.Kind, e.Text, e.Reason)
	}
	return fmt.Sprintf("unparseable %s quantity %q", e.Kind, e.Text)
}

// Unwrap lets errors.Is match ErrUnparseableQuantity.
func (e *ParseError) Unwrap() error {
	return ErrUnparseableQuantity
}
