package domain

import "github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"

// Measurement is a quantity normalized into significand × 10^exponent.
// A zero significand always has a zero exponent. Rounding for display is
// applied when a Measurement is rendered and never changes it.
type Measurement struct {
	Significand numeric.Decimal
	Exponent    int32
	Unit        Unit
}

// IsZero reports whether the measured value is zero.
func (m Measurement) IsZero() bool {
	return m.Significand.IsZero()
}
