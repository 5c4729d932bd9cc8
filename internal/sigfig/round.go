// Package sigfig rounds decimals to a number of significant figures.
package sigfig

import (
	"fmt"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
)

// Round returns x rounded half away from zero to n significant figures. The
// result keeps exactly n digits, trailing zeros included, so 2 at 3sf is
// 2.00. Zero and n == 0 return x unchanged.
func Round(ctx *numeric.Context, x numeric.Decimal, n int) (numeric.Decimal, error) {
	if err := Validate(ctx, n); err != nil {
		return numeric.Decimal{}, err
	}
	if n == 0 || x.IsZero() {
		return x, nil
	}

	order, err := x.Magnitude()
	if err != nil {
		return numeric.Decimal{}, err
	}

	exp := order - int32(n) + 1
	rounded, err := ctx.Quantize(x, exp, numeric.RoundHalfAwayFromZero)
	if err != nil {
		return numeric.Decimal{}, err
	}

	// 9.996 at 3sf carries into the next decade as 10.00; drop the extra
	// digit.
	carried, err := rounded.Magnitude()
	if err != nil {
		return numeric.Decimal{}, err
	}
	if carried > order {
		return ctx.Quantize(rounded, exp+1, numeric.RoundHalfAwayFromZero)
	}
	return rounded, nil
}

// Validate checks that n significant figures can be produced at ctx's
// precision.
func Validate(ctx *numeric.Context, n int) error {
	if n < 0 || n > int(ctx.Precision()) {
		return fmt.Errorf("%w: %d is outside 0..%d", domain.ErrInvalidSigFigs, n, ctx.Precision())
	}
	return nil
}
