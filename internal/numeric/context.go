package numeric

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd"
)

// ErrContractViolation is returned when an operation's precondition does not
// hold, such as dividing by zero or taking the logarithm of a non-positive
// number. It indicates a caller bug.
var ErrContractViolation = errors.New("arithmetic contract violation")

const (
	// MinPrecision is the smallest working precision accepted, in significant
	// decimal digits.
	MinPrecision uint32 = 12

	// DefaultPrecision keeps chained conversions free of visible rounding
	// error.
	DefaultPrecision uint32 = 30
)

// RoundingMode selects how digits are discarded when a value is rounded.
type RoundingMode int

const (
	// RoundHalfEven rounds ties to the even neighbour.
	RoundHalfEven RoundingMode = iota
	// RoundHalfAwayFromZero rounds ties away from zero (0.5 -> 1, -0.5 -> -1).
	RoundHalfAwayFromZero
)

// Context performs arithmetic at a fixed working precision. A Context is
// immutable after construction and safe for concurrent use.
type Context struct {
	precision uint32
	arith     apd.Context
}

// NewContext returns a Context working at the given number of significant
// digits.
func NewContext(precision uint32) (*Context, error) {
	if precision < MinPrecision {
		return nil, fmt.Errorf("precision %d is below the minimum of %d digits", precision, MinPrecision)
	}

	arith := *apd.BaseContext.WithPrecision(precision)
	arith.Rounding = apd.RoundHalfEven

	return &Context{
		precision: precision,
		arith:     arith,
	}, nil
}

// Precision returns the working precision in significant digits.
func (c *Context) Precision() uint32 {
	return c.precision
}

// apply runs op into a fresh result. The apd context is copied so concurrent
// callers never share one.
func (c *Context) apply(name string, op func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error)) (Decimal, error) {
	ctx := c.arith
	d := new(apd.Decimal)
	if _, err := op(&ctx, d); err != nil {
		return Decimal{}, fmt.Errorf("%w: %s: %v", ErrContractViolation, name, err)
	}
	return Decimal{d: d}, nil
}

// Add returns x + y.
func (c *Context) Add(x, y Decimal) (Decimal, error) {
	return c.apply("add", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Add(d, x.raw(), y.raw())
	})
}

// Sub returns x - y.
func (c *Context) Sub(x, y Decimal) (Decimal, error) {
	return c.apply("sub", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Sub(d, x.raw(), y.raw())
	})
}

// Mul returns x × y.
func (c *Context) Mul(x, y Decimal) (Decimal, error) {
	return c.apply("mul", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Mul(d, x.raw(), y.raw())
	})
}

// Quo returns x / y. Division by zero is a contract violation.
func (c *Context) Quo(x, y Decimal) (Decimal, error) {
	if y.IsZero() {
		return Decimal{}, fmt.Errorf("%w: division of %s by zero", ErrContractViolation, x)
	}
	return c.apply("quo", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Quo(d, x.raw(), y.raw())
	})
}

// Log10 returns the base-10 logarithm of x, rounded to the working
// precision. x must be strictly positive.
func (c *Context) Log10(x Decimal) (Decimal, error) {
	if x.Sign() <= 0 {
		return Decimal{}, fmt.Errorf("%w: log10 of non-positive value %s", ErrContractViolation, x)
	}
	return c.apply("log10", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Log10(d, x.raw())
	})
}

// Floor returns the greatest integer not larger than x.
func (c *Context) Floor(x Decimal) (Decimal, error) {
	return c.apply("floor", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Floor(d, x.raw())
	})
}

// Quantize rounds x so that its last kept digit sits at 10^exp, using the
// given rounding mode. The result keeps trailing zeros, so quantizing 1 to
// exponent -2 gives 1.00.
func (c *Context) Quantize(x Decimal, exp int32, mode RoundingMode) (Decimal, error) {
	return c.apply("quantize", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		switch mode {
		case RoundHalfAwayFromZero:
			ctx.Rounding = apd.RoundHalfUp
		default:
			ctx.Rounding = apd.RoundHalfEven
		}
		return ctx.Quantize(d, x.raw(), exp)
	})
}

// Reduce strips trailing zeros from x's coefficient without changing its
// value, so 1.2300 becomes 1.23 and 1500 becomes 1.5E+3.
func (c *Context) Reduce(x Decimal) (Decimal, error) {
	return c.apply("reduce", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		_, cond, err := ctx.Reduce(d, x.raw())
		return cond, err
	})
}

// Round rounds x to the working precision.
func (c *Context) Round(x Decimal) (Decimal, error) {
	return c.apply("round", func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Round(d, x.raw())
	})
}
