package numeric

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd"
)

// Decimal is an immutable arbitrary-precision decimal number.
// The zero value is the number 0.
type Decimal struct {
	d *apd.Decimal
}

var zero = apd.New(0, 0)

// Zero is the decimal 0.
var Zero = Decimal{}

// FromInt64 returns the exact decimal value of v.
func FromInt64(v int64) Decimal {
	return Decimal{d: apd.New(v, 0)}
}

// New returns coeff × 10^exponent exactly.
func New(coeff int64, exponent int32) Decimal {
	return Decimal{d: apd.New(coeff, exponent)}
}

// Parse reads a plain decimal literal such as "-9.1093837015" or "+2".
// Exponent notation, infinities and NaN are rejected; the value is exact and
// is not rounded to any context precision.
func Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"), strings.HasPrefix(s, "−"):
		neg = true
		s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "−")
	}
	if !isPlainDecimal(s) {
		return Decimal{}, fmt.Errorf("invalid decimal literal %q", s)
	}

	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal literal %q: %w", s, err)
	}
	if neg && !d.IsZero() {
		d.Negative = true
	}
	return Decimal{d: d}, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level constants.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func isPlainDecimal(s string) bool {
	if s == "" || s == "." {
		return false
	}
	dot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}

func (x Decimal) raw() *apd.Decimal {
	if x.d == nil {
		return zero
	}
	return x.d
}

// IsZero reports whether x is 0.
func (x Decimal) IsZero() bool {
	return x.raw().IsZero()
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Decimal) Sign() int {
	return x.raw().Sign()
}

// IsNegative reports whether x is strictly less than zero.
func (x Decimal) IsNegative() bool {
	return x.Sign() < 0
}

// Cmp compares x and y numerically.
func (x Decimal) Cmp(y Decimal) int {
	return x.raw().Cmp(y.raw())
}

// Abs returns |x|. It is exact.
func (x Decimal) Abs() Decimal {
	d := new(apd.Decimal).Set(x.raw())
	d.Negative = false
	return Decimal{d: d}
}

// Neg returns -x. It is exact.
func (x Decimal) Neg() Decimal {
	d := new(apd.Decimal).Set(x.raw())
	if !d.IsZero() {
		d.Negative = !d.Negative
	}
	return Decimal{d: d}
}

// Scale returns x × 10^n. Shifting the exponent is exact, so no context is
// needed.
func (x Decimal) Scale(n int32) Decimal {
	d := new(apd.Decimal).Set(x.raw())
	if d.IsZero() {
		return Decimal{d: d}
	}
	d.Exponent += n
	return Decimal{d: d}
}

// Magnitude returns the order of magnitude floor(log10(|x|)). It is computed
// exactly from the coefficient's digit count rather than through a
// logarithm. Calling it on zero is a contract violation.
func (x Decimal) Magnitude() (int32, error) {
	d := x.raw()
	if d.IsZero() {
		return 0, fmt.Errorf("%w: order of magnitude of zero", ErrContractViolation)
	}
	return int32(d.NumDigits()) + d.Exponent - 1, nil
}

// Digits returns the number of digits in the coefficient of x, trailing
// zeros included. 0 has one digit.
func (x Decimal) Digits() int {
	return int(x.raw().NumDigits())
}

// Exponent returns the decimal exponent of x's coefficient representation.
func (x Decimal) Exponent() int32 {
	return x.raw().Exponent
}

// Text renders x in plain positional notation, never with an exponent.
// Trailing zeros carried by the representation are kept, so 1.00 stays
// "1.00".
func (x Decimal) Text() string {
	d := x.raw()
	if d.IsZero() {
		if d.Exponent < 0 {
			return "0." + strings.Repeat("0", int(-d.Exponent))
		}
		return "0"
	}
	return d.Text('f')
}

// String implements fmt.Stringer.
func (x Decimal) String() string {
	return x.Text()
}
