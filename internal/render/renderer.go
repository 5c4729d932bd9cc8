// Package render formats measurements as display text, LaTeX and
// serializable records.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/normalize"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/sigfig"
)

const (
	// MinusSign is used for negative numbers in display text.
	MinusSign = "−"

	base = "10"
)

// Renderer turns measurements into records. It holds no mutable state.
type Renderer struct {
	ctx *numeric.Context
}

// NewRenderer returns a Renderer that rounds in ctx.
func NewRenderer(ctx *numeric.Context) *Renderer {
	return &Renderer{ctx: ctx}
}

// Render formats m at sigFigs significant figures; 0 renders every digit.
// Rounding is applied to a copy, m itself is never modified.
func (r *Renderer) Render(m domain.Measurement, sigFigs int) (domain.Record, error) {
	if err := sigfig.Validate(r.ctx, sigFigs); err != nil {
		return domain.Record{}, err
	}

	record := domain.Record{
		Significand: "0",
		Base:        base,
		Exponent:    "0",
		Unit:        string(m.Unit),
		UnitClass:   m.Unit.Class(),
		Rounding:    domain.RoundingLabel(sigFigs),
		HTML:        "0",
		LaTeX:       "0",
	}
	if m.IsZero() {
		return record, nil
	}

	significand, exponent, err := r.round(m, sigFigs)
	if err != nil {
		return domain.Record{}, fmt.Errorf("failed to render %s × 10^%d %s: %w", m.Significand, m.Exponent, m.Unit, err)
	}

	text := significand.Text()
	record.Significand = text
	record.Exponent = strconv.FormatInt(int64(exponent), 10)
	record.HTML = displayText(text, exponent, m.Unit)
	record.LaTeX = latexText(text, exponent, m.Unit)
	return record, nil
}

// round applies the significant-figure rounding and renormalizes, since
// rounding may carry the significand out of its window (9.9996 × 10^−31 at
// 3sf is 1.00 × 10^−30).
func (r *Renderer) round(m domain.Measurement, sigFigs int) (numeric.Decimal, int32, error) {
	var (
		significand numeric.Decimal
		err         error
	)
	if sigFigs == 0 {
		significand, err = r.ctx.Reduce(m.Significand)
	} else {
		significand, err = sigfig.Round(r.ctx, m.Significand, sigFigs)
	}
	if err != nil {
		return numeric.Decimal{}, 0, err
	}

	value := significand.Scale(m.Exponent)
	if sigFigs > 0 && !value.IsZero() {
		carried, order, err := carriedOrder(m, value)
		if err != nil {
			return numeric.Decimal{}, 0, err
		}
		// A carry into an order at or past sigFigs would print trailing
		// zeros as plain digits (999.9996 at 3sf as 1000), so stay scientific.
		if carried && order >= int32(sigFigs) {
			return value.Scale(-order), order, nil
		}
	}

	shifted, exponent, err := normalize.Split(value)
	if err != nil {
		return numeric.Decimal{}, 0, err
	}
	return shifted, exponent, nil
}

// carriedOrder reports whether rounding raised the order of magnitude of m,
// along with the order of the rounded value.
func carriedOrder(m domain.Measurement, rounded numeric.Decimal) (bool, int32, error) {
	after, err := rounded.Magnitude()
	if err != nil {
		return false, 0, err
	}
	if m.Significand.IsZero() {
		return false, after, nil
	}
	before, err := m.Significand.Magnitude()
	if err != nil {
		return false, 0, err
	}
	return after > before+m.Exponent, after, nil
}

// displayText builds the markup-free form, e.g. "−1.60 × 10^−19 C".
func displayText(significand string, exponent int32, unit domain.Unit) string {
	var b strings.Builder
	b.WriteString(strings.Replace(significand, "-", MinusSign, 1))
	if exponent != 0 {
		b.WriteString(" × 10^")
		b.WriteString(strings.Replace(strconv.FormatInt(int64(exponent), 10), "-", MinusSign, 1))
	}
	b.WriteString(" ")
	b.WriteString(DisplayUnit(unit))
	return b.String()
}

// latexText builds the LaTeX form, e.g. "-1.60 \times 10^{-19} \, \mathrm{C}".
func latexText(significand string, exponent int32, unit domain.Unit) string {
	var b strings.Builder
	b.WriteString(significand)
	if exponent != 0 {
		fmt.Fprintf(&b, ` \times 10^{%d}`, exponent)
	}
	b.WriteString(` \, `)
	b.WriteString(LaTeXUnit(unit))
	return b.String()
}

// DisplayUnit returns the plain-text label for unit. Masses in the eV family
// are written as energy over c².
func DisplayUnit(unit domain.Unit) string {
	switch {
	case unit.IsElectronVolt():
		return string(unit) + " / c²"
	case unit == domain.UnitBohrMagneton:
		return "μ_B"
	default:
		return string(unit)
	}
}

// LaTeXUnit returns the LaTeX label for unit.
func LaTeXUnit(unit domain.Unit) string {
	switch {
	case unit.IsElectronVolt():
		return `\frac{\mathrm{` + string(unit) + `}}{c^{2}}`
	case unit == domain.UnitBohrMagneton:
		return `\mu_{B}`
	default:
		return `\mathrm{` + string(unit) + `}`
	}
}
