// Package quantity parses raw quantity expressions written in the catalog's
// scientific notation dialect into typed domain quantities.
package quantity

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
)

// Grammar fragments shared by the expressions below.
const (
	signPattern     = `[+\-−]?`
	decimalPattern  = signPattern + `\s*(?:\d+(?:\.\d*)?|\.\d+)`
	integerPattern  = signPattern + `\s*\d+`
	operatorPattern = `(?:\\times|\\cdot|×|\*)`
	exponentPattern = `10\s*\^\s*(?:\{\s*(` + integerPattern + `)\s*\}|(` + integerPattern + `))`
	bohrPattern     = `(?:\\mu_\{\s*B\s*\}|\\mu_B|[μµ]_?B)`
)

var (
	zeroRegex = regexp.MustCompile(`^\s*0\s*$`)

	// <decimal> <op> 10^{<int>} <unit>
	scientificRegexes = map[domain.Kind]*regexp.Regexp{
		domain.KindMass:   scientific(`g|kg|u|eV|keV|MeV|GeV|TeV`),
		domain.KindCharge: scientific(`C`),
		domain.KindTime:   scientific(`s`),
	}

	// <decimal> [<op> 10^{<int>}] μB
	magneticMomentRegex = regexp.MustCompile(
		`^\s*(` + decimalPattern + `)\s*(?:` + operatorPattern + `\s*` + exponentPattern + `\s*)?` + bohrPattern + `\s*$`,
	)

	// <int> / <int>, a rational multiple of the elementary charge
	chargeFractionRegex = regexp.MustCompile(`^\s*(` + integerPattern + `)\s*/\s*(\d+)\s*$`)

	// <int>, a whole number of elementary charges
	chargeIntegerRegex = regexp.MustCompile(`^\s*(` + integerPattern + `)\s*$`)

	// Typesetting wrappers that may surround a unit or pad the expression.
	unitWrapperRegex = regexp.MustCompile(`\\(?:mathrm|text|rm)\s*\{\s*([^{}]*?)\s*\}`)
	spacingReplacer  = strings.NewReplacer(`\,`, " ", `\;`, " ", `\!`, "", `~`, " ")
)

func scientific(units string) *regexp.Regexp {
	return regexp.MustCompile(
		`^\s*(` + decimalPattern + `)\s*` + operatorPattern + `\s*` + exponentPattern + `\s*(` + units + `)\s*$`,
	)
}

// Parser turns raw text into quantities. A Parser holds no mutable state and
// may be shared between goroutines.
type Parser struct {
	ctx *numeric.Context
}

// NewParser returns a Parser that performs its arithmetic in ctx.
func NewParser(ctx *numeric.Context) *Parser {
	return &Parser{ctx: ctx}
}

// Parse reads text as a quantity of the given kind. Text matching none of
// the kind's grammars yields a *domain.ParseError.
func (p *Parser) Parse(kind domain.Kind, text string) (domain.Quantity, error) {
	if kind.DefaultUnit() == "" {
		return domain.Quantity{}, &domain.ParseError{Kind: kind, Text: text, Reason: "unknown kind"}
	}

	if zeroRegex.MatchString(text) {
		return domain.ZeroQuantity(kind), nil
	}

	cleaned := clean(text)

	switch kind {
	case domain.KindMagneticMoment:
		if m := magneticMomentRegex.FindStringSubmatch(cleaned); m != nil {
			return p.build(kind, text, m[1], firstNonEmpty(m[2], m[3]), string(domain.UnitBohrMagneton))
		}

	case domain.KindCharge:
		if m := chargeFractionRegex.FindStringSubmatch(cleaned); m != nil {
			return p.elementaryMultiple(text, m[1], m[2])
		}
		if m := chargeIntegerRegex.FindStringSubmatch(cleaned); m != nil {
			return p.elementaryMultiple(text, m[1], "1")
		}
		fallthrough

	default:
		if m := scientificRegexes[kind].FindStringSubmatch(cleaned); m != nil {
			return p.build(kind, text, m[1], firstNonEmpty(m[2], m[3]), m[4])
		}
	}

	return domain.Quantity{}, &domain.ParseError{Kind: kind, Text: text}
}

// IsElementaryMultiple reports whether text is a charge written as a whole
// or fractional number of elementary charges, such as "-1" or "+2/3".
func IsElementaryMultiple(text string) bool {
	cleaned := clean(text)
	return chargeFractionRegex.MatchString(cleaned) || chargeIntegerRegex.MatchString(cleaned)
}

// RelativeCharge returns the canonical form of a charge written in
// elementary charges, such as "+2/3", "-1" or "0". ok is false if text is not
// in that form.
func RelativeCharge(text string) (canonical string, ok bool) {
	cleaned := clean(text)

	numerator, denominator := "", ""
	if m := chargeFractionRegex.FindStringSubmatch(cleaned); m != nil {
		numerator, denominator = m[1], m[2]
	} else if m := chargeIntegerRegex.FindStringSubmatch(cleaned); m != nil {
		numerator = m[1]
	} else {
		return "", false
	}

	n, err := numeric.Parse(compact(numerator))
	if err != nil {
		return "", false
	}
	if n.IsZero() {
		return "0", true
	}

	canonical = "+" + n.Abs().Text()
	if n.IsNegative() {
		canonical = "-" + n.Abs().Text()
	}
	if denominator != "" && strings.TrimLeft(denominator, "0") != "1" {
		canonical += "/" + denominator
	}
	return canonical, true
}

// build assembles coefficient × 10^exponent in unit.
func (p *Parser) build(kind domain.Kind, text, coefficient, exponent, unit string) (domain.Quantity, error) {
	c, err := numeric.Parse(compact(coefficient))
	if err != nil {
		return domain.Quantity{}, &domain.ParseError{Kind: kind, Text: text, Reason: err.Error()}
	}

	var e int64
	if exponent != "" {
		e, err = strconv.ParseInt(normalizeSign(compact(exponent)), 10, 16)
		if err != nil {
			return domain.Quantity{}, &domain.ParseError{Kind: kind, Text: text, Reason: "exponent out of range"}
		}
	}

	u, err := domain.ParseUnit(kind, unit)
	if err != nil {
		return domain.Quantity{}, &domain.ParseError{Kind: kind, Text: text, Reason: err.Error()}
	}

	number, err := p.ctx.Round(c.Scale(int32(e)))
	if err != nil {
		return domain.Quantity{}, err
	}

	return domain.NewQuantity(number, u)
}

// elementaryMultiple returns numerator/denominator elementary charges in
// coulombs.
func (p *Parser) elementaryMultiple(text, numerator, denominator string) (domain.Quantity, error) {
	n, err := numeric.Parse(compact(numerator))
	if err != nil {
		return domain.Quantity{}, &domain.ParseError{Kind: domain.KindCharge, Text: text, Reason: err.Error()}
	}
	d, err := numeric.Parse(denominator)
	if err != nil {
		return domain.Quantity{}, &domain.ParseError{Kind: domain.KindCharge, Text: text, Reason: err.Error()}
	}
	if d.IsZero() {
		return domain.Quantity{}, &domain.ParseError{Kind: domain.KindCharge, Text: text, Reason: "zero denominator"}
	}

	// Multiply first so the only rounding is the final division.
	product, err := p.ctx.Mul(n, domain.ElementaryCharge)
	if err != nil {
		return domain.Quantity{}, err
	}
	coulombs, err := p.ctx.Quo(product, d)
	if err != nil {
		return domain.Quantity{}, err
	}

	return domain.NewQuantity(coulombs, domain.UnitCoulomb)
}

// clean strips typesetting spacing commands and unit wrappers such as
// \mathrm{kg}.
func clean(text string) string {
	return unitWrapperRegex.ReplaceAllString(spacingReplacer.Replace(text), "$1")
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func normalizeSign(s string) string {
	return strings.Replace(s, "−", "-", 1)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
