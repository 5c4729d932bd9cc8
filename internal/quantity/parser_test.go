package quantity

import (
	"errors"
	"testing"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) (*Parser, *numeric.Context) {
	t.Helper()
	ctx, err := numeric.NewContext(numeric.DefaultPrecision)
	require.NoError(t, err)
	return NewParser(ctx), ctx
}

// assertClose checks that got and want agree to within digits significant
// figures.
func assertClose(t *testing.T, ctx *numeric.Context, want, got numeric.Decimal, digits int32) {
	t.Helper()
	diff, err := ctx.Sub(want, got)
	require.NoError(t, err)
	if diff.IsZero() {
		return
	}
	dm, err := diff.Magnitude()
	require.NoError(t, err)
	wm, err := want.Magnitude()
	require.NoError(t, err)
	assert.LessOrEqual(t, dm, wm-digits, "want %s, got %s", want, got)
}

func TestParse_Scientific(t *testing.T) {
	t.Parallel()
	p, _ := newTestParser(t)

	testCases := []struct {
		name     string
		kind     domain.Kind
		input    string
		expected numeric.Decimal
		unit     domain.Unit
	}{
		{
			name:     "electron mass in kilograms",
			kind:     domain.KindMass,
			input:    `9.1093837015 \times 10^{-31} kg`,
			expected: numeric.MustParse("9.1093837015").Scale(-31),
			unit:     domain.UnitKilogram,
		},
		{
			name:     "asterisk operator and bare exponent",
			kind:     domain.KindMass,
			input:    "1.67262192369*10^-27 kg",
			expected: numeric.MustParse("1.67262192369").Scale(-27),
			unit:     domain.UnitKilogram,
		},
		{
			name:     "unicode times and minus",
			kind:     domain.KindMass,
			input:    "−1.5 × 10^{−3} g",
			expected: numeric.MustParse("-1.5").Scale(-3),
			unit:     domain.UnitGram,
		},
		{
			name:     "electron volt family",
			kind:     domain.KindMass,
			input:    `125.25 \times 10^{0} GeV`,
			expected: numeric.MustParse("125.25"),
			unit:     domain.UnitGigaElectronVolt,
		},
		{
			name:     "roman unit wrapper and thin space",
			kind:     domain.KindMass,
			input:    `1.00727646662 \times 10^{ 0 } \, \mathrm{u}`,
			expected: numeric.MustParse("1.00727646662"),
			unit:     domain.UnitAtomicMass,
		},
		{
			name:     "generous whitespace",
			kind:     domain.KindMass,
			input:    "  + 4.18   \\times   10 ^ { + 9 }   eV  ",
			expected: numeric.MustParse("4.18").Scale(9),
			unit:     domain.UnitElectronVolt,
		},
		{
			name:     "charge in coulombs",
			kind:     domain.KindCharge,
			input:    `-1.602176634 \times 10^{-19} C`,
			expected: numeric.MustParse("-1.602176634").Scale(-19),
			unit:     domain.UnitCoulomb,
		},
		{
			name:     "muon lifetime",
			kind:     domain.KindTime,
			input:    `2.1969811 \times 10^{-6} s`,
			expected: numeric.MustParse("2.1969811").Scale(-6),
			unit:     domain.UnitSecond,
		},
		{
			name:     "magnetic moment with exponent",
			kind:     domain.KindMagneticMoment,
			input:    `1.52103220230 \times 10^{-3} \mu_{B}`,
			expected: numeric.MustParse("1.52103220230").Scale(-3),
			unit:     domain.UnitBohrMagneton,
		},
		{
			name:     "magnetic moment without exponent",
			kind:     domain.KindMagneticMoment,
			input:    `-1.00115965218128 \mu_B`,
			expected: numeric.MustParse("-1.00115965218128"),
			unit:     domain.UnitBohrMagneton,
		},
		{
			name:     "magnetic moment with symbol",
			kind:     domain.KindMagneticMoment,
			input:    "2.792847344 μB",
			expected: numeric.MustParse("2.792847344"),
			unit:     domain.UnitBohrMagneton,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := p.Parse(tc.kind, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.unit, q.Unit())
			assert.Equal(t, tc.kind, q.Kind())
			assert.Equal(t, 0, tc.expected.Cmp(q.Number()), "want %s, got %s", tc.expected, q.Number())
		})
	}
}

func TestParse_ZeroShorthand(t *testing.T) {
	t.Parallel()
	p, _ := newTestParser(t)

	expected := map[domain.Kind]domain.Unit{
		domain.KindMass:           domain.UnitKilogram,
		domain.KindCharge:         domain.UnitCoulomb,
		domain.KindTime:           domain.UnitSecond,
		domain.KindMagneticMoment: domain.UnitBohrMagneton,
	}

	for kind, unit := range expected {
		for _, input := range []string{"0", " 0 ", "\t0\n"} {
			q, err := p.Parse(kind, input)
			require.NoError(t, err, "kind %s input %q", kind, input)
			assert.True(t, q.IsZero())
			assert.Equal(t, unit, q.Unit())
		}
	}
}

func TestParse_ChargeMultiples(t *testing.T) {
	t.Parallel()
	p, ctx := newTestParser(t)

	third, err := ctx.Quo(numeric.FromInt64(-1), numeric.FromInt64(3))
	require.NoError(t, err)
	minusThirdE, err := ctx.Mul(third, domain.ElementaryCharge)
	require.NoError(t, err)

	testCases := []struct {
		input    string
		expected numeric.Decimal
	}{
		{input: "-1/3", expected: minusThirdE},
		{input: "+2/3", expected: numeric.MustParse("1.068117756").Scale(-19)},
		{input: "-1", expected: domain.ElementaryCharge.Neg()},
		{input: "+1", expected: domain.ElementaryCharge},
		{input: "2", expected: numeric.MustParse("3.204353268").Scale(-19)},
		{input: " - 2 / 3 ", expected: numeric.MustParse("-1.068117756").Scale(-19)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			q, err := p.Parse(domain.KindCharge, tc.input)
			require.NoError(t, err)
			assert.Equal(t, domain.UnitCoulomb, q.Unit())
			assertClose(t, ctx, tc.expected, q.Number(), 28)
		})
	}
}

func TestParse_MinusOneThirdMatchesExactValue(t *testing.T) {
	t.Parallel()
	p, ctx := newTestParser(t)

	q, err := p.Parse(domain.KindCharge, "-1/3")
	require.NoError(t, err)

	// (-1/3) × 1.602176634e-19 = -0.534058878e-19 exactly.
	got, err := ctx.Reduce(q.Number())
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(numeric.MustParse("-5.34058878").Scale(-20)), got.String())
}

func TestParse_OneSeventhIsCorrectlyRounded(t *testing.T) {
	t.Parallel()
	p, _ := newTestParser(t)

	q, err := p.Parse(domain.KindCharge, "1/7")
	require.NoError(t, err)

	// 1.602176634e-19 / 7 to 30 significant figures; the last digit rounds up.
	expected := numeric.MustParse("2.28882376285714285714285714286").Scale(-20)
	assert.Zero(t, q.Number().Cmp(expected), q.Number().String())
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()
	p, _ := newTestParser(t)

	testCases := []struct {
		name  string
		kind  domain.Kind
		input string
	}{
		{"empty", domain.KindMass, ""},
		{"free text", domain.KindMass, "heavy"},
		{"missing exponent clause", domain.KindMass, "1.5 kg"},
		{"unit of another kind", domain.KindMass, `1 \times 10^{3} C`},
		{"unknown mass unit", domain.KindMass, `9.1 \times 10^{-31} lb`},
		{"missing unit", domain.KindTime, `2.2 \times 10^{-6}`},
		{"stable is not a time", domain.KindTime, "stable"},
		{"fraction is only for charge", domain.KindMass, "1/3"},
		{"zero denominator", domain.KindCharge, "2/0"},
		{"magnetic moment without magneton", domain.KindMagneticMoment, "1.2"},
		{"exponent out of range", domain.KindMass, `1 \times 10^{99999999} kg`},
		{"unknown kind", domain.Kind("length"), `1 \times 10^{0} m`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.kind, tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnparseableQuantity))

			var pe *domain.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.kind, pe.Kind)
			assert.Equal(t, tc.input, pe.Text)
		})
	}
}

func TestIsElementaryMultiple(t *testing.T) {
	t.Parallel()

	assert.True(t, IsElementaryMultiple("+2/3"))
	assert.True(t, IsElementaryMultiple("-1"))
	assert.True(t, IsElementaryMultiple("0"))
	assert.False(t, IsElementaryMultiple(`-1.602176634 \times 10^{-19} C`))
	assert.False(t, IsElementaryMultiple("one"))
}

func TestRelativeCharge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"+2/3", "+2/3", true},
		{" - 1 / 3 ", "-1/3", true},
		{"−1", "-1", true},
		{"1", "+1", true},
		{"2/1", "+2", true},
		{"0", "0", true},
		{"-0", "0", true},
		{`1.602176634 \times 10^{-19} C`, "", false},
		{"neutral", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			canonical, ok := RelativeCharge(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, canonical)
		})
	}
}
