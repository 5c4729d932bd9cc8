package engine

import (
	"errors"
	"testing"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/config"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	e, err := New(config.EngineConfig{Precision: 30, SigFigs: []int{0, 3}}, log)
	require.NoError(t, err)
	return e
}

// html collects the display strings of records at one rounding level.
func html(records []domain.Record, rounding string) []string {
	var out []string
	for _, r := range records {
		if r.Rounding == rounding {
			out = append(out, r.HTML)
		}
	}
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	e, err := New(config.EngineConfig{Precision: 40}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(40), e.Precision())
	assert.Equal(t, []int{0, 3}, e.SigFigs(), "empty levels fall back to the defaults")

	_, err = New(config.EngineConfig{Precision: 4}, nil)
	assert.Error(t, err)

	_, err = New(config.EngineConfig{Precision: 12, SigFigs: []int{0, 13}}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidSigFigs)
}

func TestRenderField_ElectronMass(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	records, err := e.RenderField(domain.KindMass, `9.1093837015 \times 10^{-31} kg`)
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, []string{
		"9.11 × 10^−31 kg",
		"511 keV / c²",
		"5.49 × 10^−4 u",
	}, html(records, "3sf"))

	assert.Equal(t, []string{
		"9.1093837015 × 10^−31 kg",
		"510.998950462800035578254793259 keV / c²",
		"5.48579909062405674569391067406 × 10^−4 u",
	}, html(records, "none"))

	keV := records[3]
	assert.Equal(t, "keV", keV.Unit)
	assert.Equal(t, "eV", keV.UnitClass)
	assert.Equal(t, "511", keV.Significand)
	assert.Equal(t, "0", keV.Exponent)
}

func TestRenderField_ProtonInElectronVolts(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	records, err := e.RenderField(domain.KindMass, `1.67262192369 \times 10^{-27} kg`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1.67 × 10^−27 kg",
		"938 MeV / c²",
		"1.01 u",
	}, html(records, "3sf"))
}

func TestRenderField_SingleSystemKinds(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	testCases := []struct {
		kind     domain.Kind
		text     string
		expected string
	}{
		{domain.KindCharge, "-1/3", "−5.34 × 10^−20 C"},
		{domain.KindCharge, "+1", "1.60 × 10^−19 C"},
		{domain.KindTime, `2.1969811 \times 10^{-6} s`, "2.20 × 10^−6 s"},
		{domain.KindMagneticMoment, `-1.00115965218128 \mu_B`, "−1.00 μ_B"},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			records, err := e.RenderField(tc.kind, tc.text)
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, []string{tc.expected}, html(records, "3sf"))
		})
	}
}

func TestRenderField_ThirdChargeUnroundedIsExact(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	records, err := e.RenderField(domain.KindCharge, "-1/3")
	require.NoError(t, err)

	var unrounded []domain.Record
	for _, r := range records {
		if r.Rounding == "none" {
			unrounded = append(unrounded, r)
		}
	}
	require.Len(t, unrounded, 1)
	assert.Equal(t, "-5.34058878", unrounded[0].Significand)
	assert.Equal(t, "-20", unrounded[0].Exponent)
	assert.Equal(t, "−5.34058878 × 10^−20 C", unrounded[0].HTML)
}

func TestRenderField_ZeroAlwaysRendersFullRecords(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	records, err := e.RenderField(domain.KindMass, "0")
	require.NoError(t, err)
	require.Len(t, records, 6)
	for _, r := range records {
		assert.Equal(t, "0", r.Significand)
		assert.Equal(t, "0", r.Exponent)
		assert.Equal(t, "0", r.HTML)
		assert.Equal(t, "0", r.LaTeX)
		assert.NotEmpty(t, r.Unit)
	}
	assert.Equal(t, "kg", records[0].Unit)
	assert.Equal(t, "eV", records[2].Unit)
	assert.Equal(t, "u", records[4].Unit)
}

func TestRenderField_Unparseable(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	_, err := e.RenderField(domain.KindTime, "stable")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnparseableQuantity))

	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, domain.KindTime, pe.Kind)
}

func TestConvertMass_ThousandElectronVolts(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	q, err := e.Parse(domain.KindMass, `1 \times 10^{3} eV`)
	require.NoError(t, err)

	kg, err := e.ConvertMass(q, domain.SystemKilogram)
	require.NoError(t, err)
	ev, err := e.ConvertMass(kg, domain.SystemElectronVolt)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitKiloElectronVolt, ev.Unit())

	m, err := e.Normalize(ev)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Significand.Cmp(numeric.FromInt64(1)))
	assert.Equal(t, int32(0), m.Exponent)
}

func TestConvertMass_RejectsCharge(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	_, err := e.ConvertMass(domain.ZeroQuantity(domain.KindCharge), domain.SystemKilogram)
	assert.ErrorIs(t, err, domain.ErrUnitMismatch)
}

func TestRender_InvalidLevel(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	_, err := e.Render(domain.Measurement{Significand: numeric.FromInt64(2), Unit: domain.UnitSecond}, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidSigFigs)
}

func TestNewError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newError("parse", domain.KindMass, nil))

	pe := &domain.ParseError{Kind: domain.KindMass, Text: "x"}
	assert.Same(t, pe, newError("parse", domain.KindMass, pe))

	wrapped := newError("render", domain.KindMass, domain.ErrArithmeticContract)
	var engineErr *Error
	require.True(t, errors.As(wrapped, &engineErr))
	assert.Equal(t, "render", engineErr.Operation)
	assert.ErrorIs(t, wrapped, domain.ErrArithmeticContract)
	assert.Contains(t, wrapped.Error(), "engine render failed for mass")
}
