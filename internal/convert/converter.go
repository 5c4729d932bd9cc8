// Package convert maps mass quantities between the kilogram, electron-volt
// and atomic-mass-unit systems.
package convert

import (
	"fmt"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
)

// electronVoltBands lists each eV-family unit with the lowest plain-eV order
// of magnitude it is used for. Bands are closed below and open above, so
// exactly 10^3 eV is reported in keV.
var electronVoltBands = []struct {
	from int32
	unit domain.Unit
}{
	{12, domain.UnitTeraElectronVolt},
	{9, domain.UnitGigaElectronVolt},
	{6, domain.UnitMegaElectronVolt},
	{3, domain.UnitKiloElectronVolt},
}

// ElectronVoltUnitFor returns the eV-family unit appropriate for a plain-eV
// value with the given order of magnitude.
func ElectronVoltUnitFor(magnitude int32) domain.Unit {
	for _, band := range electronVoltBands {
		if magnitude >= band.from {
			return band.unit
		}
	}
	return domain.UnitElectronVolt
}

// Converter converts mass quantities. It holds no mutable state.
type Converter struct {
	ctx *numeric.Context
}

// NewConverter returns a Converter that performs its arithmetic in ctx.
func NewConverter(ctx *numeric.Context) *Converter {
	return &Converter{ctx: ctx}
}

// To converts q into the given mass unit system.
func (c *Converter) To(q domain.Quantity, system domain.UnitSystem) (domain.Quantity, error) {
	switch system {
	case domain.SystemKilogram:
		return c.ToKilogram(q)
	case domain.SystemElectronVolt:
		return c.ToElectronVolt(q)
	case domain.SystemAtomicMass:
		return c.ToAtomicMass(q)
	default:
		return domain.Quantity{}, fmt.Errorf("%w: %q is not a mass unit system", domain.ErrUnitMismatch, system)
	}
}

// All returns q expressed in every mass unit system, in domain.MassSystems
// order.
func (c *Converter) All(q domain.Quantity) ([]domain.Quantity, error) {
	out := make([]domain.Quantity, 0, len(domain.MassSystems))
	for _, system := range domain.MassSystems {
		converted, err := c.To(q, system)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to %s: %w", q, system, err)
		}
		out = append(out, converted)
	}
	return out, nil
}

// ToKilogram expresses a mass in kilograms.
func (c *Converter) ToKilogram(q domain.Quantity) (domain.Quantity, error) {
	if err := requireMass(q); err != nil {
		return domain.Quantity{}, err
	}

	switch unit := q.Unit(); {
	case unit == domain.UnitKilogram:
		return q, nil

	case unit == domain.UnitGram:
		return domain.NewQuantity(q.Number().Scale(-3), domain.UnitKilogram)

	case unit == domain.UnitAtomicMass:
		kg, err := c.ctx.Mul(q.Number(), domain.AtomicMassConstant)
		if err != nil {
			return domain.Quantity{}, err
		}
		return domain.NewQuantity(kg, domain.UnitKilogram)

	default:
		power, _ := unit.ElectronVoltPower()
		kg, err := c.ctx.Mul(q.Number().Scale(power), domain.ElectronVoltMass)
		if err != nil {
			return domain.Quantity{}, err
		}
		return domain.NewQuantity(kg, domain.UnitKilogram)
	}
}

// ToElectronVolt expresses a mass in the eV-family unit matching its
// magnitude. Values already in the eV family are only re-prefixed, which is
// an exact power-of-ten shift.
func (c *Converter) ToElectronVolt(q domain.Quantity) (domain.Quantity, error) {
	if err := requireMass(q); err != nil {
		return domain.Quantity{}, err
	}

	var ev numeric.Decimal
	if power, ok := q.Unit().ElectronVoltPower(); ok {
		ev = q.Number().Scale(power)
	} else {
		kg, err := c.ToKilogram(q)
		if err != nil {
			return domain.Quantity{}, err
		}
		if kg.IsZero() {
			return domain.NewQuantity(numeric.Zero, domain.UnitElectronVolt)
		}
		if ev, err = c.ctx.Quo(kg.Number(), domain.ElectronVoltMass); err != nil {
			return domain.Quantity{}, err
		}
	}

	if ev.IsZero() {
		return domain.NewQuantity(numeric.Zero, domain.UnitElectronVolt)
	}
	magnitude, err := ev.Magnitude()
	if err != nil {
		return domain.Quantity{}, err
	}

	unit := ElectronVoltUnitFor(magnitude)
	power, _ := unit.ElectronVoltPower()
	return domain.NewQuantity(ev.Scale(-power), unit)
}

// ToAtomicMass expresses a mass in unified atomic mass units.
func (c *Converter) ToAtomicMass(q domain.Quantity) (domain.Quantity, error) {
	if err := requireMass(q); err != nil {
		return domain.Quantity{}, err
	}
	if q.Unit() == domain.UnitAtomicMass {
		return q, nil
	}

	kg, err := c.ToKilogram(q)
	if err != nil {
		return domain.Quantity{}, err
	}
	if kg.IsZero() {
		return domain.NewQuantity(numeric.Zero, domain.UnitAtomicMass)
	}

	u, err := c.ctx.Quo(kg.Number(), domain.AtomicMassConstant)
	if err != nil {
		return domain.Quantity{}, err
	}
	return domain.NewQuantity(u, domain.UnitAtomicMass)
}

func requireMass(q domain.Quantity) error {
	if q.Kind() != domain.KindMass {
		return fmt.Errorf("%w: %s is not a mass", domain.ErrUnitMismatch, q)
	}
	return nil
}
