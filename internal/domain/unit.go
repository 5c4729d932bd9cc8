package domain

import "fmt"

// Unit is a unit tag. The set of valid tags is closed and fixed per Kind.
type Unit string

// Mass units.
const (
	UnitGram             Unit = "g"
	UnitKilogram         Unit = "kg"
	UnitAtomicMass       Unit = "u"
	UnitElectronVolt     Unit = "eV"
	UnitKiloElectronVolt Unit = "keV"
	UnitMegaElectronVolt Unit = "MeV"
	UnitGigaElectronVolt Unit = "GeV"
	UnitTeraElectronVolt Unit = "TeV"
)

// Single-system units for the remaining kinds.
const (
	UnitCoulomb      Unit = "C"
	UnitSecond       Unit = "s"
	UnitBohrMagneton Unit = "BohrMagneton"
)

// UnitSystem is one of the mutually convertible representations of a
// quantity. Only mass has more than one.
type UnitSystem string

// Unit systems.
const (
	SystemKilogram     UnitSystem = "kg"
	SystemElectronVolt UnitSystem = "eV"
	SystemAtomicMass   UnitSystem = "u"
	SystemCoulomb      UnitSystem = "C"
	SystemSecond       UnitSystem = "s"
	SystemBohrMagneton UnitSystem = "BohrMagneton"
)

// MassSystems lists the mass unit systems in rendering order.
var MassSystems = []UnitSystem{SystemKilogram, SystemElectronVolt, SystemAtomicMass}

// electronVoltPrefixes maps each eV-family unit to its power of ten relative
// to plain eV.
var electronVoltPrefixes = map[Unit]int32{
	UnitElectronVolt:     0,
	UnitKiloElectronVolt: 3,
	UnitMegaElectronVolt: 6,
	UnitGigaElectronVolt: 9,
	UnitTeraElectronVolt: 12,
}

// ParseUnit resolves a unit tag for the given kind.
func ParseUnit(kind Kind, s string) (Unit, error) {
	for _, u := range kind.Units() {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not a %s unit", ErrUnitMismatch, s, kind)
}

// Kind returns the quantity kind this unit measures, or "" for an unknown tag.
func (u Unit) Kind() Kind {
	switch u {
	case UnitGram, UnitKilogram, UnitAtomicMass:
		return KindMass
	case UnitCoulomb:
		return KindCharge
	case UnitSecond:
		return KindTime
	case UnitBohrMagneton:
		return KindMagneticMoment
	}
	if u.IsElectronVolt() {
		return KindMass
	}
	return ""
}

// IsElectronVolt reports whether u belongs to the eV family.
func (u Unit) IsElectronVolt() bool {
	_, ok := electronVoltPrefixes[u]
	return ok
}

// ElectronVoltPower returns the power of ten that converts a value in u to
// plain eV. ok is false for units outside the eV family.
func (u Unit) ElectronVoltPower() (power int32, ok bool) {
	power, ok = electronVoltPrefixes[u]
	return power, ok
}

// Prefix returns the metric prefix of an eV-family unit ("k", "M", ...), or
// "" for plain eV and all other units.
func (u Unit) Prefix() string {
	if !u.IsElectronVolt() || u == UnitElectronVolt {
		return ""
	}
	return string(u[:1])
}

// System returns the unit system u belongs to.
func (u Unit) System() UnitSystem {
	switch {
	case u == UnitGram, u == UnitKilogram:
		return SystemKilogram
	case u == UnitAtomicMass:
		return SystemAtomicMass
	case u.IsElectronVolt():
		return SystemElectronVolt
	case u == UnitCoulomb:
		return SystemCoulomb
	case u == UnitSecond:
		return SystemSecond
	case u == UnitBohrMagneton:
		return SystemBohrMagneton
	default:
		return ""
	}
}

// Class collapses prefixed units into their family tag so consumers can
// group values by physical unit regardless of prefix: every eV-family unit
// has class "eV", grams and kilograms have class "kg".
func (u Unit) Class() string {
	return string(u.System())
}
