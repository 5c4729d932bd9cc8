package domain

import (
	"fmt"
	"strings"
)

// Kind identifies the physical dimension a quantity measures.
type Kind string

// Valid quantity kinds.
const (
	KindMass           Kind = "mass"
	KindCharge         Kind = "charge"
	KindTime           Kind = "time"
	KindMagneticMoment Kind = "magneticMoment"
)

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{KindMass, KindCharge, KindTime, KindMagneticMoment}

// ParseKind resolves a kind tag case-insensitively. "magnetic-moment" and
// "magnetic_moment" are accepted as spellings of KindMagneticMoment.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, k := range Kinds {
		if strings.ToLower(string(k)) == normalized {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DefaultUnit is the unit a zero-valued quantity of this kind carries.
func (k Kind) DefaultUnit() Unit {
	switch k {
	case KindMass:
		return UnitKilogram
	case KindCharge:
		return UnitCoulomb
	case KindTime:
		return UnitSecond
	case KindMagneticMoment:
		return UnitBohrMagneton
	default:
		return ""
	}
}

// Units returns the closed set of unit tags valid for this kind.
func (k Kind) Units() []Unit {
	switch k {
	case KindMass:
		return []Unit{UnitGram, UnitKilogram, UnitAtomicMass, UnitElectronVolt,
			UnitKiloElectronVolt, UnitMegaElectronVolt, UnitGigaElectronVolt, UnitTeraElectronVolt}
	case KindCharge:
		return []Unit{UnitCoulomb}
	case KindTime:
		return []Unit{UnitSecond}
	case KindMagneticMoment:
		return []Unit{UnitBohrMagneton}
	default:
		return nil
	}
}
