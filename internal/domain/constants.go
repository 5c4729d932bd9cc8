package domain

import "github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"

// Physical constants consumed by the parser and the unit converter. They are
// fixed, not configurable.
var (
	// ElementaryCharge is the charge of one proton, in coulombs.
	ElementaryCharge = numeric.MustParse("1.602176634").Scale(-19)

	// ElectronVoltMass is the mass equivalent of one electron volt, in
	// kilograms (1 eV / c²).
	ElectronVoltMass = numeric.MustParse("1.78266192").Scale(-36)

	// AtomicMassConstant is one unified atomic mass unit, in kilograms.
	AtomicMassConstant = numeric.MustParse("1.66053906660").Scale(-27)
)
