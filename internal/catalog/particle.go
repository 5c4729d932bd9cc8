package catalog

import (
	"strings"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
)

// Field names used in FieldError and Particle.Unparsed.
const (
	FieldMass           = "Mass"
	FieldCharge         = "Charge"
	FieldMeanLifetime   = "MeanLifetime"
	FieldMagneticMoment = "MagneticMoment"
)

// StableText marks a particle that does not decay.
const StableText = "stable"

// Fields are the raw values of one particle record. Quantity fields hold
// unparsed text; an empty quantity field is omitted from the output.
type Fields struct {
	Reference      string   `yaml:"reference" json:"reference" validate:"required"`
	Title          string   `yaml:"title" json:"title"`
	Symbol         string   `yaml:"symbol" json:"symbol"`
	URLReference   string   `yaml:"url_reference" json:"url_reference"`
	Antiparticle   string   `yaml:"antiparticle" json:"antiparticle"`
	Classes        []string `yaml:"classes" json:"classes"`
	Mass           string   `yaml:"mass" json:"mass"`
	Charge         string   `yaml:"charge" json:"charge"`
	MeanLifetime   string   `yaml:"mean_lifetime" json:"mean_lifetime"`
	MagneticMoment string   `yaml:"magnetic_moment" json:"magnetic_moment"`
}

// Lifetime is either Stable or a decaying lifetime with a mean duration.
type Lifetime struct {
	stable bool
	mean   domain.Quantity
}

// Stable returns the lifetime of a particle that does not decay.
func Stable() Lifetime {
	return Lifetime{stable: true}
}

// Decaying returns a lifetime with the given mean duration.
func Decaying(mean domain.Quantity) Lifetime {
	return Lifetime{mean: mean}
}

// IsStable reports whether the particle does not decay.
func (l Lifetime) IsStable() bool {
	return l.stable
}

// Mean returns the mean lifetime; ok is false for a stable particle.
func (l Lifetime) Mean() (mean domain.Quantity, ok bool) {
	return l.mean, !l.stable
}

// IsStableText reports whether a lifetime field reads "stable".
func IsStableText(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), StableText)
}

// Particle is one compiled entry of the particle database.
type Particle struct {
	Reference      string            `json:"Reference"`
	URLReference   string            `json:"URLReference"`
	Title          string            `json:"Title"`
	MainSymbol     string            `json:"MainSymbol"`
	Classes        []string          `json:"Classes"`
	Antiparticle   string            `json:"Antiparticle,omitempty"`
	RelativeCharge string            `json:"RelativeCharge,omitempty"`
	Mass           []domain.Record   `json:"Mass"`
	Charge         []domain.Record   `json:"Charge"`
	Stable         bool              `json:"Stable"`
	MeanLifetime   []domain.Record   `json:"MeanLifetime"`
	MagneticMoment []domain.Record   `json:"MagneticMoment"`
	Unparsed       map[string]string `json:"Unparsed,omitempty"`
}

// Database is the compiled catalog.
type Database struct {
	Particles []Particle `json:"Particles"`
}

// Find returns the particle with the given URL reference.
func (db Database) Find(urlReference string) (Particle, bool) {
	for _, p := range db.Particles {
		if p.URLReference == urlReference {
			return p, true
		}
	}
	return Particle{}, false
}

// URLReferenceFor derives a URL-safe reference, e.g. "Tau Neutrino" becomes
// "tau-neutrino".
func URLReferenceFor(reference string) string {
	return strings.Join(strings.Fields(strings.ToLower(reference)), "-")
}
