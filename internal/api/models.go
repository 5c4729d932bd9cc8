package api

import (
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/catalog"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
)

// QuantityRequest is the body of the parse and render endpoints.
type QuantityRequest struct {
	Text string `json:"text" validate:"required,max=512"`
	// SigFigs selects a single rounding level. When absent every configured
	// level is rendered.
	SigFigs *int `json:"sig_figs,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// ParseResponse describes a parsed and normalized quantity.
type ParseResponse struct {
	Kind        string          `json:"kind"`
	Quantity    string          `json:"quantity"`
	Unit        string          `json:"unit"`
	Significand string          `json:"significand"`
	Exponent    int32           `json:"exponent"`
	Records     []domain.Record `json:"records"`
}

// RenderResponse holds the full record set for one field.
type RenderResponse struct {
	Kind    string          `json:"kind"`
	Records []domain.Record `json:"records"`
}

// ParticleResponse is a compiled particle and the fields that failed.
type ParticleResponse struct {
	Particle    catalog.Particle     `json:"particle"`
	FieldErrors []catalog.FieldError `json:"field_errors"`
}
