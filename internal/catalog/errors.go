package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is returned when a record lacks required fields.
var ErrInvalidRecord = errors.New("invalid particle record")

// FieldError reports a quantity field that could not be compiled.
type FieldError struct {
	Reference string `json:"reference"`
	Field     string `json:"field"`
	Text      string `json:"text"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("particle %s: field %s: %s", e.Reference, e.Field, e.Message)
}

// Unwrap returns the underlying parse error.
func (e *FieldError) Unwrap() error {
	return e.Err
}
