// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "parivartan/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance shared by all requests.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Validation failures surface as the
// domain validation error so the error handler maps them to 400.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
