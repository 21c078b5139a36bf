// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance; it is safe for concurrent use.
type Validator struct {
	validate *playground.Validate
}

// New builds the request validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Violations surface as the shared
// validation AppError carrying the field details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
