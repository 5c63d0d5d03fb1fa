// Package validator bridges go-playground/validator into echo so handlers
// can call c.Validate on bound request structs.
package validator

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	playground "github.com/go-playground/validator/v10"
)

type structValidator struct {
	validate *playground.Validate
}

// New returns an echo.Validator backed by go-playground/validator struct tags.
func New() echo.Validator {
	return &structValidator{validate: playground.New()}
}

// Validate checks struct fields against their validate tags.
func (v *structValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
