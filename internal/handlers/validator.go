package handlers

import (
	"fuel-ledger/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

// NewValidator adapts the shared validator, with its ledger_date,
// export_format and account_kind rules, to echo.Validator
func NewValidator() echo.Validator {
	return requestValidator{validate: validation.GetValidator().GetValidate()}
}

func (v requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
