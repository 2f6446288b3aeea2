package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// positivedecimal validates that a decimal.Decimal field is strictly greater
// than zero. The stock "required"/"gt" tags don't understand decimal's
// struct representation, so money amounts use this instead.
func positiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}

// nonnegativedecimal validates that a decimal.Decimal field is zero or more.
func nonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("positivedecimal", positiveDecimal)
		_ = v.RegisterValidation("nonnegativedecimal", nonNegativeDecimal)
	}
}
