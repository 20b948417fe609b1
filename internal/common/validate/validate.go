package validate

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DecimalValue lets the validator apply numeric rules (gte, gt, ...) to
// decimal.Decimal fields by exposing them as float64.
func DecimalValue(v reflect.Value) interface{} {
	d, ok := v.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

// New returns a validator with the decimal custom type registered.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(DecimalValue, decimal.Decimal{})
	return validate
}
