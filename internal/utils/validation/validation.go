// Package validation wraps go-playground/validator with the conventions used by
// the services: JSON field names in error keys and decimal.Decimal support.
package validation

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator that reports fields by their json tag and compares
// decimal.Decimal fields numerically (gt, gte, lt, lte). The "whole" tag rejects
// amounts with a fractional part.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("whole", isWhole); err != nil {
		panic(err)
	}
	return v
}

// isWhole reports whether a numeric field has no fractional part.
// Decimals arrive here already converted to float64.
func isWhole(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		x := f.Float()
		return x == math.Trunc(x)
	}
	return true
}

// ToAppError converts the result of Validate.Struct into an *apperrors.ValidationError.
// Other errors are returned unchanged; nil stays nil.
func ToAppError(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		key := fieldKey(fe.Namespace())
		if _, exists := fields[key]; !exists {
			fields[key] = messageForTag(fe.Tag(), fe.Param())
		}
	}
	return apperrors.NewValidationError(fields)
}

// fieldKey drops the root struct name: "CreateOrderRequest.customer.name" -> "customer.name".
func fieldKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "must contain at least " + param + " item(s)"
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be at least " + param
	case "whole":
		return "must be a whole amount"
	case "oneof":
		return "must be one of: " + param
	default:
		return "is invalid"
	}
}
