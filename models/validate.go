// validate.go - Declarative field constraints for every entity

package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10" // Struct tag validation
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their wire names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name[:1]) + f.Name[1:]
		}
		return name
	})

	// Money fields are checked as numbers. An absent NullDecimal becomes an
	// invalid value, which the validator reports as a missing field.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		switch d := field.Interface().(type) {
		case decimal.Decimal:
			return d.InexactFloat64()
		case decimal.NullDecimal:
			if !d.Valid {
				return nil
			}
			return d.Decimal.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{}, decimal.NullDecimal{})

	return v
}

// ValidationError lists every constraint a record failed.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Validate checks rec against its struct tags.
func Validate(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return &ValidationError{Problems: problems}
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest // Drop the struct name
	}
	if fe.Kind() == reflect.Invalid {
		return field + " is required"
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "min":
		if fe.Param() == "1" {
			return field + " must not be empty"
		}
		return fmt.Sprintf("%s must be at least %s long", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
