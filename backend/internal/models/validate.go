package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report violations against the wire (json) field names, not Go names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError reports a record that failed its definition's type or
// constraint checks. It is a client-side failure: never retried, never
// logged as a system fault.
type ValidationError struct {
	Kind   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
}

// Validate checks a record instance against its definition's constraints.
// Returns nil on success, a *ValidationError otherwise. Pure: no cross-field
// or cross-entity checks, no side effects.
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	kind := reflect.Indirect(reflect.ValueOf(record)).Type().Name()

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Kind: kind, Reason: err.Error()}
	}

	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, fmt.Sprintf("field %q is required", fe.Field()))
		case "oneof":
			reasons = append(reasons, fmt.Sprintf("field %q must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		case "gte":
			reasons = append(reasons, fmt.Sprintf("field %q must be >= %s", fe.Field(), fe.Param()))
		default:
			reasons = append(reasons, fmt.Sprintf("field %q failed %q validation", fe.Field(), fe.Tag()))
		}
	}
	return &ValidationError{Kind: kind, Reason: strings.Join(reasons, "; ")}
}
