package validator

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

// FieldErrors maps a JSON field name to a human-readable message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+f[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = validator.New()

func init() {
	// Report json names (price, imageUrl) instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return []*ErrorResponse{{FailedField: "", Tag: "invalid", Value: err.Error()}}
		}
		for _, err := range validationErrors {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Translate turns validator failures into FieldErrors using messages keyed by
// "field.tag". Unknown combinations fall back to "field is invalid". The first
// failure per field wins.
func Translate(errs []*ErrorResponse, messages map[string]string) FieldErrors {
	if len(errs) == 0 {
		return nil
	}
	out := FieldErrors{}
	for _, e := range errs {
		if _, seen := out[e.FailedField]; seen {
			continue
		}
		if msg, ok := messages[e.FailedField+"."+e.Tag]; ok {
			out[e.FailedField] = msg
			continue
		}
		out[e.FailedField] = e.FailedField + " is invalid"
	}
	return out
}
