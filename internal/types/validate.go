package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports field errors by their JSON names so they line up with schema errors
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidEmail reports whether s is an email address the record validator accepts.
func ValidEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// FieldPath strips the root struct name from a validator namespace,
// turning "Resume.basics.email" into "basics.email".
func FieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
