package parsing

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredField is matched by errors.Is for any MissingRequiredFieldError
var ErrMissingRequiredField = errors.New("missing required field")

// MissingRequiredFieldError reports that extraction could not find a field the record requires
type MissingRequiredFieldError struct {
	Field   string
	Message string
}

func (e *MissingRequiredFieldError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("missing required field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("missing required field %s", e.Field)
}

func (e *MissingRequiredFieldError) Unwrap() error {
	return ErrMissingRequiredField
}
