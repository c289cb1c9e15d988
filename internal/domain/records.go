package domain

import (
	"errors"
	"strings"
)

const opValidate = "domain.validate"

var errRequired = errors.New("required field is missing")

// Validator is implemented by records that can report missing required fields.
type Validator interface {
	Validate() error
}

func requireString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ShapeMismatch(opValidate, field, errRequired)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
