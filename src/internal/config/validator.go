package config

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/validatedpatterns/reference-api/src/internal/errors"
)

// ValidateConfig validates every section and returns all problems at once,
// wrapped in a VALIDATION_ERROR.
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	sections := []struct {
		prefix string
		value  interface{}
	}{
		{"server", c.Server},
		{"store", c.Store},
		{"log", c.Log},
	}
	for _, section := range sections {
		if err := validate.Struct(section.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, section.prefix)...)
		}
	}

	if len(validationErrors) > 0 {
		return apperrors.NewValidationError("invalid configuration", validationErrors)
	}
	return nil
}

func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() is the TOML tag name because of RegisterTagNameFunc
				fieldPath = fieldPrefix + "." + e.Field()
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
