package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

// ValidateStruct wraps failures in e.ErrInvalidInput so callers and the HTTP
// presenters classify them as client errors.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	return nil
}
