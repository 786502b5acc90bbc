package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every ValidateStruct failure
var ErrValidation = errors.New("validation failed")

// ValidateStruct runs the registered rules against s and flattens any failures
// into a single "Field: X, Tag: Y" error.
func ValidateStruct(s interface{}) error {
	validate, err := New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrValidation, messages)
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return nil
}
