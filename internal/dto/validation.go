package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/yukikurage/task-manager-api/internal/constants"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidations installs the custom tags used by request DTOs on v.
// labelname expands to the label name length limits.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterAlias("labelname", fmt.Sprintf("min=%d,max=%d", constants.MinLabelNameLength, constants.MaxLabelNameLength))
	return v.RegisterValidation("notblank", validators.NotBlank)
}

// checkOptional validates a present optional value against tag. Explicit
// nulls are rejected when the field is not nullable.
func checkOptional[T any](field string, o Optional[T], tag string, nullable bool) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		if nullable {
			return nil
		}
		return fmt.Errorf("%s: must not be null", field)
	}
	if tag == "" {
		return nil
	}
	if err := validate.Var(o.Value, tag); err != nil {
		return fmt.Errorf("%s: failed on '%s' validation", field, tag)
	}
	return nil
}
