package request

import (
	"petagenda/internal/domain/recurrence"

	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the domain-aware binding rules on gin's
// validator engine. Called once during router setup.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("recurrence_kind", func(fl validator.FieldLevel) bool {
		return recurrence.Kind(fl.Field().String()).IsValid()
	})
}
