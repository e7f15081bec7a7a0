package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describes a single failed validation rule
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field '%s' failed on tag '%s'", e.Field, e.Tag)
}

var validate = validator.New()

func init() {
	// uuid.UUID zero value passes "required", so foreign keys carry their
	// own tag
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// ValidateStruct returns one FieldError per failed rule, nil when valid
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var fieldErrors []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return fieldErrors
}
