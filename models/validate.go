package models

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance for form inputs.
var validate = validator.New()

// ValidateForm runs struct-tag validation on a form input. Every handler
// validates its typed input here before touching persistence.
func ValidateForm(form interface{}) error {
	return validate.Struct(form)
}
