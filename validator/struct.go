package validator

import (
	"regexp"

	validatorengine "github.com/go-playground/validator/v10"
)

// TagHexColor6 rule name, accept only "#" followed by six hex digits
const TagHexColor6 = "hexcolor6"

var hexColor6Pattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// StructValidator struct
type StructValidator struct {
	Validator *validatorengine.Validate
}

// NewStructValidator using go library
// https://github.com/go-playground/validator (all struct tags will be here)
// https://godoc.org/github.com/go-playground/validator (documentation using it)
func NewStructValidator() *StructValidator {
	ve := validatorengine.New()
	ve.RegisterValidation(TagHexColor6, func(fl validatorengine.FieldLevel) bool {
		return hexColor6Pattern.MatchString(fl.Field().String())
	})
	return &StructValidator{Validator: ve}
}

// ValidateVar check single value against validation tag
func (v *StructValidator) ValidateVar(value any, tag string) error {
	return v.Validator.Var(value, tag)
}
