package validator

import (
	"github.com/golangid/wedding-invitation/api"
)

// Validator instance
type Validator struct {
	*JSONSchemaValidator
	*StructValidator
}

// NewValidator constructor, using jsonschema & struct validator (github.com/go-playground/validator),
// jsonschema source embedded in api package
func NewValidator() (*Validator, error) {
	storage, err := NewFSStorage(api.JSONSchema(), api.JSONSchemaRoot)
	if err != nil {
		return nil, err
	}
	jsonSchema, err := NewJSONSchemaValidator(storage)
	if err != nil {
		return nil, err
	}
	return &Validator{
		JSONSchemaValidator: jsonSchema,
		StructValidator:     NewStructValidator(),
	}, nil
}
