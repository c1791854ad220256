package interfaces

// Validator abstract interface
type Validator interface {
	// ValidateDocument method using jsonschema with input is json source
	ValidateDocument(schemaID string, document []byte) error

	FieldValidator
}

// FieldValidator abstract interface
type FieldValidator interface {
	// ValidateVar method, check single value against github.com/go-playground/validator tag
	ValidateVar(value interface{}, tag string) error
}
