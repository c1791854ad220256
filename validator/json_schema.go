package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangid/gojsonschema"
	"github.com/golangid/wedding-invitation/candihelper"
)

// SchemaBaseURL prefix for cross schema $ref, "<SchemaBaseURL><schema id>.json"
const SchemaBaseURL = "https://wedding-invitation.local/schema/"

var notShowErrorListType = map[string]bool{
	"condition_else": true, "condition_then": true,
}

// JSONSchemaValidator validator
type JSONSchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewJSONSchemaValidator compile every schema in storage, each schema can refer the others by SchemaBaseURL
func NewJSONSchemaValidator(storage Storage) (*JSONSchemaValidator, error) {
	pool := gojsonschema.NewSchemaLoader()
	ids := storage.IDs()
	for _, id := range ids {
		s, err := storage.Get(id)
		if err != nil {
			return nil, err
		}
		if err := pool.AddSchema(SchemaBaseURL+id+".json", gojsonschema.NewStringLoader(s)); err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
	}

	// compile by reference so the pool resolves each schema by its url, schemas need no $id
	v := &JSONSchemaValidator{schemas: make(map[string]*gojsonschema.Schema, len(ids))}
	for _, id := range ids {
		schema, err := pool.Compile(gojsonschema.NewReferenceLoader(SchemaBaseURL + id + ".json"))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		v.schemas[id] = schema
	}
	return v, nil
}

func (v *JSONSchemaValidator) getSchema(schemaID string) (schema *gojsonschema.Schema, err error) {
	s, ok := v.schemas[schemaID]
	if !ok {
		return nil, fmt.Errorf("schema '%s' not found", schemaID)
	}

	return s, nil
}

// ValidateDocument based on schema id
func (v *JSONSchemaValidator) ValidateDocument(schemaID string, documentSource []byte) error {

	multiError := candihelper.NewMultiError()

	schema, err := v.getSchema(schemaID)
	if err != nil {
		return err
	}

	document := gojsonschema.NewBytesLoader(documentSource)

	result, err := schema.Validate(document)
	if err != nil {
		multiError.Append("body", errors.New("Invalid JSON body"))
		return multiError
	}

	if !result.Valid() {
		for _, desc := range result.Errors() {
			if notShowErrorListType[desc.Type()] {
				continue
			}
			var field = desc.Field()
			if desc.Type() == "required" || desc.Type() == "additional_property_not_allowed" {
				field = fmt.Sprintf("%s.%s", field, desc.Details()["property"])
				field = strings.TrimPrefix(field, "(root).")
			}
			multiError.Append(field, errors.New(desc.Description()))
		}
	}

	if multiError.HasError() {
		return multiError
	}

	return nil
}
