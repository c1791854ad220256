package api

import (
	"embed"
	"io/fs"
)

var (
	//go:embed jsonschema
	jsonSchemaFS embed.FS

	//go:embed seed/invitations.json
	seedInvitations []byte
)

// JSONSchemaRoot directory of schema files inside JSONSchema filesystem
const JSONSchemaRoot = "jsonschema"

// JSONSchema return embedded json schema files, schema id is path under JSONSchemaRoot without extension
func JSONSchema() fs.FS {
	return jsonSchemaFS
}

// SeedInvitations return sample wedding invitation data, json array of invitation data
func SeedInvitations() []byte {
	return seedInvitations
}
