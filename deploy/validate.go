package deploy

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed vercel.schema.json
var schemaJSON string

// Validate runs JSON-Schema validation against the embedded manifest schema.
func Validate(m *Manifest) error {
	jsonBytes, err := json.Marshal(m)
	if err != nil {
		return err
	}
	schema, err := jsonschema.CompileString("vercel.schema.json", schemaJSON)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}

// ValidateFile validates the manifest file as written, before it is decoded
// into Manifest, so type errors in the raw JSON are reported against the
// schema rather than as decode failures.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	schema, err := jsonschema.CompileString("vercel.schema.json", schemaJSON)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}
