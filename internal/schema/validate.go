package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate checks that doc conforms to the named schema. It compiles the
// schema fresh on every call; callers that validate in a hot loop should
// use a Validator instead.
func Validate(name Name, doc []byte) error {
	v, err := NewValidator(name)
	if err != nil {
		return err
	}
	return v.Validate(doc)
}

// Validator holds a compiled schema for repeated validation.
type Validator struct {
	name   Name
	schema *jsonschema.Schema
}

// NewValidator compiles the named schema once for reuse.
func NewValidator(name Name) (*Validator, error) {
	raw, err := Load(name)
	if err != nil {
		return nil, err
	}

	resourceName := string(name) + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", name, err)
	}
	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	return &Validator{name: name, schema: compiled}, nil
}

// Validate checks doc against the compiled schema.
func (v *Validator) Validate(doc []byte) error {
	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("failed to decode document for schema %s: %w", v.name, err)
	}
	if err := v.schema.Validate(parsed); err != nil {
		return fmt.Errorf("document does not match schema %s: %w", v.name, err)
	}
	return nil
}
