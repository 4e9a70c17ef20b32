// Package schema embeds the canonical JSON Schemas used to validate the
// pagenumber output document and the optional scandata collaborator input,
// and exposes a small validation helper over them.
package schema

import (
	"embed"
	"fmt"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Name identifies a registered schema.
type Name string

const (
	// Output is the schema for the final JSON document (§6 of the spec).
	Output Name = "output"
	// Scandata is the schema for the optional skip-leaves collaborator input.
	Scandata Name = "scandata"
)

// registry maps schema names to their embedded filename.
var registry = map[Name]string{
	Output:   "schemas/output.json",
	Scandata: "schemas/scandata.json",
}

// Load returns the raw JSON Schema document for name.
func Load(name Name) ([]byte, error) {
	filename, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("schema not found: %s", name)
	}
	content, err := schemaFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return content, nil
}
