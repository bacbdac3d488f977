package pipeline

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ppiankov/arbiterstg/internal/model"
)

// The loader is the fail-fast boundary: unreadable files and invalid JSON
// are errors here, never swallowed. Past this point the arbiter core treats
// everything as best-effort and total.

//go:embed trace_schema.json
var traceSchemaJSON string

// LoadTrace reads and parses a trace document. Syntax errors fail fast;
// missing or oddly-shaped proxy fields do not, those degrade to defaults
// inside the core.
func LoadTrace(path string) (*model.Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return ParseTrace(data)
}

// ParseTrace decodes a trace document from raw bytes.
func ParseTrace(data []byte) (*model.Trace, error) {
	var t model.Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	return &t, nil
}

// SchemaValidator checks trace documents against the embedded MDS_Trace
// schema. Validation is optional and stricter than the core needs: the core
// degrades gracefully without it, but a generator author can use it to catch
// drift early.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("mds-trace-1.0.schema.json", bytes.NewReader([]byte(traceSchemaJSON))); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile("mds-trace-1.0.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile trace schema: %w", err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate checks raw document bytes against the schema.
func (v *SchemaValidator) Validate(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse trace: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("trace schema: %w", err)
	}
	return nil
}
