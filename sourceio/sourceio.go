// Package sourceio decodes the serialized intermediate representation the
// (out-of-scope, §1) parser emits into an ast.Program, standing in for
// that collaborator's output contract (§6 "Input (from parser)").
package sourceio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"icc/ast"
)

// Load decodes a Program from r. The YAML shape matches ast.Program's
// struct tags field for field; unknown keys are rejected so a stale or
// hand-edited IR file fails fast instead of silently dropping a field.
func Load(r io.Reader) (ast.Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var program ast.Program
	if err := dec.Decode(&program); err != nil {
		return ast.Program{}, fmt.Errorf("sourceio: decode program: %w", err)
	}
	return program, nil
}

// LoadFile opens path and decodes a Program from its contents.
func LoadFile(path string) (ast.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return ast.Program{}, fmt.Errorf("sourceio: %w", err)
	}
	defer f.Close()
	return Load(f)
}
