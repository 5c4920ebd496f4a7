package sourceio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"icc/ast"
)

const emptyMainYAML = `
statements:
  - kind: function
    name: main
    parameters: []
    body: []
`

func TestLoadDecodesProgram(t *testing.T) {
	program, err := Load(strings.NewReader(emptyMainYAML))
	require.NoError(t, err)
	require.Len(t, program.Statements, 1)
	require.Equal(t, ast.StmtFunction, program.Statements[0].Kind)
	require.Equal(t, "main", program.Statements[0].Name)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("statements:\n  - kind: function\n    nope: true\n"))
	require.Error(t, err)
}

func TestLoadFileMissingPath(t *testing.T) {
	_, err := LoadFile("/nonexistent/path.yaml")
	require.Error(t, err)
}
