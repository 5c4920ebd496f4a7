package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"icc/ast"
)

func TestFindLocalsCollectsDefinitionsInOrder(t *testing.T) {
	body := []ast.Statement{
		ast.Definition("a", ast.ConstantExpr(ast.Int(1))),
		ast.Definition("b", ast.ConstantExpr(ast.Int(2))),
		ast.Block([]ast.Statement{
			ast.Definition("c", ast.ConstantExpr(ast.Int(3))),
		}),
	}

	require.Equal(t, []string{"a", "b", "c"}, findLocals(body))
}

func TestFindLocalsSuppressesDuplicates(t *testing.T) {
	body := []ast.Statement{
		ast.Definition("a", ast.ConstantExpr(ast.Int(1))),
		ast.Definition("a", ast.ConstantExpr(ast.Int(2))),
	}
	require.Equal(t, []string{"a"}, findLocals(body))
}

func TestFindLocalsHarvestsCallArguments(t *testing.T) {
	body := []ast.Statement{
		ast.FunctionCall("f", []ast.Expr{ast.IdentifierExpr("x"), ast.ConstantExpr(ast.Int(1))}),
	}
	require.Equal(t, []string{"x"}, findLocals(body))
}

func TestFindLocalsDoesNotDescendIntoNestedFunctions(t *testing.T) {
	body := []ast.Statement{
		ast.Function("nested", nil, []ast.Statement{
			ast.Definition("hidden", ast.ConstantExpr(ast.Int(1))),
		}),
	}
	require.Empty(t, findLocals(body))
}
