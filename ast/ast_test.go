package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueConstructors(t *testing.T) {
	require.Equal(t, Value{Kind: ValueInteger, Int: 7}, Int(7))
	require.Equal(t, Value{Kind: ValueFloat, Float: 1.5}, Float(1.5))
	require.Equal(t, Value{Kind: ValueBoolean, Boolean: true}, Bool(true))
}

func TestExprConstructors(t *testing.T) {
	c := ConstantExpr(Int(3))
	require.Equal(t, ExprConstant, c.Kind)
	require.Equal(t, int64(3), c.Value.Int)

	id := IdentifierExpr("x")
	require.Equal(t, ExprIdentifier, id.Kind)
	require.Equal(t, "x", id.Name)

	bin := BinaryExpr(id, OpAdd, c)
	require.Equal(t, ExprBinaryOp, bin.Kind)
	require.Equal(t, id, *bin.Left)
	require.Equal(t, OpAdd, bin.Op)

	un := UnaryExpr(OpNegate, c)
	require.Equal(t, ExprUnaryOp, un.Kind)
	require.Equal(t, OpNegate, un.UnaryOp)
}

func TestStatementConstructors(t *testing.T) {
	def := Definition("x", ConstantExpr(Int(1)))
	require.Equal(t, StmtDefinition, def.Kind)
	require.Equal(t, "x", def.Name)

	fn := Function("f", []Parameter{{Name: "a"}}, []Statement{def})
	require.Equal(t, StmtFunction, fn.Kind)
	require.Len(t, fn.Parameters, 1)
	require.Len(t, fn.Body, 1)

	call := FunctionCall("f", []Expr{IdentifierExpr("a")})
	require.Equal(t, StmtFunctionCall, call.Kind)
	require.Len(t, call.Arguments, 1)

	ifElse := IfElse(ConstantExpr(Bool(true)), []Statement{def}, []Statement{def})
	require.Equal(t, StmtIfElse, ifElse.Kind)
	require.NotNil(t, ifElse.Else)

	read := DeviceRead("d0", "Temperature", "t")
	require.Equal(t, StmtDeviceRead, read.Kind)
	require.Equal(t, "Temperature", read.ReadVariable)

	write := DeviceWrite(ConstantExpr(Int(1)), "d0", "Setting")
	require.Equal(t, StmtDeviceWrite, write.Kind)
	require.NotNil(t, write.WriteValue)

	require.Equal(t, StmtYield, Yield().Kind)
}
