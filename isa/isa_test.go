package isa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperandRendering(t *testing.T) {
	require.Equal(t, "r3", RegOperand(R3).String())
	require.Equal(t, "42", ImmOperand(42).String())
	require.Equal(t, "-1", ImmOperand(-1).String())
	require.Equal(t, "1.5", FloatOperand(1.5).String())
}

func TestInstructionRendering(t *testing.T) {
	require.Equal(t, "add r0 r1 r2", NewAdd(R0, RegOperand(R1), RegOperand(R2)).String())
	require.Equal(t, "sub r0 r0 1", NewSub(R0, RegOperand(R0), ImmOperand(1)).String())
	require.Equal(t, "push r0", NewPush(RegOperand(R0)).String())
	require.Equal(t, "pop r1", NewPop(R1).String())
	require.Equal(t, "peek r2", NewPeek(R2).String())
	require.Equal(t, "beq r0 r1 5", NewBranchEqual(RegOperand(R0), RegOperand(R1), 5).String())
	require.Equal(t, "beqz r0 3", NewBranchEqualZero(RegOperand(R0), 3).String())
	require.Equal(t, "j 7", NewJump(7).String())
	require.Equal(t, "jal 9", NewJumpAndLink(9).String())
	require.Equal(t, "beqz 0 ra", NewFunctionReturn().String())
	require.Equal(t, "label:", NewLabel("label").String())
	require.Equal(t, "alias sensor d2", NewAlias("sensor", D2).String())
	require.Equal(t, "# hi", NewComment("hi").String())
	require.Equal(t, "yield", NewYield().String())
	require.Equal(t, "l r0 d2 Temperature", NewLoadDeviceVariable(R0, D2, VarTemperature).String())
	require.Equal(t, "s d2 Setting r0", NewStoreDeviceVariable(D2, VarSetting, R0).String())
}

func TestMoveIdiom(t *testing.T) {
	require.Equal(t, "add r3 r0 0", NewMove(R3, RegOperand(R0)).String())
}

func TestArgRegister(t *testing.T) {
	require.Equal(t, R0, ArgRegister(0))
	require.Equal(t, R3, ArgRegister(3))
}

func TestParseDevice(t *testing.T) {
	d, err := ParseDevice("d2")
	require.NoError(t, err)
	require.Equal(t, D2, d)

	_, err = ParseDevice("d9")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)
}

func TestParseDeviceVariable(t *testing.T) {
	v, err := ParseDeviceVariable("Temperature")
	require.NoError(t, err)
	require.Equal(t, VarTemperature, v)

	_, err = ParseDeviceVariable("NotARealVariable")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)
}

func TestParseRegister(t *testing.T) {
	r, err := ParseRegister("ra")
	require.NoError(t, err)
	require.Equal(t, Ra, r)

	_, err = ParseRegister("rx")
	require.Error(t, err)
}
