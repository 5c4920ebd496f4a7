package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"icc/isa"
)

func TestBufferLabelsSurvivePassReset(t *testing.T) {
	buf := NewBuffer()
	buf.Emit(isa.NewPush(isa.ImmOperand(1)))
	line := buf.DefineLabel("start")
	require.Equal(t, 2, line, "label resolves to its body entry, after the marker")
	require.True(t, buf.HasLabel("start"))

	buf.ResetForPassTwo()
	require.Equal(t, 0, buf.Len())
	require.True(t, buf.HasLabel("start"), "labels must survive ResetForPassTwo")
	require.Equal(t, line, buf.LookupLabel("start"))
}

func TestBufferRelabelOverwrites(t *testing.T) {
	buf := NewBuffer()
	buf.DefineLabel("loop_0")
	buf.Emit(isa.NewPush(isa.ImmOperand(1)))
	second := buf.DefineLabel("loop_0")
	require.Equal(t, second, buf.LookupLabel("loop_0"))
}

func TestBufferRenderWithComments(t *testing.T) {
	buf := NewBuffer()
	buf.Emit(isa.NewPush(isa.ImmOperand(1)))
	buf.AnnotateLast("one")
	buf.Emit(isa.NewPush(isa.ImmOperand(2)))

	require.Equal(t, "push 1 # one\npush 2", buf.Render())
}

func TestBufferDevicesAndConstants(t *testing.T) {
	buf := NewBuffer()
	buf.DefineAlias("sensor", isa.D2)
	dev, ok := buf.LookupAlias("sensor")
	require.True(t, ok)
	require.Equal(t, isa.D2, dev)

	buf.DefineConstant("limit", constantValue{i: 10})
	cv, ok := buf.LookupConstant("limit")
	require.True(t, ok)
	require.Equal(t, int64(10), cv.i)

	_, ok = buf.LookupConstant("missing")
	require.False(t, ok)
}

func TestBufferLookupLabelMissingPanics(t *testing.T) {
	buf := NewBuffer()
	require.Panics(t, func() { buf.LookupLabel("nope") })
}
