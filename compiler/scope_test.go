package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"icc/isa"
)

func TestScopeStackDistance(t *testing.T) {
	s := NewScope()
	s.AllocateLocal("a")
	require.EqualValues(t, 1, s.StackDistance(mustLookup(t, s, "a")))

	s.AllocateLocal("b")
	require.EqualValues(t, 2, s.StackDistance(mustLookup(t, s, "a")))
	require.EqualValues(t, 1, s.StackDistance(mustLookup(t, s, "b")))

	s.DeallocateLocal("b")
	require.EqualValues(t, 1, s.StackDistance(mustLookup(t, s, "a")))
}

func TestBindStackParameter(t *testing.T) {
	// g(a,b,c,d,e): 5 parameters, index 4 ("e") is the sole stack-passed one.
	loc := BindStackParameter(4, 5)
	s := NewScope()
	require.EqualValues(t, 1, s.StackDistance(loc))

	// h(a,b,c,d,e,f): indices 4 and 5 are stack-passed.
	loc4 := BindStackParameter(4, 6)
	loc5 := BindStackParameter(5, 6)
	require.EqualValues(t, 2, s.StackDistance(loc4))
	require.EqualValues(t, 1, s.StackDistance(loc5))
}

func TestScopeSaveRestoreRegister(t *testing.T) {
	buf := NewBuffer()
	s := NewScope()
	s.SaveRegister(buf, isa.Ra)
	require.EqualValues(t, 1, s.SPOffset())
	s.RestoreRegister(buf, isa.Ra)
	require.EqualValues(t, 0, s.SPOffset())
	require.Equal(t, "push ra\npop ra", buf.Render())
}

func TestScopeLoopAndIfNaming(t *testing.T) {
	s := NewScope()
	require.Equal(t, "loop_0", s.NewLoop())
	require.Equal(t, "loop_1", s.NewLoop())
	s.EndLoop()
	require.Equal(t, "if_0", s.NewIf())
	require.Equal(t, "if_1", s.NewIf())
}

func TestScopeResetReplaysCounters(t *testing.T) {
	s := NewScope()
	s.NewLoop()
	s.NewIf()
	s.AllocateLocal("x")
	s.Reset()
	require.Equal(t, "loop_0", s.NewLoop())
	require.Equal(t, "if_0", s.NewIf())
	_, ok := s.Lookup("x")
	require.False(t, ok)
}

func mustLookup(t *testing.T, s *Scope, name string) Location {
	t.Helper()
	loc, ok := s.Lookup(name)
	require.True(t, ok)
	return loc
}
