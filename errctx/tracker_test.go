package errctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_InstanceIsLazy(t *testing.T) {
	tr := NewTracker()
	require.Equal(t, 0, tr.Depth())

	r := tr.Instance()
	require.NotNil(t, r)
	require.Same(t, r, tr.Instance())
	require.Equal(t, 1, tr.Depth())
}

func TestTracker_StoreReset_RoundTrip(t *testing.T) {
	tr := NewTracker()
	tr.Instance().Activity("A").Object("a")
	want := tr.Instance().String()

	tr.Store().Activity("B").Object("b")
	require.Equal(t, 2, tr.Depth())
	require.Contains(t, tr.Instance().String(), "B")

	tr.Reset()

	require.Equal(t, 1, tr.Depth())
	require.Equal(t, want, tr.Instance().String())
}

func TestTracker_StoreDoesNotInherit(t *testing.T) {
	tr := NewTracker()
	tr.Instance().Activity("outer")

	inner := tr.Store()

	require.True(t, inner.Empty())
}

func TestTracker_ResetToEmpty(t *testing.T) {
	tr := NewTracker()
	tr.Instance().Activity("only")

	tr.Reset()

	require.Equal(t, 0, tr.Depth())
	require.True(t, tr.Instance().Empty())
}

func TestTracker_ResetOnEmpty(t *testing.T) {
	tr := NewTracker()
	tr.Reset()
	require.Equal(t, 0, tr.Depth())
}

func TestTracker_DeepNesting(t *testing.T) {
	tr := NewTracker()
	tr.Instance().Object("level-0")

	names := []string{"level-1", "level-2", "level-3"}
	for _, n := range names {
		tr.Store().Object(n)
	}
	require.Equal(t, 4, tr.Depth())

	for i := len(names) - 1; i >= 0; i-- {
		require.Contains(t, tr.Instance().String(), names[i])
		tr.Reset()
	}
	require.Contains(t, tr.Instance().String(), "level-0")
}

func TestTracker_Clear(t *testing.T) {
	tr := NewTracker()
	tr.Instance().Activity("a")
	tr.Store().Activity("b")

	tr.Clear()

	require.Equal(t, 0, tr.Depth())
}
