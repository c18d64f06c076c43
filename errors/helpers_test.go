package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"standard error", stderrors.New("x"), ""},
		{"persistence error", New(KindSession, "closed"), KindSession},
		{"fmt wrapped", fmt.Errorf("outer: %w", New(KindCache, "x")), KindCache},
		{"outermost wins", Wrap(New(KindType, "inner"), KindExecutor, "outer"), KindExecutor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetKind(tt.err))
		})
	}
}

func TestGetMessage(t *testing.T) {
	require.Equal(t, "", GetMessage(nil))
	require.Equal(t, "plain", GetMessage(stderrors.New("plain")))
	require.Equal(t, "closed", GetMessage(fmt.Errorf("outer: %w", New(KindSession, "closed"))))
}

func TestGetContext(t *testing.T) {
	require.Nil(t, GetContext(nil))
	require.Nil(t, GetContext(stderrors.New("plain")))

	err := WithContext(New(KindBuilder, "duplicate id"), "statement", "user.find")
	require.Equal(t, map[string]interface{}{"statement": "user.find"}, GetContext(err))
}

func TestIsKind(t *testing.T) {
	inner := New(KindType, "no handler")
	outer := Wrap(fmt.Errorf("middle: %w", inner), KindExecutor, "outer")

	require.True(t, IsKind(outer, KindExecutor))
	require.True(t, IsKind(outer, KindType))
	require.False(t, IsKind(outer, KindCache))
	require.False(t, IsKind(nil, KindCache))
	require.False(t, IsKind(stderrors.New("x"), KindPersistence))
}

func TestCause(t *testing.T) {
	root := stderrors.New("root")
	err := Wrap(root, KindExecutor, "wrapped")

	require.True(t, Cause(err) == root)
	require.Nil(t, Cause(root))
	require.Nil(t, Cause(nil))
}

func TestRootCause(t *testing.T) {
	root := stderrors.New("root")

	var err error = root
	for i := 0; i < 5; i++ {
		err = Wrapf(err, KindExecutor, "layer %d", i)
		err = fmt.Errorf("fmt layer %d: %w", i, err)
	}

	require.True(t, RootCause(err) == root)
	require.True(t, RootCause(root) == root)
	require.Nil(t, RootCause(nil))
}

func TestIsAs(t *testing.T) {
	root := stderrors.New("root")
	err := Wrap(root, KindCache, "wrapped")

	require.True(t, Is(err, root))

	var pe PersistenceError
	require.True(t, As(fmt.Errorf("x: %w", err), &pe))
	require.Equal(t, KindCache, pe.Kind())
}
