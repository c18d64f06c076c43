package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jmgilman/go/persist/errctx"
	"github.com/jmgilman/go/persist/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapException_PreservesCause(t *testing.T) {
	cause := stderrors.New("Nested Exception")

	err := errors.WrapException(context.Background(), "Test Message", cause)

	require.NotNil(t, err)
	require.Equal(t, errors.KindPersistence, err.Kind())
	require.True(t, err.Unwrap() == cause)
	require.True(t, stderrors.Is(err, cause))
}

func TestWrapException_NoTrackedContext(t *testing.T) {
	cause := stderrors.New("Nested Exception")

	err := errors.WrapException(context.Background(), "Test Message", cause)

	require.Equal(t, "### Test Message\n### Cause: Nested Exception", err.Message())
	require.Nil(t, err.Context())
}

func TestWrapException_RendersTrail(t *testing.T) {
	ctx, rec, done := errctx.Begin(context.Background())
	defer done()
	rec.Resource("mappers/user.yaml").
		Activity("executing a query").
		Object("user.findByID").
		SQL("SELECT *\n\tFROM users\n WHERE id = ?")

	cause := stderrors.New("connection refused")
	err := errors.WrapException(ctx, "Error querying database.", cause)

	want := "### The error may exist in mappers/user.yaml\n" +
		"### The error occurred while executing a query\n" +
		"### The error may involve user.findByID\n" +
		"### SQL: SELECT *  FROM users  WHERE id = ?\n" +
		"### Error querying database.\n" +
		"### Cause: connection refused"
	require.Equal(t, want, err.Message())
	require.Equal(t, "[PERSISTENCE] "+want, err.Error())

	fields := err.Context()
	require.Equal(t, "mappers/user.yaml", fields["resource"])
	require.Equal(t, "executing a query", fields["activity"])
	require.Equal(t, "user.findByID", fields["object"])
}

func TestWrapException_DoesNotClearTracker(t *testing.T) {
	ctx, rec, done := errctx.Begin(context.Background())
	defer done()
	rec.Activity("committing")

	before := errctx.Instance(ctx).String()
	_ = errors.WrapException(ctx, "Error committing transaction.", stderrors.New("tx aborted"))

	require.Equal(t, before, errctx.Instance(ctx).String())
	require.Same(t, rec, errctx.Instance(ctx))
}

func TestWrapException_TrackedCauseNotDuplicated(t *testing.T) {
	cause := stderrors.New("deadlock detected")

	ctx, rec, done := errctx.Begin(context.Background())
	defer done()
	rec.Activity("executing an update").Cause(cause)

	err := errors.WrapException(ctx, "Error updating database.", cause)

	require.Equal(t,
		"### The error occurred while executing an update\n### Cause: deadlock detected\n### Error updating database.",
		err.Message())
}

func TestWrapException_NilCause(t *testing.T) {
	err := errors.WrapException(context.Background(), "nothing underneath", nil)

	require.NotNil(t, err)
	require.Nil(t, err.Unwrap())
	require.Equal(t, "### nothing underneath", err.Message())
}

func TestWrapException_Reproducible(t *testing.T) {
	ctx, rec, done := errctx.Begin(context.Background())
	defer done()
	rec.Activity("building a statement")

	cause := stderrors.New("boom")
	first := errors.WrapException(ctx, "failed", cause)
	second := errors.WrapException(ctx, "failed", cause)

	require.Equal(t, first.Message(), second.Message())
	require.Equal(t, first.Error(), second.Error())
	require.Equal(t, first.Context(), second.Context())
}

func TestWrapException_NestedScope(t *testing.T) {
	ctx, outer, done := errctx.Begin(context.Background())
	defer done()
	outer.Resource("config.yaml").Activity("parsing mappers")

	var inner errors.PersistenceError
	_ = errctx.Scope(ctx, func(ctx context.Context, rec *errctx.Record) error {
		rec.Activity("binding parameters").Object("user.insert")
		inner = errors.WrapException(ctx, "bind failed", stderrors.New("no handler"))
		return inner
	})

	require.Contains(t, inner.Message(), "binding parameters")
	require.NotContains(t, inner.Message(), "parsing mappers")

	after := errors.WrapException(ctx, "parse failed", stderrors.New("bad yaml"))
	require.Contains(t, after.Message(), "parsing mappers")
	require.NotContains(t, after.Message(), "binding parameters")
}

func TestWrapKind(t *testing.T) {
	cause := stderrors.New("yaml: line 3: mapping values are not allowed")

	ctx, rec, done := errctx.Begin(context.Background())
	defer done()
	rec.Resource("config.yaml")

	err := errors.WrapKind(ctx, errors.KindParsing, "Error parsing configuration.", cause)

	require.Equal(t, errors.KindParsing, err.Kind())
	require.True(t, err.Unwrap() == cause)
	require.Contains(t, err.Message(), "### The error may exist in config.yaml")
}

// exception1 fails at the driver, exception2 wraps with fmt, exception3 wraps
// again with a kind.
func exception1(ctx context.Context, sqlErr error) error {
	return errors.WrapException(ctx, "Test Msg1", sqlErr)
}

func exception2(ctx context.Context, sqlErr error) error {
	if err := exception1(ctx, sqlErr); err != nil {
		return fmt.Errorf("Test Msg2: %w", err)
	}
	return nil
}

func exception3(ctx context.Context, sqlErr error) error {
	if err := exception2(ctx, sqlErr); err != nil {
		return errors.Wrap(err, errors.KindExecutor, "Test Msg3")
	}
	return nil
}

func TestWrapException_ThreeLevelChain(t *testing.T) {
	sqlErr := stderrors.New("SQL DOT ERROR")

	err := exception3(context.Background(), sqlErr)
	require.Error(t, err)

	require.Equal(t, errors.KindExecutor, errors.GetKind(err))
	require.True(t, errors.IsKind(err, errors.KindPersistence))
	require.True(t, errors.RootCause(err) == sqlErr)
	require.Equal(t, "SQL DOT ERROR", errors.RootCause(err).Error())

	// Walking Cause by hand reaches the same error.
	var last error
	for e := err; e != nil; e = errors.Cause(e) {
		last = e
	}
	require.True(t, last == sqlErr)
}
