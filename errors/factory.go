package errors

import (
	"context"
	"strings"

	"github.com/jmgilman/go/persist/errctx"
)

// WrapException converts a low-level failure into a generic persistence error.
//
// The message is the trail rendered from the errctx record carried by ctx,
// followed by the supplied message and the cause. The record's fields are
// attached as the error's context. The cause is kept by reference, so
// Unwrap returns exactly the error passed in.
//
// WrapException neither modifies nor clears the tracked record; releasing
// it is the job of whoever called errctx.Begin.
//
// Example:
//
//	ctx, rec, done := errctx.Begin(ctx)
//	defer done()
//	rec.Activity("executing an update").Object("user.insert")
//
//	if _, err := stmt.ExecContext(ctx, args...); err != nil {
//	    return errors.WrapException(ctx, "Error updating database.", err)
//	}
func WrapException(ctx context.Context, message string, cause error) PersistenceError {
	return WrapKind(ctx, KindPersistence, message, cause)
}

// WrapKind is WrapException for a specific kind.
func WrapKind(ctx context.Context, kind Kind, message string, cause error) PersistenceError {
	rec := errctx.Instance(ctx)

	return &persistenceError{
		kind:    kind,
		message: renderTrail(rec, message, cause),
		context: rec.Fields(),
		cause:   cause,
	}
}

// renderTrail appends message and cause to the record's rendering. The cause
// line is skipped when the record already reports the same cause.
func renderTrail(rec *errctx.Record, message string, cause error) string {
	var b strings.Builder
	b.WriteString(rec.String())

	line := func(s string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("### ")
		b.WriteString(s)
	}

	if message != "" {
		line(message)
	}
	if cause != nil {
		if tracked := rec.CauseErr(); tracked == nil || tracked.Error() != cause.Error() {
			line("Cause: " + cause.Error())
		}
	}
	return b.String()
}
