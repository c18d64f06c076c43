package errctx

import "context"

type trackerKey struct{}

// WithTracker returns a copy of ctx carrying a new, empty tracker.
func WithTracker(ctx context.Context) (context.Context, *Tracker) {
	t := NewTracker()
	return context.WithValue(ctx, trackerKey{}, t), t
}

// FromContext returns the tracker attached to ctx, if any.
func FromContext(ctx context.Context) (*Tracker, bool) {
	if ctx == nil {
		return nil, false
	}
	t, ok := ctx.Value(trackerKey{}).(*Tracker)
	return t, ok && t != nil
}

// Instance returns the current record of the tracker attached to ctx.
// When ctx carries no tracker a detached record is returned: writes to it are
// accepted and discarded, so call sites never need to check.
func Instance(ctx context.Context) *Record {
	if t, ok := FromContext(ctx); ok {
		return t.Instance()
	}
	return &Record{}
}

// Begin starts tracking for an operation and returns the record to fill in
// along with a release func. The caller must run release on every exit path,
// normally with defer:
//
//	ctx, rec, done := errctx.Begin(ctx)
//	defer done()
//	rec.Activity("executing a query").SQL(stmt)
//
// If ctx already carries a tracker a new record is pushed on it and release
// restores the previous one. Otherwise a tracker is attached to the returned
// context and release clears it.
func Begin(ctx context.Context) (context.Context, *Record, func()) {
	t, ok := FromContext(ctx)
	if !ok {
		ctx, t = WithTracker(ctx)
	}

	prev := t.current
	var rec *Record
	if prev == nil {
		rec = t.Instance()
	} else {
		rec = t.Store()
	}
	return ctx, rec, func() { t.restore(prev) }
}

// Scope runs fn between Begin and its release.
func Scope(ctx context.Context, fn func(context.Context, *Record) error) error {
	ctx, rec, done := Begin(ctx)
	defer done()
	return fn(ctx, rec)
}
