// Package errctx tracks what an operation was doing so a failure can be
// reported with a readable trail.
//
// Each logical operation owns a Tracker, carried on its context.Context. Call
// sites entering risky work (executing a statement, binding a parameter,
// parsing a mapping) describe it on the tracker's current Record. When that
// work fails, errors.WrapException renders the record into the error message.
//
// Nested operations push their own record with Begin and restore the outer
// one when they release it:
//
//	func (e *Executor) Query(ctx context.Context, id, stmt string) error {
//	    ctx, rec, done := errctx.Begin(ctx)
//	    defer done()
//	    rec.Activity("executing a query").Object(id).SQL(stmt)
//
//	    if err := e.run(ctx, stmt); err != nil {
//	        return errors.WrapException(ctx, "Error querying database.", err)
//	    }
//	    return nil
//	}
//
// The tracked context is diagnostic only. Its absence never changes control
// flow; a context without a tracker yields a detached record whose writes are
// dropped.
//
// A Tracker is not safe for concurrent use. Goroutines spawned by an operation
// should start their own tracker rather than share the parent's.
package errctx
