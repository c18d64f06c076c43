// Package errors provides the error taxonomy of the persistence framework.
//
// Every failure surfaced by the framework is a PersistenceError: a Kind that
// callers can switch on, a message fixed at construction, optional context
// metadata, and the original cause. Low-level causes are never discarded;
// the full chain stays reachable through Unwrap, errors.Is and errors.As.
//
// # Kinds
//
// The taxonomy is closed and listed by Kinds():
//
//   - Mapping and configuration: KindBinding, KindBuilder, KindParsing, KindScripting, KindPlugin
//   - Runtime: KindCache, KindDataSource, KindExecutor, KindSession, KindTransaction, KindTooManyResults
//   - Types and reflection: KindType, KindReflection, KindLog
//   - Resolution: KindResourceNotFound, KindTypeNotFound
//   - Generic: KindPersistence
//
// # Construction
//
// Every kind supports the same four shapes:
//
//	errors.Default(errors.KindCache)                    // default message, no cause
//	errors.New(errors.KindCache, "cache is full")        // message, no cause
//	errors.Wrap(err, errors.KindCache, "eviction failed") // message and cause
//	errors.FromCause(err, errors.KindCache)             // message taken from the cause
//
// Messages are stored verbatim and causes by reference.
//
// # Wrapping with tracked context
//
// WrapException turns a driver or subsystem failure into a KindPersistence
// error whose message carries the trail recorded in package errctx:
//
//	ctx, rec, done := errctx.Begin(ctx)
//	defer done()
//	rec.Resource("mappers/user.yaml").Activity("executing a query").Object("user.findByID")
//
//	rows, err := db.QueryContext(ctx, stmt, id)
//	if err != nil {
//	    return errors.WrapException(ctx, "Error querying database.", err)
//	}
//
// renders as:
//
//	[PERSISTENCE] ### The error may exist in mappers/user.yaml
//	### The error occurred while executing a query
//	### The error may involve user.findByID
//	### Error querying database.
//	### Cause: connection refused
//
// # Discrimination
//
//	if errors.IsKind(err, errors.KindResourceNotFound) {
//	    // use built-in defaults
//	}
//
//	root := errors.RootCause(err) // innermost error however often it was wrapped
//
// # JSON
//
// ToJSON and MarshalJSON emit kind, message and context but never the cause
// chain.
package errors
