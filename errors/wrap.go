package errors

import (
	"fmt"
)

// Wrap wraps an error with a kind and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	conn, err := ds.Open(ctx)
//	if err != nil {
//	    return errors.Wrap(err, errors.KindDataSource, "failed to open connection")
//	}
func Wrap(err error, kind Kind, message string) PersistenceError {
	if err == nil {
		return nil
	}

	return &persistenceError{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := handler.Set(stmt, i, v); err != nil {
//	    return errors.Wrapf(err, errors.KindType, "could not set parameter %d", i)
//	}
func Wrapf(err error, kind Kind, format string, args ...interface{}) PersistenceError {
	if err == nil {
		return nil
	}

	return Wrap(err, kind, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := cache.Put(key, value); err != nil {
//	    return errors.WrapWithContext(err, errors.KindCache, "cache put failed", map[string]interface{}{
//	        "cache": cacheID,
//	    })
//	}
func WrapWithContext(err error, kind Kind, message string, ctx map[string]interface{}) PersistenceError {
	if err == nil {
		return nil
	}

	return &persistenceError{
		kind:    kind,
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}
}
