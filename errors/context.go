package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new PersistenceError with the context field added.
// Existing context fields are preserved.
//
// If err is not a PersistenceError, it is converted to one with KindPersistence
// that keeps err as its cause.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.KindBuilder, "duplicate statement id")
//	err = errors.WithContext(err, "statement", "user.findByID")
func WithContext(err error, key string, value interface{}) PersistenceError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Returns a new PersistenceError with the context fields merged.
// New fields override existing ones with the same key.
//
// If err is not a PersistenceError, it is converted to one with KindPersistence.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PersistenceError {
	if err == nil {
		return nil
	}

	var pe PersistenceError
	if !errors.As(err, &pe) {
		pe = FromCause(err, KindPersistence)
	}

	merged := make(map[string]interface{})
	for k, v := range pe.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &persistenceError{
		kind:    pe.Kind(),
		message: pe.Message(),
		context: merged,
		cause:   pe.Unwrap(),
	}
}
