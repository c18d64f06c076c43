package errors

import "fmt"

// persistenceError is the concrete implementation of PersistenceError.
// It is private to enforce construction through package functions.
type persistenceError struct {
	kind    Kind
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[KIND] message". The cause is reachable through Unwrap.
func (e *persistenceError) Error() string {
	return fmt.Sprintf("[%s] %s", e.kind, e.message)
}

// Kind returns the error kind.
func (e *persistenceError) Kind() Kind {
	return e.kind
}

// Message returns the error message.
func (e *persistenceError) Message() string {
	return e.message
}

// Context returns a defensive copy of the context map.
// Returns nil if no context has been attached.
func (e *persistenceError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *persistenceError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
