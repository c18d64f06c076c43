package errors

// PersistenceError is the error returned by every layer of the persistence
// framework. It carries a Kind so callers can react to a specific failure,
// the message rendered when the error was created, and the original cause.
//
// PersistenceError works with the standard library error functions
// (errors.Is, errors.As, errors.Unwrap).
type PersistenceError interface {
	error

	// Kind returns the taxonomy member this error belongs to.
	Kind() Kind

	// Message returns the message exactly as supplied or derived at construction.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the cause passed at construction, or nil.
	Unwrap() error
}
