package errors

import "fmt"

// Default creates an error of the given kind with the kind's default message
// and no cause.
//
// Example:
//
//	err := errors.Default(errors.KindSession)
//	fmt.Println(err) // [SESSION] session error
func Default(kind Kind) PersistenceError {
	return &persistenceError{
		kind:    kind,
		message: kind.DefaultMessage(),
	}
}

// New creates an error of the given kind with a message and no cause.
// The message is stored verbatim.
//
// Example:
//
//	err := errors.New(errors.KindBinding, "mapper method UserMapper.findAll is not bound")
func New(kind Kind, message string) PersistenceError {
	return &persistenceError{
		kind:    kind,
		message: message,
	}
}

// Newf creates an error of the given kind with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.KindTooManyResults, "expected one result but found %d", n)
func Newf(kind Kind, format string, args ...interface{}) PersistenceError {
	return &persistenceError{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
	}
}

// FromCause creates an error of the given kind whose message is the cause's
// own message. The cause is kept by reference.
//
// Returns nil if cause is nil.
//
// Example:
//
//	if err := tx.Commit(); err != nil {
//	    return errors.FromCause(err, errors.KindTransaction)
//	}
func FromCause(cause error, kind Kind) PersistenceError {
	if cause == nil {
		return nil
	}

	return &persistenceError{
		kind:    kind,
		message: cause.Error(),
		cause:   cause,
	}
}
