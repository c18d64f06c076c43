package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var pe errors.PersistenceError
//	if errors.As(err, &pe) {
//	    kind := pe.Kind()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind returns the kind of the outermost PersistenceError in err's chain.
// Returns an empty Kind if err is nil or the chain holds no PersistenceError.
//
// Example:
//
//	switch errors.GetKind(err) {
//	case errors.KindResourceNotFound:
//	    // fall back to built-in defaults
//	case errors.KindParsing:
//	    // report the broken file
//	}
func GetKind(err error) Kind {
	if err == nil {
		return ""
	}

	var pe PersistenceError
	if stderrors.As(err, &pe) {
		return pe.Kind()
	}
	return ""
}

// GetMessage returns the message of the outermost PersistenceError in err's
// chain, or err.Error() when there is none.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var pe PersistenceError
	if stderrors.As(err, &pe) {
		return pe.Message()
	}
	return err.Error()
}

// GetContext returns the context of the outermost PersistenceError in err's
// chain, or nil.
func GetContext(err error) map[string]interface{} {
	var pe PersistenceError
	if err != nil && stderrors.As(err, &pe) {
		return pe.Context()
	}
	return nil
}

// IsKind reports whether any PersistenceError in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if pe, ok := err.(PersistenceError); ok && pe.Kind() == kind {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// Cause returns the error directly wrapped by err, or nil.
func Cause(err error) error {
	return stderrors.Unwrap(err)
}

// RootCause follows the Unwrap chain to its end and returns the innermost
// error. It returns err itself when err wraps nothing.
//
// Example:
//
//	root := errors.RootCause(err) // the driver error, however many layers wrapped it
func RootCause(err error) error {
	for err != nil {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
