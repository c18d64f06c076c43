package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure for reporting errors.
// It provides a flat, serializable representation of errors without exposing
// the wrapped error chain.
type ErrorResponse struct {
	// Kind identifies the taxonomy member.
	Kind string `json:"kind"`

	// Message is the rendered error message.
	Message string `json:"message"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For PersistenceError instances, extracts kind, message and context.
// For standard errors, uses KindPersistence and the error message.
//
// The wrapped error chain is intentionally excluded: driver errors often
// embed connection strings, statement text or file paths.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	kind := KindPersistence
	message := err.Error()
	var context map[string]interface{}

	var pe PersistenceError
	if As(err, &pe) {
		kind = pe.Kind()
		message = pe.Message()
		context = pe.Context()
	}

	return &ErrorResponse{
		Kind:    string(kind),
		Message: message,
		Context: context,
	}
}

// MarshalJSON implements json.Marshaler for persistenceError.
//
// Example:
//
//	err := errors.New(errors.KindSession, "session already closed")
//	data, _ := json.Marshal(err)
//	// {"kind":"SESSION","message":"session already closed"}
func (e *persistenceError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Kind:    string(e.kind),
		Message: e.message,
		Context: e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &persistenceError{
			kind:    KindPersistence,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
