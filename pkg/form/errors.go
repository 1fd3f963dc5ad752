package form

import "fmt"

// SerializationError reports that input data to New, Fill, or Update
// could not be deep-copied: it contains a cycle, a non-JSON value such as
// a channel or function, or is not an object at all.
type SerializationError struct {
	Err error
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("form: data is not serializable: %v", e.Err)
}

// Unwrap returns the underlying encoding error.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// TransportError reports a failed submission: either the request never
// completed (network failure, no transport configured) or the server
// answered with a non-2xx status. When a response was received it is
// attached so handlers can inspect the body, e.g. for validation errors.
type TransportError struct {
	Method string
	URL    string

	// StatusCode is zero when the request never reached the server.
	StatusCode int

	// Response is non-nil when a response was received.
	Response *Response

	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("form: %s %s failed with status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("form: %s %s failed: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}
