package form

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"
)

// Transport issues a single request on behalf of a form. Implementations
// classify failures (network errors, non-2xx responses) as errors;
// the transport in package transport returns *TransportError for both.
//
// Method strings are the lowercase verbs "get", "post", "put", "patch",
// and "delete". The payload is nil for bodyless requests.
type Transport interface {
	Invoke(ctx context.Context, method, url string, payload *Payload) (*Response, error)
}

// ErrorHandler is the external capability a form delegates error state
// and success/failure reporting to. The form calls its methods but never
// manages its lifecycle.
//
// An empty field name means "any field" for queries and "all fields" for
// ClearFieldError.
type ErrorHandler interface {
	// ReportSuccess is called after a successful submission. alert asks
	// the handler to surface the outcome to the user.
	ReportSuccess(resp *Response, alert bool)

	// ReportError is called after a failed submission. alert asks the
	// handler to surface the failure to the user.
	ReportError(err error, alert bool)

	HasFieldError(field string) bool
	GetFieldError(field string) string
	ClearFieldError(field string)
	AddFieldError(field, message string)
}

// Payload is an encoded request body together with its content type.
type Payload struct {
	ContentType string
	Body        []byte
}

// Response is the transport-level result of a submission.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
