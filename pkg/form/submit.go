package form

import (
	"context"
	"errors"
	"strings"
)

// Submit drives one submission lifecycle: mark the form busy, serialize
// the live values, invoke the transport, report the outcome to the
// handler, and clear the busy flag.
//
// On success the handler's ReportSuccess runs with the alert-on-success
// flag, and the form resets if configured with WithResetOnSuccess. On
// failure ReportError runs with the alert-on-error flag and the error is
// returned. The busy flag is cleared on both paths, even if a handler
// callback panics.
//
// GET requests carry no body; use the Get helper to move the form data
// into the query string instead.
func (f *Form) Submit(ctx context.Context, method, url string, multipart bool) (resp *Response, err error) {
	if f.transport == nil {
		return nil, &TransportError{Method: method, URL: url, Err: errors.New("no transport configured")}
	}

	f.busy = true
	defer func() { f.busy = false }()

	var payload *Payload
	if !strings.EqualFold(method, "get") {
		payload, err = f.Payload(multipart)
		if err != nil {
			return nil, err
		}
	}

	f.logger.Debug("submitting form", "method", method, "url", url, "multipart", multipart)

	resp, err = f.transport.Invoke(ctx, method, url, payload)
	if err != nil {
		if f.handler != nil {
			f.handler.ReportError(err, f.alertOnError)
		}
		return nil, err
	}

	if f.handler != nil {
		f.handler.ReportSuccess(resp, f.alertOnSuccess)
	}
	if f.resetOnSuccess {
		f.Reset()
	}
	return resp, nil
}

// Post submits the form as a JSON POST request.
func (f *Form) Post(ctx context.Context, url string) (*Response, error) {
	return f.Submit(ctx, "post", url, false)
}

// Put submits the form as a JSON PUT request.
func (f *Form) Put(ctx context.Context, url string) (*Response, error) {
	return f.Submit(ctx, "put", url, false)
}

// Patch submits the form as a JSON PATCH request.
func (f *Form) Patch(ctx context.Context, url string) (*Response, error) {
	return f.Submit(ctx, "patch", url, false)
}

// Delete submits the form as a JSON DELETE request.
func (f *Form) Delete(ctx context.Context, url string) (*Response, error) {
	return f.Submit(ctx, "delete", url, false)
}

// Get issues a GET request with the form data moved into the query
// string and an empty body.
func (f *Form) Get(ctx context.Context, url string) (*Response, error) {
	return f.Submit(ctx, "get", f.ToQueryString(url), false)
}
