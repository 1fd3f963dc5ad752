// Package formbind provides the public API for the formbind form helper.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/formbind"
//
// Usage:
//
//	client := transport.New(transport.WithBaseURL(apiURL))
//	bag := errorbag.New()
//
//	f, err := formbind.New(map[string]any{"name": "", "email": ""},
//	    formbind.WithTransport(client),
//	    formbind.WithHandler(bag),
//	    formbind.WithResetOnSuccess(),
//	)
package formbind

import (
	"github.com/vango-dev/formbind/pkg/form"
)

// Form tracks named fields against a baseline snapshot and submits them
// over an injected transport. See package form.
type Form = form.Form

// Option configures a Form at construction time.
type Option = form.Option

// File is a live field value that serializes as a multipart file part.
type File = form.File

// Payload is an encoded request body together with its content type.
type Payload = form.Payload

// Response is the transport-level result of a submission.
type Response = form.Response

// Transport issues a single request on behalf of a form.
type Transport = form.Transport

// ErrorHandler is the external capability a form delegates error state
// and success/failure reporting to.
type ErrorHandler = form.ErrorHandler

// SerializationError reports data that could not be deep-copied.
type SerializationError = form.SerializationError

// TransportError reports a failed submission.
type TransportError = form.TransportError

// New creates a Form from the given data object. See form.New.
var New = form.New

// Construction options (re-export from pkg/form).
var (
	WithTransport      = form.WithTransport
	WithHandler        = form.WithHandler
	WithRaw            = form.WithRaw
	WithResetOnSuccess = form.WithResetOnSuccess
	WithAlertOnSuccess = form.WithAlertOnSuccess
	WithAlertOnError   = form.WithAlertOnError
	WithLogger         = form.WithLogger
)
