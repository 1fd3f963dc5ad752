// Package form provides stateful form binding and submission for client
// applications.
//
// # Overview
//
// A Form snapshots an initial data object, exposes the live field values
// for mutation, tracks per-field and whole-form dirtiness against the
// snapshot, and submits the live values over an injected Transport as a
// JSON or multipart request body.
//
// # Basic Usage
//
//	f, err := form.New(map[string]any{
//	    "name":  "",
//	    "email": "",
//	}, form.WithTransport(client), form.WithHandler(bag))
//	if err != nil {
//	    return err
//	}
//
//	f.Set("name", "Ada")
//	f.Set("email", "ada@example.com")
//
//	if f.IsDirty() {
//	    resp, err := f.Post(ctx, "/contacts")
//	    ...
//	}
//
// # Dirty Tracking
//
// Field comparison uses loose, type-coercing equality: numbers, numeric
// strings, and booleans that coerce to the same numeric value compare
// equal even across types. This matches the comparison semantics form
// values pick up from JSON decoding, where every number arrives as a
// float64 regardless of what the caller later writes back.
//
// # Concurrency
//
// A Form belongs to a single goroutine. The busy flag is advisory: Submit
// neither queues nor rejects overlapping calls, and callers that need
// single-flight behavior should check IsBusy before submitting. There is
// no cancellation mechanism beyond the context passed to Submit.
package form
