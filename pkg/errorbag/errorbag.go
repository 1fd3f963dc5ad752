package errorbag

import (
	"errors"
	"net/http"
	"sort"

	"github.com/vango-dev/formbind/pkg/form"
)

// Notifier surfaces submission outcomes to the user. Implementations are
// typically toast/snackbar components; a nil Notifier silently drops
// alerts.
type Notifier interface {
	// Success shows a success notification.
	Success(message string)

	// Error shows an error notification.
	Error(message string)
}

// Bag is a field-keyed error store that implements form.ErrorHandler.
// The zero value is not usable; construct with New.
type Bag struct {
	fields   map[string][]string
	message  string
	notifier Notifier
}

// Option configures a Bag.
type Option func(*Bag)

// WithNotifier routes alert-flagged success/error reports to n.
func WithNotifier(n Notifier) Option {
	return func(b *Bag) { b.notifier = n }
}

// New creates an empty Bag.
func New(opts ...Option) *Bag {
	b := &Bag{fields: make(map[string][]string)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ReportSuccess clears the bag and, when alert is set, notifies the user
// with the response's message (or a generic one).
func (b *Bag) ReportSuccess(resp *form.Response, alert bool) {
	b.ClearFieldError("")
	if !alert || b.notifier == nil {
		return
	}
	b.notifier.Success(successMessage(resp))
}

// ReportError records a failed submission. A response with a validation
// body of the shape
//
//	{"message": "...", "errors": {"field": ["msg", ...]}}
//
// populates the per-field errors; any other failure records the error
// text as the general message. When alert is set the general message is
// also sent to the Notifier.
func (b *Bag) ReportError(err error, alert bool) {
	b.message = ""

	var te *form.TransportError
	if errors.As(err, &te) && te.Response != nil && te.StatusCode == http.StatusUnprocessableEntity {
		var body struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		if decodeErr := te.Response.JSON(&body); decodeErr == nil {
			for field, msgs := range body.Errors {
				b.fields[field] = append(b.fields[field], msgs...)
			}
			b.message = body.Message
		}
	}
	if b.message == "" {
		b.message = err.Error()
	}

	if alert && b.notifier != nil {
		b.notifier.Error(b.message)
	}
}

// HasFieldError reports whether the field has an error; an empty field
// name asks whether the bag holds anything at all.
func (b *Bag) HasFieldError(field string) bool {
	if field == "" {
		return len(b.fields) > 0 || b.message != ""
	}
	return len(b.fields[field]) > 0
}

// GetFieldError returns the first error message for the field, or the
// empty string. An empty field name returns the general message, falling
// back to the first field error in name order.
func (b *Bag) GetFieldError(field string) string {
	if field == "" {
		if b.message != "" {
			return b.message
		}
		keys := make([]string, 0, len(b.fields))
		for k := range b.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			return b.fields[k][0]
		}
		return ""
	}
	if msgs := b.fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ClearFieldError removes the field's errors; an empty field name empties
// the whole bag.
func (b *Bag) ClearFieldError(field string) {
	if field == "" {
		b.fields = make(map[string][]string)
		b.message = ""
		return
	}
	delete(b.fields, field)
}

// AddFieldError appends an error message for the field.
func (b *Bag) AddFieldError(field, message string) {
	b.fields[field] = append(b.fields[field], message)
}

// Any reports whether the bag holds any error.
func (b *Bag) Any() bool {
	return b.HasFieldError("")
}

// Count returns the number of fields with errors.
func (b *Bag) Count() int {
	return len(b.fields)
}

// Get returns the first error message for the field, or "".
func (b *Bag) Get(field string) string {
	return b.GetFieldError(field)
}

// All returns a copy of every field's error messages.
func (b *Bag) All() map[string][]string {
	out := make(map[string][]string, len(b.fields))
	for field, msgs := range b.fields {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// Message returns the general (non-field) error message, if any.
func (b *Bag) Message() string {
	return b.message
}

// successMessage extracts a display message from a successful response,
// falling back to a generic one.
func successMessage(resp *form.Response) string {
	if resp != nil && len(resp.Body) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if err := resp.JSON(&body); err == nil && body.Message != "" {
			return body.Message
		}
	}
	return "Success!"
}
