package form

import (
	"fmt"
	"log/slog"
	"sort"
)

// Form tracks a set of named fields against a baseline snapshot and drives
// request submission through an injected Transport.
//
// A Form owns two copies of its data: the baseline captured at construction
// (or Fill) time, and the live values the caller mutates through Set. The
// tracked key set always equals the baseline's key set; keys are only
// added or removed by Fill, Update, and CombineForm.
//
// The zero value is not usable; construct with New.
type Form struct {
	keys     []string // tracked field names, kept sorted
	original map[string]any
	live     map[string]any

	busy         bool
	errorVersion int

	raw            bool
	resetOnSuccess bool
	alertOnSuccess bool
	alertOnError   bool
	handler        ErrorHandler
	transport      Transport
	logger         *slog.Logger
}

// Option configures a Form at construction time.
type Option func(*Form)

// WithTransport sets the transport used to issue requests.
// A Form without a transport can still track and serialize data, but every
// Submit fails with a TransportError.
func WithTransport(t Transport) Option {
	return func(f *Form) { f.transport = t }
}

// WithHandler sets the external error handler the form delegates
// error queries, error mutations, and success/failure reports to.
func WithHandler(h ErrorHandler) Option {
	return func(f *Form) { f.handler = h }
}

// WithRaw skips the deep copy of the construction data and aliases the
// caller's map directly as the baseline. The caller accepts that mutating
// the map afterwards changes the baseline. Raw mode requires the data to
// be a map[string]any.
func WithRaw() Option {
	return func(f *Form) { f.raw = true }
}

// WithResetOnSuccess makes every successful submission run Reset.
func WithResetOnSuccess() Option {
	return func(f *Form) { f.resetOnSuccess = true }
}

// WithAlertOnSuccess asks the handler to alert the user on successful
// submissions.
func WithAlertOnSuccess() Option {
	return func(f *Form) { f.alertOnSuccess = true }
}

// WithAlertOnError asks the handler to alert the user on failed
// submissions.
func WithAlertOnError() Option {
	return func(f *Form) { f.alertOnError = true }
}

// WithLogger sets the logger used for submission and dirty-tracking
// diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) { f.logger = logger }
}

// New creates a Form from the given data object.
//
// By default the data is deep-copied into both the baseline and the live
// values via a JSON round trip, so later mutation of the caller's object
// cannot change the snapshot. Data that cannot survive the round trip
// (cycles, channels, functions, non-object values) fails with a
// SerializationError. With WithRaw the copy is skipped; see WithRaw.
func New(data any, opts ...Option) (*Form, error) {
	f := &Form{
		logger: slog.Default().With("component", "form"),
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.assign(data, f.raw); err != nil {
		return nil, err
	}
	return f, nil
}

// assign replaces the tracked key set, baseline, and live values from data,
// honoring raw/copy semantics.
func (f *Form) assign(data any, raw bool) error {
	if raw {
		m, ok := data.(map[string]any)
		if !ok {
			return &SerializationError{Err: fmt.Errorf("raw mode requires map[string]any, got %T", data)}
		}
		// Alias the baseline, but give live values their own slots so Set
		// cannot write through to the caller's map.
		live := make(map[string]any, len(m))
		for k, v := range m {
			live[k] = v
		}
		f.original = m
		f.live = live
	} else {
		original, live, err := clonePair(data)
		if err != nil {
			return err
		}
		f.original = original
		f.live = live
	}

	keys := make([]string, 0, len(f.original))
	for k := range f.original {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	f.keys = keys
	return nil
}

// Fill replaces both the baseline and the live values from data,
// implicitly resetting the form. The raw flag has the same semantics as
// WithRaw, and non-serializable input fails identically to New, leaving
// the form untouched.
func (f *Form) Fill(data any, raw bool) error {
	// Validate the new data before discarding anything.
	probe := &Form{}
	if err := probe.assign(data, raw); err != nil {
		return err
	}
	f.ClearError("")
	f.keys = probe.keys
	f.original = probe.original
	f.live = probe.live
	return nil
}

// Update overlays values from data onto the live state of the fields the
// form already tracks. The baseline is unchanged, and keys in data that
// are not tracked are dropped.
//
// Iteration is over the existing key set with values read from the new
// data, so a tracked field missing from data gets a nil live value. This
// mirrors the long-standing behavior of the data model rather than
// treating the missing key as "leave unchanged".
func (f *Form) Update(data any, raw bool) error {
	var m map[string]any
	if raw {
		mm, ok := data.(map[string]any)
		if !ok {
			return &SerializationError{Err: fmt.Errorf("raw mode requires map[string]any, got %T", data)}
		}
		m = mm
	} else {
		var err error
		m, err = cloneToMap(data)
		if err != nil {
			return err
		}
	}
	for _, k := range f.keys {
		f.live[k] = m[k]
	}
	return nil
}

// Reset blanks every live field to the empty string and clears errors
// through the handler bridge. The baseline is preserved.
func (f *Form) Reset() {
	for _, k := range f.keys {
		f.live[k] = ""
	}
	f.ClearError("")
}

// CombineForm merges another form's fields into this one: for every key
// the other form tracks, its baseline value becomes this form's baseline
// value and its live value becomes this form's live value, overwriting on
// collision. The other form is left unchanged. Error state, the busy flag,
// and configuration are not merged.
func (f *Form) CombineForm(other *Form) {
	for _, k := range other.keys {
		if _, ok := f.original[k]; !ok {
			f.keys = append(f.keys, k)
		}
		f.original[k] = other.original[k]
		f.live[k] = other.live[k]
	}
	sort.Strings(f.keys)
}

// Fields returns the tracked field names in serialization order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Get returns the live value of a field, or nil for untracked fields.
func (f *Form) Get(field string) any {
	return f.live[field]
}

// GetString returns a live field value as a string.
func (f *Form) GetString(field string) string {
	v := f.Get(field)
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// GetInt returns a live field value as an int.
func (f *Form) GetInt(field string) int {
	switch n := f.Get(field).(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// GetBool returns a live field value as a bool.
func (f *Form) GetBool(field string) bool {
	if b, ok := f.Get(field).(bool); ok {
		return b
	}
	return false
}

// Set updates the live value of a tracked field. Setting an untracked
// field is a no-op; fields only enter the form through New, Fill, Update,
// or CombineForm.
func (f *Form) Set(field string, value any) {
	if _, ok := f.original[field]; !ok {
		return
	}
	f.live[field] = value
}

// IsBusy reports whether a submission is in flight. The flag is advisory:
// nothing prevents overlapping Submit calls.
func (f *Form) IsBusy() bool {
	return f.busy
}

// ErrorVersion returns a counter that increments each time an error
// mutation (AddError or ClearError) is successfully delegated to the
// handler. It serves as a cheap "error state changed" stamp; queries
// never advance it.
func (f *Form) ErrorVersion() int {
	return f.errorVersion
}

// HasError reports whether the handler holds an error for the field.
// An empty field name asks about any field. Without a handler this is
// always false.
func (f *Form) HasError(field string) bool {
	if f.handler == nil {
		return false
	}
	return f.handler.HasFieldError(field)
}

// GetError returns the handler's error message for the field, or the
// empty string. An empty field name asks for any message. Without a
// handler this is always empty.
func (f *Form) GetError(field string) string {
	if f.handler == nil {
		return ""
	}
	return f.handler.GetFieldError(field)
}

// ClearError removes the handler's error for the field; an empty field
// name clears everything. Without a handler this is a no-op.
func (f *Form) ClearError(field string) {
	if f.handler == nil {
		return
	}
	f.handler.ClearFieldError(field)
	f.errorVersion++
}

// AddError records an error message for the field on the handler.
// Without a handler this is a no-op.
func (f *Form) AddError(field, message string) {
	if f.handler == nil {
		return
	}
	f.handler.AddFieldError(field, message)
	f.errorVersion++
}
