// Package errorbag provides a ready-made error handler for forms.
//
// A Bag stores error messages keyed by field name plus one general
// message, and implements form.ErrorHandler: failed submissions whose
// response carries a validation body populate the bag automatically, and
// alert-flagged reports are routed to an optional Notifier.
//
//	bag := errorbag.New(errorbag.WithNotifier(toasts))
//	f, _ := form.New(data, form.WithHandler(bag), form.WithAlertOnError())
//
//	if _, err := f.Post(ctx, "/register"); err != nil {
//	    msg := bag.Get("email") // e.g. "The email has already been taken."
//	    ...
//	}
package errorbag
