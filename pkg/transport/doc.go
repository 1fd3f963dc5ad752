// Package transport provides the HTTP implementation of form.Transport,
// plus optional Prometheus and OpenTelemetry instrumentation wrappers.
//
//	client := transport.New(
//	    transport.WithBaseURL("https://api.example.com"),
//	    transport.WithHeader("Authorization", "Bearer "+token),
//	)
//
//	t := transport.Trace(transport.Instrument(client))
//	f, _ := form.New(data, form.WithTransport(t))
package transport
