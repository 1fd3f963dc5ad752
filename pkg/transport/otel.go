package transport

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/formbind/pkg/form"
)

// Default tracer name for form submissions.
const defaultTracerName = "formbind"

// TraceConfig configures the OpenTelemetry wrapper.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "formbind").
	TracerName string

	// AttributeExtractor adds custom attributes to each span.
	AttributeExtractor func(method, url string) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the OpenTelemetry wrapper.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) { c.TracerName = name }
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(method, url string) []attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) { c.AttributeExtractor = extractor }
}

// traced wraps a Transport with OpenTelemetry spans.
type traced struct {
	next   form.Transport
	config TraceConfig
}

// Trace wraps next so every submission runs inside a client span with
// the method and URL recorded, errors captured via RecordError, and the
// span status set from the outcome.
//
// The tracer comes from the global tracer provider; configure it in
// main() before submitting:
//
//	otel.SetTracerProvider(tp)
//	t := transport.Trace(client)
func Trace(next form.Transport, opts ...TraceOption) form.Transport {
	config := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &traced{next: next, config: config}
}

func (t *traced) Invoke(ctx context.Context, method, url string, payload *form.Payload) (*form.Response, error) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("url.full", url),
	}
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(method, url)...)
	}

	ctx, span := t.config.tracer.Start(
		ctx,
		fmt.Sprintf("form.submit %s", method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	resp, err := t.next.Invoke(ctx, method, url, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var te *form.TransportError
		if errors.As(err, &te) && te.StatusCode != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", te.StatusCode))
		}
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	return resp, nil
}
