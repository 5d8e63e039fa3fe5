package observability

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig configures OpenTelemetry tracing for the inspector.
type TracingConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string

	// Endpoint is the OTLP/HTTP collector endpoint. Empty disables export.
	Endpoint string
	Headers  map[string]string
	Insecure bool

	// SampleRate is 0.0 to 1.0; 0 means sample everything.
	SampleRate float64
}

// TracingProvider manages the tracer used around command dispatch.
type TracingProvider struct {
	config         TracingConfig
	tracerProvider *sdktrace.TracerProvider
	tracer         trace.Tracer
	shutdown       func(context.Context) error
}

// NewTracingProvider creates a tracing provider. With no Endpoint the
// provider records spans into a no-export tracer, which keeps the dispatch
// path identical in tests and production.
func NewTracingProvider(config TracingConfig) (*TracingProvider, error) {
	if config.ServiceName == "" {
		config.ServiceName = "kraken-inspector"
	}
	if config.ServiceVersion == "" {
		config.ServiceVersion = "unknown"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}
	if config.SampleRate == 0 {
		config.SampleRate = 1.0
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(config.ServiceName),
		semconv.ServiceVersion(config.ServiceVersion),
		semconv.DeploymentEnvironment(config.Environment),
	)

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(config.SampleRate)),
	}
	if config.Endpoint != "" {
		exporter, err := newOTLPHTTPExporter(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return &TracingProvider{
		config:         config,
		tracerProvider: tp,
		tracer:         tp.Tracer("kraken-inspector"),
		shutdown:       tp.Shutdown,
	}, nil
}

func newOTLPHTTPExporter(config TracingConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(config.Endpoint),
		otlptracehttp.WithHeaders(config.Headers),
	}
	if config.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptrace.New(context.Background(), otlptracehttp.NewClient(opts...))
}

func newSampler(rate float64) sdktrace.Sampler {
	if rate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	if rate <= 0.0 {
		return sdktrace.NeverSample()
	}
	return sdktrace.TraceIDRatioBased(rate)
}

// StartCommandSpan starts a span for one dispatched command.
func (tp *TracingProvider) StartCommandSpan(ctx context.Context, method string, callID int64) (context.Context, trace.Span) {
	domain := method
	if i := strings.IndexByte(method, '.'); i >= 0 {
		domain = method[:i]
	}
	return tp.tracer.Start(ctx, "inspector.dispatch "+method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("inspector.domain", domain),
			attribute.String("inspector.method", method),
			attribute.Int64("inspector.call_id", callID),
		),
	)
}

// EndCommandSpan finishes a command span with the dispatch outcome.
func (tp *TracingProvider) EndCommandSpan(span trace.Span, errMessage string) {
	if errMessage != "" {
		span.SetStatus(codes.Error, errMessage)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Shutdown flushes and stops the tracer provider.
func (tp *TracingProvider) Shutdown(ctx context.Context) error {
	if tp.shutdown == nil {
		return nil
	}
	return tp.shutdown(ctx)
}
