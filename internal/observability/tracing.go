package observability

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// TracingProvider exports spans over OTLP gRPC and installs itself as the
// global tracer provider.
type TracingProvider struct {
	tp *sdktrace.TracerProvider
}

func NewTracingProvider(serviceName ServiceName, version ServiceVersion, endpoint string, sampleRate float64, insecureConn bool, logger log.Logger) (*TracingProvider, error) {
	logHelper := log.NewHelper(logger)

	if sampleRate <= 0 || sampleRate > 1 {
		sampleRate = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(endpoint),
	}
	if insecureConn {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(string(serviceName)),
			semconv.ServiceVersion(string(version)),
		),
	)
	if err != nil {
		logHelper.Warnf("failed to create resource: %v", err)
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logHelper.Infof("Tracing initialized: endpoint=%s, sample_rate=%.2f", endpoint, sampleRate)

	return &TracingProvider{tp: tp}, nil
}

// Shutdown flushes pending spans.
func (t *TracingProvider) Shutdown(ctx context.Context) error {
	if t == nil || t.tp == nil {
		return nil
	}
	return t.tp.Shutdown(ctx)
}
