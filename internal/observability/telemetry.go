package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const InstrumentationName = "github.com/MikeMC777/restau-management"

// Telemetry bundles the tracer and the order counters used by the services.
type Telemetry struct {
	tracer      trace.Tracer
	orderEvents metric.Int64Counter
}

func New(tp trace.TracerProvider, mp metric.MeterProvider) *Telemetry {
	meter := mp.Meter(InstrumentationName)
	counter, err := meter.Int64Counter(
		"restau.order.events",
		metric.WithDescription("Order lifecycle transitions"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		counter, _ = metricnoop.NewMeterProvider().Meter("").Int64Counter("restau.order.events")
	}
	return &Telemetry{
		tracer:      tp.Tracer(InstrumentationName),
		orderEvents: counter,
	}
}

func Noop() *Telemetry {
	return New(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
}

func (t *Telemetry) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// OrderEvent counts one lifecycle transition ("created", "completed", "cancelled").
func (t *Telemetry) OrderEvent(ctx context.Context, event string) {
	t.orderEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("event", event)))
}

// End closes span, marking it failed when err is set.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
