package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability exposes engine metrics through the OpenTelemetry SDK with a
// Prometheus reader. It implements the pipeline's Observer interface, so the
// core never imports otel directly.
type Observability struct {
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	searchCounter  otelmetric.Int64Counter
	stageDuration  otelmetric.Float64Histogram
	stageSurvivors otelmetric.Int64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	searchCounter, _ := meter.Int64Counter(
		"searches.processed",
		otelmetric.WithDescription("Number of match searches processed"),
	)

	stageDuration, _ := meter.Float64Histogram(
		"pipeline.stage.duration",
		otelmetric.WithDescription("Filter stage duration"),
		otelmetric.WithUnit("ms"),
	)

	stageSurvivors, _ := meter.Int64Histogram(
		"pipeline.stage.survivors",
		otelmetric.WithDescription("Candidates remaining after each filter stage"),
	)

	return &Observability{
		meterProvider:  provider,
		meter:          meter,
		searchCounter:  searchCounter,
		stageDuration:  stageDuration,
		stageSurvivors: stageSurvivors,
	}
}

// RecordSearch counts a completed search with its outcome status.
func (o *Observability) RecordSearch(ctx context.Context, status string) {
	if o.searchCounter != nil {
		o.searchCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

// RecordStage records one filter stage execution.
func (o *Observability) RecordStage(stage string, in, out int, duration time.Duration) {
	ctx := context.Background()
	attrs := otelmetric.WithAttributes(attribute.String("stage", stage))
	if o.stageDuration != nil {
		o.stageDuration.Record(ctx, float64(duration.Microseconds())/1000.0, attrs)
	}
	if o.stageSurvivors != nil {
		o.stageSurvivors.Record(ctx, int64(out), attrs)
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
