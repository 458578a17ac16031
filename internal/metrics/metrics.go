// Package metrics exports HTTP request metrics through OpenTelemetry and a
// Prometheus scrape endpoint.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"
)

var (
	methodKey = attribute.Key("http.method")
	routeKey  = attribute.Key("http.route")
	statusKey = attribute.Key("http.status_code")
)

type Metrics struct {
	exporter  *prometheus.Exporter
	completed metric.Int64Counter
	duration  metric.Float64ValueRecorder
}

// New installs a Prometheus-backed meter provider as the global one and
// registers the request instruments under meterName.
func New(meterName string) (*Metrics, error) {
	config := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(config.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)

	exporter, err := prometheus.New(config, c)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prometheus exporter: %w", err)
	}

	global.SetMeterProvider(exporter.MeterProvider())

	meter := metric.Must(global.Meter(meterName))

	return &Metrics{
		exporter: exporter,
		completed: meter.NewInt64Counter(
			"http/server/completed_count",
			metric.WithDescription("Count of completed requests, by HTTP method, route and response status"),
		),
		duration: meter.NewFloat64ValueRecorder(
			"http/server/duration_ms",
			metric.WithDescription("Request handling time in milliseconds"),
		),
	}, nil
}

// Handler serves the Prometheus scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return m.exporter
}

// Middleware counts and times every request. The route label is the chi
// pattern, so ids do not blow up cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		labels := []attribute.KeyValue{
			methodKey.String(r.Method),
			routeKey.String(route),
			statusKey.String(strconv.Itoa(status)),
		}

		m.completed.Add(r.Context(), 1, labels...)
		m.duration.Record(r.Context(), float64(time.Since(start).Microseconds())/1000, labels...)
	})
}
