// Package observability provides metrics and tracing for the inspector
// core: per-command prometheus counters and histograms, a session gauge, and
// OpenTelemetry spans around command dispatch.
package observability

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/love514425/kraken/pkg/logging"
)

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// Service identification.
	ServiceName    string
	ServiceVersion string

	// MetricsPath is the HTTP path for the metrics endpoint (default
	// /metrics); MetricsAddr the listen address (default :9090).
	MetricsPath string
	MetricsAddr string

	// Namespace is the prometheus namespace (default kraken).
	Namespace string

	// HistogramBuckets overrides the latency buckets.
	HistogramBuckets []float64

	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels

	// Logger receives endpoint diagnostics. Defaults to a no-op logger.
	Logger logging.Logger
}

// MetricsProvider records inspector activity.
type MetricsProvider interface {
	// RecordCommand records one dispatched command.
	RecordCommand(domain, method, status string, duration time.Duration)
	// RecordEvent records one outbound notification.
	RecordEvent(method string)
	// RecordSessionState tracks session open/close (+1/-1).
	RecordSessionState(delta int)

	// Start serves the metrics endpoint; Shutdown stops it.
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// PrometheusMetricsProvider implements MetricsProvider using prometheus.
type PrometheusMetricsProvider struct {
	config   MetricsConfig
	registry *prometheus.Registry
	logger   logging.Logger
	server   *http.Server
	mu       sync.Mutex

	commandDuration *prometheus.HistogramVec
	commandTotal    *prometheus.CounterVec
	eventTotal      *prometheus.CounterVec
	activeSessions  prometheus.Gauge
}

// NewPrometheusMetricsProvider creates and registers the inspector metrics.
func NewPrometheusMetricsProvider(config MetricsConfig) (*PrometheusMetricsProvider, error) {
	if config.ServiceName == "" {
		config.ServiceName = "kraken-inspector"
	}
	if config.MetricsPath == "" {
		config.MetricsPath = "/metrics"
	}
	if config.MetricsAddr == "" {
		config.MetricsAddr = ":9090"
	}
	if config.Namespace == "" {
		config.Namespace = "kraken"
	}
	if len(config.HistogramBuckets) == 0 {
		config.HistogramBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}
	}

	logger := config.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	registry := prometheus.NewRegistry()
	p := &PrometheusMetricsProvider{
		config:   config,
		registry: registry,
		logger:   logger.WithFields(logging.String("component", "metrics")),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   "inspector",
			Name:        "command_duration_seconds",
			Help:        "Time spent dispatching one protocol command.",
			Buckets:     config.HistogramBuckets,
			ConstLabels: config.ConstLabels,
		}, []string{"domain", "method", "status"}),
		commandTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "inspector",
			Name:        "commands_total",
			Help:        "Protocol commands dispatched.",
			ConstLabels: config.ConstLabels,
		}, []string{"domain", "method", "status"}),
		eventTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "inspector",
			Name:        "events_total",
			Help:        "Notifications emitted to the front end.",
			ConstLabels: config.ConstLabels,
		}, []string{"method"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   "inspector",
			Name:        "active_sessions",
			Help:        "Debugging sessions currently open.",
			ConstLabels: config.ConstLabels,
		}),
	}

	for _, c := range []prometheus.Collector{
		p.commandDuration, p.commandTotal, p.eventTotal, p.activeSessions,
	} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return p, nil
}

// RecordCommand records one dispatched command.
func (p *PrometheusMetricsProvider) RecordCommand(domain, method, status string, duration time.Duration) {
	p.commandTotal.WithLabelValues(domain, method, status).Inc()
	p.commandDuration.WithLabelValues(domain, method, status).Observe(duration.Seconds())
}

// RecordEvent records one outbound notification.
func (p *PrometheusMetricsProvider) RecordEvent(method string) {
	p.eventTotal.WithLabelValues(method).Inc()
}

// RecordSessionState tracks session open/close.
func (p *PrometheusMetricsProvider) RecordSessionState(delta int) {
	p.activeSessions.Add(float64(delta))
}

// Start serves the metrics endpoint in the background.
func (p *PrometheusMetricsProvider) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.server != nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(p.config.MetricsPath, promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{}))
	p.server = &http.Server{
		Addr:              p.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			p.logger.Error("metrics server error", logging.ErrorField(err))
		}
	}()
	return nil
}

// Shutdown stops the metrics endpoint.
func (p *PrometheusMetricsProvider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.server == nil {
		return nil
	}
	err := p.server.Shutdown(ctx)
	p.server = nil
	return err
}

// NoopMetricsProvider discards everything. It stands in when metrics are
// not configured.
type NoopMetricsProvider struct{}

func (NoopMetricsProvider) RecordCommand(domain, method, status string, duration time.Duration) {}
func (NoopMetricsProvider) RecordEvent(method string)                                           {}
func (NoopMetricsProvider) RecordSessionState(delta int)                                        {}
func (NoopMetricsProvider) Start(ctx context.Context) error                                     { return nil }
func (NoopMetricsProvider) Shutdown(ctx context.Context) error                                  { return nil }
