// Package metrics exposes Prometheus collectors for the web front end.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	MetricsNamespace        = "maskit_web"
	MetricsSubsystemSystem  = "system"
	MetricsSubsystemHTTP    = "http"
	MetricsSubsystemRemote  = "remote"
	MetricsSubsystemRender  = "render"
	MetricsSubsystemSession = "session"

	MetricsVersionLabel = "version"
)

// Metrics is the set of collectors the server, the client and the cleanup
// loop report to.
type Metrics interface {
	GetRegistry() *prometheus.Registry

	ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64)
	IncrementHTTPRequests()
	IncrementHTTPErrors()

	ObserveRemoteCall(endpoint, outcome string, elapsed time.Duration)
	IncrementRenders(format, variant string)
	SetActiveSessions(n int)
}

type metrics struct {
	registry *prometheus.Registry

	startTime prometheus.Gauge
	info      prometheus.Gauge

	apiTime *prometheus.HistogramVec

	httpRequestsTotal prometheus.Counter
	httpErrorsTotal   prometheus.Counter

	remoteCallsTotal *prometheus.CounterVec
	remoteCallTime   *prometheus.HistogramVec

	rendersTotal   *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics(appVersion string) Metrics {
	m := &metrics{}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: MetricsNamespace,
	}))
	m.registry.MustRegister(collectors.NewGoCollector())

	m.startTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemSystem,
		Name:      "start_timestamp_seconds",
		Help:      "The time the server started.",
	})
	m.startTime.SetToCurrentTime()
	m.registry.MustRegister(m.startTime)

	m.info = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemSystem,
		Name:        "info",
		Help:        "The server version.",
		ConstLabels: map[string]string{MetricsVersionLabel: appVersion},
	})
	m.info.Set(1)
	m.registry.MustRegister(m.info)

	m.apiTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystemHTTP,
			Name:      "time_seconds",
			Help:      "Time to execute the api handler",
		},
		[]string{"handler", "method", "status_code"},
	)
	m.registry.MustRegister(m.apiTime)

	m.httpRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "requests_total",
		Help:      "The total number of http API requests.",
	})
	m.registry.MustRegister(m.httpRequestsTotal)

	m.httpErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "errors_total",
		Help:      "The total number of http API errors.",
	})
	m.registry.MustRegister(m.httpErrorsTotal)

	m.remoteCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemRemote,
		Name:      "calls_total",
		Help:      "The total number of calls to the anonymization service.",
	}, []string{"endpoint", "outcome"})
	m.registry.MustRegister(m.remoteCallsTotal)

	m.remoteCallTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemRemote,
		Name:      "call_time_seconds",
		Help:      "Round trip time of calls to the anonymization service.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"endpoint"})
	m.registry.MustRegister(m.remoteCallTime)

	m.rendersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemRender,
		Name:      "total",
		Help:      "The total number of rendered outputs.",
	}, []string{"format", "variant"})
	m.registry.MustRegister(m.rendersTotal)

	m.activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemSession,
		Name:      "active",
		Help:      "The number of live sessions.",
	})
	m.registry.MustRegister(m.activeSessions)

	return m
}

func (m *metrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

func (m *metrics) ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64) {
	if m != nil {
		m.apiTime.With(prometheus.Labels{"handler": handler, "method": method, "status_code": statusCode}).Observe(elapsed)
	}
}

func (m *metrics) IncrementHTTPRequests() {
	if m != nil {
		m.httpRequestsTotal.Inc()
	}
}

func (m *metrics) IncrementHTTPErrors() {
	if m != nil {
		m.httpErrorsTotal.Inc()
	}
}

func (m *metrics) ObserveRemoteCall(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.remoteCallsTotal.With(prometheus.Labels{"endpoint": endpoint, "outcome": outcome}).Inc()
	m.remoteCallTime.With(prometheus.Labels{"endpoint": endpoint}).Observe(elapsed.Seconds())
}

func (m *metrics) IncrementRenders(format, variant string) {
	if m != nil {
		m.rendersTotal.With(prometheus.Labels{"format": format, "variant": variant}).Inc()
	}
}

func (m *metrics) SetActiveSessions(n int) {
	if m != nil {
		m.activeSessions.Set(float64(n))
	}
}
