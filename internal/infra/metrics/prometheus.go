// Package metrics exposes Prometheus collectors for HTTP traffic and store activity.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"cellcontrol/config"
	"cellcontrol/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const namespace = "cellcontrol"

// Registry owns every collector of the process. It is private to the
// application so tests can build as many as they need.
type Registry struct {
	registry *prometheus.Registry
	enabled  bool

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	salesCreated *prometheus.CounterVec
	salesValue   *prometheus.CounterVec
	saleItems    *prometheus.HistogramVec
	salesDeleted *prometheus.CounterVec
	logins       *prometheus.CounterVec
}

// NewRegistry registers all collectors on a fresh registry.
func NewRegistry(enabled bool) *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,
		enabled:  enabled,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		salesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_created_total",
			Help:      "Number of sales registered",
		}, []string{"tenant"}),
		salesValue: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_value_total",
			Help:      "Accumulated value of registered sales",
		}, []string{"tenant"}),
		saleItems: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sale_items",
			Help:      "Number of products per sale",
			Buckets:   []float64{1, 2, 3, 5, 10, 20},
		}, []string{"tenant"}),
		salesDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_deleted_total",
			Help:      "Number of sales deleted and reverted to stock",
		}, []string{"tenant"}),
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome",
		}, []string{"outcome"}),
	}
}

// Enabled reports whether the /metrics endpoint should be exposed.
func (r *Registry) Enabled() bool {
	return r != nil && r.enabled
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// ObserveHTTP records one finished request. path must be the route template.
func (r *Registry) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	r.httpRequests.WithLabelValues(method, path, code).Inc()
	r.httpDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

func (r *Registry) SaleCreated(tenantSlug string, total decimal.Decimal, items int) {
	r.salesCreated.WithLabelValues(tenantSlug).Inc()
	r.salesValue.WithLabelValues(tenantSlug).Add(total.InexactFloat64())
	r.saleItems.WithLabelValues(tenantSlug).Observe(float64(items))
}

func (r *Registry) SaleDeleted(tenantSlug string) {
	r.salesDeleted.WithLabelValues(tenantSlug).Inc()
}

func (r *Registry) LoginAttempt(outcome string) {
	r.logins.WithLabelValues(outcome).Inc()
}

// New builds the process registry from config.
func New(cfg *config.Config) *Registry {
	return NewRegistry(cfg.Metrics != nil && cfg.Metrics.Enabled)
}

// Module provides the registry both as itself and as the business recorder.
var Module = fx.Module("metrics",
	fx.Provide(
		New,
		func(r *Registry) service.MetricsRecorder { return r },
	),
)
