package metrics

import (
	"net/http"

	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "crm"

// Metrics holds the HTTP and business collectors on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	salesTotal         prometheus.Counter
	salesRevenue       prometheus.Counter
	unitsSold          prometheus.Counter
	stockMovedUnits    *prometheus.CounterVec
	orderStatusChanges *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		salesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Committed sales",
		}),
		salesRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_revenue_reais_total",
			Help:      "Sum of committed sale totals in BRL",
		}),
		unitsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_units_total",
			Help:      "Product units sold",
		}),
		stockMovedUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_moved_units_total",
			Help:      "Units moved in or out of stock",
		}, []string{"direction"}),
		orderStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_order_status_changes_total",
			Help:      "Service order status transitions",
		}, []string{"from", "to"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.salesTotal,
		m.salesRevenue,
		m.unitsSold,
		m.stockMovedUnits,
		m.orderStatusChanges,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) SaleCreated(total decimal.Decimal, units int) {
	m.salesTotal.Inc()
	m.salesRevenue.Add(total.InexactFloat64())
	m.unitsSold.Add(float64(units))
}

func (m *Metrics) StockMoved(direction entities.MovementDirection, quantity int) {
	m.stockMovedUnits.WithLabelValues(string(direction)).Add(float64(quantity))
}

func (m *Metrics) ServiceOrderStatusChanged(from, to entities.ServiceOrderStatus) {
	m.orderStatusChanges.WithLabelValues(string(from), string(to)).Inc()
}
