package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
)

var _ appinventory.Metrics = (*Metrics)(nil)

// Metrics observabilidad del inventario: altas, movimientos, bajas, fallos de
// transacción y duración de cada operación.
type Metrics struct {
	ProductsCreated prometheus.Counter
	ProductsMovedN  prometheus.Counter
	ProductsDeleted prometheus.Counter
	TxFailures      *prometheus.CounterVec
	OpDuration      *prometheus.HistogramVec
}

// New registra las métricas en reg. Con reg nil se usa el registro por defecto.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		ProductsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "amazone_products_created_total",
			Help: "Total number of products added",
		}),
		ProductsMovedN: f.NewCounter(prometheus.CounterOpts{
			Name: "amazone_products_moved_total",
			Help: "Total number of products moved between zones",
		}),
		ProductsDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "amazone_products_deleted_total",
			Help: "Total number of products deleted with their history",
		}),
		TxFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "amazone_tx_failures_total",
			Help: "Store transactions rolled back because of a persistence failure",
		}, []string{"op"}),
		OpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "amazone_operation_duration_seconds",
			Help:    "Duration of inventory mutations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"}),
	}
}

func (m *Metrics) ProductCreated() {
	m.ProductsCreated.Inc()
}

func (m *Metrics) ProductsMoved(n int) {
	m.ProductsMovedN.Add(float64(n))
}

func (m *Metrics) ProductDeleted() {
	m.ProductsDeleted.Inc()
}

// TxFailed records a rolled back transaction for op.
func (m *Metrics) TxFailed(op string) {
	m.TxFailures.WithLabelValues(op).Inc()
}

// Observe records the duration of op.
// Call with time.Now() at the start of the operation.
func (m *Metrics) Observe(op string, start time.Time) {
	m.OpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// BrokerStats lo que expone el broker de eventos.
type BrokerStats interface {
	Subscribers() int
	Dropped() int64
}

// RegisterBroker publica el número de clientes SSE y los eventos descartados por
// clientes lentos. Los valores se leen del broker en cada scrape.
func RegisterBroker(reg prometheus.Registerer, b BrokerStats) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "amazone_sse_subscribers",
		Help: "Clients currently subscribed to the event stream",
	}, func() float64 { return float64(b.Subscribers()) })
	f.NewCounterFunc(prometheus.CounterOpts{
		Name: "amazone_events_dropped_total",
		Help: "Events dropped because a subscriber buffer was full",
	}, func() float64 { return float64(b.Dropped()) })
}
