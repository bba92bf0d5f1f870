package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

// TxFunc recibe repositorios atados a la transacción en curso.
type TxFunc func(products repository.ProductRepository, movements repository.MovementRepository) error

// TxRunner ejecuta funciones dentro de una transacción del almacén local.
// Run: lectura/escritura, Commit si fn devuelve nil y Rollback en cualquier otro caso.
// View: lectura sobre una instantánea consistente (nunca se observa un producto
// cuya zona no coincida con su último movimiento).
type TxRunner interface {
	Run(ctx context.Context, fn TxFunc) error
	View(ctx context.Context, fn TxFunc) error
}

// ChangeNotifier recibe un evento después de cada mutación confirmada.
type ChangeNotifier interface {
	Publish(event ChangeEvent)
}

// Metrics contadores y duraciones de las operaciones de inventario.
type Metrics interface {
	ProductCreated()
	ProductsMoved(n int)
	ProductDeleted()
	TxFailed(op string)
	Observe(op string, start time.Time)
}

// ReportGenerator genera los reportes PDF de vencimientos e historial.
type ReportGenerator interface {
	GenerateDeadlinesPDF(ctx context.Context, report *dto.DeadlineListResponse, generatedAt time.Time) ([]byte, error)
	GenerateMovementsPDF(ctx context.Context, report *dto.MovementHistoryResponse, generatedAt time.Time) ([]byte, error)
}

// Nombres de operación para métricas y mensajes de error.
const (
	OpAddProduct    = "add_product"
	OpMoveProducts  = "move_products"
	OpDeleteProduct = "delete_product"
	OpQuery         = "query"
)

type nopNotifier struct{}

func (nopNotifier) Publish(ChangeEvent) {}

type nopMetrics struct{}

func (nopMetrics) ProductCreated()           {}
func (nopMetrics) ProductsMoved(int)         {}
func (nopMetrics) ProductDeleted()           {}
func (nopMetrics) TxFailed(string)           {}
func (nopMetrics) Observe(string, time.Time) {}

// Option configura colaboradores opcionales de los casos de uso.
type Option func(*options)

type options struct {
	notifier ChangeNotifier
	metrics  Metrics
	now      func() time.Time
}

// WithNotifier publica eventos de cambio tras cada commit.
func WithNotifier(n ChangeNotifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithMetrics registra métricas de las operaciones.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{notifier: nopNotifier{}, metrics: nopMetrics{}, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
