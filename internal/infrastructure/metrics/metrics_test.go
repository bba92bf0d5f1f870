package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/events"
)

func TestMetrics_Contadores(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ProductCreated()
	m.ProductCreated()
	m.ProductsMoved(3)
	m.ProductDeleted()
	m.TxFailed(appinventory.OpMoveProducts)
	m.Observe(appinventory.OpAddProduct, time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProductsCreated))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ProductsMovedN))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProductsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TxFailures.WithLabelValues(appinventory.OpMoveProducts)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OpDuration))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestMetrics_RegistrosIndependientes(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}

func TestRegisterBroker_SuscriptoresYDescartes(t *testing.T) {
	reg := prometheus.NewRegistry()
	b := events.NewBroker(zerolog.Nop(), 1)
	defer b.Close()
	RegisterBroker(reg, b)

	_, cancel := b.Subscribe()
	defer cancel()
	// nadie lee: el segundo evento no cabe en el buffer
	b.Publish(appinventory.ChangeEvent{Type: appinventory.EventProductCreated})
	b.Publish(appinventory.ChangeEvent{Type: appinventory.EventProductCreated})

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP amazone_events_dropped_total Events dropped because a subscriber buffer was full
# TYPE amazone_events_dropped_total counter
amazone_events_dropped_total 1
# HELP amazone_sse_subscribers Clients currently subscribed to the event stream
# TYPE amazone_sse_subscribers gauge
amazone_sse_subscribers 1
`)))

	cancel()
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP amazone_sse_subscribers Clients currently subscribed to the event stream
# TYPE amazone_sse_subscribers gauge
amazone_sse_subscribers 0
`), "amazone_sse_subscribers"))
}
