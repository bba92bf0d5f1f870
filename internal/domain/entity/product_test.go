package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazone-warehouse/internal/domain"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newWidget(t *testing.T) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(entity.NewProductParams{
		Name:      "Widget",
		SKU:       "SKU1",
		Zone:      entity.ZoneComing,
		Warehouse: "Warehouse A",
	}, testNow)
	require.NoError(t, err)
	return p
}

func TestNewProduct_CreaRegistroDeLlegada(t *testing.T) {
	p := newWidget(t)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, entity.ZoneComing, p.Zone)
	require.Len(t, p.History, 1)
	arrival := p.History[0]
	assert.True(t, arrival.IsArrival())
	assert.Nil(t, arrival.FromZone)
	assert.Equal(t, entity.ZoneComing, arrival.ToZone)
	assert.Equal(t, "Warehouse A", arrival.Warehouse)
	assert.Equal(t, p.ID, arrival.ProductID)
	assert.Equal(t, testNow, arrival.Date)
	assert.Equal(t, testNow, p.ArrivalDate, "sin fecha de llegada se usa now")
	require.NoError(t, p.CheckHistory())
}

func TestNewProduct_Validacion(t *testing.T) {
	cases := map[string]entity.NewProductParams{
		"sin nombre":    {Name: "  ", SKU: "S", Zone: entity.ZoneComing, Warehouse: "W"},
		"sin sku":       {Name: "N", SKU: "", Zone: entity.ZoneComing, Warehouse: "W"},
		"sin bodega":    {Name: "N", SKU: "S", Zone: entity.ZoneComing},
		"zona inválida": {Name: "N", SKU: "S", Zone: entity.ZoneType("Roof"), Warehouse: "W"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := entity.NewProduct(in, testNow)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, domain.ErrValidation), "se esperaba ErrValidation, obtuvo %v", err)
		})
	}
}

func TestMoveTo_AgregaRegistroYActualizaZona(t *testing.T) {
	p := newWidget(t)

	rec, err := p.MoveTo(entity.ZoneShipment, testNow.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, entity.ZoneShipment, p.Zone)
	require.Len(t, p.History, 2)
	require.NotNil(t, rec.FromZone)
	assert.Equal(t, entity.ZoneComing, *rec.FromZone)
	assert.Equal(t, entity.ZoneShipment, rec.ToZone)
	assert.Equal(t, 1, rec.Seq)
	assert.Equal(t, p.History[1], rec)
	require.NoError(t, p.CheckHistory())
}

func TestMoveTo_MismaZonaEsRechazadaSinCambios(t *testing.T) {
	p := newWidget(t)

	_, err := p.MoveTo(entity.ZoneComing, testNow.Add(time.Minute))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, entity.ZoneComing, p.Zone)
	assert.Len(t, p.History, 1)
}

func TestMoveTo_RelojAtrasadoMantieneOrden(t *testing.T) {
	p := newWidget(t)

	_, err := p.MoveTo(entity.ZoneDefective, testNow.Add(-time.Hour))
	require.NoError(t, err)
	_, err = p.MoveTo(entity.ZoneSeasonal, testNow.Add(-2*time.Hour))
	require.NoError(t, err)

	last, ok := p.LastMovement()
	require.True(t, ok)
	assert.Equal(t, entity.ZoneSeasonal, last.ToZone)
	require.NoError(t, p.CheckHistory())
}

func TestCheckHistory_DetectaInconsistencias(t *testing.T) {
	p := newWidget(t)
	_, err := p.MoveTo(entity.ZoneShipment, testNow.Add(time.Hour))
	require.NoError(t, err)

	desync := p.Clone()
	desync.Zone = entity.ZoneDefective
	assert.Error(t, desync.CheckHistory(), "zona distinta al último destino")

	twoArrivals := p.Clone()
	twoArrivals.History[1].FromZone = nil
	assert.Error(t, twoArrivals.CheckHistory(), "dos registros de llegada")

	empty := p.Clone()
	empty.History = nil
	assert.Error(t, empty.CheckHistory())
}

func TestSortedHistory_OrdenCronologico(t *testing.T) {
	p := newWidget(t)
	_, _ = p.MoveTo(entity.ZoneShipment, testNow.Add(time.Hour))
	_, _ = p.MoveTo(entity.ZoneSeasonal, testNow.Add(2*time.Hour))

	// Orden de inserción invertido, como podría llegar desde el almacén.
	p.History[0], p.History[2] = p.History[2], p.History[0]

	sorted := p.SortedHistory()
	require.Len(t, sorted, 3)
	assert.True(t, sorted[0].IsArrival())
	assert.Equal(t, entity.ZoneSeasonal, sorted[2].ToZone)
	require.NoError(t, p.CheckHistory())
}

func TestClone_EsIndependiente(t *testing.T) {
	exp := testNow.Add(48 * time.Hour)
	p := newWidget(t)
	p.ExpirationDate = &exp
	_, _ = p.MoveTo(entity.ZoneShipment, testNow.Add(time.Hour))

	c := p.Clone()
	*c.ExpirationDate = testNow
	*c.History[1].FromZone = entity.ZoneSeasonal
	c.History = append(c.History, entity.MovementRecord{})

	assert.Equal(t, exp, *p.ExpirationDate)
	assert.Equal(t, entity.ZoneComing, *p.History[1].FromZone)
	assert.Len(t, p.History, 2)
}

func TestParseZone(t *testing.T) {
	z, err := entity.ParseZone(" shipment ")
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneShipment, z)
	assert.Equal(t, "IconZoneShipment", z.IconName())

	_, err = entity.ParseZone("Arrival")
	assert.True(t, errors.Is(err, domain.ErrValidation))

	assert.Len(t, entity.AllZones(), 4)
	for _, z := range entity.AllZones() {
		assert.True(t, z.IsValid())
		assert.NotEmpty(t, z.IconName())
	}
}

func TestMovementRecord_FromLabel(t *testing.T) {
	p := newWidget(t)
	rec, err := p.MoveTo(entity.ZoneDefective, testNow.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, entity.ArrivalLabel, p.History[0].FromLabel())
	assert.Equal(t, "Coming", rec.FromLabel())
}
