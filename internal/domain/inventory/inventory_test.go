package inventory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazone-warehouse/internal/domain"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/inventory"
)

// Miércoles 2026-03-11 15:00 UTC (semana ISO 11).
var now = time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

func product(t *testing.T, name string, zone entity.ZoneType, warehouse string, exp *time.Time) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(entity.NewProductParams{
		Name: name, SKU: name + "-sku", Zone: zone, Warehouse: warehouse, ExpirationDate: exp,
	}, now)
	require.NoError(t, err)
	return p
}

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 2, inventory.DaysRemaining(now, now.Add(48*time.Hour)))
	assert.Equal(t, -1, inventory.DaysRemaining(now, now.Add(-24*time.Hour)))
	assert.Equal(t, 0, inventory.DaysRemaining(now, now.Add(23*time.Hour)))
	assert.Equal(t, 30, inventory.DaysRemaining(now, now.Add(30*24*time.Hour+time.Minute)))
}

func TestEvaluate_Escenarios(t *testing.T) {
	policy := inventory.DefaultDeadlinePolicy()

	near := policy.Evaluate(now, now.Add(2*24*time.Hour))
	assert.Equal(t, inventory.Deadline{Days: 2, Status: inventory.DeadlineNearExpiry}, near)

	expired := policy.Evaluate(now, now.Add(-24*time.Hour))
	assert.Equal(t, inventory.Deadline{Days: -1, Status: inventory.DeadlineExpired}, expired)

	// Vencido hace horas: días trunca a 0 y aún no se marca como vencido.
	justExpired := policy.Evaluate(now, now.Add(-5*time.Hour))
	assert.Equal(t, inventory.Deadline{Days: 0, Status: inventory.DeadlineNearExpiry}, justExpired)

	// Un día completo después sí está vencido.
	dayAfter := policy.Evaluate(now, now.Add(-24*time.Hour-time.Minute))
	assert.Equal(t, inventory.Deadline{Days: -1, Status: inventory.DeadlineExpired}, dayAfter)

	ok := policy.Evaluate(now, now.Add(10*24*time.Hour))
	assert.Equal(t, inventory.DeadlineOK, ok.Status)

	boundary := policy.Evaluate(now, now.Add(3*24*time.Hour))
	assert.Equal(t, inventory.DeadlineNearExpiry, boundary.Status)
}

func TestEvaluate_PoliticaPersonalizada(t *testing.T) {
	policy := inventory.DeadlinePolicy{NearExpiryDays: 7}
	assert.Equal(t, inventory.DeadlineNearExpiry, policy.Evaluate(now, now.Add(6*24*time.Hour)).Status)
}

func TestEvaluateProduct_SinVencimiento(t *testing.T) {
	p := product(t, "Bolt", entity.ZoneComing, "Warehouse A", nil)
	_, ok := inventory.DefaultDeadlinePolicy().EvaluateProduct(now, p)
	assert.False(t, ok)

	p.ExpirationDate = at(48 * time.Hour)
	d, ok := inventory.DefaultDeadlinePolicy().EvaluateProduct(now, p)
	require.True(t, ok)
	assert.Equal(t, 2, d.Days)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterProducts_BodegaYZona(t *testing.T) {
	a1 := product(t, "a1", entity.ZoneComing, "Warehouse A", nil)
	a2 := product(t, "a2", entity.ZoneShipment, "Warehouse A", at(time.Hour))
	b1 := product(t, "b1", entity.ZoneComing, "Warehouse B", at(2*time.Hour))
	all := []*entity.Product{a1, a2, b1}

	got := inventory.FilterProducts(all, inventory.InWarehouse("Warehouse A"), inventory.InZone(entity.ZoneComing))
	assert.Equal(t, []*entity.Product{a1}, got)

	withExp := inventory.FilterProducts(all, inventory.WithExpiration())
	assert.Equal(t, []*entity.Product{a2, b1}, withExp)

	assert.Equal(t, all, inventory.FilterProducts(all))
}

func TestCountByZone_IncluyeZonasVacias(t *testing.T) {
	all := []*entity.Product{
		product(t, "a1", entity.ZoneComing, "Warehouse A", nil),
		product(t, "a2", entity.ZoneComing, "Warehouse A", nil),
		product(t, "a3", entity.ZoneDefective, "Warehouse A", nil),
		product(t, "b1", entity.ZoneSeasonal, "Warehouse B", nil),
	}
	counts := inventory.CountByZone(all, "Warehouse A")
	assert.Equal(t, map[entity.ZoneType]int{
		entity.ZoneComing:    2,
		entity.ZoneShipment:  0,
		entity.ZoneDefective: 1,
		entity.ZoneSeasonal:  0,
	}, counts)
}

func TestSortByExpiration_SinFechaAlFinal(t *testing.T) {
	none := product(t, "none", entity.ZoneComing, "W", nil)
	late := product(t, "late", entity.ZoneComing, "W", at(72*time.Hour))
	soon := product(t, "soon", entity.ZoneComing, "W", at(time.Hour))
	list := []*entity.Product{none, late, soon}

	inventory.SortByExpiration(list)
	assert.Equal(t, []*entity.Product{soon, late, none}, list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Períodos y filtros de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriod_Contains(t *testing.T) {
	monday := time.Date(2026, 3, 9, 0, 0, 1, 0, time.UTC)
	prevSunday := time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC)
	firstOfMonth := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

	assert.True(t, inventory.PeriodToday.Contains(now, now.Add(-14*time.Hour)))
	assert.False(t, inventory.PeriodToday.Contains(now, now.Add(-16*time.Hour)))

	assert.True(t, inventory.PeriodWeek.Contains(now, monday))
	assert.False(t, inventory.PeriodWeek.Contains(now, prevSunday))

	assert.True(t, inventory.PeriodMonth.Contains(now, firstOfMonth))
	assert.False(t, inventory.PeriodMonth.Contains(now, lastMonth))
	assert.False(t, inventory.PeriodMonth.Contains(now, now.AddDate(-1, 0, 0)), "mismo mes de otro año")
}

func TestParsePeriod(t *testing.T) {
	p, err := inventory.ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, inventory.PeriodMonth, p)

	p, err = inventory.ParsePeriod("WEEK")
	require.NoError(t, err)
	assert.Equal(t, inventory.PeriodWeek, p)
	assert.Equal(t, "This week", p.Label())

	_, err = inventory.ParsePeriod("year")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestFilterMovements_TextoYBodega(t *testing.T) {
	p := product(t, "p", entity.ZoneComing, "Warehouse A", nil)
	_, err := p.MoveTo(entity.ZoneShipment, now.Add(time.Minute))
	require.NoError(t, err)
	_, err = p.MoveTo(entity.ZoneDefective, now.Add(2*time.Minute))
	require.NoError(t, err)
	other := product(t, "o", entity.ZoneSeasonal, "Warehouse B", nil)

	all := append(append([]entity.MovementRecord{}, p.History...), other.History...)

	arrivals := inventory.FilterMovements(all, inventory.FromZoneMatches("arr"))
	assert.Len(t, arrivals, 2)

	toDef := inventory.FilterMovements(all, inventory.ToZoneMatches("DEFECT"))
	require.Len(t, toDef, 1)
	assert.Equal(t, entity.ZoneDefective, toDef[0].ToZone)

	inA := inventory.FilterMovements(all,
		inventory.MovementInWarehouse("Warehouse A"),
		inventory.MovementInPeriod(inventory.PeriodToday, now),
		inventory.FromZoneMatches(""),
	)
	assert.Len(t, inA, 3)

	inventory.SortMovementsNewestFirst(inA)
	assert.Equal(t, entity.ZoneDefective, inA[0].ToZone)
	assert.True(t, inA[2].IsArrival())
}

func TestContainsFold(t *testing.T) {
	assert.True(t, inventory.ContainsFold("Seasonal", "SEAS"))
	assert.True(t, inventory.ContainsFold("Seasonal", "  "))
	assert.False(t, inventory.ContainsFold("Coming", "ship"))
}
