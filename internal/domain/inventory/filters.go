package inventory

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// Predicados de lectura sobre la colección completa. No hay índice persistido:
// cada consulta recorre los productos/movimientos cargados.

// ProductFilter predicado sobre productos.
type ProductFilter func(*entity.Product) bool

// MovementFilter predicado sobre registros de movimiento.
type MovementFilter func(entity.MovementRecord) bool

func InWarehouse(warehouse string) ProductFilter {
	return func(p *entity.Product) bool { return p.Warehouse == warehouse }
}

func InZone(zone entity.ZoneType) ProductFilter {
	return func(p *entity.Product) bool { return p.Zone == zone }
}

func WithExpiration() ProductFilter {
	return func(p *entity.Product) bool { return p.ExpirationDate != nil }
}

// FilterProducts devuelve los productos que cumplen todos los filtros, conservando el orden.
func FilterProducts(products []*entity.Product, filters ...ProductFilter) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
next:
	for _, p := range products {
		for _, f := range filters {
			if !f(p) {
				continue next
			}
		}
		out = append(out, p)
	}
	return out
}

// CountByZone cantidad de productos por zona en una bodega; incluye las cuatro zonas aunque estén vacías.
func CountByZone(products []*entity.Product, warehouse string) map[entity.ZoneType]int {
	counts := make(map[entity.ZoneType]int, 4)
	for _, z := range entity.AllZones() {
		counts[z] = 0
	}
	for _, p := range FilterProducts(products, InWarehouse(warehouse)) {
		counts[p.Zone]++
	}
	return counts
}

// SortByExpiration ordena por vencimiento ascendente; sin vencimiento al final.
func SortByExpiration(products []*entity.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i].ExpirationDate, products[j].ExpirationDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.Before(*b)
	})
}

func MovementInWarehouse(warehouse string) MovementFilter {
	return func(m entity.MovementRecord) bool { return m.Warehouse == warehouse }
}

func MovementInPeriod(p Period, now time.Time) MovementFilter {
	return func(m entity.MovementRecord) bool { return p.Contains(now, m.Date) }
}

// FromZoneMatches búsqueda de texto sobre la zona origen ("Arrival" para llegadas).
func FromZoneMatches(query string) MovementFilter {
	return func(m entity.MovementRecord) bool { return ContainsFold(m.FromLabel(), query) }
}

// ToZoneMatches búsqueda de texto sobre la zona destino.
func ToZoneMatches(query string) MovementFilter {
	return func(m entity.MovementRecord) bool { return ContainsFold(m.ToZone.String(), query) }
}

// FilterMovements devuelve los registros que cumplen todos los filtros.
func FilterMovements(movements []entity.MovementRecord, filters ...MovementFilter) []entity.MovementRecord {
	out := make([]entity.MovementRecord, 0, len(movements))
next:
	for _, m := range movements {
		for _, f := range filters {
			if !f(m) {
				continue next
			}
		}
		out = append(out, m)
	}
	return out
}

// SortMovementsNewestFirst orden descendente por fecha (el más reciente primero).
func SortMovementsNewestFirst(movements []entity.MovementRecord) {
	sort.SliceStable(movements, func(i, j int) bool { return movements[j].Before(movements[i]) })
}

// ContainsFold subcadena sin distinguir mayúsculas; consulta vacía coincide siempre.
func ContainsFold(s, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(query))
}
