package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/amazone-warehouse/internal/domain"
)

// Product estado actual de un artículo en bodega más su historial de movimientos.
// Invariante: Zone == ToZone del último registro de History, y History nunca está vacío.
type Product struct {
	ID             string
	Name           string
	SKU            string
	Zone           ZoneType
	Warehouse      string
	ArrivalDate    time.Time
	ExpirationDate *time.Time
	History        []MovementRecord // en orden de inserción (Seq)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProductParams datos de alta de un producto.
type NewProductParams struct {
	Name           string
	SKU            string
	Zone           ZoneType
	Warehouse      string
	ArrivalDate    time.Time
	ExpirationDate *time.Time
}

// NewProduct valida los datos y crea el producto junto con su registro de llegada
// (FromZone nil, ToZone = zona inicial, fecha = now).
func NewProduct(in NewProductParams, now time.Time) (*Product, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	warehouse := strings.TrimSpace(in.Warehouse)
	switch {
	case name == "":
		return nil, domain.NewValidationError("name", "es requerido")
	case sku == "":
		return nil, domain.NewValidationError("sku", "es requerido")
	case warehouse == "":
		return nil, domain.NewValidationError("warehouse", "es requerido")
	case !in.Zone.IsValid():
		return nil, domain.NewValidationError("zone", "no es una zona válida")
	}
	arrival := in.ArrivalDate
	if arrival.IsZero() {
		arrival = now
	}
	p := &Product{
		ID:             uuid.New().String(),
		Name:           name,
		SKU:            sku,
		Zone:           in.Zone,
		Warehouse:      warehouse,
		ArrivalDate:    arrival,
		ExpirationDate: in.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.History = []MovementRecord{{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Seq:       0,
		Date:      now,
		ToZone:    in.Zone,
		Warehouse: warehouse,
	}}
	return p, nil
}

// CanMoveTo valida un destino sin modificar el producto.
func (p *Product) CanMoveTo(target ZoneType) error {
	if !target.IsValid() {
		return domain.NewValidationError("to_zone", "no es una zona válida")
	}
	if target == p.Zone {
		return domain.NewValidationError("to_zone", fmt.Sprintf("el producto %s ya está en %s", p.ID, target))
	}
	return nil
}

// MoveTo cambia la zona actual y agrega el registro correspondiente en un solo paso.
// La fecha del registro nunca es anterior a la del último movimiento.
func (p *Product) MoveTo(target ZoneType, now time.Time) (MovementRecord, error) {
	if err := p.CanMoveTo(target); err != nil {
		return MovementRecord{}, err
	}
	from := p.Zone
	date := now
	seq := 0
	if last, ok := p.LastMovement(); ok {
		if date.Before(last.Date) {
			date = last.Date
		}
		seq = last.Seq + 1
	}
	rec := MovementRecord{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Seq:       seq,
		Date:      date,
		FromZone:  &from,
		ToZone:    target,
		Warehouse: p.Warehouse,
	}
	p.Zone = target
	p.UpdatedAt = now
	p.History = append(p.History, rec)
	return rec, nil
}

// LastMovement último registro en orden cronológico.
func (p *Product) LastMovement() (MovementRecord, bool) {
	if len(p.History) == 0 {
		return MovementRecord{}, false
	}
	last := p.History[0]
	for _, m := range p.History[1:] {
		if last.Before(m) {
			last = m
		}
	}
	return last, true
}

// SortedHistory copia del historial en orden cronológico ascendente.
func (p *Product) SortedHistory() []MovementRecord {
	out := make([]MovementRecord, len(p.History))
	copy(out, p.History)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// CheckHistory verifica los invariantes entre la zona actual y el historial.
func (p *Product) CheckHistory() error {
	hist := p.SortedHistory()
	if len(hist) == 0 {
		return fmt.Errorf("producto %s sin historial", p.ID)
	}
	if !hist[0].IsArrival() {
		return fmt.Errorf("producto %s: el primer registro no es de llegada", p.ID)
	}
	for i, m := range hist {
		if m.ProductID != p.ID {
			return fmt.Errorf("producto %s: registro %s pertenece a %s", p.ID, m.ID, m.ProductID)
		}
		if i == 0 {
			continue
		}
		if m.IsArrival() {
			return fmt.Errorf("producto %s: más de un registro de llegada", p.ID)
		}
		if *m.FromZone != hist[i-1].ToZone {
			return fmt.Errorf("producto %s: registro %s sale de %s pero el anterior llegó a %s",
				p.ID, m.ID, *m.FromZone, hist[i-1].ToZone)
		}
	}
	if last := hist[len(hist)-1]; last.ToZone != p.Zone {
		return fmt.Errorf("producto %s: zona %s no coincide con el último movimiento (%s)", p.ID, p.Zone, last.ToZone)
	}
	return nil
}

// Clone copia profunda (historial y fecha de vencimiento incluidos).
func (p *Product) Clone() *Product {
	c := *p
	if p.ExpirationDate != nil {
		exp := *p.ExpirationDate
		c.ExpirationDate = &exp
	}
	c.History = make([]MovementRecord, len(p.History))
	for i, m := range p.History {
		if m.FromZone != nil {
			from := *m.FromZone
			m.FromZone = &from
		}
		c.History[i] = m
	}
	return &c
}
