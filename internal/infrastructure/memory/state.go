package memory

import (
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// state filas "confirmadas": productos sin historial y movimientos por producto.
type state struct {
	products  map[string]*entity.Product
	order     []string // orden de inserción de productos
	movements map[string][]entity.MovementRecord
	readOnly  bool
}

func newState() *state {
	return &state{
		products:  map[string]*entity.Product{},
		movements: map[string][]entity.MovementRecord{},
	}
}

func (s *state) clone(readOnly bool) *state {
	c := &state{
		products:  make(map[string]*entity.Product, len(s.products)),
		order:     append([]string(nil), s.order...),
		movements: make(map[string][]entity.MovementRecord, len(s.movements)),
		readOnly:  readOnly,
	}
	for id, p := range s.products {
		c.products[id] = p.Clone()
	}
	for id, list := range s.movements {
		c.movements[id] = cloneMovements(list)
	}
	return c
}

func cloneMovements(list []entity.MovementRecord) []entity.MovementRecord {
	out := make([]entity.MovementRecord, len(list))
	for i, m := range list {
		if m.FromZone != nil {
			from := *m.FromZone
			m.FromZone = &from
		}
		out[i] = m
	}
	return out
}

// withHistory copia del producto con su historial adjunto.
func (s *state) withHistory(id string) *entity.Product {
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	c := p.Clone()
	c.History = cloneMovements(s.movements[id])
	return c
}
