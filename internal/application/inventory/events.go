package inventory

import "time"

// ChangeType tipo de mutación confirmada.
type ChangeType string

const (
	EventProductCreated ChangeType = "product.created"
	EventProductsMoved  ChangeType = "products.moved"
	EventProductDeleted ChangeType = "product.deleted"
)

// ChangeEvent aviso para la capa de lectura (UI) de que debe refrescar.
type ChangeEvent struct {
	Type       ChangeType `json:"type"`
	ProductIDs []string   `json:"product_ids"`
	Warehouses []string   `json:"warehouses"`
	At         time.Time  `json:"at"`
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
