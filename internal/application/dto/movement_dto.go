package dto

import "time"

// MoveProductsRequest mover uno o varios productos a una zona.
// Warehouse opcional: si viene, todos los productos deben pertenecer a esa bodega.
type MoveProductsRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1"`
	ToZone     string   `json:"to_zone" validate:"required"`
	Warehouse  string   `json:"warehouse"`
}

// MoveProductsResponse cantidad de productos movidos.
type MoveProductsResponse struct {
	Moved int `json:"moved"`
}

// MovementResponse registro de movimiento. FromZone nulo = llegada.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Date        time.Time `json:"date"`
	FromZone    *string   `json:"from_zone"`
	FromLabel   string    `json:"from_label"`
	ToZone      string    `json:"to_zone"`
	Warehouse   string    `json:"warehouse"`
	Description string    `json:"description"`
}

// MovementHistoryResponse historial filtrado por bodega, período y zonas.
type MovementHistoryResponse struct {
	Warehouse   string             `json:"warehouse"`
	Period      string             `json:"period"`
	PeriodLabel string             `json:"period_label"`
	Count       int                `json:"count"`
	Items       []MovementResponse `json:"items"`
}
