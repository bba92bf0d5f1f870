package dto

import "time"

// CreateProductRequest entrada para registrar un producto.
// Warehouse vacío = bodega seleccionada en ajustes.
type CreateProductRequest struct {
	Name           string     `json:"name" validate:"required,min=1,max=200"`
	SKU            string     `json:"sku" validate:"required,min=1,max=100"`
	Zone           string     `json:"zone" validate:"required"`
	Warehouse      string     `json:"warehouse"`
	ArrivalDate    *time.Time `json:"arrival_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

// CreateProductResponse identificador del producto creado.
type CreateProductResponse struct {
	ID string `json:"id"`
}

// DeadlineInfo días restantes y clasificación del vencimiento.
type DeadlineInfo struct {
	DaysRemaining int    `json:"days_remaining"`
	Status        string `json:"status"`
}

// ProductResponse ficha del producto con su historial en orden cronológico.
type ProductResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	SKU            string             `json:"sku"`
	Zone           string             `json:"zone"`
	ZoneIcon       string             `json:"zone_icon"`
	Warehouse      string             `json:"warehouse"`
	ArrivalDate    time.Time          `json:"arrival_date"`
	ExpirationDate *time.Time         `json:"expiration_date,omitempty"`
	Deadline       *DeadlineInfo      `json:"deadline,omitempty"`
	History        []MovementResponse `json:"history"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ProductListResponse productos de una bodega (opcionalmente de una zona).
type ProductListResponse struct {
	Warehouse string            `json:"warehouse"`
	Zone      string            `json:"zone,omitempty"`
	Total     int               `json:"total"`
	Items     []ProductResponse `json:"items"`
}
