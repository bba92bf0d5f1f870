package dto

import "time"

// ZoneResponse zona con su icono.
type ZoneResponse struct {
	Zone string `json:"zone"`
	Icon string `json:"icon"`
}

// ZoneSummary tarjeta del tablero: productos en la zona.
type ZoneSummary struct {
	Zone  string `json:"zone"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// DashboardResponse conteo por zona de la bodega.
type DashboardResponse struct {
	Warehouse string        `json:"warehouse"`
	Total     int           `json:"total"`
	Zones     []ZoneSummary `json:"zones"`
}

// DeadlineResponse producto con vencimiento.
type DeadlineResponse struct {
	ProductID      string    `json:"product_id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	Zone           string    `json:"zone"`
	ExpirationDate time.Time `json:"expiration_date"`
	DaysRemaining  int       `json:"days_remaining"`
	Status         string    `json:"status"`
}

// DeadlineListResponse vencimientos de una bodega, del más próximo al más lejano.
type DeadlineListResponse struct {
	Warehouse      string             `json:"warehouse"`
	NearExpiryDays int                `json:"near_expiry_days"`
	Total          int                `json:"total"`
	Items          []DeadlineResponse `json:"items"`
}
