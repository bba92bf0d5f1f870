package dto

// SettingsResponse preferencias persistidas del usuario.
type SettingsResponse struct {
	HasCompletedOnboarding bool     `json:"has_completed_onboarding"`
	SelectedWarehouse      string   `json:"selected_warehouse"`
	Warehouses             []string `json:"warehouses"`
}

// SelectWarehouseRequest cambiar la bodega activa.
type SelectWarehouseRequest struct {
	Warehouse string `json:"warehouse" validate:"required"`
}
