package entity

import (
	"strings"

	"github.com/jhoicas/amazone-warehouse/internal/domain"
)

// ZoneType zona física de la bodega donde puede estar un producto (enumeración cerrada).
type ZoneType string

// Zonas disponibles. El valor es la etiqueta estable que se persiste y se muestra.
const (
	ZoneComing    ZoneType = "Coming"
	ZoneShipment  ZoneType = "Shipment"
	ZoneDefective ZoneType = "Defective"
	ZoneSeasonal  ZoneType = "Seasonal"
)

// ArrivalLabel etiqueta de origen de un registro de llegada (sin zona origen).
const ArrivalLabel = "Arrival"

var zoneIcons = map[ZoneType]string{
	ZoneComing:    "IconZoneComing",
	ZoneShipment:  "IconZoneShipment",
	ZoneDefective: "IconZoneDefective",
	ZoneSeasonal:  "IconZoneSeasonal",
}

// AllZones devuelve las zonas en orden de presentación.
func AllZones() []ZoneType {
	return []ZoneType{ZoneComing, ZoneShipment, ZoneDefective, ZoneSeasonal}
}

// IsValid indica si z es una de las cuatro zonas.
func (z ZoneType) IsValid() bool {
	_, ok := zoneIcons[z]
	return ok
}

// IconName identificador del icono de la zona.
func (z ZoneType) IconName() string { return zoneIcons[z] }

func (z ZoneType) String() string { return string(z) }

// ParseZone convierte una etiqueta (sin distinguir mayúsculas) en ZoneType.
func ParseZone(s string) (ZoneType, error) {
	s = strings.TrimSpace(s)
	for _, z := range AllZones() {
		if strings.EqualFold(s, string(z)) {
			return z, nil
		}
	}
	return "", domain.NewValidationError("zone", "debe ser Coming, Shipment, Defective o Seasonal")
}
