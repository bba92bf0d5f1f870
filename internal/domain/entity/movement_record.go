package entity

import "time"

// MovementRecord hecho inmutable: en Date el producto pasó de FromZone (nil = llegada) a ToZone.
// Referencia a su dueño por ProductID; el producto es quien posee la colección.
type MovementRecord struct {
	ID        string
	ProductID string
	Seq       int // posición dentro del historial del producto, empieza en 0
	Date      time.Time
	FromZone  *ZoneType
	ToZone    ZoneType
	Warehouse string // copiado del producto al crear el registro
}

// IsArrival indica si es el registro de llegada del producto.
func (m MovementRecord) IsArrival() bool { return m.FromZone == nil }

// FromLabel etiqueta de origen; "Arrival" para el registro de llegada.
func (m MovementRecord) FromLabel() string {
	if m.FromZone == nil {
		return ArrivalLabel
	}
	return m.FromZone.String()
}

// Before orden cronológico: fecha y, a igualdad de fecha, posición en el historial.
func (m MovementRecord) Before(other MovementRecord) bool {
	if m.Date.Equal(other.Date) {
		return m.Seq < other.Seq
	}
	return m.Date.Before(other.Date)
}
