package inventory

import (
	"strings"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/domain"
)

// Period ventana de calendario para el historial de movimientos.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod acepta today|week|month (vacío = month, igual que la pantalla de historial).
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case "", PeriodMonth:
		return PeriodMonth, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodToday:
		return PeriodToday, nil
	}
	return "", domain.NewValidationError("period", "debe ser today, week o month")
}

// Contains indica si t cae en el mismo día / semana ISO / mes que now,
// evaluado en la zona horaria de now.
func (p Period) Contains(now, t time.Time) bool {
	t = t.In(now.Location())
	switch p {
	case PeriodToday:
		y1, m1, d1 := now.Date()
		y2, m2, d2 := t.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodWeek:
		y1, w1 := now.ISOWeek()
		y2, w2 := t.ISOWeek()
		return y1 == y2 && w1 == w2
	case PeriodMonth:
		return now.Year() == t.Year() && now.Month() == t.Month()
	}
	return false
}

// Label etiqueta corta para el contador del historial.
func (p Period) Label() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodWeek:
		return "This week"
	default:
		return "This month"
	}
}
