package inventory

import (
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// DeadlineStatus clasificación de presentación; no se persiste, se recalcula desde ExpirationDate.
type DeadlineStatus string

const (
	DeadlineOK         DeadlineStatus = "ok"
	DeadlineNearExpiry DeadlineStatus = "near_expiry"
	DeadlineExpired    DeadlineStatus = "expired"
)

// DefaultNearExpiryDays umbral de "vence pronto" en días.
const DefaultNearExpiryDays = 3

// DeadlinePolicy umbrales de clasificación de vencimientos.
type DeadlinePolicy struct {
	NearExpiryDays int
}

// DefaultDeadlinePolicy política por defecto (3 días).
func DefaultDeadlinePolicy() DeadlinePolicy {
	return DeadlinePolicy{NearExpiryDays: DefaultNearExpiryDays}
}

// Deadline días restantes y clasificación de un vencimiento.
type Deadline struct {
	Days   int
	Status DeadlineStatus
}

// DaysRemaining días completos entre now y exp, truncados hacia cero.
// Negativo cuando exp quedó atrás por al menos un día completo.
func DaysRemaining(now, exp time.Time) int {
	return int(exp.Sub(now) / (24 * time.Hour))
}

// Evaluate calcula días restantes y clasificación. Vencido solo con días < 0: un
// producto vencido hace unas horas sigue en 0 días y cuenta como próximo a vencer.
func (p DeadlinePolicy) Evaluate(now, exp time.Time) Deadline {
	days := DaysRemaining(now, exp)
	switch {
	case days < 0:
		return Deadline{Days: days, Status: DeadlineExpired}
	case days <= p.NearExpiryDays:
		return Deadline{Days: days, Status: DeadlineNearExpiry}
	default:
		return Deadline{Days: days, Status: DeadlineOK}
	}
}

// EvaluateProduct igual que Evaluate para un producto; ok=false si no tiene vencimiento.
func (p DeadlinePolicy) EvaluateProduct(now time.Time, product *entity.Product) (Deadline, bool) {
	if product == nil || product.ExpirationDate == nil {
		return Deadline{}, false
	}
	return p.Evaluate(now, *product.ExpirationDate), true
}
