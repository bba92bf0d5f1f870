package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	inv "github.com/jhoicas/amazone-warehouse/internal/domain/inventory"
)

func toProductResponse(p *entity.Product, policy inv.DeadlinePolicy, now time.Time) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		Zone:           p.Zone.String(),
		ZoneIcon:       p.Zone.IconName(),
		Warehouse:      p.Warehouse,
		ArrivalDate:    p.ArrivalDate,
		ExpirationDate: p.ExpirationDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if d, ok := policy.EvaluateProduct(now, p); ok {
		out.Deadline = &dto.DeadlineInfo{DaysRemaining: d.Days, Status: string(d.Status)}
	}
	hist := p.SortedHistory()
	out.History = make([]dto.MovementResponse, 0, len(hist))
	for _, m := range hist {
		out.History = append(out.History, toMovementResponse(m, ""))
	}
	return out
}

func toMovementResponse(m entity.MovementRecord, productName string) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: productName,
		Date:        m.Date,
		FromLabel:   m.FromLabel(),
		ToZone:      m.ToZone.String(),
		Warehouse:   m.Warehouse,
	}
	if m.FromZone != nil {
		from := m.FromZone.String()
		out.FromZone = &from
		out.Description = fmt.Sprintf("moved to %q", m.ToZone.String())
	} else {
		out.Description = fmt.Sprintf("added to %q", m.ToZone.String())
	}
	return out
}

func toDeadlineResponse(p *entity.Product, d inv.Deadline) dto.DeadlineResponse {
	return dto.DeadlineResponse{
		ProductID:      p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		Zone:           p.Zone.String(),
		ExpirationDate: *p.ExpirationDate,
		DaysRemaining:  d.Days,
		Status:         string(d.Status),
	}
}
