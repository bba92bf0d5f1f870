package inventory

import (
	"context"
	"fmt"
	"strings"
)

// ReportUseCase genera la versión imprimible (PDF) de vencimientos e historial.
type ReportUseCase struct {
	query     *QueryUseCase
	generator ReportGenerator
	options
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(query *QueryUseCase, generator ReportGenerator, opts ...Option) *ReportUseCase {
	return &ReportUseCase{query: query, generator: generator, options: buildOptions(opts)}
}

// DeadlinesPDF devuelve (pdfBytes, filename, error).
func (uc *ReportUseCase) DeadlinesPDF(ctx context.Context, warehouse string) ([]byte, string, error) {
	report, err := uc.query.Deadlines(ctx, warehouse)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdf, err := uc.generator.GenerateDeadlinesPDF(ctx, report, now)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de vencimientos: %w", err)
	}
	return pdf, fmt.Sprintf("deadlines_%s_%s.pdf", slug(warehouse), now.Format("20060102")), nil
}

// MovementsPDF devuelve (pdfBytes, filename, error).
func (uc *ReportUseCase) MovementsPDF(ctx context.Context, q MovementHistoryQuery) ([]byte, string, error) {
	report, err := uc.query.MovementHistory(ctx, q)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdf, err := uc.generator.GenerateMovementsPDF(ctx, report, now)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de movimientos: %w", err)
	}
	return pdf, fmt.Sprintf("movements_%s_%s_%s.pdf", slug(q.Warehouse), report.Period, now.Format("20060102")), nil
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "_")
}
