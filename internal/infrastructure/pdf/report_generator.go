// Package pdf genera la versión imprimible de los reportes de vencimientos y de
// historial de movimientos de una bodega.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Bodega     │  Generado: fecha y hora      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de filas / umbral o período                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por producto o movimiento                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	inv "github.com/jhoicas/amazone-warehouse/internal/domain/inventory"
)

var _ appinventory.ReportGenerator = (*ReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 200, Green: 120, Blue: 0}
	colorDanger  = &props.Color{Red: 180, Green: 20, Blue: 20}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa inventory.ReportGenerator usando Maroto v2.
type ReportGenerator struct {
	author string
}

// NewReportGenerator construye el generador. author aparece en los metadatos del PDF.
func NewReportGenerator(author string) *ReportGenerator {
	return &ReportGenerator{author: nonEmpty(author, "Ama Zone")}
}

// GenerateDeadlinesPDF tabla de vencimientos: producto, SKU, zona, fecha, días y estado.
func (g *ReportGenerator) GenerateDeadlinesPDF(_ context.Context, report *dto.DeadlineListResponse, generatedAt time.Time) ([]byte, error) {
	m := maroto.New(g.pageConfig("Deadlines"))

	m.AddRows(headerRow("DEADLINES", report.Warehouse, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(
		fmt.Sprintf("Products with expiration date: %d", report.Total),
		fmt.Sprintf("Near expiry threshold: %d days", report.NearExpiryDays),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeader(
		header{"Product", 4, align.Left},
		header{"SKU", 2, align.Left},
		header{"Zone", 2, align.Left},
		header{"Expires", 2, align.Center},
		header{"Days", 1, align.Center},
		header{"Status", 1, align.Center},
	))
	if len(report.Items) == 0 {
		m.AddRows(emptyRow("No products with an expiration date."))
	}
	for _, d := range report.Items {
		m.AddRows(row.New(7).Add(
			cell(d.Name, 4, align.Left, nil),
			cell(d.SKU, 2, align.Left, colorGray),
			cell(d.Zone, 2, align.Left, nil),
			cell(d.ExpirationDate.Format(dateLayout), 2, align.Center, nil),
			cell(fmt.Sprintf("%d", d.DaysRemaining), 1, align.Center, nil),
			cell(statusLabel(d.Status), 1, align.Center, statusColor(d.Status)),
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())
	return generate(m)
}

// GenerateMovementsPDF tabla del historial: fecha, producto, origen y destino.
func (g *ReportGenerator) GenerateMovementsPDF(_ context.Context, report *dto.MovementHistoryResponse, generatedAt time.Time) ([]byte, error) {
	m := maroto.New(g.pageConfig("Movement history"))

	m.AddRows(headerRow("MOVEMENT HISTORY", report.Warehouse, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(
		fmt.Sprintf("Movements: %d", report.Count),
		"Period: "+report.PeriodLabel,
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeader(
		header{"Date", 3, align.Left},
		header{"Product", 4, align.Left},
		header{"From", 2, align.Left},
		header{"To", 3, align.Left},
	))
	if len(report.Items) == 0 {
		m.AddRows(emptyRow("No movements in this period."))
	}
	for _, mv := range report.Items {
		m.AddRows(row.New(7).Add(
			cell(mv.Date.Format("02/01/2006 15:04"), 3, align.Left, colorGray),
			cell(nonEmpty(mv.ProductName, mv.ProductID), 4, align.Left, nil),
			cell(mv.FromLabel, 2, align.Left, nil),
			cell(mv.ToZone, 3, align.Left, nil),
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())
	return generate(m)
}

func (g *ReportGenerator) pageConfig(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + bodega (izq) y fecha de generación (der).
func headerRow(title, warehouse string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(warehouse, "All warehouses"), props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func summaryRow(left, right string) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(left, props.Text{Size: 9, Top: 2})),
		col.New(6).Add(text.New(right, props.Text{Size: 9, Top: 2, Align: align.Right})),
	)
}

type header struct {
	label string
	size  int
	align align.Type
}

func tableHeader(hs ...header) core.Row {
	cols := make([]core.Col, 0, len(hs))
	for _, h := range hs {
		cols = append(cols, col.New(h.size).Add(text.New(h.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: h.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func cell(value string, size int, a align.Type, color *props.Color) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
	}))
}

func emptyRow(msg string) core.Row {
	return row.New(10).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 9, Align: align.Center, Color: colorGray, Top: 3,
	})))
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(
		"Ama Zone warehouse report. Dates are shown in the server time zone.",
		props.Text{Size: 6.5, Color: colorGray, Top: 2},
	)))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch inv.DeadlineStatus(status) {
	case inv.DeadlineExpired:
		return "Expired"
	case inv.DeadlineNearExpiry:
		return "Soon"
	default:
		return "OK"
	}
}

func statusColor(status string) *props.Color {
	switch inv.DeadlineStatus(status) {
	case inv.DeadlineExpired:
		return colorDanger
	case inv.DeadlineNearExpiry:
		return colorWarn
	default:
		return nil
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
