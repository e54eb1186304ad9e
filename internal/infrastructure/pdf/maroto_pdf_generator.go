// Package pdf genera el reporte PDF del dashboard de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + archivo  │  Fecha de carga                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Valor total | Bajo stock | Sobrestock | Rotación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GRÁFICOS: valor por categoría, stock, cobertura (PNG)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLAS: productos con bajo stock / con sobrestock          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECOMENDACIONES                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bi-inventario/internal/application/analytics"
	"github.com/jhoicas/bi-inventario/internal/domain/entity"
	"github.com/jhoicas/bi-inventario/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorLow     = &props.Color{Red: 255, Green: 204, Blue: 204} // #ffcccc
	colorOver    = &props.Color{Red: 255, Green: 243, Blue: 205} // #fff3cd
	colorAlert   = &props.Color{Red: 153, Green: 27, Blue: 27}
)

var chartTitles = map[entity.ChartKind]string{
	entity.ChartValueByCategory: "Valor del Inventario por Categoría",
	entity.ChartStockByProduct:  "Stock Actual por Producto",
	entity.ChartCoverage:        "Cobertura del Inventario por Producto",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDashboardPDF(_ context.Context, report analytics.DashboardReport) ([]byte, error) {
	if report.Snapshot == nil {
		return nil, errors.New("pdf: reporte sin datos")
	}
	snap := report.Snapshot

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Dashboard de Inventario", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(snap))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(snap.Table.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, kind := range entity.ChartKinds {
		png, ok := report.Charts[kind]
		if !ok || len(png) == 0 {
			continue
		}
		m.AddRows(sectionTitle(chartTitles[kind]))
		m.AddRows(image.NewFromBytesRow(80, png, extension.Png, props.Rect{Center: true, Percent: 95}))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("Productos con Bajo Stock"))
	m.AddRows(riskRows(snap.Table.LowStock, colorLow)...)

	m.AddRows(sectionTitle("Productos con Sobrestock"))
	m.AddRows(riskRows(snap.Table.OverStock, colorOver)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitle("Recomendaciones"))
	for _, rec := range report.Recommendations {
		m.AddRows(text.NewRow(6, "• "+plain(rec), props.Text{Size: 8, Top: 1, Left: 2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + archivo (izq) y fecha de carga (der).
func headerRow(snap *entity.Snapshot) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Dashboard de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Archivo: "+nonEmpty(snap.FileName, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Cargado: "+snap.LoadedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// kpiRow: las cuatro tarjetas de KPI.
func kpiRow(s entity.Summary) core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		card("Valor Total del Inventario", money.Currency(s.TotalInventoryValue)),
		card("Productos con Bajo Stock", fmt.Sprintf("%d", s.LowStockCount)),
		card("Productos con Sobrestock", fmt.Sprintf("%d", s.OverStockCount)),
		card("Rotación Promedio", money.Fixed2(s.AverageRotation)),
	)
}

func sectionTitle(title string) core.Row {
	return text.NewRow(8, title, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
	})
}

// riskColumns cabecera de las tablas de riesgo: las doce columnas de la tabla derivada.
var riskColumns = []string{
	entity.ColumnProduct, entity.ColumnCategory,
	entity.ColumnCurrentStock, entity.ColumnMinStock, entity.ColumnMaxStock,
	entity.ColumnUnitCost, entity.ColumnMonthlySales, entity.ColumnInventoryValue,
	entity.ColumnLowStock, entity.ColumnOverStock,
	entity.ColumnRotation, entity.ColumnCoverageDays,
}

// riskRows: tabla con todas las columnas de cada fila, fondo resaltado y la
// celda de la bandera activa en negrita.
func riskRows(rows []entity.DerivedRecord, bg *props.Color) []core.Row {
	header := make([]core.Col, 0, len(riskColumns))
	for i, label := range riskColumns {
		a := align.Right
		if i < 2 {
			a = align.Left
		}
		header = append(header, col.New(1).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 6, Align: a,
			Color: colorWhite, Top: 1, Left: 0.5, Right: 0.5,
		})))
	}
	result := []core.Row{
		row.New(10).Add(header...).WithStyle(&props.Cell{BackgroundColor: colorPrimary}),
	}

	if len(rows) == 0 {
		return append(result, text.NewRow(7, "Sin productos en esta condición.", props.Text{
			Size: 8, Top: 1, Left: 1, Color: colorGray,
		}))
	}

	cell := func(value string, a align.Type, flagged bool) core.Col {
		ps := props.Text{Size: 6, Align: a, Top: 1, Left: 0.5, Right: 0.5}
		if flagged {
			ps.Style = fontstyle.Bold
			ps.Color = colorAlert
		}
		return col.New(1).Add(text.New(value, ps))
	}
	for _, r := range rows {
		result = append(result, row.New(8).Add(
			cell(r.Product, align.Left, false),
			cell(r.Category, align.Left, false),
			cell(r.CurrentStock.String(), align.Right, false),
			cell(r.MinStock.String(), align.Right, false),
			cell(r.MaxStock.String(), align.Right, false),
			cell(money.Currency(r.UnitCost), align.Right, false),
			cell(r.MonthlySales.String(), align.Right, false),
			cell(money.Currency(r.InventoryValue), align.Right, false),
			cell(yesNo(r.LowStock), align.Center, r.LowStock),
			cell(yesNo(r.OverStock), align.Center, r.OverStock),
			cell(money.Fixed2(r.Rotation), align.Right, false),
			cell(money.Fixed2(r.CoverageDays), align.Right, false),
		).WithStyle(&props.Cell{BackgroundColor: bg}))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// plain quita el marcado de negrita (**texto**) de las recomendaciones.
func plain(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
