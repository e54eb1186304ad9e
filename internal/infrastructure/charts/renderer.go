// Package charts dibuja los gráficos del dashboard con go-chart.
//
//	valor-por-categoria  barras: suma de ValorInventario por Categoría
//	stock-por-producto   barras: Stock Actual por Producto, descendente
//	cobertura            dispersión: Cobertura (días) por Producto, color = Categoría,
//	                     tamaño del punto proporcional al Stock Actual
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jhoicas/bi-inventario/internal/domain/entity"
)

// ErrNoData la tabla no tiene filas que graficar.
var ErrNoData = errors.New("charts: sin datos")

const (
	chartHeight   = 420
	minChartWidth = 640
	barSlotWidth  = 64
	minDotWidth   = 4.0
	maxDotWidth   = 20.0
)

// palette colores de serie, uno por categoría.
var palette = []drawing.Color{
	drawing.ColorFromHex("4F46E5"),
	drawing.ColorFromHex("10B981"),
	drawing.ColorFromHex("F59E0B"),
	drawing.ColorFromHex("EF4444"),
	drawing.ColorFromHex("8B5CF6"),
	drawing.ColorFromHex("06B6D4"),
	drawing.ColorFromHex("EC4899"),
	drawing.ColorFromHex("84CC16"),
	drawing.ColorFromHex("F97316"),
	drawing.ColorFromHex("6366F1"),
}

// Renderer implementa analytics.ChartRenderer.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render escribe en w el gráfico kind de la tabla en el formato pedido.
func (r *Renderer) Render(kind entity.ChartKind, format entity.ImageFormat, table entity.DerivedTable, w io.Writer) error {
	if len(table.Rows) == 0 {
		return ErrNoData
	}
	rp := gochart.SVG
	if format == entity.ImagePNG {
		rp = gochart.PNG
	}

	var err error
	switch kind {
	case entity.ChartValueByCategory:
		bars := valueByCategory(table)
		err = bars.Render(rp, w)
	case entity.ChartStockByProduct:
		bars := stockByProduct(table)
		err = bars.Render(rp, w)
	case entity.ChartCoverage:
		graph := coverageByProduct(table)
		err = graph.Render(rp, w)
	default:
		return fmt.Errorf("charts: gráfico desconocido %q", kind)
	}
	if err != nil {
		return fmt.Errorf("charts: dibujar %s: %w", kind, err)
	}
	return nil
}

// ── Barras ────────────────────────────────────────────────────────────────────

func valueByCategory(table entity.DerivedTable) gochart.BarChart {
	labels := make([]string, len(table.ValueByCategory))
	values := make([]float64, len(table.ValueByCategory))
	for i, cv := range table.ValueByCategory {
		labels[i] = cv.Category
		values[i] = cv.InventoryValue.InexactFloat64()
	}
	return barChart("Valor del Inventario por Categoría", labels, values, palette[0])
}

func stockByProduct(table entity.DerivedTable) gochart.BarChart {
	labels := make([]string, len(table.ByStockDesc))
	values := make([]float64, len(table.ByStockDesc))
	for i, r := range table.ByStockDesc {
		labels[i] = r.Product
		values[i] = r.CurrentStock.InexactFloat64()
	}
	return barChart("Stock Actual por Producto", labels, values, palette[1])
}

// barChart fija el rango Y explícitamente para que una tabla con todos los valores
// en cero siga teniendo un rango dibujable.
func barChart(title string, labels []string, values []float64, color drawing.Color) gochart.BarChart {
	bars := make([]gochart.Value, len(values))
	top := 0.0
	for i, v := range values {
		bars[i] = gochart.Value{
			Label: labels[i],
			Value: v,
			Style: gochart.Style{FillColor: color, StrokeColor: color},
		}
		top = math.Max(top, v)
	}

	return gochart.BarChart{
		Title:      title,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 24}},
		Width:      widthFor(len(bars)),
		Height:     chartHeight,
		BarWidth:   barSlotWidth * 3 / 4,
		YAxis:      gochart.YAxis{Range: &gochart.ContinuousRange{Min: 0, Max: upperBound(top)}},
		Bars:       bars,
	}
}

// ── Dispersión ────────────────────────────────────────────────────────────────

// coverageByProduct coloca cada fila en x = posición en la tabla (etiquetada con el
// producto) y agrupa en una serie por categoría, en el mismo orden que ValueByCategory.
func coverageByProduct(table entity.DerivedTable) gochart.Chart {
	maxStock, maxCoverage := 0.0, 0.0
	for _, r := range table.Rows {
		maxStock = math.Max(maxStock, r.CurrentStock.InexactFloat64())
		maxCoverage = math.Max(maxCoverage, r.CoverageDays.InexactFloat64())
	}

	// go-chart toma el rango X de los ticks y no de XAxis.Range; los ticks sin
	// etiqueta en -1 y len(rows) dan margen a los extremos y un rango no nulo
	// aunque la tabla tenga un solo producto.
	ticks := make([]gochart.Tick, 0, len(table.Rows)+2)
	ticks = append(ticks, gochart.Tick{Value: -1})
	type points struct{ xs, ys, sizes []float64 }
	byCategory := make(map[string]*points)
	for i, r := range table.Rows {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: r.Product})
		p, ok := byCategory[r.Category]
		if !ok {
			p = &points{}
			byCategory[r.Category] = p
		}
		p.xs = append(p.xs, float64(i))
		p.ys = append(p.ys, r.CoverageDays.InexactFloat64())
		p.sizes = append(p.sizes, dotWidth(r.CurrentStock.InexactFloat64(), maxStock))
	}
	ticks = append(ticks, gochart.Tick{Value: float64(len(table.Rows))})

	series := make([]gochart.Series, 0, len(byCategory))
	for k, cv := range table.ValueByCategory {
		p := byCategory[cv.Category]
		color := palette[k%len(palette)]
		sizes := p.sizes
		series = append(series, gochart.ContinuousSeries{
			Name:    cv.Category,
			XValues: p.xs,
			YValues: p.ys,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				StrokeColor: color,
				DotColor:    color,
				DotWidth:    minDotWidth,
				DotWidthProvider: func(_, _ gochart.Range, index int, _, _ float64) float64 {
					return sizes[index]
				},
			},
		})
	}

	graph := gochart.Chart{
		Title:      "Cobertura del Inventario por Producto",
		Width:      widthFor(len(table.Rows)),
		Height:     chartHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  entity.ColumnProduct,
			Range: &gochart.ContinuousRange{Min: -1, Max: float64(len(table.Rows))},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name:  entity.ColumnCoverageDays,
			Range: &gochart.ContinuousRange{Min: 0, Max: upperBound(maxCoverage)},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	return graph
}

// ── helpers ───────────────────────────────────────────────────────────────────

func widthFor(n int) int {
	w := n*barSlotWidth + 96
	if w < minChartWidth {
		return minChartWidth
	}
	return w
}

// upperBound deja un 10% de aire sobre el máximo; 1 si todo es cero.
func upperBound(top float64) float64 {
	if top <= 0 {
		return 1
	}
	return top * 1.1
}

// dotWidth escala el punto con la raíz del stock para que el área sea proporcional.
func dotWidth(stock, maxStock float64) float64 {
	if maxStock <= 0 {
		return minDotWidth
	}
	return minDotWidth + (maxDotWidth-minDotWidth)*math.Sqrt(stock/maxStock)
}
