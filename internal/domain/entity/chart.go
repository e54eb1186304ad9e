package entity

// ChartKind identifica los tres gráficos del dashboard (se usa también en la URL).
type ChartKind string

const (
	ChartValueByCategory ChartKind = "valor-por-categoria"
	ChartStockByProduct  ChartKind = "stock-por-producto"
	ChartCoverage        ChartKind = "cobertura"
)

// ChartKinds en el orden en que aparecen en el dashboard.
var ChartKinds = []ChartKind{ChartValueByCategory, ChartStockByProduct, ChartCoverage}

// Valid indica si k es un gráfico conocido.
func (k ChartKind) Valid() bool {
	for _, c := range ChartKinds {
		if c == k {
			return true
		}
	}
	return false
}

// ImageFormat formato de salida de un gráfico.
type ImageFormat string

const (
	ImageSVG ImageFormat = "svg"
	ImagePNG ImageFormat = "png"
)
