package entity

import "github.com/shopspring/decimal"

// Cabeceras exactas del archivo de inventario (sensibles a mayúsculas y tildes).
const (
	ColumnProduct      = "Producto"
	ColumnCategory     = "Categoría"
	ColumnCurrentStock = "Stock Actual"
	ColumnMinStock     = "Stock Mínimo"
	ColumnMaxStock     = "Stock Máximo"
	ColumnUnitCost     = "Costo Unitario"
	ColumnMonthlySales = "Venta Mensual"
)

// Cabeceras de las columnas derivadas (exportación CSV y tablas del dashboard).
const (
	ColumnInventoryValue = "ValorInventario"
	ColumnLowStock       = "BajoStock"
	ColumnOverStock      = "SobreStock"
	ColumnRotation       = "Rotación"
	ColumnCoverageDays   = "Cobertura (días)"
)

// RequiredColumns columnas que debe traer todo archivo cargado.
var RequiredColumns = []string{
	ColumnProduct,
	ColumnCategory,
	ColumnCurrentStock,
	ColumnMinStock,
	ColumnMaxStock,
	ColumnUnitCost,
	ColumnMonthlySales,
}

// NumericColumns subconjunto de RequiredColumns que debe ser numérico y no negativo.
var NumericColumns = []string{
	ColumnCurrentStock,
	ColumnMinStock,
	ColumnMaxStock,
	ColumnUnitCost,
	ColumnMonthlySales,
}

// InventoryRecord representa una fila del archivo de inventario.
type InventoryRecord struct {
	Row          int // línea en la hoja; la cabecera es la 1
	Product      string
	Category     string
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal // umbral de reposición
	MaxStock     decimal.Decimal // umbral de sobrestock
	UnitCost     decimal.Decimal
	MonthlySales decimal.Decimal
}

// DerivedRecord es la fila original más las métricas calculadas.
// Todas las métricas dependen únicamente de la propia fila.
type DerivedRecord struct {
	InventoryRecord
	InventoryValue decimal.Decimal // CurrentStock * UnitCost
	LowStock       bool            // CurrentStock < MinStock
	OverStock      bool            // CurrentStock > MaxStock
	Rotation       decimal.Decimal // MonthlySales / (CurrentStock + 1)
	CoverageDays   decimal.Decimal // CurrentStock / (MonthlySales + 1) * 30
}
