package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardDTO respuesta de GET /api/dashboard y POST /api/dashboard/upload.
// Los valores numéricos van con precisión completa; los campos *_label ya vienen
// redondeados a 2 decimales para mostrar.
type DashboardDTO struct {
	FileName string    `json:"file_name"`
	LoadedAt time.Time `json:"loaded_at"`
	RowCount int       `json:"row_count"`

	KPIs            KPIsDTO            `json:"kpis"`
	ValueByCategory []CategoryValueDTO `json:"value_by_category"` // orden alfabético
	StockByProduct  []ProductStockDTO  `json:"stock_by_product"`  // Stock Actual descendente
	Coverage        []CoveragePointDTO `json:"coverage"`          // orden del archivo
	LowStock        []DerivedRowDTO    `json:"low_stock"`  // filas completas con LowStock
	OverStock       []DerivedRowDTO    `json:"over_stock"` // filas completas con OverStock
	Rows            []DerivedRowDTO    `json:"rows"`

	Recommendations []string          `json:"recommendations"`
	Charts          map[string]string `json:"charts"` // nombre → URL del SVG
}

// KPIsDTO las cuatro tarjetas del dashboard.
type KPIsDTO struct {
	TotalInventoryValue      decimal.Decimal `json:"total_inventory_value"`
	TotalInventoryValueLabel string          `json:"total_inventory_value_label"` // "$1,234.56"
	LowStockCount            int             `json:"low_stock_count"`
	OverStockCount           int             `json:"over_stock_count"`
	AverageRotation          decimal.Decimal `json:"average_rotation"`
	AverageRotationLabel     string          `json:"average_rotation_label"` // "1.50"
}

// CategoryValueDTO barra del gráfico de valor por categoría.
type CategoryValueDTO struct {
	Category       string          `json:"category"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// ProductStockDTO barra del gráfico de stock por producto.
type ProductStockDTO struct {
	Product      string          `json:"product"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}

// CoveragePointDTO punto del gráfico de cobertura.
type CoveragePointDTO struct {
	Product      string          `json:"product"`
	Category     string          `json:"category"`
	CoverageDays decimal.Decimal `json:"coverage_days"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}

// DerivedRowDTO fila completa con las columnas derivadas; también la usan las
// tablas de bajo stock y sobrestock.
type DerivedRowDTO struct {
	Row            int             `json:"row"`
	Product        string          `json:"product"`
	Category       string          `json:"category"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	MinStock       decimal.Decimal `json:"min_stock"`
	MaxStock       decimal.Decimal `json:"max_stock"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	MonthlySales   decimal.Decimal `json:"monthly_sales"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	LowStock       bool            `json:"low_stock"`
	OverStock      bool            `json:"over_stock"`
	Rotation       decimal.Decimal `json:"rotation"`
	CoverageDays   decimal.Decimal `json:"coverage_days"`
}
