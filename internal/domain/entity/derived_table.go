package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary los cuatro KPIs del dashboard.
type Summary struct {
	TotalInventoryValue decimal.Decimal
	LowStockCount       int
	OverStockCount      int
	AverageRotation     decimal.Decimal // 0 si la tabla está vacía
}

// CategoryValue suma de ValorInventario de una categoría.
type CategoryValue struct {
	Category       string
	InventoryValue decimal.Decimal
}

// DerivedTable resultado completo de la transformación de un archivo.
// LowStock, OverStock y ByStockDesc comparten los mismos valores de Rows.
type DerivedTable struct {
	Rows            []DerivedRecord // orden del archivo
	Summary         Summary
	ValueByCategory []CategoryValue // orden alfabético de categoría
	ByStockDesc     []DerivedRecord // Stock Actual descendente
	LowStock        []DerivedRecord
	OverStock       []DerivedRecord
}

// Snapshot archivo vigente de una sesión ya transformado.
// Se reemplaza con cada carga y nunca se modifica después de construido.
type Snapshot struct {
	FileName string
	LoadedAt time.Time
	Table    DerivedTable
}
