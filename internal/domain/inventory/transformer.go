// Package inventory contiene el transformador de métricas del archivo de inventario.
// Es puro: no hace I/O y no depende de cómo se decodificó la tabla.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bi-inventario/internal/domain/entity"
)

var coverageMonthDays = decimal.NewFromInt(30)

// Transformer deriva las métricas por fila y las vistas agregadas.
type Transformer struct {
	policy DivisionPolicy
}

// NewTransformer construye el transformador con la política de división dada.
func NewTransformer(policy DivisionPolicy) Transformer {
	return Transformer{policy: policy}
}

// DeriveRecord calcula ValorInventario, BajoStock, SobreStock, Rotación y Cobertura de una fila.
//
//	ValorInventario = Stock Actual * Costo Unitario
//	Rotación        = Venta Mensual / (Stock Actual + offset)
//	Cobertura       = Stock Actual / (Venta Mensual + offset) * 30
//
// La cobertura se evalúa como Stock*30 / (Venta + offset) para no redondear dos veces.
func (t Transformer) DeriveRecord(r entity.InventoryRecord) entity.DerivedRecord {
	return entity.DerivedRecord{
		InventoryRecord: r,
		InventoryValue:  r.CurrentStock.Mul(r.UnitCost),
		LowStock:        r.CurrentStock.LessThan(r.MinStock),
		OverStock:       r.CurrentStock.GreaterThan(r.MaxStock),
		Rotation:        t.policy.Divide(r.MonthlySales, r.CurrentStock),
		CoverageDays:    t.policy.Divide(r.CurrentStock.Mul(coverageMonthDays), r.MonthlySales),
	}
}

// Derive transforma la tabla completa:
//  1. métricas por fila (mismo orden y cantidad de filas)
//  2. KPIs: suma de valor, conteo bajo/sobre stock, rotación promedio
//  3. valor por categoría y filas ordenadas por Stock Actual descendente
//  4. vistas filtradas de bajo stock y sobrestock
func (t Transformer) Derive(records []entity.InventoryRecord) entity.DerivedTable {
	rows := make([]entity.DerivedRecord, len(records))
	for i, r := range records {
		rows[i] = t.DeriveRecord(r)
	}

	out := entity.DerivedTable{
		Rows:      rows,
		LowStock:  []entity.DerivedRecord{},
		OverStock: []entity.DerivedRecord{},
	}

	total := decimal.Zero
	rotationSum := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, r := range rows {
		total = total.Add(r.InventoryValue)
		rotationSum = rotationSum.Add(r.Rotation)
		byCategory[r.Category] = byCategory[r.Category].Add(r.InventoryValue)
		if r.LowStock {
			out.LowStock = append(out.LowStock, r)
		}
		if r.OverStock {
			out.OverStock = append(out.OverStock, r)
		}
	}

	out.Summary = entity.Summary{
		TotalInventoryValue: total,
		LowStockCount:       len(out.LowStock),
		OverStockCount:      len(out.OverStock),
		AverageRotation:     decimal.Zero,
	}
	if len(rows) > 0 {
		out.Summary.AverageRotation = rotationSum.Div(decimal.NewFromInt(int64(len(rows))))
	}

	out.ValueByCategory = make([]entity.CategoryValue, 0, len(byCategory))
	for cat, v := range byCategory {
		out.ValueByCategory = append(out.ValueByCategory, entity.CategoryValue{Category: cat, InventoryValue: v})
	}
	sort.Slice(out.ValueByCategory, func(i, j int) bool {
		return out.ValueByCategory[i].Category < out.ValueByCategory[j].Category
	})

	out.ByStockDesc = make([]entity.DerivedRecord, len(rows))
	copy(out.ByStockDesc, rows)
	sort.SliceStable(out.ByStockDesc, func(i, j int) bool {
		return out.ByStockDesc[i].CurrentStock.GreaterThan(out.ByStockDesc[j].CurrentStock)
	})

	return out
}
