package inventory_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bi-inventario/internal/domain/entity"
	"github.com/jhoicas/bi-inventario/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func record(product, category string, stock, min, max, cost, sales int64) entity.InventoryRecord {
	return entity.InventoryRecord{
		Product:      product,
		Category:     category,
		CurrentStock: decimal.NewFromInt(stock),
		MinStock:     decimal.NewFromInt(min),
		MaxStock:     decimal.NewFromInt(max),
		UnitCost:     decimal.NewFromInt(cost),
		MonthlySales: decimal.NewFromInt(sales),
	}
}

// randomRecords genera filas no negativas reproducibles con MinStock <= MaxStock.
func randomRecords(n int, seed int64) []entity.InventoryRecord {
	rnd := rand.New(rand.NewSource(seed))
	cats := []string{"Bebidas", "Lácteos", "Aseo", "Snacks"}
	out := make([]entity.InventoryRecord, n)
	for i := range out {
		min := rnd.Int63n(50)
		out[i] = entity.InventoryRecord{
			Row:          i + 2,
			Product:      fmt.Sprintf("P%03d", i),
			Category:     cats[rnd.Intn(len(cats))],
			CurrentStock: decimal.NewFromInt(rnd.Int63n(200)),
			MinStock:     decimal.NewFromInt(min),
			MaxStock:     decimal.NewFromInt(min + rnd.Int63n(150)),
			UnitCost:     decimal.New(rnd.Int63n(100000), -2),
			MonthlySales: decimal.NewFromInt(rnd.Int63n(120)),
		}
	}
	return out
}

func TestDeriveRecord_EjemploBajoStock(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())

	got := tr.DeriveRecord(record("Café", "Bebidas", 5, 10, 100, 2, 15))

	assert.True(t, got.InventoryValue.Equal(dec("10")), "valor: %s", got.InventoryValue)
	assert.True(t, got.LowStock)
	assert.False(t, got.OverStock)
	assert.True(t, got.Rotation.Equal(dec("2.5")), "rotación: %s", got.Rotation)
	assert.True(t, got.CoverageDays.Equal(dec("9.375")), "cobertura: %s", got.CoverageDays)
}

func TestDeriveRecord_StockYVentaEnCeroNoDividePorCero(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())

	got := tr.DeriveRecord(record("Agua", "Bebidas", 0, 0, 0, 3, 0))

	assert.True(t, got.Rotation.IsZero())
	assert.True(t, got.CoverageDays.IsZero())
	assert.True(t, got.InventoryValue.IsZero())
	assert.False(t, got.LowStock, "0 < 0 es falso")
	assert.False(t, got.OverStock)
}

func TestDeriveRecord_SobreStock(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())

	got := tr.DeriveRecord(record("Jabón", "Aseo", 120, 10, 100, 4, 9))

	assert.False(t, got.LowStock)
	assert.True(t, got.OverStock)
	assert.True(t, got.InventoryValue.Equal(dec("480")))
	assert.True(t, got.CoverageDays.Equal(dec("360")), "120*30/10: %s", got.CoverageDays)
}

func TestDivisionPolicy_OffsetCeroDevuelveCero(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DivisionPolicy{Offset: decimal.Zero})

	got := tr.DeriveRecord(record("Agua", "Bebidas", 0, 0, 0, 3, 7))

	assert.True(t, got.Rotation.IsZero(), "stock 0 sin offset no debe fallar")
	assert.True(t, got.CoverageDays.IsZero())
}

func TestDerive_PropiedadesPorFila(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())
	one := decimal.NewFromInt(1)
	thirty := decimal.NewFromInt(30)

	records := randomRecords(300, 42)
	table := tr.Derive(records)

	require.Len(t, table.Rows, len(records), "la salida conserva la cantidad de filas")
	for i, r := range table.Rows {
		in := records[i]
		assert.Equal(t, in, r.InventoryRecord, "fila %d conserva los datos de entrada", i)
		assert.True(t, r.InventoryValue.Equal(in.CurrentStock.Mul(in.UnitCost)))
		assert.Equal(t, in.CurrentStock.LessThan(in.MinStock), r.LowStock)
		assert.Equal(t, in.CurrentStock.GreaterThan(in.MaxStock), r.OverStock)
		assert.False(t, r.LowStock && r.OverStock, "con Min <= Max no puede estar en ambos estados")
		assert.True(t, r.Rotation.Equal(in.MonthlySales.Div(in.CurrentStock.Add(one))))
		assert.True(t, r.CoverageDays.Equal(in.CurrentStock.Mul(thirty).Div(in.MonthlySales.Add(one))))
	}
}

func TestDerive_KPIs(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())
	table := tr.Derive([]entity.InventoryRecord{
		record("A", "Bebidas", 5, 10, 100, 2, 15),  // bajo, rot 2.5
		record("B", "Bebidas", 200, 10, 100, 1, 0), // sobre, rot 0
		record("C", "Aseo", 49, 10, 100, 3, 100),   // normal, rot 2
	})

	s := table.Summary
	assert.True(t, s.TotalInventoryValue.Equal(dec("357")), "10 + 200 + 147: %s", s.TotalInventoryValue)
	assert.Equal(t, 1, s.LowStockCount)
	assert.Equal(t, 1, s.OverStockCount)
	assert.True(t, s.AverageRotation.Equal(dec("1.5")), "(2.5+0+2)/3: %s", s.AverageRotation)
}

func TestDerive_TotalIgualSumaDeValores(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())
	table := tr.Derive(randomRecords(500, 7))

	sum := decimal.Zero
	for _, r := range table.Rows {
		sum = sum.Add(r.InventoryValue)
	}
	assert.True(t, sum.Equal(table.Summary.TotalInventoryValue))
}

func TestDerive_ValorPorCategoria(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())
	table := tr.Derive(randomRecords(400, 11))

	want := map[string]decimal.Decimal{}
	for _, r := range table.Rows {
		want[r.Category] = want[r.Category].Add(r.InventoryValue)
	}

	require.Len(t, table.ValueByCategory, len(want), "una entrada por categoría presente")
	for i, cv := range table.ValueByCategory {
		assert.True(t, want[cv.Category].Equal(cv.InventoryValue), "categoría %s", cv.Category)
		if i > 0 {
			assert.Less(t, table.ValueByCategory[i-1].Category, cv.Category, "orden alfabético")
		}
	}
}

func TestDerive_OrdenPorStockDescendente(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())
	table := tr.Derive([]entity.InventoryRecord{
		record("A", "X", 5, 0, 100, 1, 1),
		record("B", "X", 50, 0, 100, 1, 1),
		record("C", "X", 5, 0, 100, 1, 1),
		record("D", "X", 70, 0, 100, 1, 1),
	})

	var got []string
	for _, r := range table.ByStockDesc {
		got = append(got, r.Product)
	}
	assert.Equal(t, []string{"D", "B", "A", "C"}, got, "empates conservan el orden del archivo")
	assert.Equal(t, "A", table.Rows[0].Product, "Rows no se reordena")
}

func TestDerive_VistasFiltradasReconstruyenLaTabla(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())
	table := tr.Derive(randomRecords(250, 3))

	for _, r := range table.LowStock {
		assert.True(t, r.LowStock)
	}
	for _, r := range table.OverStock {
		assert.True(t, r.OverStock)
	}

	low, notLow := 0, 0
	for _, r := range table.Rows {
		if r.LowStock {
			low++
		} else {
			notLow++
		}
	}
	assert.Equal(t, len(table.LowStock), low)
	assert.Equal(t, len(table.Rows), len(table.LowStock)+notLow)
}

func TestDerive_TablaVacia(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())
	table := tr.Derive(nil)

	assert.Empty(t, table.Rows)
	assert.True(t, table.Summary.TotalInventoryValue.IsZero())
	assert.True(t, table.Summary.AverageRotation.IsZero())
	assert.NotNil(t, table.LowStock)
	assert.NotNil(t, table.OverStock)
	assert.Empty(t, table.ValueByCategory)
}

func TestDerive_Determinista(t *testing.T) {
	tr := inventory.NewTransformer(inventory.DefaultPolicy())
	records := randomRecords(100, 99)

	assert.Equal(t, tr.Derive(records), tr.Derive(records))
}
