package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bi-inventario/internal/application/analytics"
	"github.com/jhoicas/bi-inventario/internal/domain/entity"
	"github.com/jhoicas/bi-inventario/internal/domain/inventory"
	"github.com/jhoicas/bi-inventario/internal/infrastructure/charts"
	"github.com/jhoicas/bi-inventario/internal/infrastructure/pdf"
)

func snapshot() *entity.Snapshot {
	rec := func(p, c string, stock, lo, hi, cost, sales int64) entity.InventoryRecord {
		return entity.InventoryRecord{
			Product: p, Category: c,
			CurrentStock: decimal.NewFromInt(stock),
			MinStock:     decimal.NewFromInt(lo),
			MaxStock:     decimal.NewFromInt(hi),
			UnitCost:     decimal.NewFromInt(cost),
			MonthlySales: decimal.NewFromInt(sales),
		}
	}
	table := inventory.NewTransformer(inventory.DefaultPolicy()).Derive([]entity.InventoryRecord{
		rec("Café", "Bebidas", 5, 10, 100, 2, 15),
		rec("Leche", "Lácteos", 120, 20, 100, 1, 40),
		rec("Jabón", "Aseo", 30, 5, 50, 3, 8),
	})
	return &entity.Snapshot{FileName: "inventario.xlsx", LoadedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), Table: table}
}

func TestGenerateDashboardPDF_ConGraficos(t *testing.T) {
	snap := snapshot()
	images := make(map[entity.ChartKind][]byte)
	for _, kind := range entity.ChartKinds {
		var buf bytes.Buffer
		require.NoError(t, charts.NewRenderer().Render(kind, entity.ImagePNG, snap.Table, &buf))
		images[kind] = buf.Bytes()
	}

	out, err := pdf.NewMarotoPDFGenerator("bi-inventario").GenerateDashboardPDF(context.Background(), analytics.DashboardReport{
		Snapshot:        snap,
		Charts:          images,
		Recommendations: analytics.Recommendations(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateDashboardPDF_SinGraficosNiRiesgos(t *testing.T) {
	snap := snapshot()
	snap.Table.LowStock = nil
	snap.Table.OverStock = nil

	out, err := pdf.NewMarotoPDFGenerator("").GenerateDashboardPDF(context.Background(), analytics.DashboardReport{Snapshot: snap})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateDashboardPDF_SinSnapshot(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator("").GenerateDashboardPDF(context.Background(), analytics.DashboardReport{})
	assert.Error(t, err)
}
