package analytics_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bi-inventario/internal/application/analytics"
	"github.com/jhoicas/bi-inventario/internal/domain"
	"github.com/jhoicas/bi-inventario/internal/domain/entity"
	"github.com/jhoicas/bi-inventario/internal/domain/inventory"
	"github.com/jhoicas/bi-inventario/internal/infrastructure/charts"
	"github.com/jhoicas/bi-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/bi-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/bi-inventario/internal/infrastructure/spreadsheet"
)

const inventoryCSV = "Producto,Categoría,Stock Actual,Stock Mínimo,Stock Máximo,Costo Unitario,Venta Mensual\n" +
	"A,X,5,10,100,2,15\n" +
	"B,Y,120,20,100,1,40\n" +
	"C,X,0,5,50,3,0\n" +
	"D,Y,50,10,100,5,20\n"

func newUseCase(t *testing.T) *analytics.DashboardUseCase {
	t.Helper()
	return analytics.NewDashboardUseCase(
		spreadsheet.NewDecoder(),
		inventory.NewTransformer(inventory.DefaultPolicy()),
		charts.NewRenderer(),
		pdf.NewMarotoPDFGenerator("bi-inventario"),
		memory.NewSessionRepository(time.Hour),
		nil,
	).WithClock(func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) })
}

func upload(t *testing.T, uc *analytics.DashboardUseCase, session string) {
	t.Helper()
	_, err := uc.Upload(context.Background(), session, "inventario.csv", strings.NewReader(inventoryCSV))
	require.NoError(t, err)
}

func TestUpload_DevuelveDashboard(t *testing.T) {
	uc := newUseCase(t)

	got, err := uc.Upload(context.Background(), "s1", " inventario.csv ", strings.NewReader(inventoryCSV))
	require.NoError(t, err)

	assert.Equal(t, "inventario.csv", got.FileName)
	assert.Equal(t, 4, got.RowCount)
	assert.Equal(t, "$380.00", got.KPIs.TotalInventoryValueLabel)
	assert.Equal(t, 2, got.KPIs.LowStockCount)
	assert.Equal(t, 1, got.KPIs.OverStockCount)

	require.Len(t, got.ValueByCategory, 2)
	assert.Equal(t, "X", got.ValueByCategory[0].Category)
	assert.Equal(t, "10", got.ValueByCategory[0].InventoryValue.String())
	assert.Equal(t, "370", got.ValueByCategory[1].InventoryValue.String())

	require.Len(t, got.StockByProduct, 4)
	assert.Equal(t, "B", got.StockByProduct[0].Product)
	assert.Equal(t, "C", got.StockByProduct[3].Product)

	require.Len(t, got.LowStock, 2)
	require.Len(t, got.OverStock, 1)
	low := got.LowStock[0]
	assert.Equal(t, "A", low.Product)
	assert.True(t, low.LowStock)
	assert.Equal(t, "10", low.InventoryValue.String())
	assert.Equal(t, "2.5", low.Rotation.String())
	assert.Equal(t, "9.375", low.CoverageDays.String())
	assert.Equal(t, "B", got.OverStock[0].Product)
	assert.True(t, got.OverStock[0].OverStock)
	assert.Equal(t, "120", got.OverStock[0].InventoryValue.String())
	assert.Len(t, got.Coverage, 4)
	assert.Equal(t, analytics.Recommendations(), got.Recommendations)
	assert.Equal(t, "/api/dashboard/charts/cobertura.svg", got.Charts["cobertura"])
}

func TestGetDashboard_SinArchivo(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.GetDashboard(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNoFile)

	_, err = uc.GetDashboard(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoFile)
}

func TestGetDashboard_SesionesAisladas(t *testing.T) {
	uc := newUseCase(t)
	upload(t, uc, "s1")

	got, err := uc.GetDashboard(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.RowCount)

	_, err = uc.GetDashboard(context.Background(), "s2")
	assert.ErrorIs(t, err, domain.ErrNoFile)
}

func TestUpload_NuevaCargaReemplaza(t *testing.T) {
	uc := newUseCase(t)
	upload(t, uc, "s1")

	one := "Producto,Categoría,Stock Actual,Stock Mínimo,Stock Máximo,Costo Unitario,Venta Mensual\nZ,W,1,0,10,1,1\n"
	_, err := uc.Upload(context.Background(), "s1", "otro.csv", strings.NewReader(one))
	require.NoError(t, err)

	got, err := uc.GetDashboard(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "otro.csv", got.FileName)
	assert.Equal(t, 1, got.RowCount)
}

func TestUpload_ErrorClasificadoLimpiaLaSesion(t *testing.T) {
	uc := newUseCase(t)
	upload(t, uc, "s1")

	_, err := uc.Upload(context.Background(), "s1", "malo.csv", strings.NewReader("Producto,Stock Actual\nA,1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	var mce *domain.MissingColumnError
	assert.True(t, errors.As(err, &mce))

	_, err = uc.GetDashboard(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNoFile)
}

func TestUpload_Validaciones(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Upload(context.Background(), "", "a.csv", strings.NewReader(inventoryCSV))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upload(context.Background(), "s1", "a.csv", nil)
	assert.ErrorIs(t, err, domain.ErrNoFile)
}

func TestRenderChart(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	var buf bytes.Buffer
	assert.ErrorIs(t, uc.RenderChart(ctx, "s1", "cobertura", entity.ImageSVG, &buf), domain.ErrNoFile)

	upload(t, uc, "s1")
	for _, kind := range entity.ChartKinds {
		buf.Reset()
		require.NoError(t, uc.RenderChart(ctx, "s1", string(kind), entity.ImageSVG, &buf))
		assert.Contains(t, buf.String(), "<svg")
	}

	assert.ErrorIs(t, uc.RenderChart(ctx, "s1", "torta", entity.ImageSVG, &buf), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.RenderChart(ctx, "s1", "cobertura", entity.ImageFormat("gif"), &buf), domain.ErrInvalidInput)
}

func TestExportCSV(t *testing.T) {
	uc := newUseCase(t)
	upload(t, uc, "s1")

	var buf bytes.Buffer
	name, err := uc.ExportCSV(context.Background(), "s1", &buf)
	require.NoError(t, err)
	assert.Equal(t, "inventario-dashboard.csv", name)

	out, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, out, 5)
	assert.Equal(t, spreadsheet.DerivedColumns, out[0])
	assert.Equal(t, "A", out[1][0])
}

func TestExportPDF(t *testing.T) {
	uc := newUseCase(t)
	_, _, err := uc.ExportPDF(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNoFile)

	upload(t, uc, "s1")
	doc, name, err := uc.ExportPDF(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "inventario-dashboard.pdf", name)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestUnSoloProducto_GraficosYPDF(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()
	one := "Producto,Categoría,Stock Actual,Stock Mínimo,Stock Máximo,Costo Unitario,Venta Mensual\nCafé,Bebidas,5,10,100,2,15\n"
	_, err := uc.Upload(ctx, "s1", "uno.csv", strings.NewReader(one))
	require.NoError(t, err)

	var buf bytes.Buffer
	for _, format := range []entity.ImageFormat{entity.ImageSVG, entity.ImagePNG} {
		buf.Reset()
		require.NoError(t, uc.RenderChart(ctx, "s1", string(entity.ChartCoverage), format, &buf), format)
		assert.NotZero(t, buf.Len())
	}

	doc, name, err := uc.ExportPDF(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "uno-dashboard.pdf", name)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestReset(t *testing.T) {
	uc := newUseCase(t)
	upload(t, uc, "s1")

	require.NoError(t, uc.Reset(context.Background(), "s1"))
	_, err := uc.GetDashboard(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNoFile)

	assert.ErrorIs(t, uc.Reset(context.Background(), ""), domain.ErrInvalidInput)
}

func TestRecommendations_CopiaInmutable(t *testing.T) {
	r := analytics.Recommendations()
	require.Len(t, r, 5)
	r[0] = "modificada"
	assert.NotEqual(t, "modificada", analytics.Recommendations()[0])
}
