// Package analytics contiene los casos de uso del dashboard de inventario:
// carga del archivo, lectura de las vistas derivadas y exportaciones.
package analytics

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/bi-inventario/internal/application/dto"
	"github.com/jhoicas/bi-inventario/internal/domain"
	"github.com/jhoicas/bi-inventario/internal/domain/entity"
	"github.com/jhoicas/bi-inventario/internal/domain/inventory"
	"github.com/jhoicas/bi-inventario/internal/domain/repository"
	"github.com/jhoicas/bi-inventario/pkg/logger"
	"github.com/jhoicas/bi-inventario/pkg/money"
)

// ChartBasePath prefijo de las URLs de los gráficos en el DTO.
const ChartBasePath = "/api/dashboard/charts/"

// recommendations texto fijo del bloque de recomendaciones; no depende de los datos.
var recommendations = []string{
	"Reabastecer de inmediato los productos marcados en **rojo**.",
	"Revisar estrategia de compra para productos con sobrestock.",
	"Priorizar ventas de productos con rotación baja.",
	"Mejorar predicciones de demanda para mantener niveles óptimos de inventario.",
	"Revisar costos unitarios altos para reducir el valor total del inventario.",
}

// Recommendations devuelve una copia de las recomendaciones del dashboard.
func Recommendations() []string {
	return append([]string(nil), recommendations...)
}

// DashboardUseCase orquesta la carga del archivo de una sesión y las vistas derivadas.
//
// Flujo de Upload:
//  1. TableCodec.DecodeRecords  → registros tipados (o error clasificado)
//  2. Transformer.Derive        → DerivedTable (columnas derivadas, KPIs, agrupaciones)
//  3. DashboardSessionRepository.Save → el archivo nuevo reemplaza al anterior
type DashboardUseCase struct {
	codec       TableCodec
	transformer inventory.Transformer
	charts      ChartRenderer
	reports     ReportGenerator
	sessions    repository.DashboardSessionRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	codec TableCodec,
	transformer inventory.Transformer,
	charts ChartRenderer,
	reports ReportGenerator,
	sessions repository.DashboardSessionRepository,
	log *logger.Logger,
) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{
		codec:       codec,
		transformer: transformer,
		charts:      charts,
		reports:     reports,
		sessions:    sessions,
		log:         log,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj usado para LoadedAt (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Upload decodifica el archivo, calcula la tabla derivada y la guarda como archivo vigente
// de la sesión. Si el archivo no se puede procesar la sesión queda sin archivo.
func (uc *DashboardUseCase) Upload(ctx context.Context, sessionID, filename string, r io.Reader) (*dto.DashboardDTO, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sesión vacía", domain.ErrInvalidInput)
	}
	if r == nil {
		return nil, domain.ErrNoFile
	}
	filename = strings.TrimSpace(filename)

	records, err := uc.codec.DecodeRecords(filename, r)
	if err != nil {
		if delErr := uc.sessions.Delete(ctx, sessionID); delErr != nil {
			uc.log.Error().Err(delErr).Str("session_id", sessionID).Msg("dashboard: limpiar sesión")
		}
		uc.log.Warn().Err(err).Str("session_id", sessionID).Str("file", filename).Msg("dashboard: archivo rechazado")
		return nil, fmt.Errorf("dashboard: cargar %q: %w", filename, err)
	}

	snap := &entity.Snapshot{
		FileName: filename,
		LoadedAt: uc.now(),
		Table:    uc.transformer.Derive(records),
	}
	if err := uc.sessions.Save(ctx, sessionID, snap); err != nil {
		return nil, fmt.Errorf("dashboard: guardar sesión: %w", err)
	}

	s := snap.Table.Summary
	uc.log.Info().
		Str("session_id", sessionID).
		Str("file", filename).
		Int("rows", len(snap.Table.Rows)).
		Str("total_inventory_value", s.TotalInventoryValue.String()).
		Int("low_stock", s.LowStockCount).
		Int("over_stock", s.OverStockCount).
		Str("average_rotation", s.AverageRotation.String()).
		Msg("dashboard: archivo cargado")

	return toDashboardDTO(snap), nil
}

// GetDashboard devuelve el dashboard del archivo vigente o domain.ErrNoFile.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, sessionID string) (*dto.DashboardDTO, error) {
	snap, err := uc.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toDashboardDTO(snap), nil
}

// Snapshot devuelve el archivo vigente de la sesión o domain.ErrNoFile.
func (uc *DashboardUseCase) Snapshot(ctx context.Context, sessionID string) (*entity.Snapshot, error) {
	return uc.snapshot(ctx, sessionID)
}

// RenderChart escribe en w el gráfico name del archivo vigente.
// Un nombre desconocido devuelve domain.ErrInvalidInput.
func (uc *DashboardUseCase) RenderChart(ctx context.Context, sessionID, name string, format entity.ImageFormat, w io.Writer) error {
	kind := entity.ChartKind(name)
	if !kind.Valid() || (format != entity.ImageSVG && format != entity.ImagePNG) {
		return fmt.Errorf("%w: gráfico %q", domain.ErrInvalidInput, name+"."+string(format))
	}
	snap, err := uc.snapshot(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := uc.charts.Render(kind, format, snap.Table, w); err != nil {
		return fmt.Errorf("dashboard: gráfico %s: %w", kind, err)
	}
	return nil
}

// ExportCSV escribe la tabla derivada completa como CSV.
func (uc *DashboardUseCase) ExportCSV(ctx context.Context, sessionID string, w io.Writer) (filename string, err error) {
	snap, err := uc.snapshot(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if err := uc.codec.WriteCSV(w, snap.Table.Rows); err != nil {
		return "", fmt.Errorf("dashboard: exportar csv: %w", err)
	}
	return exportName(snap.FileName, ".csv"), nil
}

// ExportPDF genera el reporte PDF del archivo vigente.
// Los tres gráficos se dibujan en paralelo antes de componer el documento.
func (uc *DashboardUseCase) ExportPDF(ctx context.Context, sessionID string) ([]byte, string, error) {
	snap, err := uc.snapshot(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	type chartResult struct {
		kind entity.ChartKind
		png  []byte
		err  error
	}
	results := make(chan chartResult, len(entity.ChartKinds))
	for _, kind := range entity.ChartKinds {
		go func(kind entity.ChartKind) {
			var buf bytes.Buffer
			err := uc.charts.Render(kind, entity.ImagePNG, snap.Table, &buf)
			results <- chartResult{kind: kind, png: buf.Bytes(), err: err}
		}(kind)
	}

	images := make(map[entity.ChartKind][]byte, len(entity.ChartKinds))
	var errs []error
	for range entity.ChartKinds {
		res := <-results
		if res.err != nil {
			errs = append(errs, fmt.Errorf("gráfico %s: %w", res.kind, res.err))
			continue
		}
		images[res.kind] = res.png
	}
	if err := errors.Join(errs...); err != nil {
		return nil, "", fmt.Errorf("dashboard: exportar pdf: %w", err)
	}

	doc, err := uc.reports.GenerateDashboardPDF(ctx, DashboardReport{
		Snapshot:        snap,
		Charts:          images,
		Recommendations: Recommendations(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("dashboard: exportar pdf: %w", err)
	}
	return doc, exportName(snap.FileName, ".pdf"), nil
}

// Reset elimina el archivo vigente; la sesión vuelve al estado "sin archivo".
func (uc *DashboardUseCase) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sesión vacía", domain.ErrInvalidInput)
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("dashboard: borrar sesión: %w", err)
	}
	uc.log.Info().Str("session_id", sessionID).Msg("dashboard: archivo descartado")
	return nil
}

func (uc *DashboardUseCase) snapshot(ctx context.Context, sessionID string) (*entity.Snapshot, error) {
	if sessionID == "" {
		return nil, domain.ErrNoFile
	}
	snap, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: leer sesión: %w", err)
	}
	if snap == nil {
		return nil, domain.ErrNoFile
	}
	return snap, nil
}

// exportName "inventario.xlsx" → "inventario-dashboard.csv".
func exportName(filename, ext string) string {
	base := filename
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if base == "" {
		base = "inventario"
	}
	return base + "-dashboard" + ext
}

// ── Mapeo a DTO ───────────────────────────────────────────────────────────────

func toDashboardDTO(snap *entity.Snapshot) *dto.DashboardDTO {
	t := snap.Table
	out := &dto.DashboardDTO{
		FileName: snap.FileName,
		LoadedAt: snap.LoadedAt,
		RowCount: len(t.Rows),
		KPIs: dto.KPIsDTO{
			TotalInventoryValue:      t.Summary.TotalInventoryValue,
			TotalInventoryValueLabel: money.Currency(t.Summary.TotalInventoryValue),
			LowStockCount:            t.Summary.LowStockCount,
			OverStockCount:           t.Summary.OverStockCount,
			AverageRotation:          t.Summary.AverageRotation,
			AverageRotationLabel:     money.Fixed2(t.Summary.AverageRotation),
		},
		ValueByCategory: make([]dto.CategoryValueDTO, 0, len(t.ValueByCategory)),
		StockByProduct:  make([]dto.ProductStockDTO, 0, len(t.ByStockDesc)),
		Coverage:        make([]dto.CoveragePointDTO, 0, len(t.Rows)),
		LowStock:        toRows(t.LowStock),
		OverStock:       toRows(t.OverStock),
		Rows:            toRows(t.Rows),
		Recommendations: Recommendations(),
		Charts:          make(map[string]string, len(entity.ChartKinds)),
	}
	for _, cv := range t.ValueByCategory {
		out.ValueByCategory = append(out.ValueByCategory, dto.CategoryValueDTO{
			Category: cv.Category, InventoryValue: cv.InventoryValue,
		})
	}
	for _, r := range t.ByStockDesc {
		out.StockByProduct = append(out.StockByProduct, dto.ProductStockDTO{
			Product: r.Product, CurrentStock: r.CurrentStock,
		})
	}
	for _, r := range t.Rows {
		out.Coverage = append(out.Coverage, dto.CoveragePointDTO{
			Product: r.Product, Category: r.Category,
			CoverageDays: r.CoverageDays, CurrentStock: r.CurrentStock,
		})
	}
	for _, kind := range entity.ChartKinds {
		out.Charts[string(kind)] = ChartBasePath + string(kind) + "." + string(entity.ImageSVG)
	}
	return out
}

func toRows(rows []entity.DerivedRecord) []dto.DerivedRowDTO {
	out := make([]dto.DerivedRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DerivedRowDTO{
			Row:            r.Row,
			Product:        r.Product,
			Category:       r.Category,
			CurrentStock:   r.CurrentStock,
			MinStock:       r.MinStock,
			MaxStock:       r.MaxStock,
			UnitCost:       r.UnitCost,
			MonthlySales:   r.MonthlySales,
			InventoryValue: r.InventoryValue,
			LowStock:       r.LowStock,
			OverStock:      r.OverStock,
			Rotation:       r.Rotation,
			CoverageDays:   r.CoverageDays,
		})
	}
	return out
}
