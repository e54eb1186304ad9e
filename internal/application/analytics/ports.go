package analytics

import (
	"context"
	"io"

	"github.com/jhoicas/bi-inventario/internal/domain/entity"
)

// TableCodec lee el archivo de inventario y exporta la tabla derivada.
// Los errores de DecodeRecords envuelven los sentinelas de domain
// (ErrUnreadableFile, ErrMissingColumn, ErrNonNumericValue, ErrNegativeValue, ErrNoDataRows).
type TableCodec interface {
	DecodeRecords(filename string, r io.Reader) ([]entity.InventoryRecord, error)
	WriteCSV(w io.Writer, rows []entity.DerivedRecord) error
}

// ChartRenderer dibuja uno de los gráficos del dashboard.
type ChartRenderer interface {
	Render(kind entity.ChartKind, format entity.ImageFormat, table entity.DerivedTable, w io.Writer) error
}

// DashboardReport datos que necesita el generador del PDF.
type DashboardReport struct {
	Snapshot        *entity.Snapshot
	Charts          map[entity.ChartKind][]byte // PNG, en el orden de entity.ChartKinds
	Recommendations []string
}

// ReportGenerator genera el reporte PDF del dashboard.
type ReportGenerator interface {
	GenerateDashboardPDF(ctx context.Context, report DashboardReport) ([]byte, error)
}
