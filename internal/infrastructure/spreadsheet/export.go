package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jhoicas/bi-inventario/internal/domain/entity"
)

// DerivedColumns cabecera del CSV exportado: columnas requeridas seguidas de las derivadas.
var DerivedColumns = append(append([]string{}, entity.RequiredColumns...),
	entity.ColumnInventoryValue,
	entity.ColumnLowStock,
	entity.ColumnOverStock,
	entity.ColumnRotation,
	entity.ColumnCoverageDays,
)

// DerivedRow celdas de una fila derivada en el orden de DerivedColumns.
// Los números se escriben con precisión completa; el redondeo es sólo de presentación.
func DerivedRow(r entity.DerivedRecord) []string {
	return []string{
		r.Product,
		r.Category,
		r.CurrentStock.String(),
		r.MinStock.String(),
		r.MaxStock.String(),
		r.UnitCost.String(),
		r.MonthlySales.String(),
		r.InventoryValue.String(),
		strconv.FormatBool(r.LowStock),
		strconv.FormatBool(r.OverStock),
		r.Rotation.String(),
		r.CoverageDays.String(),
	}
}

// WriteDerivedCSV exporta la tabla derivada como CSV con cabecera.
func WriteDerivedCSV(w io.Writer, rows []entity.DerivedRecord) error {
	if len(rows) == 0 {
		cw := csv.NewWriter(w)
		if err := cw.Write(DerivedColumns); err != nil {
			return fmt.Errorf("exportar csv: %w", err)
		}
		cw.Flush()
		return cw.Error()
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, DerivedColumns)
	for _, r := range rows {
		records = append(records, DerivedRow(r))
	}
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return fmt.Errorf("exportar csv: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("exportar csv: %w", err)
	}
	return nil
}
