package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bi-inventario/internal/domain"
	"github.com/jhoicas/bi-inventario/internal/domain/entity"
)

// Table tabla decodificada: todas las columnas se conservan como texto y la
// conversión numérica ocurre en InventoryRecords, donde se clasifican los errores.
type Table struct {
	columns []string            // cabecera tal cual viene en el archivo
	lines   []int               // línea de la hoja de cada fila de df
	df      dataframe.DataFrame // sin filas si el archivo sólo trae cabecera
}

// newTable construye el DataFrame de texto. Las filas más cortas que la cabecera
// se completan con celdas vacías y las más largas se recortan.
func newTable(sheet *rawSheet) (*Table, error) {
	t := &Table{columns: sheet.header, lines: sheet.lines}
	if len(sheet.rows) == 0 {
		return t, nil
	}

	width := len(sheet.header)
	records := make([][]string, 0, len(sheet.rows)+1)
	records = append(records, sheet.header)
	for _, row := range sheet.rows {
		fixed := make([]string, width)
		copy(fixed, row)
		records = append(records, fixed)
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, df.Err)
	}
	t.df = df
	return t, nil
}

// Columns devuelve la cabecera original.
func (t *Table) Columns() []string { return t.columns }

// Len número de filas de datos (sin cabecera ni filas en blanco).
func (t *Table) Len() int { return len(t.lines) }

// MissingColumns lista, en el orden de entity.RequiredColumns, las columnas que no están en la cabecera.
// Los nombres se comparan exactos salvo los espacios en los extremos.
func (t *Table) MissingColumns() []string {
	present := make(map[string]bool, len(t.columns))
	for _, c := range t.columns {
		present[strings.TrimSpace(c)] = true
	}
	var missing []string
	for _, c := range entity.RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// column devuelve las celdas de la primera columna cuyo nombre original es name.
// Se busca por posición porque el DataFrame renombra cabeceras duplicadas o vacías.
func (t *Table) column(name string) []string {
	for i, c := range t.columns {
		if strings.TrimSpace(c) == name {
			return t.df.Col(t.df.Names()[i]).Records()
		}
	}
	return nil
}

// InventoryRecords valida el esquema y convierte cada fila en un entity.InventoryRecord.
//
// Retorna:
//   - *domain.MissingColumnError si falta alguna columna requerida.
//   - domain.ErrNoDataRows si la cabecera es válida pero no hay filas.
//   - *domain.CellError (ErrNonNumericValue | ErrNegativeValue) en la primera celda inválida.
func (t *Table) InventoryRecords() ([]entity.InventoryRecord, error) {
	if missing := t.MissingColumns(); len(missing) > 0 {
		return nil, &domain.MissingColumnError{Columns: missing}
	}
	if t.Len() == 0 {
		return nil, domain.ErrNoDataRows
	}

	products := t.column(entity.ColumnProduct)
	categories := t.column(entity.ColumnCategory)
	numeric := make(map[string][]string, len(entity.NumericColumns))
	for _, name := range entity.NumericColumns {
		numeric[name] = t.column(name)
	}

	out := make([]entity.InventoryRecord, t.Len())
	for i := range out {
		line := t.lines[i]
		values := make(map[string]decimal.Decimal, len(entity.NumericColumns))
		for _, name := range entity.NumericColumns {
			v, err := parseQuantity(numeric[name][i])
			if err != nil {
				return nil, &domain.CellError{Row: line, Column: name, Value: numeric[name][i], Err: err}
			}
			values[name] = v
		}
		out[i] = entity.InventoryRecord{
			Row:          line,
			Product:      strings.TrimSpace(products[i]),
			Category:     strings.TrimSpace(categories[i]),
			CurrentStock: values[entity.ColumnCurrentStock],
			MinStock:     values[entity.ColumnMinStock],
			MaxStock:     values[entity.ColumnMaxStock],
			UnitCost:     values[entity.ColumnUnitCost],
			MonthlySales: values[entity.ColumnMonthlySales],
		}
	}
	return out, nil
}

// parseQuantity acepta enteros, decimales con punto y notación científica.
// Celdas vacías cuentan como no numéricas.
func parseQuantity(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, domain.ErrNonNumericValue
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrNonNumericValue
	}
	if d.IsNegative() {
		return decimal.Zero, domain.ErrNegativeValue
	}
	return d, nil
}
