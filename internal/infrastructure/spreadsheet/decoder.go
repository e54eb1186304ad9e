// Package spreadsheet decodifica el archivo de inventario (.xlsx o texto delimitado por comas)
// en una tabla de columnas de texto y la convierte en registros tipados.
//
// La clasificación de fallos es explícita: archivo ilegible, columna requerida ausente,
// valor no numérico o negativo y archivo sin filas de datos.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/bi-inventario/internal/domain"
	"github.com/jhoicas/bi-inventario/internal/domain/entity"
)

// Format formato de archivo elegido por el sufijo del nombre.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat elige el decodificador: ".xlsx" (sin distinguir mayúsculas) es hoja de cálculo,
// cualquier otro nombre se trata como texto delimitado por comas.
func DetectFormat(filename string) Format {
	if strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// rawSheet filas crudas leídas del archivo antes de construir la tabla.
// lines[i] es la línea de la hoja de rows[i]; la cabecera es la línea 1.
type rawSheet struct {
	header []string
	rows   [][]string
	lines  []int
}

// Decoder implementa analytics.TableCodec.
type Decoder struct{}

// NewDecoder construye el decodificador.
func NewDecoder() *Decoder { return &Decoder{} }

// Decode lee el archivo completo y devuelve la tabla de texto.
// Los errores de lectura se envuelven en domain.ErrUnreadableFile.
func (d *Decoder) Decode(filename string, r io.Reader) (*Table, error) {
	var (
		sheet *rawSheet
		err   error
	)
	switch DetectFormat(filename) {
	case FormatXLSX:
		sheet, err = readXLSX(r)
	default:
		sheet, err = readCSV(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	return newTable(sheet)
}

// DecodeRecords decodifica y valida el archivo en un solo paso.
func (d *Decoder) DecodeRecords(filename string, r io.Reader) ([]entity.InventoryRecord, error) {
	table, err := d.Decode(filename, r)
	if err != nil {
		return nil, err
	}
	return table.InventoryRecords()
}

// WriteCSV exporta la tabla derivada; ver WriteDerivedCSV.
func (d *Decoder) WriteCSV(w io.Writer, rows []entity.DerivedRecord) error {
	return WriteDerivedCSV(w, rows)
}

// isBlank indica si todas las celdas de la fila están vacías.
func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
