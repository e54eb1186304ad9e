package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// readXLSX lee la primera hoja del libro con los valores crudos de las celdas
// (sin el formato de número aplicado, p. ej. "1234.5" y no "1.234,50").
func readXLSX(r io.Reader) (*rawSheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("el libro no tiene hojas")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}

	// La cabecera es la primera fila no vacía, como en pandas.read_excel.
	start := 0
	for start < len(rows) && isBlank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, errors.New("hoja vacía")
	}

	sheet := &rawSheet{header: rows[start]}
	for i := start + 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		sheet.rows = append(sheet.rows, rows[i])
		sheet.lines = append(sheet.lines, i+1)
	}
	return sheet, nil
}
