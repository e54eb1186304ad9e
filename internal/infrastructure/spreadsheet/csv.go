package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV lee texto delimitado por comas. Si el contenido no es UTF-8 válido se
// reinterpreta como Windows-1252 (CSV exportado por Excel en Windows), de modo que
// cabeceras como "Categoría" sigan coincidiendo.
func readCSV(r io.Reader) (*rawSheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		data, err = charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decodificar windows-1252: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // filas irregulares se completan en newTable

	sheet := &rawSheet{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv malformado: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if sheet.header == nil {
			sheet.header = rec
			continue
		}
		if isBlank(rec) {
			continue
		}
		sheet.rows = append(sheet.rows, rec)
		sheet.lines = append(sheet.lines, line)
	}
	if sheet.header == nil {
		return nil, errors.New("archivo vacío")
	}
	return sheet, nil
}
