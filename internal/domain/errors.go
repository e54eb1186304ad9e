package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrNoFile          = errors.New("no se ha cargado ningún archivo")
	ErrUnreadableFile  = errors.New("archivo ilegible")
	ErrMissingColumn   = errors.New("columna requerida ausente")
	ErrNonNumericValue = errors.New("valor no numérico")
	ErrNegativeValue   = errors.New("valor negativo")
	ErrNoDataRows      = errors.New("el archivo no contiene filas de datos")
)

// MissingColumnError lista todas las columnas requeridas que no aparecen en la cabecera.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumn, strings.Join(e.Columns, ", "))
}

// Unwrap permite errors.Is(err, ErrMissingColumn).
func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// CellError identifica la celda que impidió convertir una fila.
// Row es el número de línea de la hoja (la cabecera es la línea 1).
type CellError struct {
	Row    int
	Column string
	Value  string
	Err    error // ErrNonNumericValue | ErrNegativeValue
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s en fila %d, columna %q: %q", e.Err, e.Row, e.Column, e.Value)
}

func (e *CellError) Unwrap() error { return e.Err }
