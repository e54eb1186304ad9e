package inventory

import "github.com/shopspring/decimal"

// DefaultDivisionOffset suavizado histórico del tablero: se suma 1 al denominador
// de Rotación (Stock Actual) y de Cobertura (Venta Mensual).
const DefaultDivisionOffset = 1

// DivisionPolicy fija cómo se protegen las divisiones de Rotación y Cobertura.
// Offset se suma al denominador; si aun así el denominador es 0 el cociente es 0.
type DivisionPolicy struct {
	Offset decimal.Decimal
}

// DefaultPolicy devuelve la política con Offset = 1.
func DefaultPolicy() DivisionPolicy {
	return DivisionPolicy{Offset: decimal.NewFromInt(DefaultDivisionOffset)}
}

// Divide calcula num / (den + Offset).
func (p DivisionPolicy) Divide(num, den decimal.Decimal) decimal.Decimal {
	d := den.Add(p.Offset)
	if d.IsZero() {
		return decimal.Zero
	}
	return num.Div(d)
}
