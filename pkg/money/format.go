// Package money da formato de presentación a importes y métricas.
// El redondeo a 2 decimales ocurre sólo aquí; los valores derivados conservan toda su precisión.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formatea con separador de miles y 2 decimales: 1234.5 → "$1,234.50".
func Currency(d decimal.Decimal) string {
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + Number(d)
}

// Number formatea con separador de miles y 2 decimales: 1234.567 → "1,234.57".
// Trabaja sobre el texto de StringFixed, sin pasar por float64.
func Number(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + group(intPart) + "." + frac
}

// Fixed2 formatea con 2 decimales sin separador de miles: 2.5 → "2.50".
func Fixed2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// group inserta una coma cada tres dígitos desde la derecha.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
