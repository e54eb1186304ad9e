package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bi-inventario/pkg/money"
)

func TestCurrency(t *testing.T) {
	cases := map[string]string{
		"0":           "$0.00",
		"10":          "$10.00",
		"1234.5":      "$1,234.50",
		"1234567.891": "$1,234,567.89",
		"-42.125":     "-$42.13",
	}
	for in, want := range cases {
		assert.Equal(t, want, money.Currency(decimal.RequireFromString(in)), "entrada %s", in)
	}
}

func TestNumber_SinPerdidaDePrecision(t *testing.T) {
	cases := map[string]string{
		"999":                      "999.00",
		"1000":                     "1,000.00",
		"123456":                   "123,456.00",
		"9007199254740993.01":      "9,007,199,254,740,993.01",
		"12345678901234567890.125": "12,345,678,901,234,567,890.13",
		"-1234.5":                  "-1,234.50",
	}
	for in, want := range cases {
		assert.Equal(t, want, money.Number(decimal.RequireFromString(in)), "entrada %s", in)
	}
}

func TestCurrency_ValorGrande(t *testing.T) {
	assert.Equal(t, "$9,007,199,254,740,993.00", money.Currency(decimal.RequireFromString("9007199254740993")))
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "2.50", money.Fixed2(decimal.RequireFromString("2.5")))
	assert.Equal(t, "0.33", money.Fixed2(decimal.NewFromInt(1).Div(decimal.NewFromInt(3))))
	assert.Equal(t, "1234.00", money.Fixed2(decimal.NewFromInt(1234)))
}
