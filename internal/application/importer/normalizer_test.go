package importer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-tienda/internal/application/importer"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{"4990", "4990", true},
		{"4990,50", "4990.5", true},
		{"1 234,50", "1234.5", true},
		{"1\u00a0234,50", "1234.5", true},
		{"4990.5", "4990.5", true},
		{"", "0", false},
		{nil, "0", false},
		{"gratis", "0", false},
		{"-10", "0", false},
		{"4990 ₽", "4990", true},
		{"4 990,50 руб.", "4990.5", true},
		{"4990РУБ", "4990", true},
		{"4990 р.", "4990", true},
		{"9999999999.99", "9999999999.99", true},
		{"10000000000", "0", false},
		{"9999999999.999", "0", false},
		{"₽", "0", false},
	}
	for _, tc := range cases {
		got, ok := importer.ParsePrice(tc.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%v -> %s", tc.in, got)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
	}
}

func TestParseDiscount(t *testing.T) {
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{"15%", "15", true},
		{" 15 % ", "15", true},
		{"15", "15", true},
		{"7,5%", "7.5", true},
		{"", "0", false},
		{"sin", "0", false},
		{"150%", "100", false},
		{"-5", "0", false},
	}
	for _, tc := range cases {
		got, ok := importer.ParseDiscount(tc.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%v -> %s", tc.in, got)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
	}
}

func TestParseStockYNumeroDePedido(t *testing.T) {
	n, ok := importer.ParseStock("6")
	assert.Equal(t, 6, n)
	assert.True(t, ok)

	n, ok = importer.ParseStock("6.0")
	assert.Equal(t, 6, n)
	assert.True(t, ok)

	n, ok = importer.ParseStock("2147483647")
	assert.Equal(t, 2147483647, n)
	assert.True(t, ok)

	for _, in := range []any{"", nil, "seis", "6.5", "-3", "99999999999", "99999999999.0", "2147483648"} {
		n, ok = importer.ParseStock(in)
		assert.Equal(t, 0, n, "%v", in)
		assert.False(t, ok, "%v", in)
	}

	n, ok = importer.ParseOrderNumber("12")
	assert.Equal(t, 12, n)
	assert.True(t, ok)

	_, ok = importer.ParseOrderNumber("№12")
	assert.False(t, ok)
	_, ok = importer.ParseOrderNumber("")
	assert.False(t, ok)
	for _, in := range []any{"3000000000", "-3000000000", "3000000000.0"} {
		n, ok = importer.ParseOrderNumber(in)
		assert.Equal(t, 0, n, "%v", in)
		assert.False(t, ok, "no cabe en INTEGER: %v", in)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := importer.ParseDate("27.02.2024")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC), got)

	got, ok = importer.ParseDate("3.4.2024")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), got)

	native := time.Date(2024, 3, 1, 15, 30, 0, 0, time.FixedZone("MSK", 3*3600))
	got, ok = importer.ParseDate(native)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got, "se conserva sólo la fecha")

	for _, in := range []any{"31.02.2024", "2024-02-27", "", nil} {
		_, ok = importer.ParseDate(in)
		assert.False(t, ok, "%v", in)
	}
}

func TestTextOr(t *testing.T) {
	assert.Equal(t, "пара", importer.TextOr("  ", "пара"))
	assert.Equal(t, "шт.", importer.TextOr(" шт. ", "пара"))
	assert.Equal(t, "Без категории", importer.TextOr(nil, "Без категории"))
}
