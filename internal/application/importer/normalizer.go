package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/spreadsheet"
)

// Las funciones Parse* nunca fallan: ante un valor inválido devuelven el valor
// por defecto documentado y ok=false para que el llamador decida si advertir.

var (
	hundred = decimal.NewFromInt(100)
	// maxPrice primer valor que no cabe en NUMERIC(12,2).
	maxPrice = decimal.New(1, 10)
)

// currencySuffixes se comparan en minúsculas y sin espacios.
var currencySuffixes = []string{"руб.", "руб", "р.", "₽", "rub"}

// dateLayouts dd.mm.yyyy; la segunda acepta día y mes de un dígito.
var dateLayouts = []string{"02.01.2006", "2.1.2006"}

// Text celda como texto recortado; fechas nativas como dd.mm.yyyy.
func Text(v any) string {
	return spreadsheet.CellText(v)
}

// TextOr Text con valor por defecto para celdas vacías.
func TextOr(v any, def string) string {
	if s := Text(v); s != "" {
		return s
	}
	return def
}

// ParsePrice "4990", "4990,50", "1 234,50" o "4990 ₽". Inválido, negativo o
// fuera de rango -> 0. Se redondea a kopeks.
func ParsePrice(v any) (decimal.Decimal, bool) {
	s := stripCurrency(stripSpaces(Text(v)))
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	d = d.Round(2)
	if d.IsNegative() || d.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDiscount "15%", "15", "7,5 %". Inválido -> 0; fuera de 0-100 se recorta.
func ParseDiscount(v any) (decimal.Decimal, bool) {
	s := strings.TrimSpace(Text(v))
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	switch {
	case d.IsNegative():
		return decimal.Zero, false
	case d.GreaterThan(hundred):
		return hundred, false
	}
	return d, true
}

// ParseStock entero base 10. Vacío, inválido o negativo -> 0.
func ParseStock(v any) (int, bool) {
	n, ok := parseInt(Text(v))
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseOrderNumber entero base 10; ok=false significa que la fila se omite.
func ParseOrderNumber(v any) (int, bool) {
	return parseInt(Text(v))
}

// ParseDate fecha nativa o texto dd.mm.yyyy, siempre a medianoche UTC.
func ParseDate(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return dateOnly(t), true
	}
	s := Text(v)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseInt acepta "6" y también "6.0" (números de Excel guardados como float).
// El resultado debe caber en INTEGER.
func parseInt(s string) (int, bool) {
	s = stripSpaces(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// stripCurrency quita un sufijo de moneda ("₽", "руб.", "р.").
func stripCurrency(s string) string {
	lower := strings.ToLower(s)
	for _, c := range currencySuffixes {
		if strings.HasSuffix(lower, c) {
			return s[:len(s)-len(c)]
		}
	}
	return s
}

// stripSpaces quita espacios usados como separador de miles, incluidos NBSP y NNBSP.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, s)
}
