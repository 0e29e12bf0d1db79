package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

func readXLSX(path string) (string, [][]any, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return "", nil, fmt.Errorf("%s: libro sin hojas", path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", nil, fmt.Errorf("leer filas de %s: %w", sheet, err)
	}

	dates := dateStyles{f: f, known: map[int]bool{}}
	out := make([][]any, len(rows))
	for r, row := range rows {
		cells := make([]any, len(row))
		for c, v := range row {
			cells[c] = v
			if t, ok := dates.asDate(sheet, c+1, r+1, v); ok {
				cells[c] = t
			}
		}
		out[r] = cells
	}
	return sheet, out, nil
}

// dateStyles detecta celdas numéricas con formato de fecha y cachea la decisión por estilo.
type dateStyles struct {
	f     *excelize.File
	known map[int]bool
}

func (d dateStyles) asDate(sheet string, col, row int, raw string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, false
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return time.Time{}, false
	}
	idx, err := d.f.GetCellStyle(sheet, cell)
	if err != nil || idx == 0 {
		return time.Time{}, false
	}
	isDate, ok := d.known[idx]
	if !ok {
		style, err := d.f.GetStyle(idx)
		isDate = err == nil && style != nil && isDateFormat(style.NumFmt, style.CustomNumFmt)
		d.known[idx] = isDate
	}
	if !isDate {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// isDateFormat formatos integrados 14-22 y 45-47, o personalizados con día o año.
func isDateFormat(numFmt int, custom *string) bool {
	if (numFmt >= 14 && numFmt <= 22) || (numFmt >= 45 && numFmt <= 47) {
		return true
	}
	if custom == nil {
		return false
	}
	code := strings.ToLower(stripLiterals(*custom))
	return strings.ContainsAny(code, "dy")
}

// stripLiterals elimina texto entre comillas y secciones [..] (color, locale).
func stripLiterals(code string) string {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
