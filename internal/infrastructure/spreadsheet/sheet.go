package spreadsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/catalogo-tienda/internal/domain"
)

// Extensiones aceptadas, en orden de preferencia.
var extensions = []string{".xlsx", ".csv"}

// Options controla cómo se interpreta la primera fila.
type Options struct {
	// NoHeader: todas las filas son datos y las celdas se leen por posición.
	NoHeader bool
}

// Sheet hoja leída completa: cabecera normalizada y filas de datos.
type Sheet struct {
	Name   string
	File   string
	Header []string
	Rows   []Row
}

// Row fila de datos. Las celdas son string o time.Time (fechas nativas de Excel).
type Row struct {
	Number int // número de fila en la hoja, 1-based
	Cells  []any
	index  map[string]int
}

// Get devuelve la celda bajo la cabecera dada, o nil si la columna no existe o la fila es corta.
func (r Row) Get(column string) any {
	i, ok := r.index[column]
	if !ok {
		return nil
	}
	return r.At(i)
}

// At devuelve la celda por posición, o nil.
func (r Row) At(i int) any {
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// Text devuelve la celda como texto recortado.
func (r Row) Text(column string) string {
	return CellText(r.Get(column))
}

// CellText convierte una celda a texto recortado; las fechas salen como dd.mm.yyyy.
func CellText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(c)
	case time.Time:
		return c.Format("02.01.2006")
	case fmt.Stringer:
		return strings.TrimSpace(c.String())
	default:
		return strings.TrimSpace(fmt.Sprint(c))
	}
}

// Locate busca <dir>/<base>.xlsx y luego <base>.csv. ErrSheetNotFound si no hay ninguno.
// base es el nombre del libro sin extensión.
func Locate(dir, base string) (string, error) {
	for _, ext := range extensions {
		p := filepath.Join(dir, base+ext)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("%s: %w", filepath.Join(dir, base), domain.ErrSheetNotFound)
}

// Open lee la hoja activa (xlsx) o el archivo completo (csv).
// Un archivo sin ninguna fila devuelve domain.ErrEmptySheet.
func Open(path string, opts Options) (*Sheet, error) {
	var (
		name string
		raw  [][]any
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		name, raw, err = readXLSX(path)
	case ".csv":
		name, raw, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptySheet)
	}
	return build(name, path, raw, opts), nil
}

func build(name, path string, raw [][]any, opts Options) *Sheet {
	s := &Sheet{Name: name, File: path}
	first := 0
	index := map[string]int{}
	if !opts.NoHeader && len(raw) > 0 {
		s.Header = make([]string, len(raw[0]))
		for i, h := range raw[0] {
			s.Header[i] = NormalizeHeader(CellText(h))
			if _, dup := index[s.Header[i]]; !dup && s.Header[i] != "" {
				index[s.Header[i]] = i
			}
		}
		first = 1
	}
	for i := first; i < len(raw); i++ {
		s.Rows = append(s.Rows, Row{Number: i + 1, Cells: raw[i], index: index})
	}
	return s
}

// NormalizeHeader quita BOM y espacios y normaliza a NFC; la búsqueda de columnas es por texto exacto.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return norm.NFC.String(strings.TrimSpace(h))
}
