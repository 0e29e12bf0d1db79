package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV acepta UTF-8 (con o sin BOM) o Windows-1251, separado por ';' o ','.
func readCSV(path string) (string, [][]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("leer %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		data, _, err = transform.Bytes(charmap.Windows1251.NewDecoder(), data)
		if err != nil {
			return "", nil, fmt.Errorf("decodificar %s: %w", path, err)
		}
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = detectDelimiter(data)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var out [][]any
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("csv %s: %w", path, err)
		}
		cells := make([]any, len(rec))
		for i, v := range rec {
			cells[i] = v
		}
		out = append(out, cells)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return name, out, nil
}

func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
