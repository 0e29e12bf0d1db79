package spreadsheet_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/spreadsheet"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestOpen_XLSXConCabecera(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Заказ_import.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{" Номер заказа ", "Дата заказа", "Дата доставки"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC), "31.02.2024"}))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B2", style))
	require.NoError(t, f.SaveAs(path))

	s, err := spreadsheet.Open(path, spreadsheet.Options{})
	require.NoError(t, err)
	require.Len(t, s.Rows, 1)

	row := s.Rows[0]
	assert.Equal(t, 2, row.Number)
	assert.Equal(t, "1", row.Text("Номер заказа"), "la cabecera se recorta")
	got, ok := row.Get("Дата заказа").(time.Time)
	require.True(t, ok, "celda con formato fecha llega como time.Time")
	assert.Equal(t, "27.02.2024", got.Format("02.01.2006"))
	assert.Equal(t, "31.02.2024", row.Get("Дата доставки"))
	assert.Nil(t, row.Get("Статус заказа"))
}

func TestOpen_XLSXSinCabecera(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Пункты выдачи_import.xlsx")
	writeWorkbook(t, path, [][]any{
		{"420151, г. Лесной, ул. Вишневая, 32"},
		{""},
		{"125061, г. Лесной, ул. Подгорная, 8"},
	})

	s, err := spreadsheet.Open(path, spreadsheet.Options{NoHeader: true})
	require.NoError(t, err)
	require.Len(t, s.Rows, 3)
	assert.Equal(t, "420151, г. Лесной, ул. Вишневая, 32", spreadsheet.CellText(s.Rows[0].At(0)))
	assert.Equal(t, "", spreadsheet.CellText(s.Rows[1].At(0)))
	assert.Nil(t, s.Rows[0].At(5))
}

func TestOpen_CSVWindows1251(t *testing.T) {
	dir := t.TempDir()
	text := "Логин;ФИО;Роль сотрудника\nivanov;Иванов Иван;Менеджер\n"
	enc, err := charmap.Windows1251.NewEncoder().String(text)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user_import.csv"), []byte(enc), 0o644))

	path, err := spreadsheet.Locate(dir, "user_import")
	require.NoError(t, err)
	s, err := spreadsheet.Open(path, spreadsheet.Options{})
	require.NoError(t, err)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, "Иванов Иван", s.Rows[0].Text("ФИО"))
	assert.Equal(t, "Менеджер", s.Rows[0].Text("Роль сотрудника"))
}

func TestOpen_CSVUTF8ConBOMYComas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Tovar.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffАртикул,Цена\nA112T4,\"4990,50\"\n"), 0o644))

	s, err := spreadsheet.Open(path, spreadsheet.Options{})
	require.NoError(t, err)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, "A112T4", s.Rows[0].Text("Артикул"))
	assert.Equal(t, "4990,50", s.Rows[0].Text("Цена"))
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	_, err := spreadsheet.Locate(dir, "Tovar")
	assert.ErrorIs(t, err, domain.ErrSheetNotFound)

	writeWorkbook(t, filepath.Join(dir, "Tovar.xlsx"), [][]any{{"Артикул"}})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Tovar.csv"), []byte("Артикул\n"), 0o644))
	path, err := spreadsheet.Locate(dir, "Tovar")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Tovar.xlsx"), path, "xlsx tiene prioridad")
}

func TestOpen_FormatoNoSoportado(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Tovar.xls")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, err := spreadsheet.Open(path, spreadsheet.Options{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestOpen_HojaVacia(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "user_import.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("\n\n"), 0o644))
	_, err := spreadsheet.Open(csvPath, spreadsheet.Options{})
	assert.ErrorIs(t, err, domain.ErrEmptySheet)

	xlsxPath := filepath.Join(dir, "Tovar.xlsx")
	writeWorkbook(t, xlsxPath, nil)
	_, err = spreadsheet.Open(xlsxPath, spreadsheet.Options{})
	assert.ErrorIs(t, err, domain.ErrEmptySheet)
}
