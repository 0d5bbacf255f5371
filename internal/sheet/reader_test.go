package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/irisfleet/fleetrecon/pkg/extract"
)

// writeWorkbook builds a single-sheet .xlsx fixture in dir.
func writeWorkbook(t *testing.T, dir, name string, lines [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, line := range lines {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", ref, &line))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadRows(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "input.xlsx", [][]any{
		{"CodigoModelo", " AnoModelo ", "ValorPublico"},
		{"55", "2024", 120000.5},
		{"77", "2024"},
	})

	rows, err := ReadRows(path)

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "55", rows[0]["CodigoModelo"])
	// Headers are trimmed.
	assert.Equal(t, "2024", rows[0]["AnoModelo"])
	assert.Equal(t, "120000.5", rows[0]["ValorPublico"])

	// Cells the row does not fill are absent, not empty strings.
	_, ok := rows[1]["ValorPublico"]
	assert.False(t, ok)
}

func TestReadRowsSkipsEmptyLines(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "input.xlsx", [][]any{
		{"CodigoModelo"},
		{},
		{"55"},
	})

	rows, err := ReadRows(path)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, extract.Row{"CodigoModelo": "55"}, rows[0])
}

func TestReadRowsHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "input.xlsx", [][]any{
		{"CodigoModelo", "AnoModelo"},
	})

	rows, err := ReadRows(path)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "nope.xlsx"))

	assert.Error(t, err)
}
