package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alimgiray/gfolio/internal/models"
)

func TestExportWorkbook(t *testing.T) {
	snapshot := sampleSnapshot()

	data, err := NewExportService().Export(snapshot)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetProfile, SheetRepositories, SheetLanguages}, f.GetSheetList())

	cell := func(sheet, axis string) string {
		value, err := f.GetCellValue(sheet, axis)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Login", cell(SheetProfile, "A2"))
	assert.Equal(t, "octo", cell(SheetProfile, "B2"))
	assert.Equal(t, "42", cell(SheetProfile, "B9"))
	assert.Equal(t, "4", cell(SheetProfile, "B11"))

	rows, err := f.GetRows(SheetRepositories)
	require.NoError(t, err)
	require.Len(t, rows, 1+len(snapshot.Repos))
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "alpha", rows[1][0])
	assert.Equal(t, "2024-01-01", cell(SheetRepositories, "F2"))
	assert.Equal(t, "beta", rows[2][0])
	assert.Equal(t, "cli", cell(SheetRepositories, "J3"))

	assert.Equal(t, "Language", cell(SheetLanguages, "A1"))
	assert.Equal(t, "Go", cell(SheetLanguages, "A2"))
	assert.Equal(t, "1", cell(SheetLanguages, "B2"))
	assert.Equal(t, "Rust", cell(SheetLanguages, "A3"))
}

func TestExportEmptySnapshot(t *testing.T) {
	data, err := NewExportService().Export(&models.Snapshot{Profile: &models.Profile{Login: "ghost"}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetRepositories)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
