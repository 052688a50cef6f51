package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/c360studio/idsgen/model"
	"github.com/c360studio/idsgen/table"
)

func settingsFile(t *testing.T, pairs [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	_, err := f.NewSheet(SettingsSheet)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(SettingsSheet, "A1", &[]any{"Setting", "Value"}))
	for i, pair := range pairs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(SettingsSheet, cell, &pair))
	}
	return f
}

func TestReadSettings(t *testing.T) {
	t.Run("reads all keys", func(t *testing.T) {
		f := settingsFile(t, [][]any{
			{"Sheet name", "Requirements"},
			{"IFC version", "IFC4, IFC2X3"},
			{"File separators", "Phase, Role"},
			{"Skipped rows", "2"},
			{"Entity-based applicability", "Yes"},
			{"Title", "Building permit"},
			{"Author", "office@example.com"},
		})

		s, err := ReadSettings(f)
		require.NoError(t, err)
		assert.Equal(t, "Requirements", s.SheetName)
		assert.Equal(t, "IFC4|IFC2X3", s.IfcVersions)
		assert.Equal(t, []string{"Phase", "Role"}, s.SeparateBy)
		assert.Equal(t, 2, s.SkippedRows)
		assert.True(t, s.EntityBased)
		assert.Equal(t, "Building permit", s.Info.Title)
		assert.Equal(t, "office@example.com", s.Info.Author)
	})

	t.Run("missing required keys fail", func(t *testing.T) {
		f := settingsFile(t, [][]any{{"Sheet name", "Requirements"}})
		_, err := ReadSettings(f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "IFC version")
	})

	t.Run("optional keys default", func(t *testing.T) {
		f := settingsFile(t, [][]any{
			{"Sheet name", "Requirements"},
			{"IFC version", "IFC4"},
		})
		s, err := ReadSettings(f)
		require.NoError(t, err)
		assert.Empty(t, s.SeparateBy)
		assert.Zero(t, s.SkippedRows)
		assert.False(t, s.EntityBased)
	})
}

func TestReadRequirements(t *testing.T) {
	newWorkbook := func(t *testing.T, rows [][]any) *excelize.File {
		t.Helper()
		f := excelize.NewFile()
		_, err := f.NewSheet("Requirements")
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow("Requirements", cell, &row))
		}
		return f
	}

	t.Run("reads rows and fills defaults", func(t *testing.T) {
		f := newWorkbook(t, [][]any{
			{"A.Entity", "R.Property", "R.PropertySet", "R.Cardinality", "Phase"},
			{"IfcWall", "IsExternal", "Pset_WallCommon", "", "Design"},
			{"IfcDoor", "IsExternal", "Pset_DoorCommon", "optional"},
		})

		tbl, cls, versionUsed, err := ReadRequirements(f, Settings{SheetName: "Requirements", IfcVersions: "IFC4"})
		require.NoError(t, err)
		require.Len(t, tbl.Rows, 2)

		assert.Equal(t, table.Value{"required"}, tbl.Rows[0]["R.Cardinality"])
		assert.Equal(t, table.Value{"optional"}, tbl.Rows[1]["R.Cardinality"])
		assert.Equal(t, table.Value{table.Missing}, tbl.Rows[1]["Phase"])

		assert.False(t, versionUsed)
		assert.Equal(t, table.Value{"IFC4"}, tbl.Rows[0][model.ColSpecificationIfcVersion])
		assert.Contains(t, cls.Spec, model.ColSpecificationIfcVersion)
	})

	t.Run("existing version column is kept and backfilled", func(t *testing.T) {
		f := newWorkbook(t, [][]any{
			{"A.Entity", "R.Property", "R.PropertySet", "SpecificationIfcVersion"},
			{"IfcWall", "IsExternal", "Pset", "IFC2X3"},
			{"IfcDoor", "IsExternal", "Pset", ""},
		})

		tbl, _, versionUsed, err := ReadRequirements(f, Settings{SheetName: "Requirements", IfcVersions: "IFC4"})
		require.NoError(t, err)
		assert.True(t, versionUsed)
		assert.Equal(t, table.Value{"IFC2X3"}, tbl.Rows[0][model.ColSpecificationIfcVersion])
		assert.Equal(t, table.Value{"IFC4"}, tbl.Rows[1][model.ColSpecificationIfcVersion])
	})

	t.Run("skipped rows offset the header", func(t *testing.T) {
		f := newWorkbook(t, [][]any{
			{"Internal use only"},
			{"A.Entity", "R.Property", "R.PropertySet"},
			{"IfcWall", "IsExternal", "Pset"},
		})

		tbl, _, _, err := ReadRequirements(f, Settings{SheetName: "Requirements", IfcVersions: "IFC4", SkippedRows: 1})
		require.NoError(t, err)
		require.Len(t, tbl.Rows, 1)
		assert.Equal(t, table.Value{"IfcWall"}, tbl.Rows[0]["A.Entity"])
	})

	t.Run("empty rows are skipped", func(t *testing.T) {
		f := newWorkbook(t, [][]any{
			{"A.Entity", "R.Property", "R.PropertySet"},
			{"IfcWall", "IsExternal", "Pset"},
			{"", "", ""},
		})

		tbl, _, _, err := ReadRequirements(f, Settings{SheetName: "Requirements", IfcVersions: "IFC4"})
		require.NoError(t, err)
		assert.Len(t, tbl.Rows, 1)
	})

	t.Run("missing sheet fails", func(t *testing.T) {
		f := excelize.NewFile()
		_, _, _, err := ReadRequirements(f, Settings{SheetName: "Nope"})
		require.Error(t, err)
	})
}
