// Package excel reads requirement workbooks: the settings sheet that
// configures a conversion and the requirement sheet that becomes the input
// table.
package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/c360studio/idsgen/ids"
	"github.com/c360studio/idsgen/model"
	"github.com/c360studio/idsgen/table"
)

// SettingsSheet is the name of the workbook sheet holding the conversion
// settings.
const SettingsSheet = "IDS4ALL"

// Settings configure one workbook conversion. They are read from the
// settings sheet as key/value pairs in the first two columns.
type Settings struct {
	// SheetName names the requirement sheet.
	SheetName string

	// IfcVersions is the default version list in OR notation, applied to
	// rows without their own version cell.
	IfcVersions string

	// SeparateBy lists the general-data columns that split the output into
	// separate files.
	SeparateBy []string

	// SkippedRows is the number of rows above the header row.
	SkippedRows int

	// EntityBased restricts the applicability side to entity columns.
	EntityBased bool

	// Info carries the document metadata keys of the settings sheet.
	Info ids.Info
}

// ReadSettings reads the settings sheet. The first row is a header and
// skipped; rows without a value are ignored. "Sheet name" and "IFC version"
// are required.
func ReadSettings(f *excelize.File) (Settings, error) {
	rows, err := f.GetRows(SettingsSheet)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings sheet %q: %w", SettingsSheet, err)
	}

	values := make(map[string]string)
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		if key, value := strings.TrimSpace(row[0]), strings.TrimSpace(row[1]); key != "" && value != "" {
			values[key] = value
		}
	}

	for _, required := range []string{"Sheet name", "IFC version"} {
		if _, ok := values[required]; !ok {
			return Settings{}, fmt.Errorf("%q is not defined on the %s sheet", required, SettingsSheet)
		}
	}

	s := Settings{
		SheetName:   values["Sheet name"],
		IfcVersions: strings.ReplaceAll(strings.ReplaceAll(values["IFC version"], " ", ""), ",", table.OrSeparator),
		EntityBased: strings.EqualFold(values["Entity-based applicability"], "yes"),
		Info: ids.Info{
			Title:       values["Title"],
			Copyright:   values["Copyright"],
			Version:     values["Version"],
			Description: values["Description"],
			Author:      values["Author"],
		},
	}
	if v, ok := values["File separators"]; ok {
		s.SeparateBy = strings.Split(strings.ReplaceAll(v, " ", ""), ",")
	}
	if v, ok := values["Skipped rows"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid Skipped rows value %q: %w", v, err)
		}
		s.SkippedRows = n
	}
	return s, nil
}

// ReadRequirements reads the requirement sheet into a table and classifies
// its columns. Empty cells become the missing sentinel, an empty requirement
// cardinality defaults to "required", and the version column is synthesized
// from the default versions when the sheet lacks one. The returned flag
// reports whether the sheet carried its own version column.
func ReadRequirements(f *excelize.File, s Settings) (*table.Table, table.Classification, bool, error) {
	rows, err := f.GetRows(s.SheetName)
	if err != nil {
		return nil, table.Classification{}, false, fmt.Errorf("reading sheet %q: %w", s.SheetName, err)
	}
	if len(rows) <= s.SkippedRows {
		return nil, table.Classification{}, false, fmt.Errorf("sheet %q has no header row", s.SheetName)
	}

	header := rows[s.SkippedRows]
	cls, err := table.Classify(header, s.EntityBased)
	if err != nil {
		return nil, table.Classification{}, false, err
	}

	tbl := table.New(header)
	for _, row := range rows[s.SkippedRows+1:] {
		if emptyRow(row) {
			continue
		}
		cells := make([]string, len(row))
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				cell = table.Missing
			}
			cells[i] = cell
		}
		tbl.Append(cells)
	}

	tbl.FillColumn(table.RequirementPrefix+model.FieldCardinality, model.CardinalityRequired)

	versionColumnUsed := tbl.HasColumn(model.ColSpecificationIfcVersion)
	if versionColumnUsed {
		tbl.FillColumn(model.ColSpecificationIfcVersion, s.IfcVersions)
	} else {
		tbl.SetColumn(model.ColSpecificationIfcVersion, s.IfcVersions)
		cls.AddSpecColumn(model.ColSpecificationIfcVersion)
	}
	return tbl, cls, versionColumnUsed, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
