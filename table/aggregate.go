package table

import (
	"slices"
	"strings"

	"github.com/c360studio/idsgen/model"
)

// keySep joins cell values into a group key. Unit separator never occurs in
// sheet content.
const keySep = "\x1f"

// LeafValueColumns are the per-row value columns concatenated by the first
// aggregation pass.
var LeafValueColumns = []string{
	RequirementPrefix + model.FieldPropertyValue,
	RequirementPrefix + model.FieldAttributeValue,
}

// Aggregate runs the two grouping passes over the table:
//
// Pass (a) collapses rows identical in every column except the leaf value
// columns, concatenating those with the OR delimiter in row order. This
// flattens spreadsheet rows that spell out OR alternatives of one value.
//
// Pass (b) collapses rows identical in every remaining column except the
// requirement-side columns and the general-data columns not chosen as
// separate-by dimensions; their values are collected as ordered sublists,
// preserving duplicates, for downstream AND/OR decoding.
func Aggregate(t *Table, cls Classification, separateBy []string) *Table {
	groupCols := slices.Clone(cls.Relevant)
	var leafCols []string
	for _, col := range LeafValueColumns {
		if idx := slices.Index(groupCols, col); idx >= 0 {
			groupCols = slices.Delete(groupCols, idx, idx+1)
			leafCols = append(leafCols, col)
		}
	}

	step1 := groupConcat(t, groupCols, leafCols)

	var collectCols []string
	for _, col := range cls.RequirementColumns() {
		if idx := slices.Index(groupCols, col); idx >= 0 {
			groupCols = slices.Delete(groupCols, idx, idx+1)
			collectCols = append(collectCols, col)
		}
	}
	for _, col := range cls.General {
		if slices.Contains(separateBy, col) {
			continue
		}
		if idx := slices.Index(groupCols, col); idx >= 0 {
			groupCols = slices.Delete(groupCols, idx, idx+1)
			collectCols = append(collectCols, col)
		}
	}
	collectCols = append(collectCols, leafCols...)

	return groupCollect(step1, groupCols, collectCols)
}

// groupConcat groups rows by keyCols and joins concatCols cells with the OR
// delimiter within each group.
func groupConcat(t *Table, keyCols, concatCols []string) *Table {
	out := &Table{Columns: slices.Clone(t.Columns)}
	index := make(map[string]int)

	for _, row := range t.Rows {
		key := groupKey(row, keyCols)
		if i, ok := index[key]; ok {
			target := out.Rows[i]
			for _, col := range concatCols {
				merged := target[col][0] + OrSeparator + row[col][0]
				target[col] = Value{merged}
			}
			continue
		}
		index[key] = len(out.Rows)
		out.Rows = append(out.Rows, cloneRow(row))
	}
	return out
}

// groupCollect groups rows by keyCols and collects collectCols cells as
// ordered sublists, keeping duplicates.
func groupCollect(t *Table, keyCols, collectCols []string) *Table {
	out := &Table{Columns: slices.Clone(t.Columns)}
	index := make(map[string]int)

	for _, row := range t.Rows {
		key := groupKey(row, keyCols)
		if i, ok := index[key]; ok {
			target := out.Rows[i]
			for _, col := range collectCols {
				target[col] = append(target[col], row[col]...)
			}
			continue
		}
		index[key] = len(out.Rows)
		out.Rows = append(out.Rows, cloneRow(row))
	}
	return out
}

func groupKey(row Row, keyCols []string) string {
	parts := make([]string, len(keyCols))
	for i, col := range keyCols {
		parts[i] = strings.Join(row[col], keySep)
	}
	return strings.Join(parts, keySep)
}

func cloneRow(row Row) Row {
	out := make(Row, len(row))
	for col, v := range row {
		out[col] = slices.Clone(v)
	}
	return out
}
