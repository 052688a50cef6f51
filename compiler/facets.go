package compiler

import (
	"slices"
	"strings"

	"github.com/c360studio/idsgen/table"
)

// rowDict is one facet group's worth of cells from one aggregated row, with
// the group's column order preserved.
type rowDict struct {
	cols []string
	vals map[string]string
}

// rowToDict flattens the given columns of an aggregated row into a
// field-keyed value map. Collected sublists are rejoined with the OR
// delimiter, missing and placeholder cells are skipped, and duplicate
// alternatives are dropped while keeping first-seen order. Keys are the
// column names up to the first dot.
func rowToDict(row table.Row, cols []string) map[string][]string {
	out := make(map[string][]string)
	for _, col := range cols {
		cell, ok := row[col]
		if !ok {
			continue
		}
		joined := strings.Join(cell, table.OrSeparator)
		if joined == table.None || joined == table.Missing {
			continue
		}
		joined = strings.TrimSpace(joined)
		joined = strings.ReplaceAll(joined, table.AndSeparator, table.OrSeparator)

		var values []string
		for _, v := range strings.Split(joined, table.OrSeparator) {
			if v == table.Missing {
				continue
			}
			if !slices.Contains(values, v) {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			key, _, _ := strings.Cut(col, ".")
			out[key] = values
		}
	}
	return out
}

// rowToDictList splits one facet group's collected sublists back into the
// per-source-row dicts of the second aggregation pass. Columns whose cell
// collected fewer values than the widest column of the group broadcast
// their first value; missing cells are dropped. Dicts fully contained in a
// later, larger dict of the same group are redundant and removed.
func rowToDictList(row table.Row, cols []string) []rowDict {
	numItems := 0
	for _, col := range cols {
		if cell, ok := row[col]; ok {
			numItems = max(numItems, len(cell))
		}
	}

	var dicts []rowDict
	for i := 0; i < numItems; i++ {
		rd := rowDict{vals: make(map[string]string)}
		for _, col := range cols {
			cell, ok := row[col]
			if !ok || len(cell) == 0 {
				continue
			}
			v := cell[0]
			if i < len(cell) {
				v = cell[i]
			}
			if v == table.Missing {
				continue
			}
			rd.cols = append(rd.cols, col)
			rd.vals[col] = v
		}
		if len(rd.cols) > 0 {
			dicts = append(dicts, rd)
		}
	}

	var kept []rowDict
	for i, rd := range dicts {
		redundant := false
		for j, other := range dicts {
			if i != j && dictSubset(rd, other) && len(rd.cols) < len(other.cols) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, rd)
		}
	}
	return kept
}

// dictSubset reports whether every entry of a also appears in b.
func dictSubset(a, b rowDict) bool {
	for _, col := range a.cols {
		if b.vals[col] != a.vals[col] {
			return false
		}
	}
	return true
}
