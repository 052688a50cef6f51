// Package compiler turns an aggregated requirement table into a deduplicated
// list of specification records: AND/OR cell decoding, facet construction,
// combinatorial expansion of ambiguous applicability, and the registry
// passes that merge, restructure, and propagate requirements.
package compiler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/c360studio/idsgen/model"
	"github.com/c360studio/idsgen/table"
)

// facetField strips the applicability/requirement prefix from a column name
// and cuts any facet-qualifying suffix: "A.Entity" and "R.Entity" map to
// "Entity", "R.Description.Property" to "Description", "MaterialURI" stays.
func facetField(column string) string {
	name := column
	if strings.HasPrefix(name, table.ApplicabilityPrefix) || strings.HasPrefix(name, table.RequirementPrefix) {
		name = name[len(table.ApplicabilityPrefix):]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// uppercasedFields are normalized to upper case during splitting.
var uppercasedFields = []string{model.FieldPropertyDatatype, model.FieldPartOfRelation}

// nestedValues holds one facet group's cells decoded into AND-groups of OR
// alternatives, with a stable field order.
type nestedValues struct {
	fields []string
	groups map[string][][]string
}

// splitValues decodes the cells of one facet group into nested AND/OR value
// lists. Cells split on the AND delimiter first, then each AND-group on the
// OR delimiter. Missing-sentinel tokens are dropped after splitting, so an
// all-missing AND-group yields no entry. Every field of the group must
// produce the same number of AND-groups; the requirement cardinality may
// supply one value that is broadcast to all AND positions. In entity-based
// mode, complex restrictions are filtered out of multi-alternative OR groups
// because they cannot survive the entity/predefined-type enumeration split.
func splitValues(rd rowDict, entityBased bool) (nestedValues, error) {
	out := nestedValues{groups: make(map[string][][]string)}
	andCount := 0

	for _, col := range rd.cols {
		raw, ok := rd.vals[col]
		if !ok {
			continue
		}
		field := facetField(col)
		if raw == table.None || raw == table.Missing {
			continue
		}
		value := strings.TrimSpace(raw)
		if slices.Contains(uppercasedFields, field) {
			value = strings.ToUpper(value)
		}

		andValues := strings.Split(value, table.AndSeparator)
		if andCount == 0 {
			andCount = len(andValues)
		}
		if len(andValues) != andCount {
			// The cardinality column is filled in automatically when the
			// sheet omits it, so a single value is applied to every AND
			// position instead of failing the count check.
			if field == model.FieldCardinality && len(andValues) == 1 {
				repeated := make([]string, 0, len(andValues)*andCount)
				for i := 0; i < andCount; i++ {
					repeated = append(repeated, andValues...)
				}
				andValues = repeated
			} else {
				return nestedValues{}, fmt.Errorf(
					"invalid number of AND values (separated by %s) for %s %q: all columns of one facet require %d AND values",
					table.AndSeparator, field, value, andCount)
			}
		}

		var valuesList [][]string
		for _, andValue := range andValues {
			if andValue == "" {
				continue
			}
			orValues := uniqueInOrder(strings.Split(andValue, table.OrSeparator))
			if entityBased && len(orValues) > 1 {
				orValues = slices.DeleteFunc(orValues, model.IsComplexRestriction)
			}
			orValues = slices.DeleteFunc(orValues, func(v string) bool { return v == table.Missing })
			if len(orValues) > 0 {
				valuesList = append(valuesList, orValues)
			}
		}

		if len(valuesList) > 0 {
			out.fields = append(out.fields, field)
			out.groups[field] = valuesList
		}
	}

	return out, nil
}

// splitToFacets rearranges nested AND-groups into one flat facet per AND
// position.
func splitToFacets(nested nestedValues) []model.Facet {
	n := 0
	for _, field := range nested.fields {
		n = max(n, len(nested.groups[field]))
	}

	var facets []model.Facet
	for j := 0; j < n; j++ {
		facet := make(model.Facet)
		for _, field := range nested.fields {
			if groups := nested.groups[field]; j < len(groups) {
				facet[field] = slices.Clone(groups[j])
			}
		}
		if len(facet) > 0 {
			facets = append(facets, facet)
		}
	}
	return facets
}

// combinedValueSep separates an entity name from its predefined type inside
// one cell value.
const combinedValueSep = "."

// separateCombined splits the combined values under the given field into the
// field itself and a second derived field: the part before the separator
// stays, the part after it moves to the second field. Entity names are
// uppercased. Splitting fails when the alternatives carry more than one
// distinct entity name alongside predefined types, because separating them
// into two facet parameters would lose the entity-to-type pairing.
func separateCombined(f model.Facet, combined, second string) error {
	orValues, ok := f[combined]
	if !ok {
		return nil
	}

	firsts := make([]string, 0, len(orValues))
	var seconds []string
	for _, v := range orValues {
		parts := strings.Split(v, combinedValueSep)
		first := parts[0]
		if combined == model.FieldEntity || combined == model.FieldPartOfEntity {
			first = strings.ToUpper(first)
		}
		firsts = append(firsts, first)
		if len(parts) == 2 {
			seconds = append(seconds, parts[1])
		}
	}

	if distinctCount(firsts) > 1 && len(seconds) > 0 {
		return fmt.Errorf(
			"predefined types cannot be used in an enumeration of a required applicability: separating them would lose the entity-to-type pairing (entities: %v, predefined types: %v)",
			firsts, seconds)
	}

	f[combined] = firsts
	if len(seconds) > 0 {
		f[second] = seconds
	}
	return nil
}

// uniqueInOrder drops repeated alternatives, keeping first-seen order.
func uniqueInOrder(values []string) []string {
	var out []string
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
