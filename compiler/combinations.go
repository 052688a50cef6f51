package compiler

import (
	"slices"

	"github.com/c360studio/idsgen/model"
)

// facetVariants expands one facet into its single-valued variants: every
// multi-alternative field contributes one alternative per variant, while
// single-valued fields are carried as-is. A facet without multi-valued
// fields yields itself.
func facetVariants(f model.Facet) []model.Facet {
	variants := []model.Facet{make(model.Facet)}
	for _, field := range f.Fields() {
		values := f[field]
		if len(values) <= 1 {
			for _, v := range variants {
				v[field] = slices.Clone(values)
			}
			continue
		}
		next := make([]model.Facet, 0, len(variants)*len(values))
		for _, base := range variants {
			for _, value := range values {
				nf := base.Clone()
				nf[field] = []string{value}
				next = append(next, nf)
			}
		}
		variants = next
	}
	return variants
}

// generateCombinations builds the cartesian product of the per-facet
// variants: one applicability list per combination of OR alternatives.
// Facet and field order is canonical, so the output is deterministic. An
// empty applicability yields a single empty combination.
func generateCombinations(applicability []model.Facet) [][]model.Facet {
	combos := [][]model.Facet{{}}
	for _, facet := range applicability {
		variants := facetVariants(facet)
		next := make([][]model.Facet, 0, len(combos)*len(variants))
		for _, combo := range combos {
			for _, variant := range variants {
				extended := make([]model.Facet, 0, len(combo)+1)
				extended = append(extended, combo...)
				extended = append(extended, variant.Clone())
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}
