package model

import "slices"

// LeafValueFields are the per-row value fields whose enumerations are unioned
// instead of compared when requirements are merged.
var LeafValueFields = []string{FieldAttributeValue, FieldPropertyValue}

// MergeRequirement checks whether two requirement facets are
// subset-compatible and, when they are, merges src into dst. It reports true
// when the facets are different (no merge happened) and false when src was
// merged into dst.
//
// Compatibility means: every field of the looped facet (dst, or src when
// reverse is set) also appears in the other facet with equal alternatives.
// Description is never compared. The uncompared leaf value fields are never
// compared either; their alternatives are unioned on merge, because the same
// requirement restated with a different value contributes an extra
// enumeration member rather than a conflict. A facet whose leaf value is a
// complex restriction never merges: patterns, bounds, and lengths cannot
// join an enumeration.
//
// With mergeOnlyValues set, both facets must carry exactly the same fields
// (minus Description); only the leaf values may then differ.
func MergeRequirement(dst, src Facet, uncompared []string, mergeOnlyValues, reverse bool) bool {
	diff := false
	sameFacet := false

	for _, field := range uncompared {
		if v := dst[field]; len(v) > 0 && IsComplexRestriction(v[0]) {
			diff = true
		}
		if v := src[field]; len(v) > 0 && IsComplexRestriction(v[0]) {
			diff = true
		}
	}

	looped, reference := dst, src
	if reverse {
		looped, reference = src, dst
	}

	for _, field := range looped.Fields() {
		if field == FieldDescription {
			continue
		}
		if mergeOnlyValues && !sameFieldSet(looped, reference) {
			diff = true
			break
		}
		if _, ok := reference[field]; ok {
			sameFacet = true
			if slices.Contains(uncompared, field) {
				continue
			}
			// The original compares dst against src here regardless of
			// the loop direction; kept as-is.
			if !slices.Equal(dst[field], src[field]) {
				diff = true
			}
		} else {
			diff = true
		}
	}

	if !diff && sameFacet {
		MergeFacet(dst, src)
		return false
	}
	return true
}

// sameFieldSet reports whether both facets carry the same fields, ignoring
// Description.
func sameFieldSet(a, b Facet) bool {
	count := func(f Facet) int {
		n := len(f)
		if _, ok := f[FieldDescription]; ok {
			n--
		}
		return n
	}
	if count(a) != count(b) {
		return false
	}
	for k := range a {
		if k == FieldDescription {
			continue
		}
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
