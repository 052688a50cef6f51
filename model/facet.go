package model

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Facet is one flat constraint instance: a mapping from facet field to its
// ordered list of OR alternatives. Before combination expansion a field may
// hold several alternatives; afterwards every applicability field holds one,
// except the leaf value fields which keep their enumerations.
type Facet map[string][]string

// Clone returns a deep copy of the facet.
func (f Facet) Clone() Facet {
	out := make(Facet, len(f))
	for k, v := range f {
		out[k] = slices.Clone(v)
	}
	return out
}

// Fields returns the facet's field names in canonical order. Fields not in
// the canonical list sort last, alphabetically.
func (f Facet) Fields() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iok := fieldRank[keys[i]]
		rj, jok := fieldRank[keys[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// Equal reports deep equality: same fields, same alternatives in the same
// order.
func (f Facet) Equal(other Facet) bool {
	if len(f) != len(other) {
		return false
	}
	for k, v := range f {
		ov, ok := other[k]
		if !ok || !slices.Equal(v, ov) {
			return false
		}
	}
	return true
}

// String renders the facet deterministically for error messages.
func (f Facet) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range f.Fields() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", k, f[k])
	}
	sb.WriteString("}")
	return sb.String()
}

// MergeFacet merges src into dst: alternatives of shared fields are appended
// preserving order and skipping duplicates, fields only in src are copied.
func MergeFacet(dst, src Facet) {
	for _, k := range src.Fields() {
		dst[k] = appendUnique(dst[k], src[k])
	}
}

// FacetsEqual reports position-wise deep equality of two facet chains.
func FacetsEqual(a, b []Facet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// FacetsSubset reports whether every facet of a deep-equals a distinct facet
// of b, ignoring order. Duplicates in a must be covered by distinct
// occurrences in b.
func FacetsSubset(a, b []Facet) bool {
	used := make([]bool, len(b))
outer:
	for _, fa := range a {
		for i, fb := range b {
			if !used[i] && fa.Equal(fb) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// CloneFacets deep-copies a facet chain.
func CloneFacets(fs []Facet) []Facet {
	out := make([]Facet, len(fs))
	for i, f := range fs {
		out[i] = f.Clone()
	}
	return out
}

// appendUnique appends the values of src not already present in dst.
func appendUnique(dst, src []string) []string {
	for _, v := range src {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// IsComplexRestriction reports whether a value encodes a pattern, numeric
// bound, or length constraint instead of a literal. Such values cannot be
// members of an enumeration.
func IsComplexRestriction(value string) bool {
	return strings.HasPrefix(value, "pattern=") ||
		strings.HasPrefix(value, `\<`) ||
		strings.HasPrefix(value, `\>`) ||
		strings.HasPrefix(value, "length=") ||
		strings.HasPrefix(value, "length<=") ||
		strings.HasPrefix(value, "length>=")
}
