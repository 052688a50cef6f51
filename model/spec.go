package model

import (
	"slices"
	"strings"
)

// GeneralData maps the free general-data columns (Phase, Role, Usecase) to
// their ordered value lists.
type GeneralData map[string][]string

// Clone returns a deep copy.
func (g GeneralData) Clone() GeneralData {
	out := make(GeneralData, len(g))
	for k, v := range g {
		out[k] = slices.Clone(v)
	}
	return out
}

// RestrictedEqual compares two general-data maps on the given keys only,
// order-sensitive. A key absent on both sides counts as equal.
func (g GeneralData) RestrictedEqual(other GeneralData, keys []string) bool {
	for _, k := range keys {
		if !slices.Equal(g[k], other[k]) {
			return false
		}
	}
	return true
}

// RestrictedEqualUnordered compares the given keys as value sets.
func (g GeneralData) RestrictedEqualUnordered(other GeneralData, keys []string) bool {
	for _, k := range keys {
		if !setEqual(g[k], other[k]) {
			return false
		}
	}
	return true
}

// MergeFrom merges other into g, appending unseen values per key in order.
func (g GeneralData) MergeFrom(other GeneralData) {
	for _, k := range GeneralFields {
		if v, ok := other[k]; ok {
			g[k] = appendUnique(g[k], v)
		}
	}
	for k, v := range other {
		if _, known := g[k]; !known && !slices.Contains(GeneralFields, k) {
			g[k] = slices.Clone(v)
		}
	}
}

// Meta is the specification-level metadata of one record.
type Meta struct {
	// Name is an optional human-chosen specification name.
	Name string
	// Cardinality is "required", "prohibited", or empty for optional. The
	// raw spelling from the source is kept; Required/Prohibited compare
	// case-insensitively.
	Cardinality string
	// IfcVersions lists the target schema versions in source order.
	IfcVersions []string
}

// Clone returns a deep copy.
func (m Meta) Clone() Meta {
	m.IfcVersions = slices.Clone(m.IfcVersions)
	return m
}

// Required reports whether the cardinality is fixed to "required".
func (m Meta) Required() bool { return strings.EqualFold(m.Cardinality, CardinalityRequired) }

// Prohibited reports whether the cardinality is fixed to "prohibited".
func (m Meta) Prohibited() bool { return strings.EqualFold(m.Cardinality, CardinalityProhibited) }

// MatchKeyEqual reports equality of the registry match key: cardinality plus
// the ordered version list. Name is excluded deliberately.
func (m Meta) MatchKeyEqual(other Meta) bool {
	return m.Cardinality == other.Cardinality && slices.Equal(m.IfcVersions, other.IfcVersions)
}

// CardinalityEqual compares only the cardinality.
func (m Meta) CardinalityEqual(other Meta) bool { return m.Cardinality == other.Cardinality }

// VersionsEqualUnordered compares the version lists as sets.
func (m Meta) VersionsEqualUnordered(other Meta) bool {
	return setEqual(m.IfcVersions, other.IfcVersions)
}

// Specification is one compiled requirement record: an ordered applicability
// facet chain and an unordered requirement facet list, plus the general data
// and metadata the registry deduplicates on.
type Specification struct {
	General       GeneralData
	Meta          Meta
	Applicability []Facet
	Requirements  []Facet
}

func setEqual(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	seen := make(map[string]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := seen[v]; !ok {
			return false
		}
	}
	other := make(map[string]struct{}, len(b))
	for _, v := range b {
		other[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}
