package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRequirement(t *testing.T) {
	t.Run("equal fields union leaf values", func(t *testing.T) {
		dst := Facet{
			FieldProperty:      {"Property"},
			FieldPropertySet:   {"Pset"},
			FieldPropertyValue: {"A", "B"},
		}
		src := Facet{
			FieldProperty:      {"Property"},
			FieldPropertySet:   {"Pset"},
			FieldPropertyValue: {"B", "C"},
		}

		diff := MergeRequirement(dst, src, LeafValueFields, false, false)
		require.False(t, diff)
		assert.Equal(t, []string{"A", "B", "C"}, dst[FieldPropertyValue])
	})

	t.Run("merge never removes a field", func(t *testing.T) {
		dst := Facet{
			FieldProperty:      {"Property"},
			FieldPropertySet:   {"Pset"},
			FieldPropertyValue: {"A"},
		}
		src := Facet{
			FieldProperty:         {"Property"},
			FieldPropertySet:      {"Pset"},
			FieldPropertyDatatype: {"IFCLABEL"},
			FieldPropertyValue:    {"B"},
		}

		diff := MergeRequirement(dst, src, LeafValueFields, false, false)
		require.False(t, diff)
		assert.Equal(t, []string{"IFCLABEL"}, dst[FieldPropertyDatatype])
		assert.Equal(t, []string{"A", "B"}, dst[FieldPropertyValue])
	})

	t.Run("existing superset does not absorb a smaller facet", func(t *testing.T) {
		dst := Facet{
			FieldProperty:         {"Property"},
			FieldPropertySet:      {"Pset"},
			FieldPropertyDatatype: {"IFCLABEL"},
		}
		src := Facet{
			FieldProperty:    {"Property"},
			FieldPropertySet: {"Pset"},
		}

		assert.True(t, MergeRequirement(dst, src, LeafValueFields, false, false))
	})

	t.Run("conflicting values stay separate", func(t *testing.T) {
		dst := Facet{FieldProperty: {"P1"}, FieldPropertySet: {"Pset"}}
		src := Facet{FieldProperty: {"P2"}, FieldPropertySet: {"Pset"}}

		assert.True(t, MergeRequirement(dst, src, LeafValueFields, false, false))
		assert.Equal(t, []string{"P1"}, dst[FieldProperty])
	})

	t.Run("complex restriction blocks the union", func(t *testing.T) {
		dst := Facet{
			FieldProperty:      {"Property"},
			FieldPropertySet:   {"Pset"},
			FieldPropertyValue: {`\<=5`},
		}
		src := Facet{
			FieldProperty:      {"Property"},
			FieldPropertySet:   {"Pset"},
			FieldPropertyValue: {"A"},
		}

		assert.True(t, MergeRequirement(dst, src, LeafValueFields, false, false))
		assert.Equal(t, []string{`\<=5`}, dst[FieldPropertyValue])
	})

	t.Run("description is never compared", func(t *testing.T) {
		dst := Facet{
			FieldProperty:    {"Property"},
			FieldPropertySet: {"Pset"},
			FieldDescription: {"old text"},
		}
		src := Facet{
			FieldProperty:    {"Property"},
			FieldPropertySet: {"Pset"},
			FieldDescription: {"new text"},
		}

		assert.False(t, MergeRequirement(dst, src, LeafValueFields, false, false))
	})

	t.Run("mergeOnlyValues requires identical field sets", func(t *testing.T) {
		dst := Facet{
			FieldProperty:    {"Property"},
			FieldPropertySet: {"Pset"},
		}
		src := Facet{
			FieldProperty:         {"Property"},
			FieldPropertySet:      {"Pset"},
			FieldPropertyDatatype: {"IFCLABEL"},
		}

		assert.True(t, MergeRequirement(dst, src, LeafValueFields, true, false))
	})

	t.Run("disjoint facet kinds never merge", func(t *testing.T) {
		dst := Facet{FieldMaterial: {"Concrete"}}
		src := Facet{FieldAttribute: {"Name"}}

		assert.True(t, MergeRequirement(dst, src, LeafValueFields, false, false))
	})

	t.Run("reverse checks src against dst", func(t *testing.T) {
		// dst carries more fields than src; with reverse the smaller src
		// is the looped side, so the pair is subset-compatible.
		dst := Facet{
			FieldProperty:         {"Property"},
			FieldPropertySet:      {"Pset"},
			FieldPropertyDatatype: {"IFCLABEL"},
		}
		src := Facet{
			FieldProperty:    {"Property"},
			FieldPropertySet: {"Pset"},
		}

		assert.False(t, MergeRequirement(dst.Clone(), src, LeafValueFields, false, true))
		assert.True(t, MergeRequirement(dst.Clone(), src, LeafValueFields, false, false))
	})
}

func TestFacetsSubset(t *testing.T) {
	entity := Facet{FieldEntity: {"IFCWALL"}}
	attr := Facet{FieldAttribute: {"Name"}, FieldAttributeValue: {"X"}}

	t.Run("subset and equality", func(t *testing.T) {
		assert.True(t, FacetsSubset([]Facet{entity}, []Facet{entity, attr}))
		assert.True(t, FacetsSubset([]Facet{entity, attr}, []Facet{attr, entity}))
		assert.False(t, FacetsSubset([]Facet{entity, attr}, []Facet{entity}))
	})

	t.Run("duplicates need distinct matches", func(t *testing.T) {
		assert.False(t, FacetsSubset([]Facet{entity, entity}, []Facet{entity, attr}))
		assert.True(t, FacetsSubset([]Facet{entity, entity}, []Facet{entity, entity}))
	})

	t.Run("changed facet blocks both directions", func(t *testing.T) {
		other := Facet{FieldEntity: {"IFCDOOR"}}
		assert.False(t, FacetsSubset([]Facet{entity}, []Facet{other}))
		assert.False(t, FacetsSubset([]Facet{other}, []Facet{entity}))
	})
}

func TestGeneralDataMerge(t *testing.T) {
	g := GeneralData{ColPhase: {"Design"}, ColRole: {"Architect"}}
	g.MergeFrom(GeneralData{ColPhase: {"Design", "Build"}, ColUsecase: {"Permit"}})

	assert.Equal(t, []string{"Design", "Build"}, g[ColPhase])
	assert.Equal(t, []string{"Architect"}, g[ColRole])
	assert.Equal(t, []string{"Permit"}, g[ColUsecase])
}

func TestIsComplexRestriction(t *testing.T) {
	for _, v := range []string{`pattern=.*`, `\<5`, `\<=5`, `\>5`, `\>=5`, `length=3`, `length<=3`, `length>=3`} {
		assert.True(t, IsComplexRestriction(v), v)
	}
	for _, v := range []string{"plain", "<5", "5", "pat=x", "len=3"} {
		assert.False(t, IsComplexRestriction(v), v)
	}
}

func TestMetaPredicates(t *testing.T) {
	a := Meta{Cardinality: "required", IfcVersions: []string{"IFC4", "IFC2X3"}}
	b := Meta{Cardinality: "required", IfcVersions: []string{"IFC2X3", "IFC4"}}

	assert.False(t, a.MatchKeyEqual(b))
	assert.True(t, a.VersionsEqualUnordered(b))
	assert.True(t, a.CardinalityEqual(b))
	assert.True(t, Meta{Cardinality: "Required"}.Required())
	assert.False(t, Meta{Cardinality: "optional"}.Required())
}
