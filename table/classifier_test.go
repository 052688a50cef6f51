package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("groups applicability and requirement columns", func(t *testing.T) {
		cls, err := Classify([]string{
			"A.Entity", "A.Attribute", "A.AttributeValue",
			"R.Property", "R.PropertySet", "R.PropertyValue", "R.Cardinality",
			"Phase", "Role",
			"SpecificationCardinality", "SpecificationIfcVersion",
		}, false)
		require.NoError(t, err)

		assert.Equal(t, [][]string{
			{"A.Entity"},
			{"A.Attribute", "A.AttributeValue"},
		}, cls.AppGroups)
		assert.Equal(t, [][]string{
			{"R.Property", "R.PropertySet", "R.PropertyValue", "R.Cardinality"},
			{"R.Cardinality"},
		}, cls.ReqGroups)
		assert.Equal(t, []string{"Phase", "Role"}, cls.General)
		assert.Equal(t, []string{"SpecificationCardinality", "SpecificationIfcVersion"}, cls.Spec)
	})

	t.Run("relevant columns are deduplicated", func(t *testing.T) {
		cls, err := Classify([]string{
			"R.Material", "R.Attribute", "R.Cardinality", "Phase",
		}, false)
		require.NoError(t, err)

		count := 0
		for _, col := range cls.Relevant {
			if col == "R.Cardinality" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("rejects duplicate column names", func(t *testing.T) {
		_, err := Classify([]string{"A.Entity", "A.Entity.1", "Phase"}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "A.Entity")
	})

	t.Run("entity-based mode drops non-entity applicability columns", func(t *testing.T) {
		cls, err := Classify([]string{
			"A.Entity", "A.Property", "A.PropertySet", "A.Material",
			"A.Attribute", "A.AttributeValue",
			"R.Property", "R.PropertySet",
		}, true)
		require.NoError(t, err)

		assert.Equal(t, [][]string{
			{"A.Entity"},
			{"A.Attribute", "A.AttributeValue"},
		}, cls.AppGroups)
		assert.NotContains(t, cls.Relevant, "A.Property")
		assert.Contains(t, cls.Relevant, "R.Property")
	})

	t.Run("description columns join their facet group", func(t *testing.T) {
		cls, err := Classify([]string{
			"R.Entity", "R.Description.Entity",
			"R.Property", "R.PropertySet", "R.Description.Property",
		}, false)
		require.NoError(t, err)

		assert.Equal(t, [][]string{
			{"R.Entity", "R.Description.Entity"},
			{"R.Property", "R.PropertySet", "R.Description.Property"},
		}, cls.ReqGroups)
	})
}

func TestAggregate(t *testing.T) {
	cols := []string{"A.Entity", "R.Property", "R.PropertySet", "R.PropertyValue", "Phase"}
	cls, err := Classify(cols, false)
	require.NoError(t, err)

	t.Run("pass a concatenates leaf values of identical rows", func(t *testing.T) {
		tbl := New(cols)
		tbl.Append([]string{"IfcWall", "Property", "Pset", "A", "Design"})
		tbl.Append([]string{"IfcWall", "Property", "Pset", "B", "Design"})

		got := Aggregate(tbl, cls, nil)
		require.Len(t, got.Rows, 1)
		assert.Equal(t, Value{"A|B"}, got.Rows[0]["R.PropertyValue"])
	})

	t.Run("pass b collects requirement columns as sublists", func(t *testing.T) {
		tbl := New(cols)
		tbl.Append([]string{"IfcWall", "P1", "Pset", "A", "Design"})
		tbl.Append([]string{"IfcWall", "P2", "Pset", "B", "Design"})

		got := Aggregate(tbl, cls, nil)
		require.Len(t, got.Rows, 1)
		assert.Equal(t, Value{"P1", "P2"}, got.Rows[0]["R.Property"])
		assert.Equal(t, Value{"A", "B"}, got.Rows[0]["R.PropertyValue"])
	})

	t.Run("different applicability stays separate", func(t *testing.T) {
		tbl := New(cols)
		tbl.Append([]string{"IfcWall", "P1", "Pset", "A", "Design"})
		tbl.Append([]string{"IfcDoor", "P1", "Pset", "A", "Design"})

		got := Aggregate(tbl, cls, nil)
		assert.Len(t, got.Rows, 2)
	})

	t.Run("separate-by general columns keep rows apart", func(t *testing.T) {
		tbl := New(cols)
		tbl.Append([]string{"IfcWall", "P1", "Pset", "A", "Design"})
		tbl.Append([]string{"IfcWall", "P1", "Pset", "A", "Build"})

		merged := Aggregate(tbl, cls, nil)
		assert.Len(t, merged.Rows, 1)
		assert.Equal(t, Value{"Design", "Build"}, merged.Rows[0]["Phase"])

		split := Aggregate(tbl, cls, []string{"Phase"})
		assert.Len(t, split.Rows, 2)
	})
}

func TestTableHelpers(t *testing.T) {
	tbl := New([]string{"A.Entity", "R.Property"})
	tbl.Append([]string{"IfcWall"})

	assert.Equal(t, Value{Missing}, tbl.Rows[0]["R.Property"])

	tbl.FillColumn("R.Property", "Pnam")
	assert.Equal(t, Value{"Pnam"}, tbl.Rows[0]["R.Property"])

	tbl.SetColumn("SpecificationIfcVersion", "IFC4")
	assert.True(t, tbl.HasColumn("SpecificationIfcVersion"))
	assert.Equal(t, Value{"IFC4"}, tbl.Rows[0]["SpecificationIfcVersion"])
}
