package table

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/c360studio/idsgen/model"
)

// Column name prefixes of the two facet sides.
const (
	ApplicabilityPrefix = "A."
	RequirementPrefix   = "R."
)

// Classification partitions a sheet's column names into the facet groups of
// the applicability and requirement sides, the free general-data columns,
// and the specification-level columns.
type Classification struct {
	// AppGroups and ReqGroups hold one ordered column list per facet kind
	// (entity, property, material, attribute, classification, part-of).
	// Empty groups are omitted.
	AppGroups [][]string
	ReqGroups [][]string

	// General lists the present Phase/Role/Usecase columns.
	General []string

	// Spec lists the present specification-level columns.
	Spec []string

	// Relevant is the deduplicated union of all groups in first-seen order.
	Relevant []string
}

// appGroupFields defines the applicability facet groups by field name.
var appGroupFields = [][]string{
	{model.FieldEntity},
	{model.FieldProperty, model.FieldPropertySet, model.FieldPropertyValue, model.FieldPropertyDatatype},
	{model.FieldMaterial},
	{model.FieldAttribute, model.FieldAttributeValue},
	{model.FieldClassification, model.FieldClassificationSystem},
	{model.FieldPartOfEntity, model.FieldPartOfRelation},
}

// reqGroupColumns defines the requirement facet groups by full column name.
// MaterialURI is unprefixed in the sheet contract.
var reqGroupColumns = [][]string{
	{
		RequirementPrefix + model.FieldEntity,
		RequirementPrefix + model.FieldDescription + ".Entity",
	},
	{
		RequirementPrefix + model.FieldProperty,
		RequirementPrefix + model.FieldPropertySet,
		RequirementPrefix + model.FieldPropertyValue,
		RequirementPrefix + model.FieldPropertyDatatype,
		RequirementPrefix + model.FieldPropertyURI,
		RequirementPrefix + model.FieldCardinality,
		RequirementPrefix + model.FieldDescription + ".Property",
	},
	{
		RequirementPrefix + model.FieldMaterial,
		model.FieldMaterialURI,
		RequirementPrefix + model.FieldCardinality,
	},
	{
		RequirementPrefix + model.FieldAttribute,
		RequirementPrefix + model.FieldAttributeValue,
		RequirementPrefix + model.FieldCardinality,
	},
	{
		RequirementPrefix + model.FieldClassification,
		RequirementPrefix + model.FieldClassificationSystem,
		RequirementPrefix + model.FieldClassificationURI,
		RequirementPrefix + model.FieldCardinality,
	},
	{
		RequirementPrefix + model.FieldPartOfEntity,
		RequirementPrefix + model.FieldPartOfRelation,
		RequirementPrefix + model.FieldCardinality,
	},
}

// entityBasedRemoved lists the applicability columns dropped when the sheet
// declares entity-based applicability. Attribute columns stay.
var entityBasedRemoved = []string{
	ApplicabilityPrefix + model.FieldProperty,
	ApplicabilityPrefix + model.FieldPropertySet,
	ApplicabilityPrefix + model.FieldPropertyValue,
	ApplicabilityPrefix + model.FieldPropertyDatatype,
	ApplicabilityPrefix + model.FieldMaterial,
	ApplicabilityPrefix + model.FieldClassification,
	ApplicabilityPrefix + model.FieldClassificationSystem,
	ApplicabilityPrefix + model.FieldPartOfEntity,
	ApplicabilityPrefix + model.FieldPartOfRelation,
}

var numericSuffix = regexp.MustCompile(`\.\d+$`)

// Classify partitions the sheet's column names. It rejects duplicate column
// names (numeric disambiguation suffixes stripped first) and, in
// entity-based mode, ignores the non-entity applicability columns.
func Classify(columns []string, entityBased bool) (Classification, error) {
	if dup := duplicateNames(columns); len(dup) > 0 {
		return Classification{}, fmt.Errorf("column names must be unique, duplicated: %s", strings.Join(dup, ", "))
	}

	if entityBased {
		kept := make([]string, 0, len(columns))
		for _, col := range columns {
			if !slices.Contains(entityBasedRemoved, col) {
				kept = append(kept, col)
			}
		}
		columns = kept
	}

	var cls Classification
	for _, fields := range appGroupFields {
		group := presentColumns(prefixed(ApplicabilityPrefix, fields), columns)
		if len(group) > 0 {
			cls.AppGroups = append(cls.AppGroups, group)
		}
	}
	for _, wanted := range reqGroupColumns {
		group := presentColumns(wanted, columns)
		// The shared cardinality column makes groups of absent facet kinds
		// collapse onto each other; identical groups are kept once.
		if len(group) > 0 && !containsGroup(cls.ReqGroups, group) {
			cls.ReqGroups = append(cls.ReqGroups, group)
		}
	}
	cls.General = presentColumns(model.GeneralFields, columns)
	cls.Spec = presentColumns([]string{
		model.ColSpecificationName,
		model.ColSpecificationCardinality,
		model.ColSpecificationIfcVersion,
	}, columns)

	seen := make(map[string]struct{})
	add := func(cols []string) {
		for _, c := range cols {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				cls.Relevant = append(cls.Relevant, c)
			}
		}
	}
	for _, g := range cls.AppGroups {
		add(g)
	}
	for _, g := range cls.ReqGroups {
		add(g)
	}
	add(cls.General)
	add(cls.Spec)

	return cls, nil
}

// RequirementColumns returns the union of all requirement-side columns.
func (c Classification) RequirementColumns() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range c.ReqGroups {
		for _, col := range g {
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				out = append(out, col)
			}
		}
	}
	return out
}

// AddSpecColumn records a specification column synthesized after
// classification (the default-version column).
func (c *Classification) AddSpecColumn(name string) {
	if !slices.Contains(c.Spec, name) {
		c.Spec = append(c.Spec, name)
	}
	if !slices.Contains(c.Relevant, name) {
		c.Relevant = append(c.Relevant, name)
	}
}

func containsGroup(groups [][]string, group []string) bool {
	for _, g := range groups {
		if slices.Equal(g, group) {
			return true
		}
	}
	return false
}

func prefixed(prefix string, fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = prefix + f
	}
	return out
}

func presentColumns(wanted, available []string) []string {
	var out []string
	for _, col := range wanted {
		if slices.Contains(available, col) {
			out = append(out, col)
		}
	}
	return out
}

func duplicateNames(columns []string) []string {
	counts := make(map[string]int, len(columns))
	for _, col := range columns {
		counts[numericSuffix.ReplaceAllString(col, "")]++
	}
	var dup []string
	for name, n := range counts {
		if n > 1 {
			dup = append(dup, name)
		}
	}
	sort.Strings(dup)
	return dup
}
