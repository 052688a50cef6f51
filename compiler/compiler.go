package compiler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/c360studio/idsgen/model"
	"github.com/c360studio/idsgen/table"
)

// Options control one compilation run.
type Options struct {
	// SeparateBy lists the general-data columns that split specifications
	// into separate output documents instead of being collected.
	SeparateBy []string

	// EntityBased marks sheets whose applicability is carried by the entity
	// alone. Non-entity applicability columns are ignored and complex
	// restrictions are filtered from OR enumerations.
	EntityBased bool

	// VersionColumnUsed marks that the sheet carried its own IFC version
	// column, enabling the version restructuring pass.
	VersionColumnUsed bool
}

// Compiler builds deduplicated specification records from an aggregated
// requirement table.
type Compiler struct {
	opts  Options
	specs []*model.Specification

	propertyDescriptions map[string]string
}

// New creates a compiler for one sheet.
func New(opts Options) *Compiler {
	return &Compiler{
		opts:                 opts,
		propertyDescriptions: make(map[string]string),
	}
}

// PropertyDescriptions returns the property descriptions collected from the
// description columns, keyed by property name.
func (c *Compiler) PropertyDescriptions() map[string]string { return c.propertyDescriptions }

// Compile aggregates the table and turns every aggregated row into
// specification records: applicability facets are decoded and expanded into
// OR combinations, requirements are decoded and merged into the matching
// record, and the version restructuring and general-to-specific propagation
// passes run over the full record list.
func (c *Compiler) Compile(tbl *table.Table, cls table.Classification) ([]*model.Specification, error) {
	agg := table.Aggregate(tbl, cls, c.opts.SeparateBy)

	for i, row := range agg.Rows {
		if err := c.compileRow(row, cls); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if c.opts.VersionColumnUsed {
		c.restructureVersions()
	}
	c.propagateToGeneral()

	return c.specs, nil
}

func (c *Compiler) compileRow(row table.Row, cls table.Classification) error {
	general := model.GeneralData(rowToDict(row, cls.General))
	meta, err := buildMeta(rowToDict(row, cls.Spec))
	if err != nil {
		return err
	}

	var appList []model.Facet
	for _, group := range cls.AppGroups {
		for _, rd := range rowToDictList(row, group) {
			nested, err := splitValues(rd, c.opts.EntityBased)
			if err != nil {
				return err
			}
			appList = append(appList, splitToFacets(nested)...)
		}
	}

	// A fixed "required" cardinality keeps OR alternatives as one
	// enumeration; everything else expands into one specification per
	// combination so that alternatives stay individually checkable.
	var combos [][]model.Facet
	if meta.Required() {
		combos = [][]model.Facet{appList}
	} else {
		combos = generateCombinations(appList)
	}

	for _, app := range combos {
		for _, f := range app {
			if err := separateCombined(f, model.FieldEntity, model.FieldPredefinedType); err != nil {
				return err
			}
			if err := separateCombined(f, model.FieldPartOfEntity, model.FieldPartOfPredefinedType); err != nil {
				return err
			}
		}

		spec, isNew := c.findOrCreate(app, general, meta)

		for _, group := range cls.ReqGroups {
			for _, rd := range rowToDictList(row, group) {
				nested, err := splitValues(rd, c.opts.EntityBased)
				if err != nil {
					return err
				}
				// A group reduced to its cardinality column carries no
				// requirement.
				if len(nested.fields) == 1 && nested.fields[0] == model.FieldCardinality {
					continue
				}
				for _, rf := range splitToFacets(nested) {
					if err := checkEnumerationRestrictions(rf); err != nil {
						return err
					}
					c.recordDescriptions(rf)
					if err := separateCombined(rf, model.FieldEntity, model.FieldPredefinedType); err != nil {
						return err
					}
					if err := separateCombined(rf, model.FieldPartOfEntity, model.FieldPartOfPredefinedType); err != nil {
						return err
					}
					mergeOrAppend(spec, rf)
				}
			}
		}

		if isNew && (len(app) > 0 || len(spec.Requirements) > 0 || len(spec.General) > 0) {
			c.specs = append(c.specs, spec)
		}
	}
	return nil
}

// buildMeta extracts the specification-level metadata. An unknown
// cardinality value falls back to optional; an unknown IFC version is an
// error.
func buildMeta(specDict map[string][]string) (model.Meta, error) {
	var meta model.Meta
	if vs := specDict[model.ColSpecificationName]; len(vs) > 0 {
		meta.Name = vs[0]
	}
	if vs := specDict[model.ColSpecificationCardinality]; len(vs) > 0 {
		card := vs[0]
		if strings.EqualFold(card, model.CardinalityRequired) || strings.EqualFold(card, model.CardinalityProhibited) {
			meta.Cardinality = card
		}
	}
	for _, v := range specDict[model.ColSpecificationIfcVersion] {
		upper := strings.ToUpper(v)
		if !slices.Contains(model.ValidIfcVersions, upper) {
			return model.Meta{}, fmt.Errorf("invalid IFC version %q: valid versions are %s",
				v, strings.Join(model.ValidIfcVersions, ", "))
		}
		meta.IfcVersions = append(meta.IfcVersions, upper)
	}
	return meta, nil
}

// checkEnumerationRestrictions rejects requirement facets whose enumerations
// contain a pattern, bound, or length value.
func checkEnumerationRestrictions(f model.Facet) error {
	for _, field := range f.Fields() {
		values := f[field]
		if len(values) <= 1 {
			continue
		}
		for _, v := range values {
			if model.IsComplexRestriction(v) {
				return fmt.Errorf("complex restriction %q of %s cannot be part of an enumeration %v", v, field, values)
			}
		}
	}
	return nil
}

// recordDescriptions caches the property description columns of a
// requirement facet for the document builder. Entity descriptions travel on
// the facet itself and need no cache.
func (c *Compiler) recordDescriptions(f model.Facet) {
	desc, ok := f[model.FieldDescription]
	if !ok || len(desc) == 0 {
		return
	}
	for _, p := range f[model.FieldProperty] {
		c.propertyDescriptions[p] = desc[0]
	}
}

// mergeOrAppend merges the facet into the first compatible requirement of
// the record, or appends it as a new requirement.
func mergeOrAppend(spec *model.Specification, rf model.Facet) {
	for _, existing := range spec.Requirements {
		if !model.MergeRequirement(existing, rf, model.LeafValueFields, false, false) {
			return
		}
	}
	spec.Requirements = append(spec.Requirements, rf)
}
