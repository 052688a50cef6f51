package compiler

import (
	"slices"

	"github.com/c360studio/idsgen/model"
)

// versionRestructureUncompared lists the facet fields ignored while copying
// a superset specification's requirements into a version-subset one. The
// applicability of both records is already known equal, so the entity fields
// and leaf values need no comparison.
var versionRestructureUncompared = []string{
	model.FieldEntity,
	model.FieldPredefinedType,
	model.FieldAttributeValue,
	model.FieldPropertyValue,
}

// findOrCreate scans the record list backwards for a specification with the
// same match key (cardinality and ordered version list), the same
// separate-by general data, and a deep-equal applicability chain. On a match
// the general data is merged and the existing record returned; otherwise a
// fresh record is built from copies of the inputs. The second result reports
// whether the record is new.
func (c *Compiler) findOrCreate(app []model.Facet, general model.GeneralData, meta model.Meta) (*model.Specification, bool) {
	for i := len(c.specs) - 1; i >= 0; i-- {
		s := c.specs[i]
		if !s.Meta.MatchKeyEqual(meta) {
			continue
		}
		if len(c.opts.SeparateBy) > 0 && !s.General.RestrictedEqual(general, c.opts.SeparateBy) {
			continue
		}
		if !model.FacetsEqual(s.Applicability, app) {
			continue
		}
		s.General.MergeFrom(general)
		return s, false
	}
	return &model.Specification{
		General:       general.Clone(),
		Meta:          meta.Clone(),
		Applicability: app,
	}, true
}

// restructureVersions reshapes records whose version lists overlap as
// subsets. When one record targets a subset of another's versions and both
// share cardinality, separate-by general data, and applicability, the
// superset record's requirements are folded into the subset record and the
// subset versions are removed from the superset record. Records left without
// versions are dropped.
func (c *Compiler) restructureVersions() {
	for i := range c.specs {
		if len(c.specs[i].Meta.IfcVersions) == 0 {
			continue
		}
		for j := i + 1; j < len(c.specs); j++ {
			vi := c.specs[i].Meta.IfcVersions
			if len(vi) == 0 {
				break
			}
			vj := c.specs[j].Meta.IfcVersions
			if len(vj) == 0 {
				continue
			}
			switch {
			case versionSubset(vi, vj):
				c.restructurePair(c.specs[i], c.specs[j])
			case versionSubset(vj, vi):
				c.restructurePair(c.specs[j], c.specs[i])
			}
		}
	}

	var kept []*model.Specification
	for _, s := range c.specs {
		if len(s.Meta.IfcVersions) > 0 {
			kept = append(kept, s)
		}
	}
	c.specs = kept
}

// restructurePair folds the requirements of the version-superset record into
// the version-subset record and subtracts the subset versions from the
// superset, provided cardinality, separate-by general data, and
// applicability match.
func (c *Compiler) restructurePair(specific, general *model.Specification) {
	if !specific.Meta.CardinalityEqual(general.Meta) {
		return
	}
	if len(c.opts.SeparateBy) > 0 && !specific.General.RestrictedEqual(general.General, c.opts.SeparateBy) {
		return
	}
	if !model.FacetsEqual(specific.Applicability, general.Applicability) {
		return
	}

	specific.General.MergeFrom(general.General)
	for _, reqG := range general.Requirements {
		found := false
		for _, reqS := range specific.Requirements {
			if !model.MergeRequirement(reqS, reqG, versionRestructureUncompared, false, true) {
				found = true
				break
			}
		}
		if !found {
			specific.Requirements = append(specific.Requirements, reqG.Clone())
		}
	}
	general.Meta.IfcVersions = subtractVersions(general.Meta.IfcVersions, specific.Meta.IfcVersions)
}

// propagateToGeneral merges the requirements of records whose applicability
// chain is a strict refinement into the record with the broader
// applicability. Candidate pairs must agree on cardinality, version set, and
// separate-by general data; the entity and leading attribute-value fields
// act as a cheap pre-filter before the full subset check. Only the leaf
// values of otherwise identical requirements are unioned.
func (c *Compiler) propagateToGeneral() {
	for i := 0; i < len(c.specs); i++ {
		for j := i + 1; j < len(c.specs); j++ {
			sI, sJ := c.specs[i], c.specs[j]
			if !sI.Meta.CardinalityEqual(sJ.Meta) || !sI.Meta.VersionsEqualUnordered(sJ.Meta) {
				continue
			}
			if len(c.opts.SeparateBy) > 0 && !sI.General.RestrictedEqualUnordered(sJ.General, c.opts.SeparateBy) {
				continue
			}

			appI, appJ := sI.Applicability, sJ.Applicability
			if len(appI) > 0 && len(appJ) > 0 {
				if bothHaveUnequal(appI[0], appJ[0], model.FieldEntity) ||
					bothHaveUnequal(appI[0], appJ[0], model.FieldPredefinedType) {
					continue
				}
			}
			if len(appI) > 1 && len(appJ) > 1 {
				if bothHaveUnequal(appI[1], appJ[1], model.FieldAttributeValue) {
					continue
				}
			}

			if model.FacetsSubset(appI, appJ) {
				propagateRequirements(sI, sJ)
			}
			if model.FacetsSubset(appJ, appI) {
				propagateRequirements(sJ, sI)
			}
		}
	}
}

// propagateRequirements unions the leaf values of src's requirements into
// the matching requirements of dst.
func propagateRequirements(dst, src *model.Specification) {
	for _, reqD := range dst.Requirements {
		for _, reqS := range src.Requirements {
			model.MergeRequirement(reqD, reqS, model.LeafValueFields, true, false)
		}
	}
}

// bothHaveUnequal reports whether both facets carry the field with different
// alternatives.
func bothHaveUnequal(a, b model.Facet, field string) bool {
	va, oka := a[field]
	vb, okb := b[field]
	return oka && okb && !slices.Equal(va, vb)
}

// versionSubset reports whether every version of a also appears in b.
func versionSubset(a, b []string) bool {
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	return true
}

// subtractVersions removes the versions of b from a, keeping a's order.
func subtractVersions(a, b []string) []string {
	var out []string
	for _, v := range a {
		if !slices.Contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}
