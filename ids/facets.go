package ids

import (
	"fmt"
	"strings"

	"github.com/c360studio/idsgen/model"
)

// Facet is one encoded applicability or requirement entry of a
// specification.
type Facet interface {
	facetName() string
}

// Entity constrains the IFC class of matched elements.
type Entity struct {
	Name           Value
	PredefinedType *Value
	Instructions   string
}

// Property constrains a property of matched elements.
type Property struct {
	PropertySet  Value
	BaseName     Value
	DataType     string
	Value        *Value
	URI          string
	Cardinality  string
	Instructions string
}

// Material constrains the material of matched elements.
type Material struct {
	Value       *Value
	URI         string
	Cardinality string
}

// Attribute constrains a direct IFC attribute of matched elements.
type Attribute struct {
	Name        Value
	Value       *Value
	Cardinality string
}

// Classification constrains the classification reference of matched
// elements.
type Classification struct {
	Value       *Value
	System      Value
	URI         string
	Cardinality string
}

// PartOf constrains the aggregation relation of matched elements.
type PartOf struct {
	Entity         Value
	PredefinedType *Value
	Relation       string
	Cardinality    string
}

func (Entity) facetName() string         { return "entity" }
func (Property) facetName() string       { return "property" }
func (Material) facetName() string       { return "material" }
func (Attribute) facetName() string      { return "attribute" }
func (Classification) facetName() string { return "classification" }
func (PartOf) facetName() string         { return "partOf" }

// encodeFacet turns one specification record facet into its document form.
// The facet kind is dispatched on the fields present, in fixed priority:
// entity, property, material, attribute, classification, part-of. Fields
// that only make sense together are checked for completeness. A facet that
// matches no kind (a bare URI column, say) yields nil.
func encodeFacet(f model.Facet, propertyDescriptions map[string]string) (Facet, error) {
	has := func(field string) bool { _, ok := f[field]; return ok }

	enc := func(field string) (Value, error) {
		base := "string"
		if field == model.FieldPropertyValue {
			if dt := f[model.FieldPropertyDatatype]; len(dt) > 0 {
				b, ok := datatypeBase[dt[0]]
				if !ok {
					return Value{}, fmt.Errorf("unknown property datatype %q", dt[0])
				}
				base = b
			}
		}
		return encodeValue(f[field], base)
	}

	first := func(field string) string {
		if vs := f[field]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	switch {
	case has(model.FieldEntity) || has(model.FieldPredefinedType):
		if !has(model.FieldEntity) {
			return nil, incompleteFacet(f, "the entity facet requires the Entity parameter")
		}
		name, err := enc(model.FieldEntity)
		if err != nil {
			return nil, err
		}
		pt, err := optional(f, model.FieldPredefinedType, enc)
		if err != nil {
			return nil, err
		}
		return Entity{Name: name, PredefinedType: pt, Instructions: first(model.FieldDescription)}, nil

	case has(model.FieldPropertySet) || has(model.FieldProperty) ||
		has(model.FieldPropertyDatatype) || has(model.FieldPropertyValue):
		if !has(model.FieldPropertySet) || !has(model.FieldProperty) {
			return nil, incompleteFacet(f, "the property facet requires the PropertySet and Property parameters")
		}
		pset, err := enc(model.FieldPropertySet)
		if err != nil {
			return nil, err
		}
		name, err := enc(model.FieldProperty)
		if err != nil {
			return nil, err
		}
		value, err := optional(f, model.FieldPropertyValue, enc)
		if err != nil {
			return nil, err
		}
		return Property{
			PropertySet:  pset,
			BaseName:     name,
			DataType:     strings.ReplaceAll(first(model.FieldPropertyDatatype), " ", ""),
			Value:        value,
			URI:          first(model.FieldPropertyURI),
			Cardinality:  first(model.FieldCardinality),
			Instructions: propertyDescriptions[first(model.FieldProperty)],
		}, nil

	case has(model.FieldMaterial):
		value, err := optional(f, model.FieldMaterial, enc)
		if err != nil {
			return nil, err
		}
		return Material{
			Value:       value,
			URI:         first(model.FieldMaterialURI),
			Cardinality: first(model.FieldCardinality),
		}, nil

	case has(model.FieldAttribute) || has(model.FieldAttributeValue):
		if !has(model.FieldAttribute) {
			return nil, incompleteFacet(f, "the attribute facet requires the Attribute parameter")
		}
		name, err := enc(model.FieldAttribute)
		if err != nil {
			return nil, err
		}
		value, err := optional(f, model.FieldAttributeValue, enc)
		if err != nil {
			return nil, err
		}
		return Attribute{Name: name, Value: value, Cardinality: first(model.FieldCardinality)}, nil

	case has(model.FieldClassification) || has(model.FieldClassificationSystem) ||
		has(model.FieldClassificationURI):
		if !has(model.FieldClassificationSystem) {
			return nil, incompleteFacet(f, "the classification facet requires the ClassificationSystem parameter")
		}
		system, err := enc(model.FieldClassificationSystem)
		if err != nil {
			return nil, err
		}
		value, err := optional(f, model.FieldClassification, enc)
		if err != nil {
			return nil, err
		}
		return Classification{
			Value:       value,
			System:      system,
			URI:         first(model.FieldClassificationURI),
			Cardinality: first(model.FieldCardinality),
		}, nil

	case has(model.FieldPartOfEntity) || has(model.FieldPartOfPredefinedType) ||
		has(model.FieldPartOfRelation):
		if !has(model.FieldPartOfEntity) {
			return nil, incompleteFacet(f, "the part-of facet requires the PartOfEntity parameter")
		}
		entity, err := enc(model.FieldPartOfEntity)
		if err != nil {
			return nil, err
		}
		pt, err := optional(f, model.FieldPartOfPredefinedType, enc)
		if err != nil {
			return nil, err
		}
		return PartOf{
			Entity:         entity,
			PredefinedType: pt,
			Relation:       first(model.FieldPartOfRelation),
			Cardinality:    first(model.FieldCardinality),
		}, nil
	}

	return nil, nil
}

func optional(f model.Facet, field string, enc func(string) (Value, error)) (*Value, error) {
	if _, ok := f[field]; !ok {
		return nil, nil
	}
	v, err := enc(field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func incompleteFacet(f model.Facet, reason string) error {
	return fmt.Errorf("incomplete facet %s: %s", f, reason)
}
