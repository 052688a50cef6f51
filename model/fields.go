// Package model defines the specification records produced by the tabular
// requirement compiler and the equality, subset, and merge predicates the
// registry passes are built on.
package model

// Facet field names. These are the column names of the source table with the
// applicability/requirement prefix stripped.
const (
	FieldEntity               = "Entity"
	FieldPredefinedType       = "PredefinedType"
	FieldProperty             = "Property"
	FieldPropertySet          = "PropertySet"
	FieldPropertyDatatype     = "PropertyDatatype"
	FieldPropertyValue        = "PropertyValue"
	FieldPropertyURI          = "PropertyURI"
	FieldMaterial             = "Material"
	FieldMaterialURI          = "MaterialURI"
	FieldAttribute            = "Attribute"
	FieldAttributeValue       = "AttributeValue"
	FieldClassification       = "Classification"
	FieldClassificationSystem = "ClassificationSystem"
	FieldClassificationURI    = "ClassificationURI"
	FieldPartOfRelation       = "PartOfRelation"
	FieldPartOfEntity         = "PartOfEntity"
	FieldPartOfPredefinedType = "PartOfPredefinedType"
	FieldDescription          = "Description"
	FieldCardinality          = "Cardinality"
)

// Unprefixed specification-level and general-data column names.
const (
	ColSpecificationName        = "SpecificationName"
	ColSpecificationCardinality = "SpecificationCardinality"
	ColSpecificationIfcVersion  = "SpecificationIfcVersion"
	ColPhase                    = "Phase"
	ColRole                     = "Role"
	ColUsecase                  = "Usecase"
)

// Specification cardinality values. Anything else means optional.
const (
	CardinalityRequired   = "required"
	CardinalityProhibited = "prohibited"
)

// GeneralFields lists the general-data columns in their canonical order.
var GeneralFields = []string{ColPhase, ColRole, ColUsecase}

// ValidIfcVersions lists the IFC schema versions a specification may target.
var ValidIfcVersions = []string{"IFC2X3", "IFC4", "IFC4X3_ADD2"}

// fieldOrder fixes a canonical iteration order over facet fields so that
// combination expansion, encoding, and error messages are deterministic.
var fieldOrder = []string{
	FieldEntity,
	FieldPredefinedType,
	FieldProperty,
	FieldPropertySet,
	FieldPropertyDatatype,
	FieldPropertyValue,
	FieldPropertyURI,
	FieldMaterial,
	FieldMaterialURI,
	FieldAttribute,
	FieldAttributeValue,
	FieldClassification,
	FieldClassificationSystem,
	FieldClassificationURI,
	FieldPartOfEntity,
	FieldPartOfRelation,
	FieldPartOfPredefinedType,
	FieldDescription,
	FieldCardinality,
}

var fieldRank = func() map[string]int {
	m := make(map[string]int, len(fieldOrder))
	for i, f := range fieldOrder {
		m[f] = i
	}
	return m
}()
