package ids

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/idsgen/model"
)

// Info is the document metadata of one IDS file.
type Info struct {
	Title       string
	Copyright   string
	Version     string
	Description string
	Author      string
	Date        string
	Purpose     string
	Milestone   string
}

// Specification is one encoded specification of a document.
type Specification struct {
	Name          string
	Identifier    string
	IfcVersions   []string
	Instructions  string
	MinOccurs     string
	MaxOccurs     string
	Applicability []Facet
	Requirements  []Facet
}

// Document is a complete IDS file ready for serialization.
type Document struct {
	Info           Info
	Specifications []*Specification
}

// Builder encodes compiled specification records into documents. The
// description maps come from the compiler's description columns and feed the
// instructions attributes.
type Builder struct {
	PropertyDescriptions map[string]string

	now func() time.Time
}

// NewBuilder creates a builder.
func NewBuilder(propertyDescriptions map[string]string) *Builder {
	return &Builder{PropertyDescriptions: propertyDescriptions, now: time.Now}
}

// Build assembles one document from the given records. The info's date is
// stamped with the current day; purpose and milestone are derived from the
// role, usecase, and phase values unless the info already carries them.
func (b *Builder) Build(info Info, general model.GeneralData, specs []*model.Specification) (*Document, error) {
	if info.Title == "" {
		info.Title = "Not Defined"
	}
	info.Date = b.now().Format("2006-01-02")
	if info.Milestone == "" {
		info.Milestone = strings.Join(general[model.ColPhase], ", ")
	}
	if info.Purpose == "" {
		info.Purpose = joinLabeled(general, model.ColRole, model.ColUsecase)
	}

	doc := &Document{Info: info}
	for i, spec := range specs {
		encoded, err := b.buildSpecification(i+1, spec)
		if err != nil {
			return nil, fmt.Errorf("specification %d: %w", i+1, err)
		}
		doc.Specifications = append(doc.Specifications, encoded)
	}
	return doc, nil
}

func (b *Builder) buildSpecification(n int, spec *model.Specification) (*Specification, error) {
	out := &Specification{
		Name:         specName(n, spec),
		Identifier:   uuid.NewString(),
		IfcVersions:  spec.Meta.IfcVersions,
		Instructions: joinLabeled(spec.General, model.ColPhase, model.ColRole, model.ColUsecase),
		MinOccurs:    "0",
		MaxOccurs:    "unbounded",
	}
	if spec.Meta.Required() {
		out.MinOccurs = "1"
	}
	if spec.Meta.Prohibited() {
		out.MaxOccurs = "0"
	}

	var err error
	if out.Applicability, err = b.buildFacets(spec.Applicability); err != nil {
		return nil, fmt.Errorf("applicability: %w", err)
	}
	if out.Requirements, err = b.buildFacets(spec.Requirements); err != nil {
		return nil, fmt.Errorf("requirements: %w", err)
	}
	return out, nil
}

func (b *Builder) buildFacets(facets []model.Facet) ([]Facet, error) {
	var out []Facet
	for _, f := range facets {
		encoded, err := encodeFacet(f, b.PropertyDescriptions)
		if err != nil {
			return nil, err
		}
		if encoded != nil {
			out = append(out, encoded)
		}
	}
	return out, nil
}

// specName derives a specification name: the sheet-provided one, or a
// numbered name listing the applicable entities with their predefined types.
func specName(n int, spec *model.Specification) string {
	if spec.Meta.Name != "" {
		return spec.Meta.Name
	}
	name := fmt.Sprintf("Specification %d", n)
	if len(spec.Applicability) == 0 {
		return name
	}
	entities := spec.Applicability[0][model.FieldEntity]
	if len(entities) == 0 {
		return name
	}
	types := spec.Applicability[0][model.FieldPredefinedType]
	name += ":"
	for i, e := range entities {
		name += " " + e
		if i < len(types) {
			name += "." + types[i]
		}
	}
	return name
}

// joinLabeled renders the given general-data fields as "Key: a, b; Key: c".
func joinLabeled(general model.GeneralData, keys ...string) string {
	var parts []string
	for _, key := range keys {
		if values := general[key]; len(values) > 0 {
			parts = append(parts, key+": "+strings.Join(values, ", "))
		}
	}
	return strings.Join(parts, "; ")
}
