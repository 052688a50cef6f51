package ids

import (
	"fmt"
	"io"
	"strings"
)

const (
	idsNamespace = "http://standards.buildingsmart.org/IDS"
	xsNamespace  = "http://www.w3.org/2001/XMLSchema"
	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"
	idsSchema    = "http://standards.buildingsmart.org/IDS http://standards.buildingsmart.org/IDS/1.0/ids.xsd"
)

// Write serializes the document as IDS 1.0 XML.
func Write(w io.Writer, doc *Document) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	sb.WriteString("<!-- Generated by idsgen -->\n")
	fmt.Fprintf(&sb, "<ids xmlns=\"%s\" xmlns:xs=\"%s\" xmlns:xsi=\"%s\" xsi:schemaLocation=\"%s\">\n",
		idsNamespace, xsNamespace, xsiNamespace, idsSchema)

	writeInfo(&sb, doc.Info)

	sb.WriteString("  <specifications>\n")
	for _, spec := range doc.Specifications {
		writeSpecification(&sb, spec)
	}
	sb.WriteString("  </specifications>\n")
	sb.WriteString("</ids>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeInfo(sb *strings.Builder, info Info) {
	sb.WriteString("  <info>\n")
	writeTextElement(sb, "    ", "title", info.Title)
	writeTextElement(sb, "    ", "copyright", info.Copyright)
	writeTextElement(sb, "    ", "version", info.Version)
	writeTextElement(sb, "    ", "description", info.Description)
	writeTextElement(sb, "    ", "author", info.Author)
	writeTextElement(sb, "    ", "date", info.Date)
	writeTextElement(sb, "    ", "purpose", info.Purpose)
	writeTextElement(sb, "    ", "milestone", info.Milestone)
	sb.WriteString("  </info>\n")
}

func writeSpecification(sb *strings.Builder, spec *Specification) {
	sb.WriteString("    <specification")
	writeAttr(sb, "name", spec.Name)
	writeAttr(sb, "ifcVersion", strings.Join(spec.IfcVersions, " "))
	writeAttr(sb, "identifier", spec.Identifier)
	writeAttr(sb, "instructions", spec.Instructions)
	sb.WriteString(">\n")

	fmt.Fprintf(sb, "      <applicability minOccurs=%q maxOccurs=%q>\n", spec.MinOccurs, spec.MaxOccurs)
	for _, f := range spec.Applicability {
		writeFacet(sb, "        ", f, false)
	}
	sb.WriteString("      </applicability>\n")

	if len(spec.Requirements) > 0 {
		sb.WriteString("      <requirements>\n")
		for _, f := range spec.Requirements {
			writeFacet(sb, "        ", f, true)
		}
		sb.WriteString("      </requirements>\n")
	} else {
		sb.WriteString("      <requirements/>\n")
	}
	sb.WriteString("    </specification>\n")
}

// writeFacet renders one facet element. Cardinality attributes only exist on
// the requirements side.
func writeFacet(sb *strings.Builder, indent string, f Facet, requirement bool) {
	card := func(c string) string {
		if requirement {
			return c
		}
		return ""
	}

	switch facet := f.(type) {
	case Entity:
		openFacet(sb, indent, "entity", [][2]string{{"instructions", facet.Instructions}})
		writeValueElement(sb, indent+"  ", "name", &facet.Name)
		writeValueElement(sb, indent+"  ", "predefinedType", facet.PredefinedType)
		closeFacet(sb, indent, "entity")
	case Property:
		openFacet(sb, indent, "property", [][2]string{
			{"dataType", facet.DataType},
			{"uri", facet.URI},
			{"cardinality", card(facet.Cardinality)},
			{"instructions", facet.Instructions},
		})
		writeValueElement(sb, indent+"  ", "propertySet", &facet.PropertySet)
		writeValueElement(sb, indent+"  ", "baseName", &facet.BaseName)
		writeValueElement(sb, indent+"  ", "value", facet.Value)
		closeFacet(sb, indent, "property")
	case Material:
		openFacet(sb, indent, "material", [][2]string{
			{"uri", facet.URI},
			{"cardinality", card(facet.Cardinality)},
		})
		writeValueElement(sb, indent+"  ", "value", facet.Value)
		closeFacet(sb, indent, "material")
	case Attribute:
		openFacet(sb, indent, "attribute", [][2]string{{"cardinality", card(facet.Cardinality)}})
		writeValueElement(sb, indent+"  ", "name", &facet.Name)
		writeValueElement(sb, indent+"  ", "value", facet.Value)
		closeFacet(sb, indent, "attribute")
	case Classification:
		openFacet(sb, indent, "classification", [][2]string{
			{"uri", facet.URI},
			{"cardinality", card(facet.Cardinality)},
		})
		writeValueElement(sb, indent+"  ", "value", facet.Value)
		writeValueElement(sb, indent+"  ", "system", &facet.System)
		closeFacet(sb, indent, "classification")
	case PartOf:
		openFacet(sb, indent, "partOf", [][2]string{
			{"relation", facet.Relation},
			{"cardinality", card(facet.Cardinality)},
		})
		sb.WriteString(indent + "  <entity>\n")
		writeValueElement(sb, indent+"    ", "name", &facet.Entity)
		writeValueElement(sb, indent+"    ", "predefinedType", facet.PredefinedType)
		sb.WriteString(indent + "  </entity>\n")
		closeFacet(sb, indent, "partOf")
	}
}

func openFacet(sb *strings.Builder, indent, name string, attrs [][2]string) {
	sb.WriteString(indent + "<" + name)
	for _, attr := range attrs {
		writeAttr(sb, attr[0], attr[1])
	}
	sb.WriteString(">\n")
}

func closeFacet(sb *strings.Builder, indent, name string) {
	sb.WriteString(indent + "</" + name + ">\n")
}

// writeValueElement renders a facet parameter as either a simpleValue or an
// xs:restriction. Nil and empty values are omitted.
func writeValueElement(sb *strings.Builder, indent, name string, v *Value) {
	if v == nil {
		return
	}
	if v.Restriction != nil {
		sb.WriteString(indent + "<" + name + ">\n")
		r := v.Restriction
		base := r.Base
		if base != "" {
			base = "xs:" + base
		}
		sb.WriteString(indent + "  <xs:restriction")
		writeAttr(sb, "base", base)
		sb.WriteString(">\n")
		for _, facet := range r.Facets {
			fmt.Fprintf(sb, "%s    <xs:%s value=\"%s\"/>\n", indent, facet.Name, escapeXML(facet.Value))
		}
		sb.WriteString(indent + "  </xs:restriction>\n")
		sb.WriteString(indent + "</" + name + ">\n")
		return
	}
	if v.Simple == "" {
		return
	}
	fmt.Fprintf(sb, "%s<%s>\n%s  <simpleValue>%s</simpleValue>\n%s</%s>\n",
		indent, name, indent, escapeXML(v.Simple), indent, name)
}

func writeTextElement(sb *strings.Builder, indent, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "%s<%s>%s</%s>\n", indent, name, escapeXML(value), name)
}

func writeAttr(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, " %s=\"%s\"", name, escapeXML(value))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
