// Package ids assembles Information Delivery Specification documents from
// compiled specification records and writes them as IDS 1.0 XML.
package ids

import (
	"fmt"
	"strconv"
	"strings"
)

// Restriction is an XSD value restriction: a base type plus one or more
// constraining facets (enumeration members, a pattern, bounds, or lengths).
type Restriction struct {
	Base   string
	Facets []RestrictionFacet
}

// RestrictionFacet is one xs constraining facet, rendered as
// <xs:NAME value="VALUE"/>.
type RestrictionFacet struct {
	Name  string
	Value string
}

// Value is one facet parameter: either a fixed simple value or a
// restriction.
type Value struct {
	Simple      string
	Restriction *Restriction
}

// simpleValue wraps a literal, lowercasing booleans on the way.
func simpleValue(v string) Value {
	if strings.EqualFold(v, "true") || strings.EqualFold(v, "false") {
		v = strings.ToLower(v)
	}
	return Value{Simple: v}
}

// Value prefix spellings of the complex restrictions.
const (
	prefixPattern      = "pattern="
	prefixMaxInclusive = `\<=`
	prefixMaxExclusive = `\<`
	prefixMinInclusive = `\>=`
	prefixMinExclusive = `\>`
	prefixLength       = "length="
	prefixMinLength    = "length>="
	prefixMaxLength    = "length<="
)

// encodeValue turns an alternatives list into a facet parameter value. More
// than one alternative becomes an enumeration over the given base type. A
// single alternative becomes a pattern, bound, or length restriction when it
// carries a restriction prefix, and a simple value otherwise. Bounds upgrade
// a string base to double; lengths parse their operand as an integer.
func encodeValue(alternatives []string, base string) (Value, error) {
	if len(alternatives) > 1 {
		r := &Restriction{Base: base}
		for _, v := range alternatives {
			r.Facets = append(r.Facets, RestrictionFacet{Name: "enumeration", Value: v})
		}
		return Value{Restriction: r}, nil
	}
	if len(alternatives) == 0 {
		return Value{}, nil
	}

	v := alternatives[0]
	switch {
	case strings.HasPrefix(v, prefixPattern):
		return restrictionValue(base, "pattern", v[len(prefixPattern):]), nil
	case strings.HasPrefix(v, prefixMaxInclusive):
		return boundValue(base, "maxInclusive", v[len(prefixMaxInclusive):])
	case strings.HasPrefix(v, prefixMaxExclusive):
		return boundValue(base, "maxExclusive", v[len(prefixMaxExclusive):])
	case strings.HasPrefix(v, prefixMinInclusive):
		return boundValue(base, "minInclusive", v[len(prefixMinInclusive):])
	case strings.HasPrefix(v, prefixMinExclusive):
		return boundValue(base, "minExclusive", v[len(prefixMinExclusive):])
	case strings.HasPrefix(v, prefixMinLength):
		return lengthValue(base, "minLength", v[len(prefixMinLength):])
	case strings.HasPrefix(v, prefixMaxLength):
		return lengthValue(base, "maxLength", v[len(prefixMaxLength):])
	case strings.HasPrefix(v, prefixLength):
		return lengthValue(base, "length", v[len(prefixLength):])
	}
	return simpleValue(v), nil
}

func restrictionValue(base, name, value string) Value {
	return Value{Restriction: &Restriction{
		Base:   base,
		Facets: []RestrictionFacet{{Name: name, Value: value}},
	}}
}

// boundValue builds a numeric bound. Decimal commas are accepted; a plain
// string base is upgraded to double because bounds only make sense on
// numbers.
func boundValue(base, name, operand string) (Value, error) {
	f, err := parseDecimal(operand)
	if err != nil {
		return Value{}, fmt.Errorf("invalid %s bound %q: %w", name, operand, err)
	}
	if base == "string" {
		base = "double"
	}
	return restrictionValue(base, name, formatFloat(f)), nil
}

func lengthValue(base, name, operand string) (Value, error) {
	f, err := parseDecimal(operand)
	if err != nil {
		return Value{}, fmt.Errorf("invalid %s %q: %w", name, operand, err)
	}
	return restrictionValue(base, name, strconv.Itoa(int(f))), nil
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// formatFloat renders a float with an explicit fraction, so integral bounds
// read as "5.0" rather than "5".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
