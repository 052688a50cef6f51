package compiler

import (
	"slices"
	"sort"

	"github.com/c360studio/idsgen/model"
)

// Partition is one output document's worth of specifications: the records
// sharing a separate-by general-data combination, plus the union of their
// general data for the document metadata.
type Partition struct {
	Specifications []*model.Specification
	General        model.GeneralData
}

// PartitionSpecifications splits the record list by the separate-by
// general-data columns. Every record lands under one key per combination of
// its separate-by values, built as "_<column><value>" fragments in canonical
// column order; without separate-by columns all records share the empty key.
// A record carrying several values of a separate-by column appears in every
// matching partition.
func PartitionSpecifications(specs []*model.Specification, separateBy []string) map[string]*Partition {
	out := make(map[string]*Partition)
	for _, spec := range specs {
		keys := []string{""}
		for _, field := range model.GeneralFields {
			if !slices.Contains(separateBy, field) {
				continue
			}
			values := spec.General[field]
			if len(values) == 0 {
				continue
			}
			next := make([]string, 0, len(keys)*len(values))
			for _, k := range keys {
				for _, v := range values {
					next = append(next, k+"_"+field+v)
				}
			}
			keys = next
		}

		for _, key := range keys {
			p, ok := out[key]
			if !ok {
				p = &Partition{General: make(model.GeneralData)}
				out[key] = p
			}
			p.Specifications = append(p.Specifications, spec)
			p.General.MergeFrom(spec.General)
		}
	}
	return out
}

// PartitionKeys returns the partition keys in sorted order.
func PartitionKeys(parts map[string]*Partition) []string {
	keys := make([]string, 0, len(parts))
	for k := range parts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
