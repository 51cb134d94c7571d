package openapi

import (
	"slices"
	"strings"
)

// DisplayType is a short human-readable type: the referenced schema name,
// "array<T>", or the type with its format in parentheses.
func (s Schema) DisplayType() string {
	if s.RefName != "" {
		return s.RefName
	}

	switch {
	case s.Type == TypeArray && s.Items != nil:
		return "array<" + s.Items.DisplayType() + ">"
	case s.Type == TypeArray:
		return "array"
	case s.Type == TypeObject && len(s.Properties) > 0:
		return "object"
	case s.Format != "":
		return string(s.Type) + " (" + s.Format + ")"
	default:
		return string(s.Type)
	}
}

// IsComplex reports whether the schema has nested structure worth expanding.
func (s Schema) IsComplex() bool {
	return s.Type == TypeObject || s.Type == TypeArray ||
		len(s.OneOf) > 0 || len(s.AnyOf) > 0 || len(s.AllOf) > 0
}

// IsRequired reports whether the named property is required.
func (s Schema) IsRequired(name string) bool {
	return slices.Contains(s.Required, name)
}

// PropertyNames returns the property names, required ones first, each group
// sorted.
func (s Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		ra, rb := s.IsRequired(a), s.IsRequired(b)
		if ra != rb {
			if ra {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
	return names
}

// Operation finds an operation by slug.
func (s *Spec) Operation(slug string) (Operation, bool) {
	for _, op := range s.Operations {
		if op.Slug() == slug {
			return op, true
		}
	}
	return Operation{}, false
}

// OperationsByTag groups operations under their first tag. Groups follow
// the document's tag order; other tags and untaggedName are appended as first
// seen. Empty groups are dropped.
func (s *Spec) OperationsByTag(untaggedName string) []TagGroup {
	var groups []TagGroup
	index := make(map[string]int)

	add := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(groups)
		groups = append(groups, TagGroup{Name: name})
		return index[name]
	}

	for _, tag := range s.Tags {
		add(tag.Name)
	}
	for _, op := range s.Operations {
		name := untaggedName
		if len(op.Tags) > 0 {
			name = op.Tags[0]
		}
		i := add(name)
		groups[i].Operations = append(groups[i].Operations, op)
	}

	return slices.DeleteFunc(groups, func(g TagGroup) bool { return len(g.Operations) == 0 })
}

// TagGroup is the set of operations filed under one tag.
type TagGroup struct {
	Name       string      `json:"name"`
	Operations []Operation `json:"operations"`
}
