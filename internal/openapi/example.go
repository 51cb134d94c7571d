package openapi

import (
	"encoding/json"
	"maps"
	"strconv"
)

// maxExampleDepth bounds example generation on deeply nested schemas.
const maxExampleDepth = 5

var formatExamples = map[string]string{
	"uuid":      "550e8400-e29b-41d4-a716-446655440000",
	"date-time": "2024-01-15T09:30:00Z",
	"date":      "2024-01-15",
	"uri":       "https://example.com",
	"url":       "https://example.com",
	"email":     "user@example.com",
}

// GenerateExample builds a JSON-ready example value for the schema. An
// explicit example wins; otherwise a placeholder is derived from the type.
// Beyond depth 5, and for circular stubs, an empty object is returned.
func (s Schema) GenerateExample(depth int) any {
	if depth > maxExampleDepth || s.Circular {
		return map[string]any{}
	}

	if s.Example != nil {
		var v any
		if err := json.Unmarshal([]byte(*s.Example), &v); err == nil {
			return v
		}
		return *s.Example
	}

	switch s.Type {
	case TypeString:
		if len(s.Enum) > 0 {
			return s.Enum[0]
		}
		if v, ok := formatExamples[s.Format]; ok {
			return v
		}
		return "string"
	case TypeInteger:
		if s.Default != nil {
			if n, err := strconv.ParseInt(*s.Default, 10, 64); err == nil {
				return n
			}
		}
		return 0
	case TypeNumber:
		return 0.0
	case TypeBoolean:
		return true
	case TypeArray:
		if s.Items == nil {
			return []any{}
		}
		return []any{s.Items.GenerateExample(depth + 1)}
	case TypeObject:
		obj := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			obj[name] = prop.GenerateExample(depth + 1)
		}
		return obj
	case TypeNull:
		return nil
	}

	return s.compositeExample(depth)
}

// compositeExample handles untyped schemas: allOf members are merged, and
// oneOf or anyOf use their first alternative.
func (s Schema) compositeExample(depth int) any {
	switch {
	case len(s.AllOf) > 0:
		merged := map[string]any{}
		var last any
		for _, member := range s.AllOf {
			last = member.GenerateExample(depth + 1)
			if obj, ok := last.(map[string]any); ok {
				maps.Copy(merged, obj)
			}
		}
		if len(merged) == 0 && last != nil {
			return last
		}
		return merged
	case len(s.OneOf) > 0:
		return s.OneOf[0].GenerateExample(depth + 1)
	case len(s.AnyOf) > 0:
		return s.AnyOf[0].GenerateExample(depth + 1)
	default:
		return "any"
	}
}
