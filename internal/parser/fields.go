package parser

import "strings"

const (
	defaultParamType      = "string"
	defaultResponseType   = "any"
	defaultExpandableName = "Details"
	nestedExpandableName  = "Properties"
)

// paramLocations is the order in which a ParamField's location attribute is
// looked up. The attribute value is the parameter name.
var paramLocations = []ParamLocation{LocationHeader, LocationPath, LocationQuery, LocationBody}

func parseParamField(content string) (DocNode, string, bool) {
	if !strings.HasPrefix(content, "<ParamField") {
		return nil, "", false
	}

	attrs, selfClosing, body, ok := splitOpenTag(content, "ParamField")
	if !ok {
		return nil, "", false
	}

	field := ParamField{
		Type:     attrOr(attrs, "type", defaultParamType),
		Required: strings.Contains(attrs, "required"),
		Default:  attrOr(attrs, "default", ""),
	}

	found := false
	for _, loc := range paramLocations {
		if name, ok := ExtractAttr(attrs, string(loc)); ok {
			field.Name, field.Location = name, loc
			found = true
			break
		}
	}
	if !found {
		return nil, "", false
	}

	if selfClosing {
		return field, body, true
	}

	inner, rest, ok := takeElement(body, "ParamField")
	if !ok {
		return nil, "", false
	}
	field.Content = ParseContent(inner)
	return field, rest, true
}

func parseResponseField(content string) (DocNode, string, bool) {
	if !strings.HasPrefix(content, "<ResponseField") {
		return nil, "", false
	}

	field, rest, ok := parseResponseFieldElement(content)
	if !ok {
		return nil, "", false
	}
	return field, rest, true
}

// parseResponseFieldElement reads one <ResponseField name="...">. Its body is
// kept as text, except for a nested <Expandable> which is parsed into fields.
func parseResponseFieldElement(content string) (ResponseField, string, bool) {
	attrs, selfClosing, body, ok := splitOpenTag(content, "ResponseField")
	if !ok {
		return ResponseField{}, "", false
	}

	name, ok := ExtractAttr(attrs, "name")
	if !ok {
		return ResponseField{}, "", false
	}

	field := ResponseField{
		Name:     name,
		Type:     attrOr(attrs, "type", defaultResponseType),
		Required: strings.Contains(attrs, "required"),
	}
	if selfClosing {
		return field, body, true
	}

	inner, rest, ok := takeElement(body, "ResponseField")
	if !ok {
		return ResponseField{}, "", false
	}

	field.Expandable = parseNestedExpandable(inner)
	field.Content = strings.TrimSpace(inner)
	if field.Expandable != nil {
		if idx := strings.Index(inner, "<Expandable"); idx != -1 {
			field.Content = strings.TrimSpace(inner[:idx])
		}
	}

	return field, rest, true
}

func parseExpandable(content string) (DocNode, string, bool) {
	if !strings.HasPrefix(content, "<Expandable") {
		return nil, "", false
	}

	attrs, _, body, ok := splitOpenTag(content, "Expandable")
	if !ok {
		return nil, "", false
	}

	inner, rest, ok := takeElement(body, "Expandable")
	if !ok {
		return nil, "", false
	}

	return Expandable{
		Title:  attrOr(attrs, "title", defaultExpandableName),
		Fields: parseResponseFields(inner),
	}, rest, true
}

func parseNestedExpandable(content string) *Expandable {
	start := strings.Index(content, "<Expandable")
	if start == -1 {
		return nil
	}

	attrs, _, body, ok := splitOpenTag(content[start:], "Expandable")
	if !ok {
		return nil
	}

	inner, _, ok := takeElement(body, "Expandable")
	if !ok {
		return nil
	}

	return &Expandable{
		Title:  attrOr(attrs, "title", nestedExpandableName),
		Fields: parseResponseFields(inner),
	}
}

func parseResponseFields(content string) []ResponseField {
	var fields []ResponseField
	remaining := strings.TrimSpace(content)

	for remaining != "" {
		if strings.HasPrefix(remaining, "<ResponseField") {
			if field, rest, ok := parseResponseFieldElement(remaining); ok {
				fields = append(fields, field)
				remaining = strings.TrimSpace(rest)
				continue
			}
		}

		idx := strings.Index(remaining[1:], "<ResponseField")
		if idx == -1 {
			break
		}
		remaining = remaining[idx+1:]
	}

	return fields
}
