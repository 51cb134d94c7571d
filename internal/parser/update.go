package parser

import "strings"

// parseUpdate handles a changelog entry: <Update label="..." description="...">.
func parseUpdate(content string) (DocNode, string, bool) {
	if !strings.HasPrefix(content, "<Update") {
		return nil, "", false
	}

	attrs, _, body, ok := splitOpenTag(content, "Update")
	if !ok {
		return nil, "", false
	}

	label, ok := ExtractAttr(attrs, "label")
	if !ok {
		return nil, "", false
	}

	inner, rest, ok := takeElement(body, "Update")
	if !ok {
		return nil, "", false
	}

	return Update{
		Label:       label,
		Description: attrOr(attrs, "description", ""),
		Content:     ParseContent(inner),
	}, rest, true
}
