package parser

import (
	"regexp"
	"strings"
)

var calloutOpenRegex = regexp.MustCompile(`^<(Tip|Note|Warning|Info)>`)

// parseCallout handles <Tip>, <Note>, <Warning> and <Info>. The body is kept
// as raw Markdown and ends at the first matching close tag.
func parseCallout(content string) (DocNode, string, bool) {
	m := calloutOpenRegex.FindStringSubmatch(content)
	if m == nil {
		return nil, "", false
	}

	tag := m[1]
	afterOpen := content[len(m[0]):]
	closeTag := "</" + tag + ">"
	idx := strings.Index(afterOpen, closeTag)
	if idx == -1 {
		return nil, "", false
	}

	return Callout{
		Type:    CalloutType(strings.ToLower(tag)),
		Content: strings.TrimSpace(afterOpen[:idx]),
	}, afterOpen[idx+len(closeTag):], true
}
