package parser

import "regexp"

var (
	importLineRegex    = regexp.MustCompile(`(?m)^import\s+.*?;\s*\n?`)
	helpfulWidgetRegex = regexp.MustCompile(`<SeggWatIsPageHelpful\s*/?>`)
)

// ParseMDX parses a whole MDX file. Frontmatter, import statements and the
// page-feedback widget are dropped before the body is parsed.
func ParseMDX(text string) []DocNode {
	_, body := ExtractFrontmatter(text)
	return ParseContent(stripMDXSyntax(body))
}

func stripMDXSyntax(body string) string {
	body = importLineRegex.ReplaceAllString(body, "")
	return helpfulWidgetRegex.ReplaceAllString(body, "")
}
