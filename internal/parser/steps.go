package parser

import (
	"regexp"
	"strings"
)

var (
	stepRegex        = regexp.MustCompile(`(?s)<Step\s+title="([^"]*)">(.*?)</Step>`)
	stepHeadingRegex = regexp.MustCompile(`(?m)^###\s+(.+)$`)
)

func parseSteps(content string) (DocNode, string, bool) {
	const open = "<Steps>"
	if !strings.HasPrefix(content, open) {
		return nil, "", false
	}

	inner, rest, ok := takeElement(content[len(open):], "Steps")
	if !ok {
		return nil, "", false
	}

	return Steps{Steps: parseStepItems(inner)}, rest, true
}

// parseStepItems reads <Step title="..."> blocks. When there are none, the
// "###" headings of the body are used as step boundaries instead.
func parseStepItems(content string) []Step {
	var steps []Step
	for _, m := range stepRegex.FindAllStringSubmatch(content, -1) {
		steps = append(steps, Step{
			Title:   m[1],
			Content: ParseContent(m[2]),
		})
	}
	if len(steps) > 0 {
		return steps
	}

	headings := stepHeadingRegex.FindAllStringSubmatchIndex(content, -1)
	for i, loc := range headings {
		end := len(content)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		steps = append(steps, Step{
			Title:   strings.TrimSpace(content[loc[2]:loc[3]]),
			Content: ParseContent(content[loc[1]:end]),
		})
	}

	return steps
}
