package parser

import (
	"regexp"
	"strings"
)

var tabOpenRegex = regexp.MustCompile(`^<Tab\s+title="([^"]*)">`)

func parseTabs(content string) (DocNode, string, bool) {
	const open = "<Tabs>"
	if !strings.HasPrefix(content, open) {
		return nil, "", false
	}

	inner, rest, ok := takeElement(content[len(open):], "Tabs")
	if !ok {
		return nil, "", false
	}

	return Tabs{Tabs: parseTabItems(inner)}, rest, true
}

func parseTabItems(content string) []Tab {
	var tabs []Tab
	remaining := strings.TrimSpace(content)

	for remaining != "" {
		if m := tabOpenRegex.FindStringSubmatch(remaining); m != nil {
			if inner, rest, ok := takeElement(remaining[len(m[0]):], "Tab"); ok {
				tabs = append(tabs, Tab{
					Title:   m[1],
					Content: ParseContent(inner),
				})
				remaining = strings.TrimSpace(rest)
				continue
			}
		}

		idx := strings.Index(remaining[1:], "<Tab")
		if idx == -1 {
			break
		}
		remaining = remaining[idx+1:]
	}

	return tabs
}
