package parser

import "strings"

func parseAccordionGroup(content string) (DocNode, string, bool) {
	const open = "<AccordionGroup>"
	if !strings.HasPrefix(content, open) {
		return nil, "", false
	}

	inner, rest, ok := takeElement(content[len(open):], "AccordionGroup")
	if !ok {
		return nil, "", false
	}

	return AccordionGroup{Items: parseAccordionItems(inner)}, rest, true
}

// parseStandaloneAccordion wraps a lone <Accordion> in a one-item group.
func parseStandaloneAccordion(content string) (DocNode, string, bool) {
	if !strings.HasPrefix(content, "<Accordion") {
		return nil, "", false
	}

	item, rest, ok := parseAccordionItem(content)
	if !ok {
		return nil, "", false
	}
	return AccordionGroup{Items: []AccordionItem{item}}, rest, true
}

func parseAccordionItems(content string) []AccordionItem {
	var items []AccordionItem
	remaining := strings.TrimSpace(content)

	for remaining != "" {
		if strings.HasPrefix(remaining, "<Accordion") {
			if item, rest, ok := parseAccordionItem(remaining); ok {
				items = append(items, item)
				remaining = strings.TrimSpace(rest)
				continue
			}
		}

		idx := strings.Index(remaining[1:], "<Accordion")
		if idx == -1 {
			break
		}
		remaining = remaining[idx+1:]
	}

	return items
}

// parseAccordionItem reads one <Accordion title="..."> element. The title
// attribute is required.
func parseAccordionItem(content string) (AccordionItem, string, bool) {
	attrs, _, body, ok := splitOpenTag(content, "Accordion")
	if !ok {
		return AccordionItem{}, "", false
	}

	title, ok := ExtractAttr(attrs, "title")
	if !ok {
		return AccordionItem{}, "", false
	}

	inner, rest, ok := takeElement(body, "Accordion")
	if !ok {
		return AccordionItem{}, "", false
	}

	return AccordionItem{
		Title:   title,
		Icon:    attrOr(attrs, "icon", ""),
		Content: ParseContent(inner),
	}, rest, true
}
