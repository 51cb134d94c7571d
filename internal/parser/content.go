package parser

import (
	"regexp"
	"strings"
)

// componentParser tries to read one component at the start of its input. It
// returns the node, the text after the element, and whether it matched.
type componentParser func(string) (DocNode, string, bool)

// componentParsers is tried in order at every position. Earlier entries win,
// so containers come before the lone forms of what they contain. It is
// filled in init because container parsers recurse into ParseContent.
var componentParsers []componentParser

func init() {
	componentParsers = []componentParser{
		parseCallout,
		parseCardGroup,
		parseColumns,
		parseStandaloneCard,
		parseTabs,
		parseSteps,
		parseAccordionGroup,
		parseStandaloneAccordion,
		parseParamField,
		parseResponseField,
		parseExpandable,
		parseCodeGroup,
		parseRequestExample,
		parseResponseExample,
		parseUpdate,
		parseOpenAPI,
	}
}

// componentOpeners marks where Markdown stops and a component may begin.
var componentOpeners = []string{
	"<Tip>",
	"<Note>",
	"<Warning>",
	"<Info>",
	"<Card",
	"<CardGroup",
	"<Columns",
	"<Tabs>",
	"<Steps>",
	"<AccordionGroup>",
	"<Accordion",
	"<ParamField",
	"<ResponseField",
	"<Expandable",
	"<RequestExample>",
	"<ResponseExample>",
	"<CodeGroup>",
	"<Update",
	"<OpenAPI",
}

var fencedCodeRegex = regexp.MustCompile("(?m)^[ \\t]*```(\\w+)?(?:[ \\t]+([^\\r\\n]+))?[ \\t]*\\r?\\n([\\s\\S]*?)\\r?\\n[ \\t]*```[ \\t]*(?:\\r?\\n|$)")

// ParseContent parses an MDX body (no frontmatter) into nodes. Text between
// components becomes Markdown and CodeBlock nodes. An opener that no parser
// accepts is emitted as Markdown up to its '>' so parsing always advances.
func ParseContent(text string) []DocNode {
	var nodes []DocNode
	remaining := strings.TrimSpace(text)

	for remaining != "" {
		if node, rest, ok := parseComponent(remaining); ok {
			nodes = append(nodes, node)
			remaining = strings.TrimSpace(rest)
			continue
		}

		var markdown string
		switch idx := nextComponent(remaining); {
		case idx == 0:
			skip := strings.IndexByte(remaining, '>') + 1
			if skip == 0 {
				skip = 1
			}
			markdown, remaining = remaining[:skip], remaining[skip:]
		case idx > 0:
			markdown, remaining = remaining[:idx], remaining[idx:]
		default:
			markdown, remaining = remaining, ""
		}

		if markdown = strings.TrimSpace(markdown); markdown != "" {
			nodes = append(nodes, extractCodeBlocks(markdown)...)
		}
		remaining = strings.TrimSpace(remaining)
	}

	return nodes
}

func parseComponent(text string) (DocNode, string, bool) {
	for _, parse := range componentParsers {
		if node, rest, ok := parse(text); ok {
			return node, rest, true
		}
	}
	return nil, "", false
}

// nextComponent returns the offset of the earliest component opener, or -1.
func nextComponent(text string) int {
	next := -1
	for _, opener := range componentOpeners {
		if idx := strings.Index(text, opener); idx != -1 && (next == -1 || idx < next) {
			next = idx
		}
	}
	return next
}

// extractCodeBlocks splits Markdown around fenced code blocks. The closing
// fence must be on its own line.
func extractCodeBlocks(text string) []DocNode {
	var nodes []DocNode
	last := 0

	for _, loc := range fencedCodeRegex.FindAllStringSubmatchIndex(text, -1) {
		if before := strings.TrimSpace(text[last:loc[0]]); before != "" {
			nodes = append(nodes, Markdown{Text: before})
		}

		nodes = append(nodes, CodeBlock{
			Language: submatch(text, loc, 1),
			Filename: strings.TrimSpace(submatch(text, loc, 2)),
			Code:     strings.TrimSpace(submatch(text, loc, 3)),
		})
		last = loc[1]
	}

	if after := strings.TrimSpace(text[last:]); after != "" {
		nodes = append(nodes, Markdown{Text: after})
	}

	if len(nodes) == 0 && strings.TrimSpace(text) != "" {
		nodes = append(nodes, Markdown{Text: strings.TrimSpace(text)})
	}

	return nodes
}

func submatch(text string, loc []int, group int) string {
	start, end := loc[2*group], loc[2*group+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}
