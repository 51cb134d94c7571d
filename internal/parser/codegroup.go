package parser

import (
	"regexp"
	"strings"
)

// groupedCodeRegex matches one fence inside a code container. The filename
// must sit on the info-string line, hence [ \t]+ rather than \s+.
var groupedCodeRegex = regexp.MustCompile("```(\\w+)?(?:[ \\t]+([^\\n]+))?\\n([\\s\\S]*?)```")

func parseCodeGroup(content string) (DocNode, string, bool) {
	blocks, rest, ok := parseCodeContainer(content, "CodeGroup")
	if !ok {
		return nil, "", false
	}
	return CodeGroup{Blocks: blocks}, rest, true
}

func parseRequestExample(content string) (DocNode, string, bool) {
	blocks, rest, ok := parseCodeContainer(content, "RequestExample")
	if !ok {
		return nil, "", false
	}
	return RequestExample{Blocks: blocks}, rest, true
}

func parseResponseExample(content string) (DocNode, string, bool) {
	blocks, rest, ok := parseCodeContainer(content, "ResponseExample")
	if !ok {
		return nil, "", false
	}
	return ResponseExample{Blocks: blocks}, rest, true
}

func parseCodeContainer(content, tag string) ([]CodeBlock, string, bool) {
	open := "<" + tag + ">"
	if !strings.HasPrefix(content, open) {
		return nil, "", false
	}

	inner, rest, ok := takeElement(content[len(open):], tag)
	if !ok {
		return nil, "", false
	}

	return parseCodeBlocks(inner), rest, true
}

func parseCodeBlocks(content string) []CodeBlock {
	var blocks []CodeBlock
	for _, m := range groupedCodeRegex.FindAllStringSubmatch(content, -1) {
		blocks = append(blocks, CodeBlock{
			Language: m[1],
			Filename: strings.TrimSpace(m[2]),
			Code:     strings.TrimSpace(m[3]),
		})
	}
	return blocks
}
