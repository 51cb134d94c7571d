package parser

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/gomarkdown/markdown/ast"
	mdparser "github.com/gomarkdown/markdown/parser"
)

const (
	minHeaderLevel = 2
	maxHeaderLevel = 4

	setextH1Level = 1
	setextH2Level = 2
)

// Header is a table-of-contents entry. ID matches the anchor the HTML
// renderer gives the same heading.
type Header struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
	Line  int    `json:"line,omitempty"`
}

// ExtractHeaders returns the level 2 to 4 headings of a Markdown text in
// document order. Headings inside fenced code are ignored.
func ExtractHeaders(markdown string) []Header {
	body := []byte(markdown)
	doc := mdparser.NewWithExtensions(mdparser.CommonExtensions).Parse(body)

	var all []Header
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if heading, ok := node.(*ast.Heading); ok {
			if text := PlainText(heading); text != "" {
				all = append(all, Header{Title: text, Level: heading.Level})
			}
		}
		return ast.GoToNext
	})
	assignHeaderLines(all, body)

	headers := make([]Header, 0, len(all))
	for _, h := range all {
		if h.Level < minHeaderLevel || h.Level > maxHeaderLevel {
			continue
		}
		h.ID = Slugify(h.Title)
		headers = append(headers, h)
	}
	return headers
}

// Outline returns the headers of an MDX source file. Frontmatter is
// skipped and line numbers count from the top of the file.
func Outline(source string) []Header {
	_, body := ExtractFrontmatter(source)
	headers := ExtractHeaders(body)

	offset := 0
	if i := strings.Index(source, body); i > 0 && body != "" {
		offset = strings.Count(source[:i], "\n")
	}
	for i := range headers {
		if headers[i].Line > 0 {
			headers[i].Line += offset
		}
	}
	return headers
}

// Summary returns the first paragraph of a Markdown text, flattened to a
// single line.
func Summary(markdown string) string {
	doc := mdparser.NewWithExtensions(mdparser.CommonExtensions).Parse([]byte(markdown))

	var summary string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if para, ok := node.(*ast.Paragraph); ok {
			if text := PlainText(para); text != "" {
				summary = text
				return ast.Terminate
			}
		}
		return ast.GoToNext
	})
	return summary
}

// PlainText concatenates the literal text below node with whitespace
// collapsed.
func PlainText(node ast.Node) string {
	var buf strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch leaf := n.(type) {
		case *ast.Text:
			buf.Write(leaf.Literal)
		case *ast.Code:
			buf.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return strings.Join(strings.Fields(buf.String()), " ")
}

// Slugify lowercases text and joins its alphanumeric runs with '-'.
// Slugify(Slugify(s)) == Slugify(s).
func Slugify(text string) string {
	var b strings.Builder
	pendingDash := false

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	return b.String()
}

// assignHeaderLines fills in 1-based source lines. gomarkdown does not keep
// positions, so the source is rescanned for heading markers in order.
func assignHeaderLines(headers []Header, content []byte) {
	if len(headers) == 0 {
		return
	}

	lines := bytes.Split(content, []byte("\n"))
	hi := 0
	inFenced := false

	for lineIdx := 0; lineIdx < len(lines) && hi < len(headers); lineIdx++ {
		line := lines[lineIdx]
		trimmed := bytes.TrimSpace(line)

		if isFenceMarker(trimmed) {
			inFenced = !inFenced
			continue
		}
		if inFenced {
			continue
		}

		if level := atxHeadingLevel(line); level == headers[hi].Level {
			headers[hi].Line = lineIdx + 1
			hi++
			continue
		}

		if level := setextHeadingLevel(lines, lineIdx, trimmed); level == headers[hi].Level {
			headers[hi].Line = lineIdx + 1
			hi++
		}
	}
}

func isFenceMarker(trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("```")) || bytes.HasPrefix(trimmed, []byte("~~~"))
}

// atxHeadingLevel returns the level (1-6) of an ATX heading line, or 0.
func atxHeadingLevel(line []byte) int {
	spaces := 0
	for spaces < len(line) && spaces < 4 && line[spaces] == ' ' {
		spaces++
	}
	if spaces >= 4 || spaces >= len(line) || line[spaces] != '#' {
		return 0
	}

	level := 0
	for spaces+level < len(line) && level < 7 && line[spaces+level] == '#' {
		level++
	}
	if level >= 1 && level <= 6 && spaces+level < len(line) && line[spaces+level] == ' ' {
		return level
	}
	return 0
}

// setextHeadingLevel returns 1 for a === underline, 2 for ---, or 0.
func setextHeadingLevel(lines [][]byte, lineIdx int, trimmed []byte) int {
	if lineIdx+1 >= len(lines) || len(trimmed) == 0 {
		return 0
	}
	next := bytes.TrimSpace(lines[lineIdx+1])
	if allSameChar(next, '=') {
		return setextH1Level
	}
	if allSameChar(next, '-') {
		return setextH2Level
	}
	return 0
}

func allSameChar(b []byte, ch byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c != ch {
			return false
		}
	}
	return true
}
