package parser

import (
	"regexp"
	"strings"
	"sync"
)

// FindClosingTag returns the offset in text of the </tag> that balances an
// already consumed <tag ...> opener, or -1. Any "<tag" prefix counts as an
// opener, so "<Card" also counts "<CardGroup".
func FindClosingTag(text, tag string) int {
	openTag := "<" + tag
	closeTag := "</" + tag + ">"

	depth := 1
	pos := 0
	for pos < len(text) {
		nextClose := strings.Index(text[pos:], closeTag)
		if nextClose == -1 {
			return -1
		}
		nextClose += pos

		nextOpen := strings.Index(text[pos:], openTag)
		if nextOpen != -1 && nextOpen+pos < nextClose {
			depth++
			pos += nextOpen + len(openTag)
			continue
		}

		depth--
		if depth == 0 {
			return nextClose
		}
		pos = nextClose + len(closeTag)
	}

	return -1
}

var attrPatterns sync.Map // attribute name -> *regexp.Regexp

// ExtractAttr returns the value of a double-quoted name="value" attribute.
// Single quotes, bare values and escaped quotes are not supported.
func ExtractAttr(tagSource, name string) (string, bool) {
	re, ok := attrPatterns.Load(name)
	if !ok {
		re, _ = attrPatterns.LoadOrStore(name, regexp.MustCompile(`\b`+regexp.QuoteMeta(name)+`="([^"]*)"`))
	}

	m := re.(*regexp.Regexp).FindStringSubmatch(tagSource)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// attrOr returns the named attribute or fallback when it is absent.
func attrOr(tagSource, name, fallback string) string {
	if v, ok := ExtractAttr(tagSource, name); ok {
		return v
	}
	return fallback
}

// splitOpenTag cuts "<Name attrs>" off the front of content. It returns the
// attribute text, whether the tag is self-closing, and what follows the '>'.
func splitOpenTag(content, name string) (attrs string, selfClosing bool, rest string, ok bool) {
	end := strings.IndexByte(content, '>')
	if end == -1 || end < len(name)+1 {
		return "", false, "", false
	}

	attrs = content[len(name)+1 : end]
	selfClosing = strings.HasSuffix(strings.TrimSpace(attrs), "/")
	return attrs, selfClosing, content[end+1:], true
}

// takeElement splits body at the </name> balancing an opener that has already
// been consumed, returning the inner text and what follows the closing tag.
func takeElement(body, name string) (inner, rest string, ok bool) {
	idx := FindClosingTag(body, name)
	if idx == -1 {
		return "", "", false
	}
	return body[:idx], body[idx+len("</"+name+">"):], true
}
