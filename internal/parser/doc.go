// Package parser turns Mintlify-style MDX into a tree of DocNode values.
//
// A document is split into YAML frontmatter and a body. The body is scanned by
// ParseContent, which tries a fixed, ordered list of component parsers at each
// position and falls back to Markdown and fenced code blocks. Components with
// nested content recurse into ParseContent.
package parser
