package parser

// ParseDocument parses an MDX file into its frontmatter, node tree and a
// flattened Markdown rendering of the tree.
func ParseDocument(text string) ParsedDoc {
	fm, body := ExtractFrontmatter(text)
	content := ParseContent(stripMDXSyntax(body))

	return ParsedDoc{
		Frontmatter: fm,
		Content:     content,
		RawMarkdown: RawMarkdown(content),
	}
}
