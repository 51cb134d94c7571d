package manifest

import (
	"strings"

	"github.com/g5becks/mdxkit/internal/parser"
	"github.com/g5becks/mdxkit/internal/registry"
)

type Options struct {
	Site Site
}

// Generate summarizes every document and spec in reg.
func Generate(reg *registry.Registry, opts Options) *Manifest {
	m := New()
	m.Site = opts.Site

	for _, path := range reg.Paths() {
		m.Docs = append(m.Docs, docInfo(reg, path))
	}

	for _, prefix := range reg.APIPrefixes() {
		spec, _ := reg.APISpec(prefix)
		info := SpecInfo{
			Prefix:     prefix,
			Title:      spec.Info.Title,
			Version:    spec.Info.Version,
			Operations: len(spec.Operations),
		}
		for _, tag := range spec.Tags {
			info.Tags = append(info.Tags, tag.Name)
		}
		m.Specs = append(m.Specs, info)
	}

	for _, p := range reg.Problems() {
		m.Problems = append(m.Problems, ProblemInfo{Prefix: p.Prefix, Error: p.Err.Error()})
	}

	m.Endpoints = reg.APIEndpointPaths()
	m.SearchIndex = reg.SearchIndex()
	return m
}

func docInfo(reg *registry.Registry, path string) DocInfo {
	doc, _ := reg.Doc(path)
	source, _ := reg.DocSource(path)

	info := DocInfo{
		Path:        path,
		Description: doc.Frontmatter.Description,
		Summary:     parser.Summary(doc.RawMarkdown),
		Lines:       countLines(source),
		Headers:     parser.Outline(source),
		Nodes:       make(map[parser.NodeKind]int),
	}
	info.Title, _ = reg.DocTitle(path)
	info.Icon, _ = reg.DocIcon(path)
	if title, ok := reg.SidebarTitle(path); ok && title != info.Title {
		info.SidebarTitle = title
	}
	if group, ok := reg.GroupForPath(path); ok {
		info.Group = group.Group
	}
	if tab, ok := reg.TabForPath(path); ok {
		info.Tab = tab
	}

	countNodes(info.Nodes, doc.Content)
	return info
}

// countNodes tallies node kinds, descending into containers.
func countNodes(counts map[parser.NodeKind]int, nodes []parser.DocNode) {
	for _, node := range nodes {
		counts[node.Kind()]++

		switch n := node.(type) {
		case parser.CardGroup:
			counts[parser.KindCard] += len(n.Cards)
		case parser.Tabs:
			for _, tab := range n.Tabs {
				countNodes(counts, tab.Content)
			}
		case parser.Steps:
			for _, step := range n.Steps {
				countNodes(counts, step.Content)
			}
		case parser.AccordionGroup:
			for _, item := range n.Items {
				countNodes(counts, item.Content)
			}
		case parser.ParamField:
			countNodes(counts, n.Content)
		case parser.Update:
			countNodes(counts, n.Content)
		case parser.CodeGroup:
			counts[parser.KindCodeBlock] += len(n.Blocks)
		}
	}
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
