// Package registry holds a parsed documentation site: every page, the
// sidebar nav, the OpenAPI specs mounted under their prefixes and a search
// index over all of it.
package registry

import (
	"context"
	"runtime"
	"slices"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/openapi"
	"github.com/g5becks/mdxkit/internal/parser"
	"github.com/g5becks/mdxkit/internal/search"
)

// SpecSource is the raw text of one OpenAPI spec and the docs path prefix
// its operations are mounted under.
type SpecSource struct {
	Prefix  string
	Content string
}

type Options struct {
	Nav config.Nav
	// Docs maps a document path such as "guides/auth" to its MDX source.
	Docs  map[string]string
	Specs []SpecSource
	// APIGroupName is the nav group whose tab API endpoint pages belong to.
	APIGroupName string
	// Workers bounds parallel parsing. Zero means runtime.NumCPU.
	Workers int
}

// Problem is a spec that could not be read or parsed. The rest of the
// registry is built without it.
type Problem struct {
	Prefix string `json:"prefix"`
	Err    error  `json:"-"`
}

func (p Problem) Error() string {
	return p.Prefix + ": " + p.Err.Error()
}

type mountedSpec struct {
	prefix string
	spec   *openapi.Spec
}

// Registry is immutable once built and safe for concurrent reads.
type Registry struct {
	nav          config.Nav
	docs         map[string]parser.ParsedDoc
	sources      map[string]string
	specs        []mountedSpec
	index        []search.Entry
	defaultPath  string
	apiGroupName string
	problems     []Problem
}

type specSlot struct {
	spec *openapi.Spec
	err  error
}

// Build parses every document and spec in opts concurrently. A spec that
// fails to parse is logged and reported by Problems; it never fails the
// build.
func Build(ctx context.Context, opts Options) (*Registry, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	apiGroupName := opts.APIGroupName
	if apiGroupName == "" {
		apiGroupName = config.DefaultAPIGroupName
	}

	paths := make([]string, 0, len(opts.Docs))
	for p := range opts.Docs {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	docSlots := make([]parser.ParsedDoc, len(paths))
	specSlots := make([]specSlot, len(opts.Specs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, p := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			docSlots[i] = parser.ParseDocument(opts.Docs[p])
			return nil
		})
	}

	for i, src := range opts.Specs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			specSlots[i].spec, specSlots[i].err = openapi.Parse(src.Content)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	r := &Registry{
		nav:          opts.Nav,
		docs:         make(map[string]parser.ParsedDoc, len(paths)),
		sources:      make(map[string]string, len(paths)),
		apiGroupName: apiGroupName,
	}

	for i, p := range paths {
		r.docs[p] = docSlots[i]
		r.sources[p] = opts.Docs[p]
	}

	for i, src := range opts.Specs {
		slot := specSlots[i]
		if slot.err != nil {
			log.Warn().Err(slot.err).Str("prefix", src.Prefix).Msg("skipping openapi spec")
			r.problems = append(r.problems, Problem{Prefix: src.Prefix, Err: slot.err})
			continue
		}
		r.specs = append(r.specs, mountedSpec{prefix: src.Prefix, spec: slot.spec})
	}

	if len(r.nav.Groups) > 0 && len(r.nav.Groups[0].Pages) > 0 {
		r.defaultPath = r.nav.Groups[0].Pages[0]
	}

	r.index = r.buildSearchIndex()
	return r, nil
}

// Doc returns the parsed document at path.
func (r *Registry) Doc(path string) (parser.ParsedDoc, bool) {
	doc, ok := r.docs[path]
	return doc, ok
}

// SidebarTitle is the label shown for path in navigation. API operations
// use their summary, or their slug with spaces. Documents use the
// sidebarTitle frontmatter key, then the title.
func (r *Registry) SidebarTitle(path string) (string, bool) {
	if op, ok := r.APIOperation(path); ok {
		return operationTitle(op), true
	}

	doc, ok := r.docs[path]
	if !ok {
		return "", false
	}
	if doc.Frontmatter.SidebarTitle != "" {
		return doc.Frontmatter.SidebarTitle, true
	}
	if doc.Frontmatter.Title != "" {
		return doc.Frontmatter.Title, true
	}
	return "", false
}

func (r *Registry) DocTitle(path string) (string, bool) {
	doc, ok := r.docs[path]
	if !ok || doc.Frontmatter.Title == "" {
		return "", false
	}
	return doc.Frontmatter.Title, true
}

func (r *Registry) DocIcon(path string) (string, bool) {
	doc, ok := r.docs[path]
	if !ok || doc.Frontmatter.Icon == "" {
		return "", false
	}
	return doc.Frontmatter.Icon, true
}

// DocContent returns the flattened Markdown of the document at path.
func (r *Registry) DocContent(path string) (string, bool) {
	doc, ok := r.docs[path]
	if !ok {
		return "", false
	}
	return doc.RawMarkdown, true
}

// DocSource returns the document's original MDX text.
func (r *Registry) DocSource(path string) (string, bool) {
	src, ok := r.sources[path]
	return src, ok
}

// Paths returns every document path in sorted order.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.docs))
	for p := range r.docs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// DefaultPath is the first page of the first nav group, or "".
func (r *Registry) DefaultPath() string {
	return r.defaultPath
}

func (r *Registry) Nav() config.Nav {
	return r.nav
}

func (r *Registry) APIGroupName() string {
	return r.apiGroupName
}

// GroupForPath returns the nav group listing path.
func (r *Registry) GroupForPath(path string) (config.NavGroup, bool) {
	for _, g := range r.nav.Groups {
		if slices.Contains(g.Pages, path) {
			return g, true
		}
	}
	return config.NavGroup{}, false
}

// TabForPath returns the tab of the nav group listing path. API endpoint
// paths belong to the tab of the group named APIGroupName.
func (r *Registry) TabForPath(path string) (string, bool) {
	if g, ok := r.GroupForPath(path); ok {
		return g.Tab, g.Tab != ""
	}

	for _, m := range r.specs {
		if !strings.HasPrefix(path, m.prefix+"/") {
			continue
		}
		for _, g := range r.nav.Groups {
			if g.Group == r.apiGroupName {
				return g.Tab, g.Tab != ""
			}
		}
	}

	return "", false
}

// Problems returns the specs left out of the registry.
func (r *Registry) Problems() []Problem {
	return slices.Clone(r.problems)
}

// Documents returns every page's source for line-oriented content search.
func (r *Registry) Documents() []search.Document {
	docs := make([]search.Document, 0, len(r.sources))
	for _, p := range r.Paths() {
		docs = append(docs, search.Document{Path: p, Text: r.sources[p]})
	}
	return docs
}
