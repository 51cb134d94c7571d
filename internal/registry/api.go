package registry

import (
	"slices"
	"strings"

	"github.com/g5becks/mdxkit/internal/openapi"
)

const untaggedGroup = "Other"

// EndpointEntry is one operation in the API sidebar.
type EndpointEntry struct {
	Path   string         `json:"path"`
	Slug   string         `json:"slug"`
	Title  string         `json:"title"`
	Method openapi.Method `json:"method"`
}

// SidebarGroup is the operations listed under one tag.
type SidebarGroup struct {
	Tag     openapi.Tag     `json:"tag"`
	Entries []EndpointEntry `json:"entries"`
}

// APIOperation looks up "prefix/slug" across all mounted specs.
func (r *Registry) APIOperation(path string) (openapi.Operation, bool) {
	for _, m := range r.specs {
		slug, ok := strings.CutPrefix(path, m.prefix+"/")
		if !ok {
			continue
		}
		if op, found := m.spec.Operation(slug); found {
			return op, true
		}
	}
	return openapi.Operation{}, false
}

func (r *Registry) APISpec(prefix string) (*openapi.Spec, bool) {
	for _, m := range r.specs {
		if m.prefix == prefix {
			return m.spec, true
		}
	}
	return nil, false
}

// FirstAPISpec returns the first mounted spec and its prefix.
func (r *Registry) FirstAPISpec() (string, *openapi.Spec, bool) {
	if len(r.specs) == 0 {
		return "", nil, false
	}
	return r.specs[0].prefix, r.specs[0].spec, true
}

// APIPrefixes returns the prefixes of the mounted specs in mount order.
func (r *Registry) APIPrefixes() []string {
	prefixes := make([]string, len(r.specs))
	for i, m := range r.specs {
		prefixes[i] = m.prefix
	}
	return prefixes
}

// APISidebarEntries groups every operation under each declared tag it
// carries, in declaration order. An operation with several declared tags
// appears in each group. Operations with no declared tag go to "Other",
// after the groups of their own spec.
func (r *Registry) APISidebarEntries() []SidebarGroup {
	var groups []SidebarGroup

	for _, m := range r.specs {
		declared := make([]string, len(m.spec.Tags))
		for i, tag := range m.spec.Tags {
			declared[i] = tag.Name
		}

		for _, tag := range m.spec.Tags {
			var entries []EndpointEntry
			for _, op := range m.spec.Operations {
				if slices.Contains(op.Tags, tag.Name) {
					entries = append(entries, endpointEntry(m.prefix, op))
				}
			}
			if len(entries) > 0 {
				groups = append(groups, SidebarGroup{Tag: tag, Entries: entries})
			}
		}

		var untagged []EndpointEntry
		for _, op := range m.spec.Operations {
			if !slices.ContainsFunc(op.Tags, func(t string) bool { return slices.Contains(declared, t) }) {
				untagged = append(untagged, endpointEntry(m.prefix, op))
			}
		}
		if len(untagged) > 0 {
			groups = append(groups, SidebarGroup{Tag: openapi.Tag{Name: untaggedGroup}, Entries: untagged})
		}
	}

	return groups
}

// APIEndpointPaths lists "prefix/slug" for every operation in spec order.
func (r *Registry) APIEndpointPaths() []string {
	var paths []string
	for _, m := range r.specs {
		for _, op := range m.spec.Operations {
			paths = append(paths, m.prefix+"/"+op.Slug())
		}
	}
	return paths
}

func endpointEntry(prefix string, op openapi.Operation) EndpointEntry {
	return EndpointEntry{
		Path:   prefix + "/" + op.Slug(),
		Slug:   op.Slug(),
		Title:  operationTitle(op),
		Method: op.Method,
	}
}

func operationTitle(op openapi.Operation) string {
	if op.Summary != "" {
		return op.Summary
	}
	return strings.ReplaceAll(op.Slug(), "-", " ")
}
