package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/g5becks/mdxkit/internal/openapi"
	"github.com/g5becks/mdxkit/internal/parser"
	"github.com/g5becks/mdxkit/internal/search"
)

// SpecStatus describes one configured OpenAPI spec for `openapi list`.
type SpecStatus struct {
	Prefix     string    `json:"prefix"`
	File       string    `json:"file,omitempty"`
	URL        string    `json:"url,omitempty"`
	Path       string    `json:"path"`
	Status     string    `json:"status"`
	Title      string    `json:"title,omitempty"`
	Version    string    `json:"version,omitempty"`
	Operations int       `json:"operations,omitempty"`
	FetchedAt  time.Time `json:"fetched_at,omitzero"`
}

// DocStatus describes one page for `docs`.
type DocStatus struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Group       string `json:"group,omitempty"`
	Tab         string `json:"tab,omitempty"`
	Description string `json:"description,omitempty"`
	Lines       int    `json:"lines"`
}

// NavRow is one page in the sidebar.
type NavRow struct {
	Tab   string `json:"tab,omitempty"`
	Group string `json:"group"`
	Page  string `json:"page"`
	Title string `json:"title"`
}

type ListOptions struct {
	JSON    bool
	Verbose bool
}

func RenderSpecList(w io.Writer, specs []SpecStatus, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, specs)
	}

	writer := newTable(w)
	if opts.Verbose {
		writer.AppendHeader(table.Row{"PREFIX", "SOURCE", "STATUS", "TITLE", "VERSION", "OPERATIONS", "PATH"})
	} else {
		writer.AppendHeader(table.Row{"PREFIX", "SOURCE", "STATUS"})
	}

	for _, spec := range specs {
		if opts.Verbose {
			writer.AppendRow(table.Row{
				spec.Prefix,
				renderLocation(spec),
				renderStatus(spec, true),
				spec.Title,
				spec.Version,
				spec.Operations,
				spec.Path,
			})
			continue
		}

		writer.AppendRow(table.Row{
			spec.Prefix,
			renderLocation(spec),
			renderStatus(spec, false),
		})
	}

	writer.Render()
	return nil
}

func renderLocation(spec SpecStatus) string {
	if spec.URL != "" {
		return spec.URL
	}

	return strings.TrimPrefix(spec.File, "./")
}

func renderStatus(spec SpecStatus, includeFetched bool) string {
	if includeFetched && !spec.FetchedAt.IsZero() {
		return fmt.Sprintf("%s (%s)", spec.Status, spec.FetchedAt.UTC().Format(time.DateTime))
	}

	return spec.Status
}

func RenderDocList(w io.Writer, docs []DocStatus, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, docs)
	}

	writer := newTable(w)
	if opts.Verbose {
		writer.AppendHeader(table.Row{"PATH", "TITLE", "GROUP", "TAB", "LINES", "DESCRIPTION"})
	} else {
		writer.AppendHeader(table.Row{"PATH", "TITLE", "GROUP"})
	}

	for _, doc := range docs {
		if opts.Verbose {
			writer.AppendRow(table.Row{doc.Path, doc.Title, doc.Group, doc.Tab, doc.Lines, doc.Description})
			continue
		}
		writer.AppendRow(table.Row{doc.Path, doc.Title, doc.Group})
	}

	writer.Render()
	return nil
}

func RenderNav(w io.Writer, rows []NavRow, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, rows)
	}

	writer := newTable(w)
	writer.AppendHeader(table.Row{"TAB", "GROUP", "PAGE", "TITLE"})
	for _, row := range rows {
		writer.AppendRow(table.Row{row.Tab, row.Group, row.Page, row.Title})
	}

	// Merge repeated tab and group cells so each group reads as a block.
	writer.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true},
	})

	writer.Render()
	return nil
}

func RenderOperations(w io.Writer, ops []openapi.Operation, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, ops)
	}

	writer := newTable(w)
	if opts.Verbose {
		writer.AppendHeader(table.Row{"METHOD", "PATH", "SLUG", "TAGS", "SUMMARY"})
	} else {
		writer.AppendHeader(table.Row{"METHOD", "PATH", "SUMMARY"})
	}

	for _, op := range ops {
		summary := op.Summary
		if op.Deprecated {
			summary = strings.TrimSpace(summary + " (deprecated)")
		}

		if opts.Verbose {
			writer.AppendRow(table.Row{op.Method, op.Path, op.Slug(), strings.Join(op.Tags, ", "), summary})
			continue
		}
		writer.AppendRow(table.Row{op.Method, op.Path, summary})
	}

	writer.Render()
	return nil
}

func RenderHeaders(w io.Writer, headers []parser.Header, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, headers)
	}

	writer := newTable(w)
	writer.AppendHeader(table.Row{"LINE", "HEADING", "ID"})
	for _, h := range headers {
		indent := strings.Repeat("  ", h.Level-2)
		writer.AppendRow(table.Row{h.Line, indent + h.Title, h.ID})
	}

	writer.Render()
	return nil
}

func RenderSearchResults(w io.Writer, results []search.Result, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, results)
	}

	writer := newTable(w)
	if opts.Verbose {
		writer.AppendHeader(table.Row{"PATH", "TITLE", "SECTION", "MATCH", "SCORE"})
	} else {
		writer.AppendHeader(table.Row{"PATH", "TITLE", "SECTION"})
	}

	for _, r := range results {
		title := r.Title
		if r.APIMethod != "" {
			title = r.APIMethod + " " + title
		}

		if opts.Verbose {
			writer.AppendRow(table.Row{r.Path, title, r.Breadcrumb, r.MatchField, r.Score})
			continue
		}
		writer.AppendRow(table.Row{r.Path, title, r.Breadcrumb})
	}

	writer.Render()
	return nil
}

func RenderEntries(w io.Writer, entries []search.Entry, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, entries)
	}

	writer := newTable(w)
	writer.AppendHeader(table.Row{"PATH", "TITLE", "SECTION"})
	for _, e := range entries {
		title := e.Title
		if e.APIMethod != "" {
			title = e.APIMethod + " " + title
		}
		writer.AppendRow(table.Row{e.Path, title, e.Breadcrumb})
	}

	writer.Render()
	return nil
}

func RenderContentResults(w io.Writer, results []search.ContentResult, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, results)
	}

	writer := newTable(w)
	writer.AppendHeader(table.Row{"LOCATION", "TEXT"})
	for _, r := range results {
		writer.AppendRow(table.Row{r.Path + ":" + strconv.Itoa(r.Line), strings.TrimSpace(r.Text)})
	}

	writer.Render()
	return nil
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	return renderJSON(w, v)
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func newTable(w io.Writer) table.Writer {
	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleRounded)
	return writer
}
