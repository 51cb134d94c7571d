package render

import (
	"slices"
	"strings"

	"github.com/g5becks/mdxkit/internal/openapi"
	"github.com/g5becks/mdxkit/internal/parser"
)

const untaggedGroup = "Other"

func (r *Renderer) openAPI(b *strings.Builder, n parser.OpenAPI) {
	if n.Spec == nil {
		return
	}

	b.WriteString("<section class=\"openapi\">\n")
	for _, group := range n.Spec.OperationsByTag(untaggedGroup) {
		if n.Tags != nil && !slices.Contains(n.Tags, group.Name) {
			continue
		}
		b.WriteString(`<h2 id="` + esc(parser.Slugify(group.Name)) + `">` + esc(group.Name) + "</h2>\n")
		for _, op := range group.Operations {
			r.operation(b, n.Spec, op)
		}
	}

	if n.ShowSchemas && len(n.Spec.Schemas) > 0 {
		names := make([]string, 0, len(n.Spec.Schemas))
		for name := range n.Spec.Schemas {
			names = append(names, name)
		}
		slices.Sort(names)

		b.WriteString("<h2 id=\"schemas\">Schemas</h2>\n")
		for _, name := range names {
			b.WriteString(`<div class="schema" id="schema-` + esc(parser.Slugify(name)) + "\">\n")
			b.WriteString("<h3>" + esc(name) + "</h3>\n")
			r.schema(b, n.Spec.Schemas[name])
			b.WriteString("</div>\n")
		}
	}
	b.WriteString("</section>\n")
}

// operation writes one endpoint: its signature, parameters, request body,
// responses, a curl sample and a response example.
func (r *Renderer) operation(b *strings.Builder, spec *openapi.Spec, op openapi.Operation) {
	method := string(op.Method)
	b.WriteString(`<article class="operation" id="` + esc(op.Slug()) + "\">\n")
	b.WriteString(`<h3><span class="method method-` + strings.ToLower(method) + `">` + method + "</span> <code>" + esc(op.Path) + "</code></h3>\n")
	if op.Deprecated {
		b.WriteString("<p class=\"deprecated\">Deprecated</p>\n")
	}
	if op.Summary != "" {
		b.WriteString(`<p class="summary">` + esc(op.Summary) + "</p>\n")
	}
	b.WriteString(r.Markdown(op.Description))

	if len(op.Parameters) > 0 {
		b.WriteString("<h4>Parameters</h4>\n<table class=\"parameters\">\n")
		b.WriteString("<thead><tr><th>Name</th><th>In</th><th>Type</th><th>Description</th></tr></thead>\n<tbody>\n")
		for _, p := range op.Parameters {
			typ := ""
			if p.Schema != nil {
				typ = p.Schema.DisplayType()
			}
			b.WriteString("<tr><td><code>" + esc(p.Name) + "</code>")
			if p.Required {
				b.WriteString(` <span class="field-required">required</span>`)
			}
			b.WriteString("</td><td>" + string(p.In) + "</td><td>" + esc(typ) + "</td><td>" + esc(p.Description) + "</td></tr>\n")
		}
		b.WriteString("</tbody>\n</table>\n")
	}

	if body := op.RequestBody; body != nil {
		b.WriteString("<h4>Request body</h4>\n")
		b.WriteString(r.Markdown(body.Description))
		for _, content := range body.Content {
			b.WriteString(`<p class="media-type"><code>` + esc(content.MediaType) + "</code></p>\n")
			if content.Schema != nil {
				r.schema(b, *content.Schema)
			}
		}
	}

	if len(op.Responses) > 0 {
		b.WriteString("<h4>Responses</h4>\n<ul class=\"responses\">\n")
		for _, resp := range op.Responses {
			b.WriteString(`<li><code class="status">` + esc(resp.StatusCode) + "</code> " + esc(resp.Description) + "</li>\n")
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("<div class=\"request-example\">\n")
	b.WriteString(r.code(op.Curl(r.ServerURL(spec)), "bash"))
	b.WriteString("</div>\n")

	if status, example, ok := op.ResponseExample(); ok {
		b.WriteString("<div class=\"response-example\">\n")
		b.WriteString(`<p class="status">` + esc(status) + "</p>\n")
		b.WriteString(r.code(example, "json"))
		b.WriteString("</div>\n")
	}

	b.WriteString("</article>\n")
}

// ServerURL picks the base URL for curl samples: the configured one, the
// spec's first server, then DefaultBaseURL.
func (r *Renderer) ServerURL(spec *openapi.Spec) string {
	if r.baseURL != "" {
		return r.baseURL
	}
	if spec != nil && len(spec.Servers) > 0 && spec.Servers[0].URL != "" {
		return spec.Servers[0].URL
	}
	return DefaultBaseURL
}

// schema writes the properties of an object schema as a field list, or
// just its type for anything else.
func (r *Renderer) schema(b *strings.Builder, s openapi.Schema) {
	if s.Circular {
		b.WriteString(`<p class="schema-type">` + esc(s.DisplayType()) + " (circular)</p>\n")
		return
	}
	if len(s.Properties) == 0 {
		b.WriteString(`<p class="schema-type">` + esc(s.DisplayType()) + "</p>\n")
		return
	}

	b.WriteString("<div class=\"schema-properties\">\n")
	for _, name := range s.PropertyNames() {
		prop := s.Properties[name]
		b.WriteString("<div class=\"field response-field\">\n<div class=\"field-header\">")
		fieldHeader(b, name, prop.DisplayType(), s.IsRequired(name))
		b.WriteString("</div>\n")
		if prop.Description != "" {
			b.WriteString("<p>" + esc(prop.Description) + "</p>\n")
		}
		if len(prop.Enum) > 0 {
			values := make([]string, len(prop.Enum))
			for i, v := range prop.Enum {
				values[i] = "<code>" + esc(v) + "</code>"
			}
			b.WriteString(`<p class="enum">One of: ` + strings.Join(values, ", ") + "</p>\n")
		}
		if nested, ok := inlineObject(prop); ok {
			b.WriteString("<details class=\"schema-nested\"><summary>Properties</summary>\n")
			r.schema(b, nested)
			b.WriteString("</details>\n")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

// inlineObject returns the object an unnamed property (or its array items)
// defines in place. Named schemas are listed on their own and are not repeated.
func inlineObject(s openapi.Schema) (openapi.Schema, bool) {
	if !s.IsComplex() || s.Circular || s.RefName != "" {
		return openapi.Schema{}, false
	}
	if s.Type == openapi.TypeArray {
		if s.Items == nil {
			return openapi.Schema{}, false
		}
		return inlineObject(*s.Items)
	}
	return s, len(s.Properties) > 0
}
