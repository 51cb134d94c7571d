package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	schemaRefPrefix      = "#/components/schemas/"
	parameterRefPrefix   = "#/components/parameters/"
	requestBodyRefPrefix = "#/components/requestBodies/"
	responseRefPrefix    = "#/components/responses/"

	defaultStatus = "default"
)

var methodOrder = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
}

// transformer converts one decoded document. It is used by a single Parse
// call and never shared.
type transformer struct {
	doc   *openapi3.T
	order *sourceOrder
}

func transform(doc *openapi3.T, order *sourceOrder) *Spec {
	t := &transformer{doc: doc, order: order}

	spec := &Spec{Operations: []Operation{}}
	if doc.Info != nil {
		spec.Info = Info{
			Title:       doc.Info.Title,
			Version:     doc.Info.Version,
			Description: doc.Info.Description,
		}
	}
	for _, s := range doc.Servers {
		if s != nil {
			spec.Servers = append(spec.Servers, Server{URL: s.URL, Description: s.Description})
		}
	}
	for _, tag := range doc.Tags {
		if tag != nil {
			spec.Tags = append(spec.Tags, Tag{Name: tag.Name, Description: tag.Description})
		}
	}

	for _, path := range t.paths() {
		item := doc.Paths.Value(path)
		if item == nil {
			continue
		}
		for _, method := range methodOrder {
			if op := item.GetOperation(string(method)); op != nil {
				spec.Operations = append(spec.Operations, t.operation(path, method, item, op))
			}
		}
	}

	if doc.Components != nil && len(doc.Components.Schemas) > 0 {
		spec.Schemas = make(map[string]Schema, len(doc.Components.Schemas))
		for name, ref := range doc.Components.Schemas {
			if ref == nil || ref.Value == nil {
				continue
			}
			spec.Schemas[name] = t.schema(ref.Value, map[string]bool{name: true})
		}
	}

	return spec
}

// paths returns path keys in source order, falling back to sorted order.
// Keys missing from the recorded order are appended sorted.
func (t *transformer) paths() []string {
	if t.doc.Paths == nil {
		return nil
	}

	decoded := t.doc.Paths.Map()
	var ordered []string
	seen := make(map[string]bool, len(decoded))
	if t.order != nil {
		for _, p := range t.order.paths {
			if _, ok := decoded[p]; ok && !seen[p] {
				ordered = append(ordered, p)
				seen[p] = true
			}
		}
	}

	var rest []string
	for p := range decoded {
		if !seen[p] {
			rest = append(rest, p)
		}
	}
	slices.Sort(rest)
	return append(ordered, rest...)
}

func (t *transformer) operation(path string, method Method, item *openapi3.PathItem, op *openapi3.Operation) Operation {
	out := Operation{
		OperationID: op.OperationID,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Parameters:  t.parameters(item.Parameters, op.Parameters),
		Deprecated:  op.Deprecated,
	}

	if op.RequestBody != nil {
		out.RequestBody = t.requestBody(op.RequestBody)
	}

	if op.Responses != nil {
		responses := op.Responses.Map()
		for _, code := range t.statusCodes(path, method, responses) {
			out.Responses = append(out.Responses, t.response(code, responses[code]))
		}
	}

	return out
}

// parameters merges path-level and operation-level parameters. An operation
// parameter with the same name and location replaces the path-level one in
// place.
func (t *transformer) parameters(pathLevel, opLevel openapi3.Parameters) []Parameter {
	var params []Parameter
	for _, ref := range pathLevel {
		if p, ok := t.parameter(ref); ok {
			params = append(params, p)
		}
	}

	for _, ref := range opLevel {
		p, ok := t.parameter(ref)
		if !ok {
			continue
		}
		idx := slices.IndexFunc(params, func(existing Parameter) bool {
			return existing.Name == p.Name && existing.In == p.In
		})
		if idx == -1 {
			params = append(params, p)
			continue
		}
		params[idx] = p
	}

	return params
}

// parameter resolves and converts one parameter. Content-based parameters,
// which carry no schema, are dropped.
func (t *transformer) parameter(ref *openapi3.ParameterRef) (Parameter, bool) {
	p := t.resolveParameter(ref)
	if p == nil || p.Schema == nil {
		return Parameter{}, false
	}

	schema := t.schemaRef(p.Schema, map[string]bool{})
	return Parameter{
		Name:        p.Name,
		In:          ParameterLocation(p.In),
		Description: p.Description,
		Required:    p.Required,
		Deprecated:  p.Deprecated,
		Schema:      &schema,
		Example:     formatValue(p.Example),
	}, true
}

func (t *transformer) resolveParameter(ref *openapi3.ParameterRef) *openapi3.Parameter {
	if ref == nil {
		return nil
	}
	if ref.Ref == "" {
		return ref.Value
	}

	name, ok := strings.CutPrefix(ref.Ref, parameterRefPrefix)
	if !ok || t.doc.Components == nil {
		return nil
	}
	if target := t.doc.Components.Parameters[name]; target != nil {
		return target.Value
	}
	return nil
}

func (t *transformer) requestBody(ref *openapi3.RequestBodyRef) *RequestBody {
	body := t.resolveRequestBody(ref)
	if body == nil {
		return nil
	}

	return &RequestBody{
		Description: body.Description,
		Required:    body.Required,
		Content:     t.content(body.Content),
	}
}

func (t *transformer) resolveRequestBody(ref *openapi3.RequestBodyRef) *openapi3.RequestBody {
	if ref.Ref == "" {
		return ref.Value
	}

	name, ok := strings.CutPrefix(ref.Ref, requestBodyRefPrefix)
	if !ok || t.doc.Components == nil {
		return nil
	}
	if target := t.doc.Components.RequestBodies[name]; target != nil {
		return target.Value
	}
	return nil
}

// statusCodes orders response codes as written in the source, with
// "default" moved last. Without source order the codes are sorted.
func (t *transformer) statusCodes(path string, method Method, responses map[string]*openapi3.ResponseRef) []string {
	var codes []string
	seen := make(map[string]bool, len(responses))
	if t.order != nil {
		for _, code := range t.order.responses[responseKey(path, strings.ToLower(string(method)))] {
			if _, ok := responses[code]; ok && !seen[code] {
				codes = append(codes, code)
				seen[code] = true
			}
		}
	}

	var rest []string
	for code := range responses {
		if !seen[code] {
			rest = append(rest, code)
		}
	}
	slices.Sort(rest)
	codes = append(codes, rest...)

	if idx := slices.Index(codes, defaultStatus); idx != -1 {
		codes = append(slices.Delete(codes, idx, idx+1), defaultStatus)
	}
	return codes
}

// response converts one response. An unresolvable reference yields an
// empty response for the status code.
func (t *transformer) response(code string, ref *openapi3.ResponseRef) Response {
	out := Response{StatusCode: normalizeStatus(code)}

	resp := t.resolveResponse(ref)
	if resp == nil {
		return out
	}
	if resp.Description != nil {
		out.Description = *resp.Description
	}
	out.Content = t.content(resp.Content)
	return out
}

func (t *transformer) resolveResponse(ref *openapi3.ResponseRef) *openapi3.Response {
	if ref == nil {
		return nil
	}
	if ref.Ref == "" {
		return ref.Value
	}

	name, ok := strings.CutPrefix(ref.Ref, responseRefPrefix)
	if !ok || t.doc.Components == nil {
		return nil
	}
	if target := t.doc.Components.Responses[name]; target != nil {
		return target.Value
	}
	return nil
}

// normalizeStatus upper-cases status ranges such as "2xx".
func normalizeStatus(code string) string {
	if code == defaultStatus {
		return code
	}
	return strings.ToUpper(code)
}

// content converts a media type map, sorted by media type.
func (t *transformer) content(content openapi3.Content) []MediaType {
	if len(content) == 0 {
		return nil
	}

	types := make([]string, 0, len(content))
	for mt := range content {
		types = append(types, mt)
	}
	slices.Sort(types)

	out := make([]MediaType, 0, len(types))
	for _, mt := range types {
		media := content[mt]
		if media == nil {
			continue
		}
		entry := MediaType{MediaType: mt, Example: formatValue(media.Example)}
		if media.Schema != nil {
			schema := t.schemaRef(media.Schema, map[string]bool{})
			entry.Schema = &schema
		}
		out = append(out, entry)
	}
	return out
}

// schemaRef resolves a schema reference and converts the target. inFlight
// holds the component names being expanded on the current chain; meeting one
// again yields a Circular stub.
func (t *transformer) schemaRef(ref *openapi3.SchemaRef, inFlight map[string]bool) Schema {
	if ref.Ref == "" {
		if ref.Value == nil {
			return Schema{Type: TypeAny}
		}
		return t.schema(ref.Value, inFlight)
	}

	name, ok := strings.CutPrefix(ref.Ref, schemaRefPrefix)
	if !ok {
		return Schema{Type: TypeAny, RefName: ref.Ref}
	}
	if inFlight[name] {
		return Schema{Type: TypeAny, RefName: name, Circular: true}
	}

	var target *openapi3.SchemaRef
	if t.doc.Components != nil {
		target = t.doc.Components.Schemas[name]
	}
	if target == nil || target.Value == nil {
		return Schema{Type: TypeAny, RefName: name}
	}

	inFlight[name] = true
	defer delete(inFlight, name)

	out := t.schema(target.Value, inFlight)
	out.RefName = name
	return out
}

func (t *transformer) schema(s *openapi3.Schema, inFlight map[string]bool) Schema {
	out := Schema{
		Type:        TypeAny,
		Format:      s.Format,
		Description: s.Description,
		Example:     formatValue(s.Example),
		Default:     formatValue(s.Default),
		Nullable:    s.Nullable,
		Required:    s.Required,
	}

	out.Type, out.Nullable = schemaType(s, out.Nullable)

	for _, v := range s.Enum {
		if str, ok := v.(string); ok {
			out.Enum = append(out.Enum, str)
			continue
		}
		out.Enum = append(out.Enum, compactJSON(v))
	}

	if s.Items != nil {
		items := t.schemaRef(s.Items, inFlight)
		out.Items = &items
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]Schema, len(s.Properties))
		for name, prop := range s.Properties {
			if prop != nil {
				out.Properties[name] = t.schemaRef(prop, inFlight)
			}
		}
	}

	switch ap := s.AdditionalProperties; {
	case ap.Schema != nil:
		extra := t.schemaRef(ap.Schema, inFlight)
		out.AdditionalProperties = &extra
	case ap.Has != nil && *ap.Has:
		out.AdditionalProperties = &Schema{Type: TypeAny}
	}

	out.OneOf = t.schemaList(s.OneOf, inFlight)
	out.AnyOf = t.schemaList(s.AnyOf, inFlight)
	out.AllOf = t.schemaList(s.AllOf, inFlight)

	return out
}

func (t *transformer) schemaList(refs openapi3.SchemaRefs, inFlight map[string]bool) []Schema {
	if len(refs) == 0 {
		return nil
	}
	out := make([]Schema, 0, len(refs))
	for _, ref := range refs {
		if ref != nil {
			out = append(out, t.schemaRef(ref, inFlight))
		}
	}
	return out
}

// schemaType picks the schema's type. OpenAPI 3.1 type arrays use the first
// non-null entry and mark the schema nullable when "null" is listed. Untyped
// schemas with properties or items are treated as objects or arrays.
func schemaType(s *openapi3.Schema, nullable bool) (SchemaType, bool) {
	var types []string
	if s.Type != nil {
		types = *s.Type
	}

	picked := ""
	for _, typ := range types {
		if typ == string(TypeNull) {
			nullable = true
			continue
		}
		if picked == "" {
			picked = typ
		}
	}

	switch {
	case picked != "":
		return SchemaType(picked), nullable
	case len(types) > 0:
		return TypeNull, nullable
	case len(s.Properties) > 0:
		return TypeObject, nullable
	case s.Items != nil:
		return TypeArray, nullable
	default:
		return TypeAny, nullable
	}
}

// formatValue keeps strings verbatim and renders other values as indented
// JSON. A nil value yields nil.
func formatValue(v any) *string {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	s, err := prettyJSON(v)
	if err != nil {
		s = fmt.Sprint(v)
	}
	return &s
}

func prettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
