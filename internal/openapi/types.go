// Package openapi turns an OpenAPI 3.x document into a flat, display-ready
// model of operations and schemas with all internal references resolved.
package openapi

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

type ParameterLocation string

const (
	InPath   ParameterLocation = "path"
	InQuery  ParameterLocation = "query"
	InHeader ParameterLocation = "header"
	InCookie ParameterLocation = "cookie"
)

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
	TypeAny     SchemaType = "any"
)

// Spec is a transformed OpenAPI document.
type Spec struct {
	Info       Info              `json:"info"`
	Servers    []Server          `json:"servers,omitempty"`
	Operations []Operation       `json:"operations"`
	Tags       []Tag             `json:"tags,omitempty"`
	Schemas    map[string]Schema `json:"schemas,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Operation is one method on one path.
type Operation struct {
	OperationID string       `json:"operation_id,omitempty"`
	Method      Method       `json:"method"`
	Path        string       `json:"path"`
	Summary     string       `json:"summary,omitempty"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty"`
	RequestBody *RequestBody `json:"request_body,omitempty"`
	Responses   []Response   `json:"responses,omitempty"`
	Deprecated  bool         `json:"deprecated,omitempty"`
}

type Parameter struct {
	Name        string            `json:"name"`
	In          ParameterLocation `json:"in"`
	Description string            `json:"description,omitempty"`
	Required    bool              `json:"required,omitempty"`
	Deprecated  bool              `json:"deprecated,omitempty"`
	Schema      *Schema           `json:"schema,omitempty"`
	Example     *string           `json:"example,omitempty"`
}

type RequestBody struct {
	Description string      `json:"description,omitempty"`
	Required    bool        `json:"required,omitempty"`
	Content     []MediaType `json:"content,omitempty"`
}

type MediaType struct {
	MediaType string  `json:"media_type"`
	Schema    *Schema `json:"schema,omitempty"`
	Example   *string `json:"example,omitempty"`
}

type Response struct {
	StatusCode  string      `json:"status_code"`
	Description string      `json:"description"`
	Content     []MediaType `json:"content,omitempty"`
}

// Schema is a resolved schema. Example and Default hold the source value:
// strings verbatim, anything else as indented JSON.
type Schema struct {
	Type                 SchemaType        `json:"type"`
	Format               string            `json:"format,omitempty"`
	Description          string            `json:"description,omitempty"`
	Items                *Schema           `json:"items,omitempty"`
	Properties           map[string]Schema `json:"properties,omitempty"`
	Required             []string          `json:"required,omitempty"`
	RefName              string            `json:"ref_name,omitempty"`
	Enum                 []string          `json:"enum,omitempty"`
	Example              *string           `json:"example,omitempty"`
	Default              *string           `json:"default,omitempty"`
	Nullable             bool              `json:"nullable,omitempty"`
	AdditionalProperties *Schema           `json:"additional_properties,omitempty"`
	OneOf                []Schema          `json:"one_of,omitempty"`
	AnyOf                []Schema          `json:"any_of,omitempty"`
	AllOf                []Schema          `json:"all_of,omitempty"`
	// Circular marks a stub standing in for a reference that is already
	// being expanded further up the same chain.
	Circular bool `json:"circular,omitempty"`
}
