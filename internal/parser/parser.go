package parser

import (
	"encoding/json"

	"github.com/g5becks/mdxkit/internal/openapi"
)

// NodeKind names a DocNode variant. It is the "type" discriminator in JSON.
type NodeKind string

const (
	KindMarkdown        NodeKind = "markdown"
	KindCallout         NodeKind = "callout"
	KindCard            NodeKind = "card"
	KindCardGroup       NodeKind = "card_group"
	KindTabs            NodeKind = "tabs"
	KindSteps           NodeKind = "steps"
	KindAccordionGroup  NodeKind = "accordion_group"
	KindCodeBlock       NodeKind = "code_block"
	KindCodeGroup       NodeKind = "code_group"
	KindParamField      NodeKind = "param_field"
	KindResponseField   NodeKind = "response_field"
	KindExpandable      NodeKind = "expandable"
	KindRequestExample  NodeKind = "request_example"
	KindResponseExample NodeKind = "response_example"
	KindUpdate          NodeKind = "update"
	KindOpenAPI         NodeKind = "openapi"
)

// DocNode is one rendering unit of a parsed document. The set of
// implementations is closed; switch on the concrete type.
type DocNode interface {
	Kind() NodeKind
	docNode()
}

// Frontmatter is the YAML header of a document.
type Frontmatter struct {
	Title        string `yaml:"title"        json:"title"`
	Description  string `yaml:"description"  json:"description,omitempty"`
	SidebarTitle string `yaml:"sidebarTitle" json:"sidebar_title,omitempty"`
	Icon         string `yaml:"icon"         json:"icon,omitempty"`
}

// ParsedDoc is a fully parsed document.
type ParsedDoc struct {
	Frontmatter Frontmatter `json:"frontmatter"`
	Content     []DocNode   `json:"content"`
	RawMarkdown string      `json:"raw_markdown"`
}

type CalloutType string

const (
	CalloutTip     CalloutType = "tip"
	CalloutNote    CalloutType = "note"
	CalloutWarning CalloutType = "warning"
	CalloutInfo    CalloutType = "info"
)

// Label returns the tag spelling, e.g. "Warning".
func (c CalloutType) Label() string {
	switch c {
	case CalloutTip:
		return "Tip"
	case CalloutNote:
		return "Note"
	case CalloutWarning:
		return "Warning"
	case CalloutInfo:
		return "Info"
	default:
		return string(c)
	}
}

type ParamLocation string

const (
	LocationHeader ParamLocation = "header"
	LocationPath   ParamLocation = "path"
	LocationQuery  ParamLocation = "query"
	LocationBody   ParamLocation = "body"
)

type Markdown struct {
	Text string `json:"text"`
}

type Callout struct {
	Type    CalloutType `json:"callout_type"`
	Content string      `json:"content"`
}

type Card struct {
	Title   string `json:"title"`
	Icon    string `json:"icon,omitempty"`
	Href    string `json:"href,omitempty"`
	Content string `json:"content"`
}

type CardGroup struct {
	Cols  int    `json:"cols"`
	Cards []Card `json:"cards"`
}

type Tab struct {
	Title   string    `json:"title"`
	Content []DocNode `json:"content"`
}

type Tabs struct {
	Tabs []Tab `json:"tabs"`
}

type Step struct {
	Title   string    `json:"title"`
	Content []DocNode `json:"content"`
}

type Steps struct {
	Steps []Step `json:"steps"`
}

type AccordionItem struct {
	Title   string    `json:"title"`
	Icon    string    `json:"icon,omitempty"`
	Content []DocNode `json:"content"`
}

type AccordionGroup struct {
	Items []AccordionItem `json:"items"`
}

type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Filename string `json:"filename,omitempty"`
	Code     string `json:"code"`
}

type CodeGroup struct {
	Blocks []CodeBlock `json:"blocks"`
}

type ParamField struct {
	Name     string        `json:"name"`
	Location ParamLocation `json:"location"`
	Type     string        `json:"param_type"`
	Required bool          `json:"required"`
	Default  string        `json:"default,omitempty"`
	Content  []DocNode     `json:"content"`
}

type ResponseField struct {
	Name       string      `json:"name"`
	Type       string      `json:"field_type"`
	Required   bool        `json:"required"`
	Content    string      `json:"content"`
	Expandable *Expandable `json:"expandable,omitempty"`
}

type Expandable struct {
	Title  string          `json:"title"`
	Fields []ResponseField `json:"fields"`
}

type RequestExample struct {
	Blocks []CodeBlock `json:"blocks"`
}

type ResponseExample struct {
	Blocks []CodeBlock `json:"blocks"`
}

type Update struct {
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Content     []DocNode `json:"content"`
}

// OpenAPI is an inline OpenAPI spec. A nil Tags shows every tag.
type OpenAPI struct {
	Spec        *openapi.Spec `json:"spec"`
	Tags        []string      `json:"tags,omitempty"`
	ShowSchemas bool          `json:"show_schemas"`
}

func (Markdown) Kind() NodeKind        { return KindMarkdown }
func (Callout) Kind() NodeKind         { return KindCallout }
func (Card) Kind() NodeKind            { return KindCard }
func (CardGroup) Kind() NodeKind       { return KindCardGroup }
func (Tabs) Kind() NodeKind            { return KindTabs }
func (Steps) Kind() NodeKind           { return KindSteps }
func (AccordionGroup) Kind() NodeKind  { return KindAccordionGroup }
func (CodeBlock) Kind() NodeKind       { return KindCodeBlock }
func (CodeGroup) Kind() NodeKind       { return KindCodeGroup }
func (ParamField) Kind() NodeKind      { return KindParamField }
func (ResponseField) Kind() NodeKind   { return KindResponseField }
func (Expandable) Kind() NodeKind      { return KindExpandable }
func (RequestExample) Kind() NodeKind  { return KindRequestExample }
func (ResponseExample) Kind() NodeKind { return KindResponseExample }
func (Update) Kind() NodeKind          { return KindUpdate }
func (OpenAPI) Kind() NodeKind         { return KindOpenAPI }

func (Markdown) docNode()        {}
func (Callout) docNode()         {}
func (Card) docNode()            {}
func (CardGroup) docNode()       {}
func (Tabs) docNode()            {}
func (Steps) docNode()           {}
func (AccordionGroup) docNode()  {}
func (CodeBlock) docNode()       {}
func (CodeGroup) docNode()       {}
func (ParamField) docNode()      {}
func (ResponseField) docNode()   {}
func (Expandable) docNode()      {}
func (RequestExample) docNode()  {}
func (ResponseExample) docNode() {}
func (Update) docNode()          {}
func (OpenAPI) docNode()         {}

// marshalTagged encodes v and splices the kind discriminator in front of its fields.
func marshalTagged(kind NodeKind, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	head := []byte(`{"type":"` + string(kind) + `"`)
	if len(body) <= 2 {
		return append(head, '}'), nil
	}

	head = append(head, ',')
	return append(head, body[1:]...), nil
}

func (n Markdown) MarshalJSON() ([]byte, error) {
	type plain Markdown
	return marshalTagged(n.Kind(), plain(n))
}

func (n Callout) MarshalJSON() ([]byte, error) {
	type plain Callout
	return marshalTagged(n.Kind(), plain(n))
}

func (n Card) MarshalJSON() ([]byte, error) {
	type plain Card
	return marshalTagged(n.Kind(), plain(n))
}

func (n CardGroup) MarshalJSON() ([]byte, error) {
	type plain CardGroup
	return marshalTagged(n.Kind(), plain(n))
}

func (n Tabs) MarshalJSON() ([]byte, error) {
	type plain Tabs
	return marshalTagged(n.Kind(), plain(n))
}

func (n Steps) MarshalJSON() ([]byte, error) {
	type plain Steps
	return marshalTagged(n.Kind(), plain(n))
}

func (n AccordionGroup) MarshalJSON() ([]byte, error) {
	type plain AccordionGroup
	return marshalTagged(n.Kind(), plain(n))
}

func (n CodeBlock) MarshalJSON() ([]byte, error) {
	type plain CodeBlock
	return marshalTagged(n.Kind(), plain(n))
}

func (n CodeGroup) MarshalJSON() ([]byte, error) {
	type plain CodeGroup
	return marshalTagged(n.Kind(), plain(n))
}

func (n ParamField) MarshalJSON() ([]byte, error) {
	type plain ParamField
	return marshalTagged(n.Kind(), plain(n))
}

func (n ResponseField) MarshalJSON() ([]byte, error) {
	type plain ResponseField
	return marshalTagged(n.Kind(), plain(n))
}

func (n Expandable) MarshalJSON() ([]byte, error) {
	type plain Expandable
	return marshalTagged(n.Kind(), plain(n))
}

func (n RequestExample) MarshalJSON() ([]byte, error) {
	type plain RequestExample
	return marshalTagged(n.Kind(), plain(n))
}

func (n ResponseExample) MarshalJSON() ([]byte, error) {
	type plain ResponseExample
	return marshalTagged(n.Kind(), plain(n))
}

func (n Update) MarshalJSON() ([]byte, error) {
	type plain Update
	return marshalTagged(n.Kind(), plain(n))
}

func (n OpenAPI) MarshalJSON() ([]byte, error) {
	type plain OpenAPI
	return marshalTagged(n.Kind(), plain(n))
}
