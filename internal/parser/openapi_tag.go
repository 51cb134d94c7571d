package parser

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/g5becks/mdxkit/internal/openapi"
)

// parseOpenAPI handles an inline spec: <OpenAPI tags="a, b" hideSchemas>...</OpenAPI>.
// The self-closing src form is declined since specs are not fetched while parsing.
func parseOpenAPI(content string) (DocNode, string, bool) {
	if !strings.HasPrefix(content, "<OpenAPI") {
		return nil, "", false
	}

	attrs, selfClosing, body, ok := splitOpenTag(content, "OpenAPI")
	if !ok || selfClosing {
		return nil, "", false
	}

	inner, rest, ok := takeElement(body, "OpenAPI")
	if !ok {
		return nil, "", false
	}

	spec, err := openapi.Parse(strings.TrimSpace(inner))
	if err != nil {
		log.Warn().Err(err).Msg("skipping inline OpenAPI block")
		return nil, "", false
	}

	node := OpenAPI{
		Spec:        spec,
		ShowSchemas: !strings.Contains(attrs, "hideSchemas"),
	}
	if raw, ok := ExtractAttr(attrs, "tags"); ok {
		for tag := range strings.SplitSeq(raw, ",") {
			node.Tags = append(node.Tags, strings.TrimSpace(tag))
		}
	}

	return node, rest, true
}
