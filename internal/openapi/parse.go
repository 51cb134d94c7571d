package openapi

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/samber/oops"
	"sigs.k8s.io/yaml"
)

var (
	// ErrParse reports input that is neither a YAML nor a JSON OpenAPI document.
	ErrParse = errors.New("openapi: not a YAML or JSON document")
	// ErrInvalidSpec reports a document that is not OpenAPI 3.x.
	ErrInvalidSpec = errors.New("openapi: not an OpenAPI 3.x document")
)

// Parse decodes an OpenAPI 3.x document, YAML or JSON, and transforms it.
// References are resolved against the document's own components only.
func Parse(text string) (*Spec, error) {
	doc, err := decode([]byte(text))
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, oops.
			Code("OPENAPI_INVALID_SPEC").
			With("openapi", doc.OpenAPI).
			Hint("Only OpenAPI 3.x documents are supported").
			Wrapf(ErrInvalidSpec, "unsupported openapi version %q", doc.OpenAPI)
	}

	return transform(doc, readSourceOrder([]byte(text))), nil
}

// decode tries YAML first, then JSON. kin-openapi only unmarshals JSON, so
// YAML is converted before decoding.
func decode(data []byte) (*openapi3.T, error) {
	var doc openapi3.T

	jsonData, yamlErr := yaml.YAMLToJSON(data)
	if yamlErr == nil {
		if yamlErr = doc.UnmarshalJSON(jsonData); yamlErr == nil {
			return &doc, nil
		}
	}

	doc = openapi3.T{}
	jsonErr := json.Unmarshal(data, &doc)
	if jsonErr == nil {
		return &doc, nil
	}

	return nil, oops.
		Code("OPENAPI_PARSE_ERROR").
		With("yaml_error", yamlErr.Error()).
		With("json_error", jsonErr.Error()).
		Wrapf(ErrParse, "decoding spec")
}
