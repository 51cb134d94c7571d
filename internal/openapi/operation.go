package openapi

import (
	"strings"
	"unicode"
)

const curlSeparator = " \\\n  "

// Slug is the URL-safe identifier of the operation. A camelCase operationId
// becomes kebab-case; without one the method and path are used, so
// GET /pets/{id} becomes "get-pets-id".
func (o Operation) Slug() string {
	if o.OperationID != "" {
		return kebabCase(o.OperationID)
	}

	path := strings.Trim(o.Path, "/")
	path = strings.ReplaceAll(path, "/", "-")
	path = strings.NewReplacer("{", "", "}", "").Replace(path)
	return strings.ToLower(string(o.Method)) + "-" + path
}

func kebabCase(id string) string {
	var b strings.Builder
	for i, r := range id {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Curl builds a multi-line curl command for the operation against baseURL.
// Path and query parameters are filled with generated examples.
func (o Operation) Curl(baseURL string) string {
	parts := []string{"curl"}
	if o.Method != MethodGet {
		parts = append(parts, "-X "+string(o.Method))
	}

	url := strings.TrimRight(baseURL, "/") + o.Path
	var query []string
	for _, p := range o.Parameters {
		switch p.In {
		case InPath:
			placeholder := "{" + p.Name + "}"
			value := placeholder
			if p.Schema != nil {
				value = exampleString(p.Schema.GenerateExample(0))
			}
			url = strings.ReplaceAll(url, placeholder, value)
		case InQuery:
			if p.Schema != nil {
				query = append(query, p.Name+"="+exampleString(p.Schema.GenerateExample(0)))
			}
		}
	}
	if len(query) > 0 {
		url += "?" + strings.Join(query, "&")
	}
	parts = append(parts, `"`+url+`"`)

	if o.RequestBody != nil {
		parts = append(parts, `-H "Content-Type: application/json"`)
		for _, content := range o.RequestBody.Content {
			if !strings.Contains(content.MediaType, "json") {
				continue
			}
			if content.Schema != nil {
				if body, err := prettyJSON(content.Schema.GenerateExample(0)); err == nil {
					parts = append(parts, "-d '"+body+"'")
				}
			}
			break
		}
	}

	return strings.Join(parts, curlSeparator)
}

// ResponseExample returns the status code and an indented JSON example for
// the first 2xx response that has a schema.
func (o Operation) ResponseExample() (status, body string, ok bool) {
	for _, resp := range o.Responses {
		if !strings.HasPrefix(resp.StatusCode, "2") {
			continue
		}
		for _, content := range resp.Content {
			if content.Schema == nil {
				continue
			}
			if body, err := prettyJSON(content.Schema.GenerateExample(0)); err == nil {
				return resp.StatusCode, body, true
			}
		}
	}
	return "", "", false
}

// exampleString renders a generated value for use in a URL: strings as is,
// anything else as compact JSON.
func exampleString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return compactJSON(v)
}
