package openapi

import (
	"gopkg.in/yaml.v3"
)

// sourceOrder records mapping key order from the raw document, which the
// decoded model loses. A nil *sourceOrder means the order is unknown.
type sourceOrder struct {
	paths     []string
	responses map[string][]string // "path method" -> status codes
}

// readSourceOrder walks the document as a YAML node tree. JSON is valid YAML
// for this purpose. It returns nil when the text cannot be walked.
func readSourceOrder(data []byte) *sourceOrder {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return nil
	}

	paths := mappingValue(root.Content[0], "paths")
	if paths == nil {
		return nil
	}

	order := &sourceOrder{responses: make(map[string][]string)}
	for i := 0; i+1 < len(paths.Content); i += 2 {
		path := paths.Content[i].Value
		order.paths = append(order.paths, path)

		item := paths.Content[i+1]
		if item.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(item.Content); j += 2 {
			responses := mappingValue(item.Content[j+1], "responses")
			if responses == nil {
				continue
			}
			key := responseKey(path, item.Content[j].Value)
			for k := 0; k+1 < len(responses.Content); k += 2 {
				order.responses[key] = append(order.responses[key], responses.Content[k].Value)
			}
		}
	}

	return order
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.MappingNode {
			return node.Content[i+1]
		}
	}
	return nil
}

func responseKey(path, method string) string {
	return path + " " + method
}
