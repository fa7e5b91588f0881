// Package formatter encodes schema documents in the supported output formats.
package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"schemer/internal/schema"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Extension returns the file extension for format.
func Extension(format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return ".json", nil
	case FormatYAML, "yml":
		return ".yaml", nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func Format(doc *schema.Document, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return doc.MarshalIndent()
	case FormatYAML, "yml":
		return toYAML(doc)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// toYAML goes through the JSON encoding so key order matches the JSON output.
func toYAML(doc *schema.Document) ([]byte, error) {
	raw, err := doc.MarshalIndent()
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	resetStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// resetStyle drops the flow and quoting styles inherited from JSON so the
// encoder emits block YAML.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
