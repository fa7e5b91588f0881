// Package schema holds the JSON Schema document produced from a documentation
// page and its encodings.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// Draft is the meta-schema every document declares.
	Draft = "https://json-schema.org/draft/2020-12/schema"

	APIURIKey     = "x-apple-developer-api-uri"
	APIVersionKey = "x-apple-developer-api-version"

	// RefSuffix is appended to a type name to form the file it is defined in.
	RefSuffix = ".json"
)

// Header carries the scalar fields of a document. It doubles as the shape of
// a defaults template, hence the json tags.
type Header struct {
	Schema      string `json:"$schema,omitempty"`
	APIURI      string `json:"x-apple-developer-api-uri,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	APIVersion  string `json:"x-apple-developer-api-version,omitempty"`
}

// Property describes a single field. Exactly one of Type and Ref is set.
type Property struct {
	Type        string
	Ref         string
	Description string
	Default     string
}

// Inline returns a property of the given primitive type.
func Inline(typ string) Property {
	return Property{Type: typ}
}

// Reference returns a property whose shape lives in the document named
// name + RefSuffix.
func Reference(name string) Property {
	return Property{Ref: name + RefSuffix}
}

func (p Property) jsonSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        p.Type,
		Ref:         p.Ref,
		Description: p.Description,
	}
	if p.Default != "" {
		s.Default = p.Default
	}
	return s
}

// Document is the schema extracted from one page.
type Document struct {
	Header
	Properties *orderedmap.OrderedMap[string, Property]
	Required   *RequiredSet
}

// NewDocument returns an empty document for the given source URL.
func NewDocument(apiURI string) *Document {
	return &Document{
		Header:     Header{Schema: Draft, APIURI: apiURI},
		Properties: orderedmap.New[string, Property](),
		Required:   NewRequiredSet(),
	}
}

// Put stores p under name, replacing any earlier property of that name in
// place. Required names are added to the required set once.
func (d *Document) Put(name string, p Property, required bool) {
	d.Properties.Set(name, p)
	if required {
		d.Required.Add(name)
	}
}

// JSONSchema converts the document to a JSON Schema value. Empty scalar
// fields, properties and required are omitted.
func (d *Document) JSONSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Version:     d.Schema,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
	}

	extras := map[string]any{}
	if d.APIURI != "" {
		extras[APIURIKey] = d.APIURI
	}
	if d.APIVersion != "" {
		extras[APIVersionKey] = d.APIVersion
	}
	if len(extras) > 0 {
		s.Extras = extras
	}

	if d.Properties != nil && d.Properties.Len() > 0 {
		s.Properties = jsonschema.NewProperties()
		for pair := d.Properties.Oldest(); pair != nil; pair = pair.Next() {
			s.Properties.Set(pair.Key, pair.Value.jsonSchema())
		}
	}
	if d.Required != nil && d.Required.Len() > 0 {
		s.Required = d.Required.Names()
	}
	return s
}

// MarshalIndent encodes the document as JSON indented by two spaces and
// terminated by a newline.
func (d *Document) MarshalIndent() ([]byte, error) {
	raw, err := json.Marshal(d.JSONSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent schema: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
