// Package extractor turns the regions of a rendered API documentation page
// into a JSON Schema document.
package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"schemer/internal/dom"
	"schemer/internal/schema"

	"dario.cat/mergo"
)

var (
	versionPattern = regexp.MustCompile(`[0-9]+\.[0-9]+\+?`)
	defaultPattern = regexp.MustCompile(`(?i)Default:\s*(\S+)`)
)

// primitives are the JSON Schema types a property can declare inline.
var primitives = map[string]bool{
	"string":  true,
	"number":  true,
	"integer": true,
	"boolean": true,
	"object":  true,
	"array":   true,
	"null":    true,
}

// Observer receives the outcome of every top-level lookup. It is diagnostic
// only and never influences the document.
type Observer interface {
	Lookup(field, value string, found bool)
	Rows(count int)
}

type nopObserver struct{}

func (nopObserver) Lookup(string, string, bool) {}
func (nopObserver) Rows(int)                    {}

// Options configures an extraction run.
type Options struct {
	Observer Observer
	// Defaults fills scalar fields the page does not provide.
	Defaults schema.Header
	// Render turns a description region into text. Defaults to dom.PlainText.
	Render func(dom.Node) string
}

// Row is one property parsed from a row region.
type Row struct {
	Name     string
	Property schema.Property
	Required bool
}

// Extractor builds schema documents from parsed pages.
type Extractor struct {
	observer Observer
	defaults schema.Header
	render   func(dom.Node) string
}

// New creates an Extractor.
func New(opts Options) *Extractor {
	e := &Extractor{
		observer: opts.Observer,
		defaults: opts.Defaults,
		render:   opts.Render,
	}
	if e.observer == nil {
		e.observer = nopObserver{}
	}
	if e.render == nil {
		e.render = dom.PlainText
	}
	return e
}

// Extract reads root and returns the assembled document for apiURI. Missing
// regions degrade the document; they are never errors.
func (e *Extractor) Extract(root dom.Node, apiURI string) (*schema.Document, error) {
	doc := schema.NewDocument(apiURI)
	doc.Header = e.header(root, schema.Header{APIURI: apiURI})

	if err := mergo.Merge(&doc.Header, e.defaults); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if doc.Schema == "" {
		doc.Schema = schema.Draft
	}

	rows := e.Rows(root)
	e.observer.Rows(len(rows))
	for _, row := range rows {
		doc.Put(row.Name, row.Property, row.Required)
	}
	return doc, nil
}

func (e *Extractor) header(root dom.Node, h schema.Header) schema.Header {
	if n, ok := e.lookup(root, dom.MarkerTitle, "title"); ok {
		h.Title = n.Text()
	}
	if n, ok := e.lookup(root, dom.MarkerAbstract, "description"); ok {
		h.Description = e.render(n)
	}
	if n, ok := e.lookup(root, dom.MarkerEyebrow, "type"); ok {
		h.Type = strings.ToLower(n.Text())
	}
	if n, ok := e.lookup(root, dom.MarkerPlatform, schema.APIVersionKey); ok {
		h.APIVersion = Version(n.Text())
	}
	return h
}

func (e *Extractor) lookup(root dom.Node, m dom.Marker, field string) (dom.Node, bool) {
	n, ok := root.Find(m)
	if !ok {
		e.observer.Lookup(field, "", false)
		return nil, false
	}
	e.observer.Lookup(field, n.Text(), true)
	return n, true
}

// Rows parses every row region under root in document order. Rows without a
// symbol or a property name are skipped.
func (e *Extractor) Rows(root dom.Node) []Row {
	var rows []Row
	for _, n := range root.FindAll(dom.MarkerRowParam) {
		if row, ok := e.row(n); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func (e *Extractor) row(n dom.Node) (Row, bool) {
	symbol, ok := n.Find(dom.MarkerParamSymbol)
	if !ok {
		return Row{}, false
	}
	nameNode, ok := symbol.Find(dom.MarkerPropertyName)
	if !ok {
		return Row{}, false
	}
	row := Row{Name: strings.TrimSpace(nameNode.Text())}
	if row.Name == "" {
		return Row{}, false
	}

	raw := "string"
	if typ, ok := symbol.Find(dom.MarkerPropertyTypeMetadata); ok {
		if token := strings.TrimSpace(typ.Text()); token != "" {
			raw = token
		}
	}
	row.Property = Resolve(raw)

	// The type region usually carries the metadata class too, so every
	// metadata region is scanned for a stated default.
	metadata := symbol.FindAll(dom.MarkerPropertyMetadata)
	for _, m := range metadata {
		if value := Default(m.Text()); value != "" {
			row.Property.Default = value
			break
		}
	}

	content, ok := n.Find(dom.MarkerParamContent)
	if !ok {
		if len(metadata) > 0 {
			row.Property.Description = strings.TrimSpace(metadata[0].Text())
		}
		return row, true
	}
	if req, ok := content.Find(dom.MarkerPropertyText); ok {
		row.Required = strings.Contains(strings.ToLower(req.Text()), "required")
	}
	if body, ok := content.Find(dom.MarkerContent); ok {
		row.Property.Description = strings.TrimSpace(e.render(body))
	} else {
		row.Property.Description = strings.TrimSpace(content.Text())
	}
	return row, true
}

// Resolve maps a raw type token to an inline primitive or a reference to the
// document named after the token.
func Resolve(raw string) schema.Property {
	token := strings.ToLower(raw)
	if primitives[token] {
		return schema.Inline(token)
	}
	return schema.Reference(raw)
}

// Version returns the first version token in text, such as "15.0+", or "".
func Version(text string) string {
	return versionPattern.FindString(text)
}

// Default returns the value following a "Default:" marker in text, or "".
func Default(text string) string {
	m := defaultPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
