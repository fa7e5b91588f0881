package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors maps markers to CSS selectors.
type Selectors map[Marker]string

// Selection is a Node backed by a goquery selection.
type Selection struct {
	sel       *goquery.Selection
	selectors Selectors
}

// Parse parses rendered HTML and returns its document root.
func Parse(r io.Reader, selectors Selectors) (*Selection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Selection{sel: doc.Selection, selectors: selectors}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(html string, selectors Selectors) (*Selection, error) {
	return Parse(strings.NewReader(html), selectors)
}

func (s *Selection) Find(m Marker) (Node, bool) {
	selector, ok := s.selectors[m]
	if !ok {
		return nil, false
	}
	found := s.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &Selection{sel: found, selectors: s.selectors}, true
}

func (s *Selection) FindAll(m Marker) []Node {
	selector, ok := s.selectors[m]
	if !ok {
		return nil
	}
	var nodes []Node
	s.sel.Find(selector).Each(func(_ int, item *goquery.Selection) {
		nodes = append(nodes, &Selection{sel: item, selectors: s.selectors})
	})
	return nodes
}

func (s *Selection) Text() string {
	return s.sel.Text()
}

func (s *Selection) HTML() string {
	html, err := s.sel.Html()
	if err != nil {
		return ""
	}
	return html
}
