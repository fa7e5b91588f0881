package dom

import (
	"html"
	"strings"
)

// Element is an in-memory Node. It lets callers build synthetic pages without
// going through an HTML parser.
type Element struct {
	Markers  []Marker
	Content  string
	Children []*Element
}

// El builds an Element carrying the given markers and children.
func El(markers []Marker, content string, children ...*Element) *Element {
	return &Element{Markers: markers, Content: content, Children: children}
}

func (e *Element) has(m Marker) bool {
	for _, em := range e.Markers {
		if em == m {
			return true
		}
	}
	return false
}

func (e *Element) Find(m Marker) (Node, bool) {
	for _, c := range e.Children {
		if c.has(m) {
			return c, true
		}
		if found, ok := c.Find(m); ok {
			return found, true
		}
	}
	return nil, false
}

func (e *Element) FindAll(m Marker) []Node {
	var nodes []Node
	for _, c := range e.Children {
		if c.has(m) {
			nodes = append(nodes, c)
		}
		nodes = append(nodes, c.FindAll(m)...)
	}
	return nodes
}

func (e *Element) Text() string {
	var sb strings.Builder
	sb.WriteString(e.Content)
	for _, c := range e.Children {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

func (e *Element) HTML() string {
	var sb strings.Builder
	sb.WriteString(html.EscapeString(e.Content))
	for _, c := range e.Children {
		sb.WriteString("<div>")
		sb.WriteString(c.HTML())
		sb.WriteString("</div>")
	}
	return sb.String()
}
