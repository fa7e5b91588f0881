// Package dom exposes rendered pages as trees of regions addressed by
// structural markers rather than by concrete selectors.
package dom

// Marker names a structural region of a documentation page. Profiles map each
// marker to a selector understood by the underlying parser.
type Marker string

const (
	MarkerTitle                Marker = "title"
	MarkerAbstract             Marker = "abstract-content"
	MarkerEyebrow              Marker = "eyebrow"
	MarkerPlatform             Marker = "platform"
	MarkerRowParam             Marker = "row-param"
	MarkerParamSymbol          Marker = "param-symbol"
	MarkerPropertyName         Marker = "property-name"
	MarkerPropertyTypeMetadata Marker = "property-type-metadata"
	MarkerPropertyMetadata     Marker = "property-metadata"
	MarkerParamContent         Marker = "param-content"
	MarkerPropertyText         Marker = "property-text"
	MarkerContent              Marker = "content"
)

// Markers lists every marker a profile is expected to map.
var Markers = []Marker{
	MarkerTitle,
	MarkerAbstract,
	MarkerEyebrow,
	MarkerPlatform,
	MarkerRowParam,
	MarkerParamSymbol,
	MarkerPropertyName,
	MarkerPropertyTypeMetadata,
	MarkerPropertyMetadata,
	MarkerParamContent,
	MarkerPropertyText,
	MarkerContent,
}

// Node is a region of a parsed page. Lookups are scoped to the node's
// descendants.
type Node interface {
	// Find returns the first descendant matching m in document order.
	Find(m Marker) (Node, bool)
	// FindAll returns every descendant matching m in document order.
	FindAll(m Marker) []Node
	// Text returns the concatenated text content of the node.
	Text() string
	// HTML returns the inner HTML of the node.
	HTML() string
}
