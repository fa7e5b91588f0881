// Package apple registers the Apple Developer documentation profile.
package apple

import (
	"schemer/internal/dom"
	"schemer/internal/profile"
)

// Name is the profile name; it is also the fallback profile.
const Name = "apple"

// Selectors are the class selectors of developer.apple.com reference pages.
var Selectors = dom.Selectors{
	dom.MarkerTitle:                ".title",
	dom.MarkerAbstract:             ".abstract.content",
	dom.MarkerEyebrow:              ".eyebrow",
	dom.MarkerPlatform:             ".platform",
	dom.MarkerRowParam:             ".row.param",
	dom.MarkerParamSymbol:          ".col.param-symbol",
	dom.MarkerPropertyName:         ".property-name",
	dom.MarkerPropertyTypeMetadata: ".property-metadata.property-type",
	dom.MarkerPropertyMetadata:     ".property-metadata",
	dom.MarkerParamContent:         ".col.param-content",
	dom.MarkerPropertyText:         ".property-text",
	dom.MarkerContent:              ".content",
}

func init() {
	profile.Register(&profile.Profile{
		Name:      Name,
		Hosts:     []string{"developer.apple.com"},
		Selectors: Selectors,
		Ready:     ".title",
	})
}
