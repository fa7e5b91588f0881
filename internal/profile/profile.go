// Package profile maps documentation sites to the selectors their pages use
// for each structural marker.
package profile

import (
	"net/url"
	"sort"
	"strings"

	"schemer/internal/dom"
)

// Profile describes the markup of one documentation site.
type Profile struct {
	Name string
	// Hosts are matched against the page host, including subdomains.
	Hosts     []string
	Selectors dom.Selectors
	// Ready is a selector that appears once the page has rendered. It is the
	// default target of the element wait strategy.
	Ready string
}

// Missing returns the markers p has no selector for.
func (p *Profile) Missing() []dom.Marker {
	var missing []dom.Marker
	for _, m := range dom.Markers {
		if p.Selectors[m] == "" {
			missing = append(missing, m)
		}
	}
	return missing
}

func (p *Profile) matches(host string) bool {
	for _, h := range p.Hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

var registry = map[string]*Profile{}

func Register(p *Profile) {
	registry[strings.ToLower(p.Name)] = p
}

func Get(name string) (*Profile, bool) {
	p, ok := registry[strings.ToLower(name)]
	return p, ok
}

// ForURL returns the profile whose hosts match rawURL.
func ForURL(rawURL string) (*Profile, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return nil, false
	}
	host := strings.ToLower(u.Hostname())
	for _, name := range Names() {
		if p := registry[name]; p.matches(host) {
			return p, true
		}
	}
	return nil, false
}

// Names lists registered profiles in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
