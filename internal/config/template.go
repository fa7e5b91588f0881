// Package config loads the optional defaults template applied to every
// extracted document.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"schemer/internal/schema"

	"dario.cat/mergo"
	"github.com/spf13/afero"
	"github.com/titanous/json5"
)

// LocalName returns the override file that sits next to name, e.g.
// "template.local.json5" for "template.json5".
func LocalName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}

// ReadTemplate reads a json5 template holding default header values. A
// sibling local file, when present, overrides the fields it sets. It returns
// os.ErrNotExist when neither file exists.
func ReadTemplate(fs afero.Fs, name string) (schema.Header, error) {
	var out schema.Header
	allNotFound := true

	base, err := afero.ReadFile(fs, name)
	if err != nil && !os.IsNotExist(err) {
		return out, fmt.Errorf("failed to read template %s: %w", name, err)
	}
	if len(base) > 0 {
		if err := json5.Unmarshal(base, &out); err != nil {
			return out, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		allNotFound = false
	}

	localName := LocalName(name)
	local, err := afero.ReadFile(fs, localName)
	if err != nil && !os.IsNotExist(err) {
		return out, fmt.Errorf("failed to read template %s: %w", localName, err)
	}
	if len(local) > 0 {
		var override schema.Header
		if err := json5.Unmarshal(local, &override); err != nil {
			return out, fmt.Errorf("failed to parse template %s: %w", localName, err)
		}
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, fmt.Errorf("failed to merge template overrides: %w", err)
		}
		slog.Debug("merging template with local overrides", "local", localName)
		allNotFound = false
	}

	if allNotFound {
		return out, os.ErrNotExist
	}
	return out, nil
}
