package config

import (
	"errors"
	"os"
	"testing"

	"schemer/internal/schema"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalName(t *testing.T) {
	assert.Equal(t, "conf/template.local.json5", LocalName("conf/template.json5"))
	assert.Equal(t, "template.local", LocalName("template"))
}

func TestReadTemplate(t *testing.T) {
	t.Run("Should parse json5 with comments and trailing commas", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "template.json5", []byte(`{
  // applied when the page has no abstract
  "$schema": "https://json-schema.org/draft-07/schema",
  description: "Undocumented.",
}`), 0o644))

		got, err := ReadTemplate(fs, "template.json5")
		require.NoError(t, err)
		assert.Equal(t, schema.Header{
			Schema:      "https://json-schema.org/draft-07/schema",
			Description: "Undocumented.",
		}, got)
	})

	t.Run("Should let the local file override set fields", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "template.json5", []byte(`{type: "object", description: "base"}`), 0o644))
		require.NoError(t, afero.WriteFile(fs, "template.local.json5", []byte(`{description: "local"}`), 0o644))

		got, err := ReadTemplate(fs, "template.json5")
		require.NoError(t, err)
		assert.Equal(t, "object", got.Type)
		assert.Equal(t, "local", got.Description)
	})

	t.Run("Should read a local file alone", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "template.local.json5", []byte(`{title: "Fallback"}`), 0o644))

		got, err := ReadTemplate(fs, "template.json5")
		require.NoError(t, err)
		assert.Equal(t, "Fallback", got.Title)
	})

	t.Run("Should report missing templates", func(t *testing.T) {
		_, err := ReadTemplate(afero.NewMemMapFs(), "template.json5")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("Should reject malformed templates", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "template.json5", []byte(`{title:`), 0o644))

		_, err := ReadTemplate(fs, "template.json5")
		require.Error(t, err)
		assert.False(t, errors.Is(err, os.ErrNotExist))
	})
}
