package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"schemer/internal/schema"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() *schema.Document {
	doc := schema.NewDocument("https://example.com/widget")
	doc.Title = "Widget"
	doc.Type = "structure"
	doc.APIVersion = "1.1+"
	doc.Put("id", schema.Inline("string"), true)
	doc.Put("color", schema.Reference("WidgetColor"), false)
	return doc
}

func TestExtension(t *testing.T) {
	ext, err := Extension("JSON")
	require.NoError(t, err)
	assert.Equal(t, ".json", ext)

	ext, err = Extension("yml")
	require.NoError(t, err)
	assert.Equal(t, ".yaml", ext)

	_, err = Extension("csv")
	assert.EqualError(t, err, "unsupported output format: csv")
}

func TestFormat(t *testing.T) {
	t.Run("Should encode JSON", func(t *testing.T) {
		raw, err := Format(sample(), FormatJSON)
		require.NoError(t, err)
		assert.True(t, json.Valid(raw))
	})

	t.Run("Should encode block YAML with the same content", func(t *testing.T) {
		raw, err := Format(sample(), FormatYAML)
		require.NoError(t, err)

		out := string(raw)
		assert.NotContains(t, out, "{")
		assert.Contains(t, out, "properties:\n  id:\n    type: string\n")
		assert.Less(t, strings.Index(out, "  id:"), strings.Index(out, "  color:"))

		var fromYAML map[string]any
		require.NoError(t, yaml.Unmarshal(raw, &fromYAML))
		jsonRaw, err := Format(sample(), FormatJSON)
		require.NoError(t, err)
		var fromJSON map[string]any
		require.NoError(t, json.Unmarshal(jsonRaw, &fromJSON))
		if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
			t.Errorf("yaml and json differ (-json +yaml):\n%s", diff)
		}
	})

	t.Run("Should reject unknown formats", func(t *testing.T) {
		_, err := Format(sample(), "html")
		assert.Error(t, err)
	})
}
