package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type format string

func newFormats() *Normalizer[format] {
	return New("format", map[string]format{"json": "json", "YAML": "yaml"}, "json")
}

func TestNormalize(t *testing.T) {
	n := newFormats()
	assert.Equal(t, format("yaml"), n.Normalize("  Yaml "))
	assert.Equal(t, format("json"), n.Normalize("toml"))
	assert.Equal(t, []string{"json", "yaml"}, n.ValidKeys())
}

func TestParse(t *testing.T) {
	n := newFormats()
	v, err := n.Parse("JSON")
	require.NoError(t, err)
	assert.Equal(t, format("json"), v)

	_, err = n.Parse("toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "toml"`)
}

func TestNormalizeWithWarning(t *testing.T) {
	n := newFormats()

	v, warn := n.NormalizeWithWarning("")
	assert.Equal(t, format("json"), v)
	assert.Empty(t, warn)

	v, warn = n.NormalizeWithWarning("yaml")
	assert.Equal(t, format("yaml"), v)
	assert.Empty(t, warn)

	v, warn = n.NormalizeWithWarning("YAML")
	assert.Equal(t, format("yaml"), v)
	assert.Equal(t, `normalized format from "YAML" to "yaml"`, warn)

	v, warn = n.NormalizeWithWarning("toml")
	assert.Equal(t, format("json"), v)
	assert.Contains(t, warn, "using default")
}
