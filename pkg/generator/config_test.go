package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromContent(t *testing.T) {
	t.Run("recognized options are loaded", func(t *testing.T) {
		content := []byte(`
requireNonNulls: false
refPrefix: "#/definitions/"
simpleTypes:
  time.Time:
    type: string
    format: date-time
  myapp.Money:
    type: string
    format: decimal
`)
		cfg, err := NewConfigFromContent(content)
		require.NoError(t, err)

		assert.False(t, cfg.RequireNonNulls)
		assert.Equal(t, "#/definitions/", cfg.RefPrefix)
		assert.Equal(t, SimpleType{Type: "string", Format: "decimal"}, cfg.SimpleTypes["myapp.Money"])
	})

	t.Run("missing options keep their defaults", func(t *testing.T) {
		cfg, err := NewConfigFromContent([]byte(`requireNonNulls: true`))
		require.NoError(t, err)

		assert.Equal(t, DefaultRefPrefix, cfg.RefPrefix)
		assert.Equal(t, defaultByteTypes(), cfg.ByteTypes)
	})

	t.Run("invalid yaml returns an error", func(t *testing.T) {
		_, err := NewConfigFromContent([]byte(`{{nope`))
		assert.Error(t, err)
	})
}

func TestNewConfigFromFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "oasgen.yml")
	err := os.WriteFile(filePath, []byte("refPrefix: \"#/components/x/\"\n"), 0o644)
	require.NoError(t, err)

	cfg, err := NewConfigFromFile(filePath)
	require.NoError(t, err)

	assert.Equal(t, "#/components/x/", cfg.RefPrefix)
}

func TestConfigFreeze(t *testing.T) {
	t.Run("nil config freezes to defaults", func(t *testing.T) {
		frozen := (*Config)(nil).freeze()

		assert.True(t, frozen.RequireNonNulls)
		assert.Equal(t, DefaultRefPrefix, frozen.RefPrefix)
	})

	t.Run("later mutations do not leak into the generator", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.SimpleTypes = map[string]SimpleType{"test.Money": {Type: "string"}}
		g := New(Options{Config: cfg})

		cfg.SimpleTypes["test.Money"] = SimpleType{Type: "integer"}

		node, err := g.BuildSchema(objectType("Money"), false, true)
		require.NoError(t, err)
		assert.Equal(t, `{"type":"string"}`, node.String())
	})
}
