package generator

import (
	"testing"

	"github.com/cubahno/oasgen/pkg/schema"
	"github.com/cubahno/oasgen/pkg/typesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectExtra(t *testing.T) {
	t.Run("example annotation seeds the map", func(t *testing.T) {
		anns := typesystem.Annotations{exampleAnn(typesystem.StringValue("2022-08-14T21:13:03.546Z"))}

		extra, err := collectExtra(anns)
		require.NoError(t, err)

		v, ok := extra.Get("example")
		assert.True(t, ok)
		assert.Equal(t, "2022-08-14T21:13:03.546Z", v)
	})

	t.Run("missing example yields an absent key", func(t *testing.T) {
		extra, err := collectExtra(nil)
		require.NoError(t, err)

		assert.Equal(t, 0, extra.Len())
	})

	t.Run("custom annotation attributes are coerced", func(t *testing.T) {
		color := typesystem.TypeDescriptor{FQName: "test.Color", Name: "Color"}
		anns := typesystem.Annotations{
			typesystem.NewCustomAnnotation("custom",
				typesystem.Attribute{Name: "enabled", Value: typesystem.BoolValue(true)},
				typesystem.Attribute{Name: "limit", Value: typesystem.IntValue(10)},
				typesystem.Attribute{Name: "rate", Value: typesystem.FloatValue(0.5)},
				typesystem.Attribute{Name: "label", Value: typesystem.StringValue("hello")},
				typesystem.Attribute{Name: "mode", Value: typesystem.EnumValue("STRICT")},
				typesystem.Attribute{Name: "target", Value: typesystem.TypeValue(color)},
			),
		}

		extra, err := collectExtra(anns)
		require.NoError(t, err)

		assert.Equal(t,
			`{"enabled":true,"limit":10,"rate":0.5,"label":"hello","mode":"STRICT","target":"test.Color"}`,
			extra.String())
	})

	t.Run("string array coerces to a JSON array", func(t *testing.T) {
		anns := typesystem.Annotations{
			typesystem.NewCustomAnnotation("custom",
				typesystem.Attribute{Name: "tags", Value: typesystem.ArrayValue(
					typesystem.StringValue("a"), typesystem.StringValue("b"))},
			),
		}

		extra, err := collectExtra(anns)
		require.NoError(t, err)

		v, _ := extra.Get("tags")
		assert.Equal(t, []any{"a", "b"}, v)
	})

	t.Run("nested annotation is a hard failure", func(t *testing.T) {
		anns := typesystem.Annotations{
			typesystem.NewCustomAnnotation("custom",
				typesystem.Attribute{Name: "inner", Value: typesystem.AnnotationValue(
					typesystem.NewAnnotation("nested"))},
			),
		}

		_, err := collectExtra(anns)
		assert.ErrorIs(t, err, ErrNestedAnnotation)
		assert.Contains(t, err.Error(), "custom")
	})

	t.Run("unknown value shape is a hard failure", func(t *testing.T) {
		anns := typesystem.Annotations{
			typesystem.NewCustomAnnotation("custom",
				typesystem.Attribute{Name: "bad", Value: typesystem.Value{}},
			),
		}

		_, err := collectExtra(anns)
		assert.ErrorIs(t, err, ErrUnsupportedValue)
	})

	t.Run("annotations without the custom marker contribute nothing", func(t *testing.T) {
		anns := typesystem.Annotations{
			typesystem.NewAnnotation("plain",
				typesystem.Attribute{Name: "ignored", Value: typesystem.StringValue("x")}),
		}

		extra, err := collectExtra(anns)
		require.NoError(t, err)

		assert.Equal(t, 0, extra.Len())
	})
}

func TestCollectExtra_FailurePropagatesFromBuild(t *testing.T) {
	bad := typesystem.NewCustomAnnotation("custom",
		typesystem.Attribute{Name: "inner", Value: typesystem.AnnotationValue(
			typesystem.NewAnnotation("nested"))})
	entity := objectType("Entity", accessor("GetValue", intType(), bad))

	_, err := newGenerator().BuildSchema(entity, false, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNestedAnnotation)
	assert.Contains(t, err.Error(), "test.Entity")
	assert.Contains(t, err.Error(), "GetValue")
}

func TestCoerceValue_Arrays(t *testing.T) {
	t.Run("nested arrays stay JSON arrays", func(t *testing.T) {
		v, err := coerceValue(typesystem.ArrayValue(
			typesystem.ArrayValue(typesystem.IntValue(1), typesystem.IntValue(2)),
		), "custom")
		require.NoError(t, err)

		assert.Equal(t, []any{[]any{int64(1), int64(2)}}, v)
	})

	t.Run("annotation elements fail the build", func(t *testing.T) {
		_, err := coerceValue(typesystem.ArrayValue(
			typesystem.AnnotationValue(typesystem.NewAnnotation("nested")),
		), "custom")
		assert.ErrorIs(t, err, ErrNestedAnnotation)
	})
}

func TestMergeExtra(t *testing.T) {
	t.Run("entries land on the node in order", func(t *testing.T) {
		node := primitiveNode(SimpleType{Type: "string"})
		extra, err := collectExtra(typesystem.Annotations{exampleAnn(typesystem.StringValue("x"))})
		require.NoError(t, err)

		mergeExtra(node, extra)

		assert.Equal(t, `{"type":"string","example":"x"}`, node.String())
	})

	t.Run("leftover non-primitives are stringified", func(t *testing.T) {
		node := primitiveNode(SimpleType{Type: "string"})
		extra := schema.NewNode()
		extra.Set("odd", struct{ A int }{1})

		mergeExtra(node, extra)

		v, _ := node.Get("odd")
		assert.Equal(t, "{1}", v)
	})

	t.Run("nil entries are dropped", func(t *testing.T) {
		node := primitiveNode(SimpleType{Type: "string"})
		extra := schema.NewNode()
		extra.Set("gone", nil)

		mergeExtra(node, extra)

		assert.False(t, node.Has("gone"))
	})
}

func TestNormalizeIndent(t *testing.T) {
	t.Run("single line passes through", func(t *testing.T) {
		assert.Equal(t, "  padded  ", normalizeIndent("  padded  "))
	})

	t.Run("common indentation is stripped", func(t *testing.T) {
		in := "\n    first\n      second\n    third\n"
		assert.Equal(t, "first\n  second\nthird", normalizeIndent(in))
	})
}
