package generator

import (
	"fmt"
	"strings"

	"github.com/cubahno/oasgen/pkg/schema"
	"github.com/cubahno/oasgen/pkg/typesystem"
)

// collectExtra gathers the extension metadata attached to a type or member:
// the example annotation first, then the well-known documentation
// annotations, then every attribute of every custom-metadata annotation,
// each run through the type-directed value coercion.
//
// The returned node is an ordered key/value map, not a schema fragment of
// its own; mergeExtra folds it into a real node.
func collectExtra(as typesystem.Annotations) (*schema.Node, error) {
	extra := schema.NewNode()

	if ann, ok := as.Get(typesystem.AnnotationExample); ok {
		if v, found := ann.Attr(typesystem.AttrValue); found {
			coerced, err := coerceValue(v, ann.Name)
			if err != nil {
				return nil, err
			}
			extra.Set("example", coerced)
		}
	}

	if ann, ok := as.Get(typesystem.AnnotationDescription); ok {
		if s := ann.StringAttr(typesystem.AttrValue, ""); s != "" {
			extra.Set("description", normalizeIndent(s))
		}
	}
	if ann, ok := as.Get(typesystem.AnnotationFormat); ok {
		if s := ann.StringAttr(typesystem.AttrValue, ""); s != "" {
			extra.Set("format", s)
		}
	}
	if ann, ok := as.Get(typesystem.AnnotationDeprecated); ok {
		extra.Set("deprecated", ann.BoolAttr(typesystem.AttrValue, true))
	}

	for _, ann := range as {
		if !ann.CustomMetadata {
			continue
		}
		for _, attr := range ann.Attributes {
			coerced, err := coerceValue(attr.Value, ann.Name)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", attr.Name, err)
			}
			extra.Set(attr.Name, coerced)
		}
	}

	return extra, nil
}

// coerceValue converts an annotation value into its JSON representation.
// Nested annotations and unknown value shapes abort the build: silently
// dropping them would corrupt the generated contract.
func coerceValue(v typesystem.Value, annotation string) (any, error) {
	switch v.Kind {
	case typesystem.ValueBool:
		return v.Bool, nil
	case typesystem.ValueInt:
		return v.Int, nil
	case typesystem.ValueFloat:
		return v.Float, nil
	case typesystem.ValueString:
		return normalizeIndent(v.Str), nil
	case typesystem.ValueEnum:
		return v.Str, nil
	case typesystem.ValueType:
		return v.Type.FQName, nil
	case typesystem.ValueArray:
		out := make([]any, 0, len(v.Elems))
		for i, elem := range v.Elems {
			coerced, err := coerceValue(elem, annotation)
			if err != nil {
				return nil, err
			}
			if !isJSONValue(coerced) {
				return nil, fmt.Errorf("%w: %s element %d", ErrUnsupportedArrayElement, annotation, i)
			}
			out = append(out, coerced)
		}
		return out, nil
	case typesystem.ValueAnnotation:
		return nil, fmt.Errorf("%w: %s", ErrNestedAnnotation, annotation)
	default:
		return nil, fmt.Errorf("%w: %s holds %s", ErrUnsupportedValue, annotation, v.Kind)
	}
}

func isJSONValue(v any) bool {
	switch v.(type) {
	case bool, int64, float64, string, []any:
		return true
	}
	return false
}

// mergeExtra adds every non-nil entry of extra onto the node. Values are
// already coerced; anything left over is stringified rather than dropped.
// Merging always runs last so a processor's rendering still picks up the
// originating member's metadata.
func mergeExtra(node *schema.Node, extra *schema.Node) {
	if extra == nil {
		return
	}
	for _, key := range extra.Keys() {
		v, _ := extra.Get(key)
		if v == nil {
			continue
		}
		switch v.(type) {
		case bool, int64, float64, string, []any, *schema.Node:
			node.Set(key, v)
		default:
			node.Set(key, fmt.Sprintf("%v", v))
		}
	}
}

// normalizeIndent strips the common leading indentation from a multi-line
// string and trims surrounding blank lines, so indented annotation literals
// do not leak their source formatting into the schema.
func normalizeIndent(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	lines := strings.Split(s, "\n")

	minIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent > 0 {
		for i, line := range lines {
			if len(line) >= minIndent {
				lines[i] = line[minIndent:]
			} else {
				lines[i] = strings.TrimLeft(line, " \t")
			}
		}
	}

	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
