package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cubahno/oasgen/pkg/schema"
	"github.com/cubahno/oasgen/pkg/typesystem"
)

// PropertyDescriptor is one extracted property: its final name, resolved
// type, required flag, optional composition and extension metadata. It lives
// for the duration of one schema build.
type PropertyDescriptor struct {
	Name        string
	Type        typesystem.TypeDescriptor
	Required    bool
	Composition *CompositionSpec
	Extra       *schema.Node
}

// CustomProperty is a host-injected property that has no declared member on
// the type at all.
type CustomProperty struct {
	Name string
	Type typesystem.TypeDescriptor
}

// PropertyFilter is the host-provided inclusion predicate. Returning false
// silently drops the member.
type PropertyFilter func(t typesystem.TypeDescriptor, m typesystem.Member) bool

// extractProperties turns a type's members into ordered property
// descriptors, applying the member filters in their fixed order and the
// naming heuristic. requireNonNull is the effective default for this type,
// after any per-type override.
func (g *Generator) extractProperties(t typesystem.TypeDescriptor, requireNonNull bool) ([]PropertyDescriptor, error) {
	var props []PropertyDescriptor

	byFields, floor := fieldExtraction(t)
	verbatim := byFields || (t.Host != nil && t.Host.IsRecord())

	var members []typesystem.Member
	if t.Host != nil {
		members = t.Host.Members()
	}

	for _, m := range members {
		if g.include != nil && !g.include(t, m) {
			continue
		}
		if m.Static() {
			continue
		}
		if !byFields && m.Kind() != typesystem.MemberAccessor {
			continue
		}
		if byFields {
			if m.Kind() != typesystem.MemberField {
				continue
			}
			if !m.Visibility().AtLeast(floor) {
				continue
			}
		}

		anns := m.Annotations()
		if anns.Has(typesystem.AnnotationIgnore) {
			continue
		}
		if m.FromBaseObject() {
			continue
		}

		name, ok := propertyName(m, verbatim)
		if !ok {
			continue
		}

		propType := m.Type()
		if override, ok := definedBy(anns); ok {
			propType = override
		}

		comp, err := DetectComposition(anns)
		if err != nil {
			return nil, fmt.Errorf("member %s.%s: %w", t.FQName, m.Name(), err)
		}

		extra, err := collectExtra(anns)
		if err != nil {
			return nil, fmt.Errorf("member %s.%s: %w", t.FQName, m.Name(), err)
		}

		props = append(props, PropertyDescriptor{
			Name:        name,
			Type:        propType,
			Required:    requireNonNull && (propType.Kind == typesystem.KindPrimitive || anns.Has(typesystem.AnnotationNotNull)),
			Composition: comp,
			Extra:       extra,
		})
	}

	for _, cp := range g.custom[t.Key()] {
		props = append(props, PropertyDescriptor{
			Name:     cp.Name,
			Type:     cp.Type,
			Required: requireNonNull,
		})
	}

	return props, nil
}

// fieldExtraction reports whether field-based extraction is enabled for the
// type and the visibility floor to apply to its fields.
func fieldExtraction(t typesystem.TypeDescriptor) (bool, typesystem.Visibility) {
	ann, ok := t.Annotations().Get(typesystem.AnnotationByFields)
	if !ok {
		return false, typesystem.VisibilityPublic
	}
	floor := typesystem.ParseVisibility(ann.StringAttr(typesystem.AttrVisibility, "package"))
	return true, floor
}

// definedBy returns the override type declared by a defined-by annotation.
func definedBy(as typesystem.Annotations) (typesystem.TypeDescriptor, bool) {
	ann, ok := as.Get(typesystem.AnnotationDefinedBy)
	if !ok {
		return typesystem.TypeDescriptor{}, false
	}
	v, ok := ann.Attr(typesystem.AttrType)
	if !ok || v.Kind != typesystem.ValueType {
		return typesystem.TypeDescriptor{}, false
	}
	return v.Type, true
}

// propertyName resolves the final property name. An explicit override wins;
// verbatim members keep their own name; everything else must match the
// getX/isX accessor shape or it yields no property at all.
func propertyName(m typesystem.Member, verbatim bool) (string, bool) {
	if ann, ok := m.Annotations().Get(typesystem.AnnotationName); ok {
		if name := ann.StringAttr(typesystem.AttrValue, ""); name != "" {
			return name, true
		}
	}

	if verbatim {
		return m.Name(), true
	}

	return stripAccessorPrefix(m.Name())
}

// stripAccessorPrefix turns getFoo/isActive into foo/active, lowercasing
// only the first remaining rune so initialisms survive. Names matching
// neither shape are skipped, not erred.
func stripAccessorPrefix(name string) (string, bool) {
	for _, prefix := range []string{"get", "is"} {
		if len(name) <= len(prefix) {
			continue
		}
		if !strings.EqualFold(name[:len(prefix)], prefix) {
			continue
		}
		rest := name[len(prefix):]
		first, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsUpper(first) {
			continue
		}
		return string(unicode.ToLower(first)) + rest[size:], true
	}
	return "", false
}
