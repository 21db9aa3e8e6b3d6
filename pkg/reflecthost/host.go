// Package reflecthost implements the typesystem interfaces over Go
// reflection, so plain Go values can be fed to the generator.
//
// Struct tags carry the per-field annotations; richer metadata (method-level
// annotations, compositions, custom metadata annotations) is attached
// through the programmatic registry, since struct tags cannot express typed
// arrays or nested values. Enum types are modeled by registration: Go
// reflection cannot enumerate the constants of a named type.
//
// A Host is configured before the first schema build and is read-only
// afterwards; concurrent builds may share one Host freely.
package reflecthost

import (
	"reflect"

	"github.com/cubahno/oasgen/pkg/typesystem"
)

// Options tunes how Go types are presented to the generator.
type Options struct {
	// FieldsByDefault treats every struct as field-extracted, as if it
	// carried a byFields annotation. Without it only GetX/IsX accessor
	// methods produce properties, which is rarely what plain Go structs
	// want.
	FieldsByDefault bool
}

// Host resolves Go types into type descriptors and answers the generator's
// introspection queries.
type Host struct {
	opts       Options
	enums      map[reflect.Type][]string
	typeAnns   map[reflect.Type]typesystem.Annotations
	memberAnns map[reflect.Type]map[string]typesystem.Annotations
}

// New returns a host with default options.
func New() *Host {
	return NewWithOptions(Options{})
}

// NewWithOptions returns a host with the given options.
func NewWithOptions(opts Options) *Host {
	return &Host{
		opts:       opts,
		enums:      map[reflect.Type][]string{},
		typeAnns:   map[reflect.Type]typesystem.Annotations{},
		memberAnns: map[reflect.Type]map[string]typesystem.Annotations{},
	}
}

// RegisterEnum declares the constant names of a named type, in declaration
// order. The sample carries the type; its value is ignored.
func (h *Host) RegisterEnum(sample any, names ...string) {
	rt := baseType(reflect.TypeOf(sample))
	h.enums[rt] = append([]string(nil), names...)
}

// Annotate attaches type-level annotations to the sample's type.
func (h *Host) Annotate(sample any, anns ...typesystem.Annotation) {
	rt := baseType(reflect.TypeOf(sample))
	h.typeAnns[rt] = append(h.typeAnns[rt], anns...)
}

// AnnotateMember attaches annotations to one field or method of the
// sample's type, by its declared name.
func (h *Host) AnnotateMember(sample any, member string, anns ...typesystem.Annotation) {
	rt := baseType(reflect.TypeOf(sample))
	if h.memberAnns[rt] == nil {
		h.memberAnns[rt] = map[string]typesystem.Annotations{}
	}
	h.memberAnns[rt][member] = append(h.memberAnns[rt][member], anns...)
}

// Resolve returns the descriptor for a sample value's type.
func (h *Host) Resolve(sample any) typesystem.TypeDescriptor {
	return h.ResolveType(reflect.TypeOf(sample))
}

// ResolveType returns the descriptor for a reflect type. Pointers are
// unwrapped: optionality is a property concern, not a type identity.
func (h *Host) ResolveType(rt reflect.Type) typesystem.TypeDescriptor {
	rt = baseType(rt)

	if _, ok := h.enums[rt]; ok {
		return typesystem.TypeDescriptor{
			FQName: rt.String(),
			Name:   rt.Name(),
			Kind:   typesystem.KindEnum,
			Host:   &hostType{h: h, rt: rt},
		}
	}

	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		return typesystem.TypeDescriptor{
			FQName: rt.String(),
			Name:   rt.String(),
			Kind:   typesystem.KindArray,
			Args:   []typesystem.TypeDescriptor{h.ResolveType(rt.Elem())},
		}

	case reflect.Map:
		return typesystem.TypeDescriptor{
			FQName: rt.String(),
			Name:   rt.String(),
			Kind:   typesystem.KindDictionary,
			Args: []typesystem.TypeDescriptor{
				h.ResolveType(rt.Key()),
				h.ResolveType(rt.Elem()),
			},
		}

	case reflect.Struct:
		name := rt.Name()
		fq := rt.String()
		if name == "" {
			name = fq
		}
		return typesystem.TypeDescriptor{
			FQName: fq,
			Name:   name,
			Kind:   typesystem.KindObject,
			Host:   &hostType{h: h, rt: rt},
		}

	case reflect.Interface:
		return typesystem.TypeDescriptor{
			FQName: rt.String(),
			Name:   rt.String(),
			Kind:   typesystem.KindObject,
		}

	default:
		// Named basics resolve to their underlying kind so they hit the
		// simple-type table; a distinct rendering needs an enum
		// registration or a simpleTypes config entry.
		return typesystem.TypeDescriptor{
			FQName: rt.Kind().String(),
			Name:   rt.Kind().String(),
			Kind:   typesystem.KindPrimitive,
		}
	}
}

// IsAssignable implements typesystem.Introspector via the reflect
// assignability rules, falling back to key equality for descriptors that
// did not come from this host.
func (h *Host) IsAssignable(target, candidate typesystem.TypeDescriptor) bool {
	tt, tok := hostReflectType(target)
	ct, cok := hostReflectType(candidate)
	if tok && cok {
		return ct.AssignableTo(tt)
	}
	return target.Key() == candidate.Key()
}

func hostReflectType(t typesystem.TypeDescriptor) (reflect.Type, bool) {
	ht, ok := t.Host.(*hostType)
	if !ok {
		return nil, false
	}
	return ht.rt, true
}

func baseType(rt reflect.Type) reflect.Type {
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt
}
