// Package typesystem defines the host-agnostic view of a type graph.
//
// The schema generator never inspects source code or uses reflection on its
// own. A host collaborator (for example pkg/reflecthost) implements the
// interfaces in this package over whatever native introspection facility it
// has, and the generator only ever talks to these interfaces.
package typesystem

import "strings"

// Kind is the structural kind of a type.
type Kind string

const (
	KindObject     Kind = "object"
	KindEnum       Kind = "enum"
	KindArray      Kind = "array"
	KindDictionary Kind = "dictionary"
	KindPrimitive  Kind = "primitive"
)

// TypeDescriptor is the canonical identity of a type in the host type system.
// Two descriptors with the same fully-qualified name and generic arguments
// are considered the same type for deduplication purposes.
//
// Descriptors are immutable values. Host is a handle back to the host's raw
// type-system node and is only ever queried, never mutated.
type TypeDescriptor struct {
	// FQName is the fully-qualified type name, e.g. "time.Time".
	FQName string

	// Name is the simple name used for $ref targets, e.g. "Time".
	Name string

	Kind Kind

	// Args holds generic type arguments in declaration order.
	// Arrays carry their element type as Args[0]; dictionaries carry
	// [key, value].
	Args []TypeDescriptor

	// Host is the raw type-system handle, nil for types that have no
	// queryable structure (primitives, synthetic types).
	Host HostType
}

// Key returns the canonical deduplication key: the fully-qualified name plus
// the keys of all generic arguments.
func (t TypeDescriptor) Key() string {
	if len(t.Args) == 0 {
		return t.FQName
	}
	parts := make([]string, len(t.Args))
	for i, arg := range t.Args {
		parts[i] = arg.Key()
	}
	return t.FQName + "[" + strings.Join(parts, ",") + "]"
}

// Equal reports whether two descriptors denote the same type.
func (t TypeDescriptor) Equal(other TypeDescriptor) bool {
	return t.Key() == other.Key()
}

// Elem returns the element type of an array or the value type of a
// dictionary, and whether one is present.
func (t TypeDescriptor) Elem() (TypeDescriptor, bool) {
	switch t.Kind {
	case KindArray:
		if len(t.Args) > 0 {
			return t.Args[0], true
		}
	case KindDictionary:
		if len(t.Args) > 0 {
			return t.Args[len(t.Args)-1], true
		}
	}
	return TypeDescriptor{}, false
}

// Annotations returns the type-level annotations, or an empty set when the
// descriptor has no host handle.
func (t TypeDescriptor) Annotations() Annotations {
	if t.Host == nil {
		return nil
	}
	return t.Host.Annotations()
}

// IsZero reports whether the descriptor is the zero value.
func (t TypeDescriptor) IsZero() bool {
	return t.FQName == "" && t.Name == ""
}

// HostType is the raw type-system node behind a TypeDescriptor.
// Implementations must be safe for concurrent reads; the generator never
// writes through this interface.
type HostType interface {
	// Members returns the declared members in declaration order.
	// For enum kinds this includes the constant members.
	Members() []Member

	// Annotations returns the annotations attached to the type itself.
	Annotations() Annotations

	// IsRecord reports whether the type is a value record: its members are
	// named verbatim instead of through the accessor naming heuristic.
	IsRecord() bool
}

// Introspector answers type-relation questions the generator cannot decide
// from descriptors alone.
type Introspector interface {
	// IsAssignable reports whether a value of candidate can be assigned to
	// target. Used to filter enum constants and composition members.
	IsAssignable(target, candidate TypeDescriptor) bool
}

// KeyIntrospector is the fallback Introspector: types are assignable only to
// themselves.
type KeyIntrospector struct{}

func (KeyIntrospector) IsAssignable(target, candidate TypeDescriptor) bool {
	return target.Key() == candidate.Key()
}
