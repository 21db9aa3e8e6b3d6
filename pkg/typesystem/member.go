package typesystem

// Visibility is a member's access level. The ordering matters: it is used as
// a floor when field-based extraction is enabled.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityProtected
	VisibilityPackage
	VisibilityPublic
)

// AtLeast reports whether v is at least as open as the floor.
func (v Visibility) AtLeast(floor Visibility) bool {
	return v >= floor
}

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityProtected:
		return "protected"
	case VisibilityPackage:
		return "package"
	case VisibilityPublic:
		return "public"
	}
	return "unknown"
}

// ParseVisibility maps a textual visibility to its value. Unknown values
// default to private, the most restrictive floor.
func ParseVisibility(s string) Visibility {
	switch s {
	case "public":
		return VisibilityPublic
	case "package":
		return VisibilityPackage
	case "protected":
		return VisibilityProtected
	}
	return VisibilityPrivate
}

// MemberKind distinguishes stored fields from method-like accessors.
type MemberKind string

const (
	MemberField    MemberKind = "field"
	MemberAccessor MemberKind = "accessor"
)

// Member is a single declared member of a host type: a field, an accessor
// method, or an enum constant (a static field of the enum's own type).
type Member interface {
	// Name is the member's own declared name, before any naming heuristic.
	Name() string

	Visibility() Visibility

	// Static reports whether the member belongs to the type rather than to
	// instances. Enum constants are static members of their enum type.
	Static() bool

	Kind() MemberKind

	// Type is the member's declared type: the field type for fields, the
	// return type for accessors.
	Type() TypeDescriptor

	Annotations() Annotations

	// FromBaseObject reports whether the member is inherited from the
	// universal base object type (toString-like boilerplate that never
	// becomes a schema property).
	FromBaseObject() bool
}
