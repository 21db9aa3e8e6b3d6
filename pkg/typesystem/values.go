package typesystem

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// ValueInvalid is the zero kind. The generator treats it as a hard
	// failure: an unknown value shape must never pass through silently.
	ValueInvalid ValueKind = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueString

	// ValueType holds a type reference; it coerces to the type's
	// fully-qualified name.
	ValueType

	// ValueEnum holds an enum constant; it coerces to the constant's name.
	ValueEnum

	ValueArray

	// ValueAnnotation holds a nested annotation. Nested annotation metadata
	// is unsupported and rejected by the extension merger.
	ValueAnnotation
)

func (k ValueKind) String() string {
	switch k {
	case ValueBool:
		return "bool"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueString:
		return "string"
	case ValueType:
		return "type"
	case ValueEnum:
		return "enum"
	case ValueArray:
		return "array"
	case ValueAnnotation:
		return "annotation"
	}
	return "invalid"
}

// Value is a tagged variant for heterogeneous annotation attribute values.
// Exactly one of the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind

	Bool  bool
	Int   int64
	Float float64

	// Str holds both string and enum-constant payloads.
	Str string

	Type  TypeDescriptor
	Elems []Value
	Ann   *Annotation
}

func BoolValue(v bool) Value      { return Value{Kind: ValueBool, Bool: v} }
func IntValue(v int64) Value      { return Value{Kind: ValueInt, Int: v} }
func FloatValue(v float64) Value  { return Value{Kind: ValueFloat, Float: v} }
func StringValue(v string) Value  { return Value{Kind: ValueString, Str: v} }
func EnumValue(name string) Value { return Value{Kind: ValueEnum, Str: name} }

func TypeValue(t TypeDescriptor) Value { return Value{Kind: ValueType, Type: t} }

func ArrayValue(elems ...Value) Value { return Value{Kind: ValueArray, Elems: elems} }

func AnnotationValue(a Annotation) Value { return Value{Kind: ValueAnnotation, Ann: &a} }
