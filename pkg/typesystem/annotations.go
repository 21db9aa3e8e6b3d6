package typesystem

// Well-known annotation names recognized by the generator. Hosts translate
// their native markers (struct tags, registered metadata) into these.
const (
	// AnnotationName overrides the generated property name outright.
	AnnotationName = "openapi.name"

	// AnnotationIgnore excludes a member from property extraction.
	AnnotationIgnore = "openapi.ignore"

	// AnnotationExample attaches an example value to the generated node.
	AnnotationExample = "openapi.example"

	// AnnotationDefinedBy renders a type or member as a different type
	// entirely. Checked before every other branch.
	AnnotationDefinedBy = "openapi.definedBy"

	// AnnotationNotNull marks a member's value as guaranteed non-absent.
	AnnotationNotNull = "openapi.notNull"

	// AnnotationRequireNonNulls overrides the ambient require-non-nulls
	// default for one type before it is passed down to its properties.
	AnnotationRequireNonNulls = "openapi.requireNonNulls"

	// AnnotationByFields switches a type to field-based extraction with an
	// optional visibility floor.
	AnnotationByFields = "openapi.byFields"

	// Composition annotations declare "one of these subtypes" on a type or
	// a single property.
	AnnotationOneOf = "openapi.oneOf"
	AnnotationAnyOf = "openapi.anyOf"
	AnnotationAllOf = "openapi.allOf"

	AnnotationDescription = "openapi.description"
	AnnotationDeprecated  = "openapi.deprecated"
	AnnotationFormat      = "openapi.format"
)

// Common attribute names.
const (
	AttrValue         = "value"
	AttrType          = "type"
	AttrTypes         = "types"
	AttrVisibility    = "visibility"
	AttrDiscriminator = "discriminator"
)

// Attribute is a single named value declared on an annotation.
type Attribute struct {
	Name  string
	Value Value
}

// Annotation is one annotation attached to a type or member, with its
// declared attributes (including defaults) in declaration order.
type Annotation struct {
	Name string

	// CustomMetadata marks annotations whose attributes contribute custom
	// key/value pairs to the generated schema node.
	CustomMetadata bool

	Attributes []Attribute
}

// Attr returns the named attribute's value.
func (a Annotation) Attr(name string) (Value, bool) {
	for _, attr := range a.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return Value{}, false
}

// StringAttr returns the named attribute as a string, or fallback when the
// attribute is absent or not a string.
func (a Annotation) StringAttr(name, fallback string) string {
	v, ok := a.Attr(name)
	if !ok || v.Kind != ValueString {
		return fallback
	}
	return v.Str
}

// BoolAttr returns the named attribute as a bool, or fallback.
func (a Annotation) BoolAttr(name string, fallback bool) bool {
	v, ok := a.Attr(name)
	if !ok || v.Kind != ValueBool {
		return fallback
	}
	return v.Bool
}

// Annotations is an ordered set of annotations, queryable by name.
type Annotations []Annotation

// Get returns the first annotation with the given name.
func (as Annotations) Get(name string) (Annotation, bool) {
	for _, a := range as {
		if a.Name == name {
			return a, true
		}
	}
	return Annotation{}, false
}

// Has reports whether an annotation with the given name is present.
func (as Annotations) Has(name string) bool {
	_, ok := as.Get(name)
	return ok
}

// NewAnnotation builds an annotation from name/value attribute pairs.
func NewAnnotation(name string, attrs ...Attribute) Annotation {
	return Annotation{Name: name, Attributes: attrs}
}

// NewCustomAnnotation builds an annotation carrying the custom metadata
// marker.
func NewCustomAnnotation(name string, attrs ...Attribute) Annotation {
	return Annotation{Name: name, CustomMetadata: true, Attributes: attrs}
}
