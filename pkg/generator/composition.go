package generator

import (
	"fmt"

	"github.com/cubahno/oasgen/pkg/typesystem"
)

// CompositionKind is the JSON-Schema keyword a composition renders as.
type CompositionKind string

const (
	OneOf CompositionKind = "oneOf"
	AnyOf CompositionKind = "anyOf"
	AllOf CompositionKind = "allOf"
)

// CompositionSpec is an explicit "one of these subtypes" declaration found
// on a type or on a single property.
type CompositionSpec struct {
	Kind    CompositionKind
	Members []typesystem.TypeDescriptor

	// Discriminator is the optional property name distinguishing members.
	Discriminator string
}

// compositionAnnotations maps annotation names to keywords in detection
// order. Only the first match counts.
var compositionAnnotations = []struct {
	name string
	kind CompositionKind
}{
	{typesystem.AnnotationOneOf, OneOf},
	{typesystem.AnnotationAnyOf, AnyOf},
	{typesystem.AnnotationAllOf, AllOf},
}

// DetectComposition inspects an annotation set for a composition declaration
// and returns its spec, or nil when none is declared. A declaration without
// a well-formed types array is a hard failure.
func DetectComposition(as typesystem.Annotations) (*CompositionSpec, error) {
	for _, ca := range compositionAnnotations {
		ann, ok := as.Get(ca.name)
		if !ok {
			continue
		}

		types, ok := ann.Attr(typesystem.AttrTypes)
		if !ok || types.Kind != typesystem.ValueArray {
			return nil, fmt.Errorf("%w: %s must declare a types array", ErrInvalidComposition, ann.Name)
		}

		members := make([]typesystem.TypeDescriptor, 0, len(types.Elems))
		for _, elem := range types.Elems {
			if elem.Kind != typesystem.ValueType {
				return nil, fmt.Errorf("%w: %s member is %s, want a type reference",
					ErrInvalidComposition, ann.Name, elem.Kind)
			}
			members = append(members, elem.Type)
		}

		return &CompositionSpec{
			Kind:          ca.kind,
			Members:       members,
			Discriminator: ann.StringAttr(typesystem.AttrDiscriminator, ""),
		}, nil
	}

	return nil, nil
}
