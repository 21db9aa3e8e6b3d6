package generator

import (
	"github.com/cubahno/oasgen/pkg/typesystem"
)

// fakeType is an in-memory HostType for tests.
type fakeType struct {
	members []typesystem.Member
	anns    typesystem.Annotations
	record  bool
}

func (f *fakeType) Members() []typesystem.Member        { return f.members }
func (f *fakeType) Annotations() typesystem.Annotations { return f.anns }
func (f *fakeType) IsRecord() bool                      { return f.record }

type fakeMember struct {
	name   string
	vis    typesystem.Visibility
	static bool
	kind   typesystem.MemberKind
	typ    typesystem.TypeDescriptor
	anns   typesystem.Annotations
	base   bool
}

func (m *fakeMember) Name() string                        { return m.name }
func (m *fakeMember) Visibility() typesystem.Visibility   { return m.vis }
func (m *fakeMember) Static() bool                        { return m.static }
func (m *fakeMember) Kind() typesystem.MemberKind         { return m.kind }
func (m *fakeMember) Type() typesystem.TypeDescriptor     { return m.typ }
func (m *fakeMember) Annotations() typesystem.Annotations { return m.anns }
func (m *fakeMember) FromBaseObject() bool                { return m.base }

func intType() typesystem.TypeDescriptor {
	return typesystem.TypeDescriptor{FQName: "int", Name: "int", Kind: typesystem.KindPrimitive}
}

func stringType() typesystem.TypeDescriptor {
	return typesystem.TypeDescriptor{FQName: "string", Name: "string", Kind: typesystem.KindPrimitive}
}

func boolType() typesystem.TypeDescriptor {
	return typesystem.TypeDescriptor{FQName: "bool", Name: "bool", Kind: typesystem.KindPrimitive}
}

func arrayOf(elem typesystem.TypeDescriptor) typesystem.TypeDescriptor {
	return typesystem.TypeDescriptor{
		FQName: "[]" + elem.FQName,
		Name:   "[]" + elem.Name,
		Kind:   typesystem.KindArray,
		Args:   []typesystem.TypeDescriptor{elem},
	}
}

func mapOf(key, value typesystem.TypeDescriptor) typesystem.TypeDescriptor {
	return typesystem.TypeDescriptor{
		FQName: "map[" + key.FQName + "]" + value.FQName,
		Name:   "map[" + key.Name + "]" + value.Name,
		Kind:   typesystem.KindDictionary,
		Args:   []typesystem.TypeDescriptor{key, value},
	}
}

func objectType(name string, members ...typesystem.Member) typesystem.TypeDescriptor {
	return annotatedObject(name, nil, members...)
}

func annotatedObject(name string, anns typesystem.Annotations, members ...typesystem.Member) typesystem.TypeDescriptor {
	return typesystem.TypeDescriptor{
		FQName: "test." + name,
		Name:   name,
		Kind:   typesystem.KindObject,
		Host:   &fakeType{members: members, anns: anns},
	}
}

// enumType builds an enum whose constants are static fields of the enum's
// own type.
func enumType(name string, constants ...string) typesystem.TypeDescriptor {
	host := &fakeType{}
	td := typesystem.TypeDescriptor{
		FQName: "test." + name,
		Name:   name,
		Kind:   typesystem.KindEnum,
		Host:   host,
	}
	for _, c := range constants {
		host.members = append(host.members, &fakeMember{
			name:   c,
			vis:    typesystem.VisibilityPublic,
			static: true,
			kind:   typesystem.MemberField,
			typ:    td,
		})
	}
	return td
}

func accessor(name string, typ typesystem.TypeDescriptor, anns ...typesystem.Annotation) typesystem.Member {
	return &fakeMember{
		name: name,
		vis:  typesystem.VisibilityPublic,
		kind: typesystem.MemberAccessor,
		typ:  typ,
		anns: anns,
	}
}

func fieldOf(name string, typ typesystem.TypeDescriptor, vis typesystem.Visibility, anns ...typesystem.Annotation) typesystem.Member {
	return &fakeMember{
		name: name,
		vis:  vis,
		kind: typesystem.MemberField,
		typ:  typ,
		anns: anns,
	}
}

func byFieldsAnn(visibility string) typesystem.Annotation {
	attrs := []typesystem.Attribute{}
	if visibility != "" {
		attrs = append(attrs, typesystem.Attribute{
			Name:  typesystem.AttrVisibility,
			Value: typesystem.StringValue(visibility),
		})
	}
	return typesystem.NewAnnotation(typesystem.AnnotationByFields, attrs...)
}

func nameAnn(name string) typesystem.Annotation {
	return typesystem.NewAnnotation(typesystem.AnnotationName,
		typesystem.Attribute{Name: typesystem.AttrValue, Value: typesystem.StringValue(name)})
}

func exampleAnn(value typesystem.Value) typesystem.Annotation {
	return typesystem.NewAnnotation(typesystem.AnnotationExample,
		typesystem.Attribute{Name: typesystem.AttrValue, Value: value})
}

func definedByAnn(t typesystem.TypeDescriptor) typesystem.Annotation {
	return typesystem.NewAnnotation(typesystem.AnnotationDefinedBy,
		typesystem.Attribute{Name: typesystem.AttrType, Value: typesystem.TypeValue(t)})
}

func oneOfAnn(members ...typesystem.TypeDescriptor) typesystem.Annotation {
	elems := make([]typesystem.Value, 0, len(members))
	for _, m := range members {
		elems = append(elems, typesystem.TypeValue(m))
	}
	return typesystem.NewAnnotation(typesystem.AnnotationOneOf,
		typesystem.Attribute{Name: typesystem.AttrTypes, Value: typesystem.ArrayValue(elems...)})
}

func newGenerator() *Generator {
	return New(Options{})
}
