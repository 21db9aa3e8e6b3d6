package reflecthost

import (
	"reflect"

	"github.com/cubahno/oasgen/pkg/typesystem"
)

// baseObjectMethods are the interface-satisfying accessors every Go type may
// grow that never describe data: the toString-like boilerplate.
var baseObjectMethods = map[string]bool{
	"String":      true,
	"Error":       true,
	"GoString":    true,
	"MarshalJSON": true,
	"MarshalYAML": true,
	"MarshalText": true,
}

// hostType is the raw type handle handed out in descriptors.
type hostType struct {
	h  *Host
	rt reflect.Type
}

func (t *hostType) IsRecord() bool {
	return false
}

func (t *hostType) Annotations() typesystem.Annotations {
	anns := t.h.typeAnns[t.rt]

	if t.h.opts.FieldsByDefault && t.rt.Kind() == reflect.Struct && !anns.Has(typesystem.AnnotationByFields) {
		anns = append(append(typesystem.Annotations{}, anns...),
			typesystem.NewAnnotation(typesystem.AnnotationByFields))
	}
	return anns
}

// Members lists enum constants for registered enums, otherwise the struct's
// fields in declaration order followed by its accessor-shaped methods.
// Method order follows reflect, which sorts them lexically.
func (t *hostType) Members() []typesystem.Member {
	if names, ok := t.h.enums[t.rt]; ok {
		members := make([]typesystem.Member, 0, len(names))
		for _, name := range names {
			members = append(members, &constantMember{h: t.h, rt: t.rt, name: name})
		}
		return members
	}

	if t.rt.Kind() != reflect.Struct {
		return nil
	}

	var members []typesystem.Member

	for i := 0; i < t.rt.NumField(); i++ {
		members = append(members, &fieldMember{h: t.h, owner: t.rt, field: t.rt.Field(i)})
	}

	// Pointer receivers included: accessors are commonly defined on *T.
	pt := reflect.PointerTo(t.rt)
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		members = append(members, &accessorMember{h: t.h, owner: t.rt, method: m})
	}

	return members
}

type fieldMember struct {
	h     *Host
	owner reflect.Type
	field reflect.StructField
}

func (m *fieldMember) Name() string { return m.field.Name }

func (m *fieldMember) Visibility() typesystem.Visibility {
	if m.field.IsExported() {
		return typesystem.VisibilityPublic
	}
	return typesystem.VisibilityPrivate
}

func (m *fieldMember) Static() bool { return false }

func (m *fieldMember) Kind() typesystem.MemberKind { return typesystem.MemberField }

func (m *fieldMember) Type() typesystem.TypeDescriptor {
	return m.h.ResolveType(m.field.Type)
}

func (m *fieldMember) Annotations() typesystem.Annotations {
	anns := parseTag(m.field.Tag)
	if extra, ok := m.h.memberAnns[m.owner][m.field.Name]; ok {
		anns = append(anns, extra...)
	}
	return anns
}

func (m *fieldMember) FromBaseObject() bool { return false }

type accessorMember struct {
	h      *Host
	owner  reflect.Type
	method reflect.Method
}

func (m *accessorMember) Name() string { return m.method.Name }

func (m *accessorMember) Visibility() typesystem.Visibility {
	return typesystem.VisibilityPublic
}

func (m *accessorMember) Static() bool { return false }

func (m *accessorMember) Kind() typesystem.MemberKind { return typesystem.MemberAccessor }

func (m *accessorMember) Type() typesystem.TypeDescriptor {
	return m.h.ResolveType(m.method.Type.Out(0))
}

func (m *accessorMember) Annotations() typesystem.Annotations {
	return m.h.memberAnns[m.owner][m.method.Name]
}

func (m *accessorMember) FromBaseObject() bool {
	return baseObjectMethods[m.method.Name]
}

// constantMember models a registered enum constant as a static field of the
// enum's own type.
type constantMember struct {
	h    *Host
	rt   reflect.Type
	name string
}

func (m *constantMember) Name() string { return m.name }

func (m *constantMember) Visibility() typesystem.Visibility {
	return typesystem.VisibilityPublic
}

func (m *constantMember) Static() bool { return true }

func (m *constantMember) Kind() typesystem.MemberKind { return typesystem.MemberField }

func (m *constantMember) Type() typesystem.TypeDescriptor {
	return m.h.ResolveType(m.rt)
}

func (m *constantMember) Annotations() typesystem.Annotations { return nil }

func (m *constantMember) FromBaseObject() bool { return false }
