package reflecthost

import (
	"reflect"
	"strings"

	"github.com/cubahno/oasgen/pkg/typesystem"
)

// TagName is the struct tag carrying per-field annotations, e.g.
//
//	Name string `openapi:"name=fullName,notNull,example=Jane"`
const TagName = "openapi"

// parseTag translates an openapi struct tag, plus the json tag name as a
// fallback name override, into annotations.
func parseTag(tag reflect.StructTag) typesystem.Annotations {
	var anns typesystem.Annotations

	seenName := false
	for _, part := range strings.Split(tag.Get(TagName), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, _ := strings.Cut(part, "=")
		switch key {
		case "name":
			if value != "" {
				anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationName,
					typesystem.Attribute{Name: typesystem.AttrValue, Value: typesystem.StringValue(value)}))
				seenName = true
			}
		case "ignore":
			anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationIgnore))
		case "notNull", "required":
			anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationNotNull))
		case "example":
			anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationExample,
				typesystem.Attribute{Name: typesystem.AttrValue, Value: typesystem.StringValue(value)}))
		case "description":
			anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationDescription,
				typesystem.Attribute{Name: typesystem.AttrValue, Value: typesystem.StringValue(value)}))
		case "format":
			anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationFormat,
				typesystem.Attribute{Name: typesystem.AttrValue, Value: typesystem.StringValue(value)}))
		case "deprecated":
			anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationDeprecated,
				typesystem.Attribute{Name: typesystem.AttrValue, Value: typesystem.BoolValue(true)}))
		}
	}

	jsonName, jsonIgnored := jsonTagName(tag)
	if jsonIgnored {
		anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationIgnore))
	} else if !seenName && jsonName != "" {
		anns = append(anns, typesystem.NewAnnotation(typesystem.AnnotationName,
			typesystem.Attribute{Name: typesystem.AttrValue, Value: typesystem.StringValue(jsonName)}))
	}

	return anns
}

func jsonTagName(tag reflect.StructTag) (string, bool) {
	jsonTag, ok := tag.Lookup("json")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(jsonTag, ",")
	if name == "-" {
		return "", true
	}
	return name, false
}
