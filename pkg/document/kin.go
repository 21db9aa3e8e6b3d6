package document

import (
	"github.com/cubahno/oasgen/pkg/schema"
	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"
)

// KinSchema converts a generated node into a kin-openapi schema, so hosts
// already on that stack can splice generated fragments into their documents.
func KinSchema(node *schema.Node) (*openapi3.Schema, error) {
	data, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}

	out := &openapi3.Schema{}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// KinComponents converts an assembled components/schemas node into
// kin-openapi form, one named schema per key.
func KinComponents(components *schema.Node) (openapi3.Schemas, error) {
	out := make(openapi3.Schemas, components.Len())
	for _, name := range components.Keys() {
		v, _ := components.Get(name)
		node, ok := v.(*schema.Node)
		if !ok {
			continue
		}
		converted, err := KinSchema(node)
		if err != nil {
			return nil, err
		}
		out[name] = openapi3.NewSchemaRef("", converted)
	}
	return out, nil
}
