// Package document assembles the fragments produced by the generator into a
// complete components section or a minimal OpenAPI document. It owns the
// "pop an unresolved reference, build it, union the new references" loop
// that resolves every referenced type exactly once.
package document

import (
	"errors"

	"github.com/cubahno/oasgen/pkg/generator"
	"github.com/cubahno/oasgen/pkg/schema"
	"github.com/cubahno/oasgen/pkg/typesystem"
)

var ErrNoRootTypes = errors.New("no root types given")

// Info is the minimal info block of an assembled document.
type Info struct {
	Title   string `koanf:"title" json:"title"`
	Version string `koanf:"version" json:"version"`
}

// Components builds every root type and then drains the accumulated
// reference set, placing each resolved type under its simple name exactly
// once. The returned node is the content of components/schemas.
func Components(g *generator.Generator, roots ...typesystem.TypeDescriptor) (*schema.Node, error) {
	if len(roots) == 0 {
		return nil, ErrNoRootTypes
	}

	schemas := schema.NewNode()
	seen := map[string]bool{}
	queue := append([]typesystem.TypeDescriptor(nil), roots...)

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		if seen[t.Key()] {
			continue
		}
		seen[t.Key()] = true

		node, err := g.Build(t)
		if err != nil {
			return nil, err
		}

		schemas.Set(t.Name, node)
		queue = append(queue, node.Refs()...)
	}

	return schemas, nil
}

// Document wraps the assembled components in a minimal OpenAPI 3 envelope.
// Paths, servers and security stay with the host application.
func Document(g *generator.Generator, info Info, roots ...typesystem.TypeDescriptor) (*schema.Node, error) {
	schemas, err := Components(g, roots...)
	if err != nil {
		return nil, err
	}

	infoNode := schema.NewNode()
	infoNode.Set("title", info.Title)
	infoNode.Set("version", info.Version)

	components := schema.NewNode()
	components.Set("schemas", schemas)

	doc := schema.NewNode()
	doc.Set("openapi", "3.0.3")
	doc.Set("info", infoNode)
	doc.Set("components", components)
	return doc, nil
}
