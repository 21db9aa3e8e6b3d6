package generator

import (
	"github.com/cubahno/oasgen/pkg/schema"
	"github.com/cubahno/oasgen/pkg/typesystem"
)

// RenderOptions carries the per-call rendering policy through the recursion.
type RenderOptions struct {
	// Inline expands referenced object and enum types in place instead of
	// emitting $refs. Used when no shared-definitions section exists.
	Inline bool

	// RequireNonNulls is the effective required-flag default at this point
	// of the traversal.
	RequireNonNulls bool
}

// Renderer is the recursion entry point handed to processors so their
// renderings can delegate back into the engine.
type Renderer interface {
	RenderEmbedded(t typesystem.TypeDescriptor, opts RenderOptions) (*schema.Node, error)
}

// Processor can fully intercept how a referenced (non-top-level) type is
// rendered. Processors are tried in registration order; the first one that
// reports handled supplies the node.
type Processor interface {
	Process(t typesystem.TypeDescriptor, r Renderer, opts RenderOptions) (*schema.Node, bool, error)
}

// UnwrapProcessor renders configured wrapper generics (optional-like types)
// as their single type argument.
type UnwrapProcessor struct {
	// Wrappers holds the fully-qualified names of wrapper types.
	Wrappers []string
}

func (p UnwrapProcessor) Process(t typesystem.TypeDescriptor, r Renderer, opts RenderOptions) (*schema.Node, bool, error) {
	if len(t.Args) != 1 {
		return nil, false, nil
	}
	for _, fq := range p.Wrappers {
		if t.FQName == fq {
			node, err := r.RenderEmbedded(t.Args[0], opts)
			return node, true, err
		}
	}
	return nil, false, nil
}

// RenderEmbedded renders a type as it appears nested inside another, with no
// property-level composition or metadata attached.
func (g *Generator) RenderEmbedded(t typesystem.TypeDescriptor, opts RenderOptions) (*schema.Node, error) {
	return g.renderEmbedded(t, opts, nil, nil)
}

// renderEmbedded is the embedded rendering pipeline: defined-by re-check,
// processor chain, composition, then the structural fallbacks. The extension
// metadata merge always runs last, whichever path produced the node.
func (g *Generator) renderEmbedded(t typesystem.TypeDescriptor, opts RenderOptions, comp *CompositionSpec, extra *schema.Node) (*schema.Node, error) {
	if override, ok := definedBy(t.Annotations()); ok {
		t = override
	}

	node, err := g.renderEmbeddedNode(t, opts, comp)
	if err != nil {
		return nil, err
	}

	mergeExtra(node, extra)
	return node, nil
}

func (g *Generator) renderEmbeddedNode(t typesystem.TypeDescriptor, opts RenderOptions, comp *CompositionSpec) (*schema.Node, error) {
	for _, p := range g.processors {
		node, handled, err := p.Process(t, g, opts)
		if err != nil {
			return nil, err
		}
		if handled {
			g.log.Debug("embedded type handled by processor", "type", t.Key())
			return node, nil
		}
	}

	if comp != nil {
		return g.renderComposition(comp, opts)
	}

	switch t.Kind {
	case typesystem.KindArray:
		return g.renderArray(t, opts)
	case typesystem.KindDictionary:
		return g.renderDictionary(t, opts)
	default:
		return g.referenceOrInline(t, opts)
	}
}

func (g *Generator) renderArray(t typesystem.TypeDescriptor, opts RenderOptions) (*schema.Node, error) {
	elem, ok := t.Elem()
	if !ok {
		node := schema.NewNode()
		node.Set("type", "array")
		return node, nil
	}

	// An array of single-byte elements is binary content, not a list of
	// integers.
	if g.byteTypes[elem.FQName] {
		node := schema.NewNode()
		node.Set("type", "string")
		node.Set("format", "binary")
		return node, nil
	}

	items, err := g.renderEmbedded(elem, opts, nil, nil)
	if err != nil {
		return nil, err
	}

	node := schema.NewNode()
	node.Set("type", "array")
	node.Set("items", items)
	node.MergeRefs(items)
	return node, nil
}

func (g *Generator) renderDictionary(t typesystem.TypeDescriptor, opts RenderOptions) (*schema.Node, error) {
	node := schema.NewNode()
	node.Set("type", "object")

	value, ok := t.Elem()
	if !ok {
		return node, nil
	}

	valueNode, err := g.renderEmbedded(value, opts, nil, nil)
	if err != nil {
		return nil, err
	}
	node.Set("additionalProperties", valueNode)
	node.MergeRefs(valueNode)
	return node, nil
}

// renderComposition emits the composition keyword with each member rendered
// embedded and all member reference sets unioned into the result.
func (g *Generator) renderComposition(comp *CompositionSpec, opts RenderOptions) (*schema.Node, error) {
	members := make([]any, 0, len(comp.Members))
	node := schema.NewNode()

	for _, member := range comp.Members {
		rendered, err := g.renderEmbedded(member, opts, nil, nil)
		if err != nil {
			return nil, err
		}
		members = append(members, rendered)
		node.MergeRefs(rendered)
	}

	node.Set(string(comp.Kind), members)

	if comp.Discriminator != "" {
		disc := schema.NewNode()
		disc.Set("propertyName", comp.Discriminator)
		node.Set("discriminator", disc)
	}

	return node, nil
}

// referenceOrInline applies the simple-type short-circuit, then the
// reference-vs-inline policy. With inlining off, a referenced object or enum
// is never recursed into: it renders as a $ref and is recorded in the
// reference set, which is what keeps cyclic type graphs bounded.
func (g *Generator) referenceOrInline(t typesystem.TypeDescriptor, opts RenderOptions) (*schema.Node, error) {
	if entry, ok := g.simpleTypes[t.FQName]; ok {
		return primitiveNode(entry), nil
	}

	if opts.Inline {
		return g.buildSchema(t, opts)
	}

	node := schema.NewNode()
	node.Set("$ref", g.cfg.RefPrefix+t.Name)
	node.AddRef(t)
	return node, nil
}

func primitiveNode(entry SimpleType) *schema.Node {
	node := schema.NewNode()
	node.Set("type", entry.Type)
	if entry.Format != "" {
		node.Set("format", entry.Format)
	}
	return node
}
