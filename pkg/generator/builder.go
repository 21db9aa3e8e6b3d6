// Package generator compiles type descriptors into OpenAPI / JSON Schema
// fragments. The traversal is a single-threaded recursive descent; all
// generator state is frozen at construction, so distinct builds may run
// concurrently without coordination.
package generator

import (
	"log/slog"

	"github.com/cubahno/oasgen/pkg/schema"
	"github.com/cubahno/oasgen/pkg/typesystem"
)

// Options collects the setup-time collaborators of a Generator. Everything
// here is read-only after New returns.
type Options struct {
	Config *Config

	// Processors are tried in order for every embedded type; first handler
	// wins.
	Processors []Processor

	// PropertyFilter is the host-provided inclusion predicate, applied
	// before any other member filter.
	PropertyFilter PropertyFilter

	// CustomProperties injects properties with no declared member, keyed by
	// the owning type's canonical key.
	CustomProperties map[string][]CustomProperty

	// Introspector answers assignability questions. Defaults to exact key
	// equality.
	Introspector typesystem.Introspector

	Logger *slog.Logger
}

// Generator turns type descriptors into schema nodes. Create one with New;
// the zero value is not usable.
type Generator struct {
	cfg         *Config
	simpleTypes map[string]SimpleType
	byteTypes   map[string]bool
	processors  []Processor
	include     PropertyFilter
	custom      map[string][]CustomProperty
	intro       typesystem.Introspector
	log         *slog.Logger
}

// New builds a Generator from the given options, overlaying configured
// simple-type mappings onto the built-in table and freezing everything.
func New(opts Options) *Generator {
	cfg := opts.Config.freeze()

	simpleTypes := DefaultSimpleTypes()
	for name, entry := range cfg.SimpleTypes {
		simpleTypes[name] = entry
	}

	byteTypes := make(map[string]bool, len(cfg.ByteTypes))
	for _, name := range cfg.ByteTypes {
		byteTypes[name] = true
	}

	custom := make(map[string][]CustomProperty, len(opts.CustomProperties))
	for key, props := range opts.CustomProperties {
		custom[key] = append([]CustomProperty(nil), props...)
	}

	intro := opts.Introspector
	if intro == nil {
		intro = typesystem.KeyIntrospector{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		cfg:         cfg,
		simpleTypes: simpleTypes,
		byteTypes:   byteTypes,
		processors:  append([]Processor(nil), opts.Processors...),
		include:     opts.PropertyFilter,
		custom:      custom,
		intro:       intro,
		log:         logger,
	}
}

// Config returns the frozen configuration.
func (g *Generator) Config() *Config {
	return g.cfg
}

// Build builds the schema for a root type with the configured defaults:
// references are emitted as $refs for the caller to resolve.
func (g *Generator) Build(t typesystem.TypeDescriptor) (*schema.Node, error) {
	return g.BuildSchema(t, false, g.cfg.RequireNonNulls)
}

// BuildSchema builds the schema node for a type. With inlineRefs false every
// referenced object or enum type renders as a $ref and lands in the node's
// reference set; with true the whole graph is expanded in place.
func (g *Generator) BuildSchema(t typesystem.TypeDescriptor, inlineRefs, requireNonNulls bool) (*schema.Node, error) {
	return g.buildSchema(t, RenderOptions{Inline: inlineRefs, RequireNonNulls: requireNonNulls})
}

func (g *Generator) buildSchema(t typesystem.TypeDescriptor, opts RenderOptions) (*schema.Node, error) {
	anns := t.Annotations()

	// The defined-by override is absolute: it wins over composition, enum
	// handling and the simple-type table.
	if override, ok := definedBy(anns); ok {
		g.log.Debug("type redefined", "type", t.Key(), "as", override.Key())
		return g.buildSchema(override, opts)
	}

	if entry, ok := g.simpleTypes[t.FQName]; ok {
		return primitiveNode(entry), nil
	}

	// A type-level annotation may override the ambient required default
	// before it is passed down to the properties.
	if ann, ok := anns.Get(typesystem.AnnotationRequireNonNulls); ok {
		opts.RequireNonNulls = ann.BoolAttr(typesystem.AttrValue, opts.RequireNonNulls)
	}

	comp, err := DetectComposition(anns)
	if err != nil {
		return nil, err
	}
	if comp != nil {
		return g.renderComposition(comp, opts)
	}

	if t.Kind == typesystem.KindEnum {
		return g.buildEnum(t)
	}

	if t.Kind == typesystem.KindArray || t.Kind == typesystem.KindDictionary {
		return g.renderEmbedded(t, opts, nil, nil)
	}

	return g.buildObject(t, anns, opts)
}

// buildEnum emits the enum's constant names: the static members whose type
// is assignable to the enum itself, in declaration order, deduplicated.
// Constants of sibling types are filtered out, which is what makes enum
// subsets work.
func (g *Generator) buildEnum(t typesystem.TypeDescriptor) (*schema.Node, error) {
	values := make([]any, 0)
	seen := map[string]bool{}

	var members []typesystem.Member
	if t.Host != nil {
		members = t.Host.Members()
	}

	for _, m := range members {
		if !m.Static() || m.Kind() != typesystem.MemberField {
			continue
		}
		if !g.intro.IsAssignable(t, m.Type()) {
			continue
		}
		if seen[m.Name()] {
			continue
		}
		seen[m.Name()] = true
		values = append(values, m.Name())
	}

	node := schema.NewNode()
	node.Set("type", "string")
	node.Set("enum", values)
	return node, nil
}

func (g *Generator) buildObject(t typesystem.TypeDescriptor, anns typesystem.Annotations, opts RenderOptions) (*schema.Node, error) {
	g.log.Debug("building object schema", "type", t.Key(), "inline", opts.Inline)

	node := schema.NewNode()
	node.Set("type", "object")
	node.Set("additionalProperties", false)

	extra, err := collectExtra(anns)
	if err != nil {
		return nil, err
	}
	mergeExtra(node, extra)

	props, err := g.extractProperties(t, opts.RequireNonNulls)
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		return node, nil
	}

	properties := schema.NewNode()
	var required []any

	for _, p := range props {
		rendered, err := g.renderEmbedded(p.Type, opts, p.Composition, p.Extra)
		if err != nil {
			return nil, err
		}
		properties.Set(p.Name, rendered)
		node.MergeRefs(rendered)
		if p.Required {
			required = append(required, p.Name)
		}
	}

	node.Set("properties", properties)
	if len(required) > 0 {
		node.Set("required", required)
	}

	return node, nil
}
