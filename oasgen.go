// Package oasgen compiles a type graph into OpenAPI / JSON Schema
// fragments, resolving nested and referenced types recursively while
// breaking cycles through deduplicated $refs.
//
// The heavy lifting lives in the subpackages; this package re-exports the
// pieces most callers need:
//
//	host := reflecthost.NewWithOptions(reflecthost.Options{FieldsByDefault: true})
//	gen := oasgen.New(oasgen.Options{Introspector: host})
//	doc, err := oasgen.Document(gen, oasgen.Info{Title: "api", Version: "1.0.0"}, host.Resolve(User{}))
package oasgen

import (
	"github.com/cubahno/oasgen/pkg/document"
	"github.com/cubahno/oasgen/pkg/generator"
	"github.com/cubahno/oasgen/pkg/schema"
	"github.com/cubahno/oasgen/pkg/typesystem"
)

type (
	Config          = generator.Config
	SimpleType      = generator.SimpleType
	Options         = generator.Options
	Generator       = generator.Generator
	Processor       = generator.Processor
	RenderOptions   = generator.RenderOptions
	UnwrapProcessor = generator.UnwrapProcessor
	CompositionSpec = generator.CompositionSpec
	CustomProperty  = generator.CustomProperty
	PropertyFilter  = generator.PropertyFilter

	TypeDescriptor = typesystem.TypeDescriptor
	Annotation     = typesystem.Annotation
	Annotations    = typesystem.Annotations

	Node = schema.Node
	Info = document.Info
)

// New builds a generator with frozen configuration.
func New(opts Options) *Generator {
	return generator.New(opts)
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return generator.NewDefaultConfig()
}

// NewConfigFromFile loads a configuration from a yaml file.
func NewConfigFromFile(path string) (*Config, error) {
	return generator.NewConfigFromFile(path)
}

// NewConfigFromContent loads a configuration from yaml content.
func NewConfigFromContent(content []byte) (*Config, error) {
	return generator.NewConfigFromContent(content)
}

// Components resolves the given roots and everything they reference into a
// components/schemas node, each type exactly once.
func Components(g *Generator, roots ...TypeDescriptor) (*Node, error) {
	return document.Components(g, roots...)
}

// Document wraps the components in a minimal OpenAPI 3 envelope.
func Document(g *Generator, info Info, roots ...TypeDescriptor) (*Node, error) {
	return document.Document(g, info, roots...)
}
