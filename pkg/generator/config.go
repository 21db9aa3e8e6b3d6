package generator

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mohae/deepcopy"
)

// DefaultRefPrefix is where referenced types live in the assembled document.
const DefaultRefPrefix = "#/components/schemas/"

// Config is the serializable part of the generator setup. It is loaded once,
// deep-copied at generator construction and never mutated afterwards, so
// concurrent builds can read it without locking.
type Config struct {
	// RequireNonNulls is the ambient default for the required flag:
	// properties of primitive or not-null-marked types become required.
	RequireNonNulls bool `koanf:"requireNonNulls" json:"requireNonNulls"`

	// SimpleTypes maps fully-qualified type names to primitive renderings.
	// Entries overlay the built-in table.
	SimpleTypes map[string]SimpleType `koanf:"simpleTypes" json:"simpleTypes,omitempty"`

	// RefPrefix is prepended to simple names in $ref values.
	RefPrefix string `koanf:"refPrefix" json:"refPrefix,omitempty"`

	// ByteTypes lists element type names whose arrays render as
	// {type: string, format: binary}.
	ByteTypes []string `koanf:"byteTypes" json:"byteTypes,omitempty"`
}

// NewDefaultConfig returns a config with the defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		RequireNonNulls: true,
		RefPrefix:       DefaultRefPrefix,
		ByteTypes:       defaultByteTypes(),
	}
}

// NewConfigFromFile creates a new config from a yaml file path.
func NewConfigFromFile(filePath string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
		return nil, err
	}
	return unmarshalConfig(k)
}

// NewConfigFromContent creates a new config from yaml content.
func NewConfigFromContent(content []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, err
	}
	return unmarshalConfig(k)
}

func unmarshalConfig(k *koanf.Koanf) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.RefPrefix == "" {
		cfg.RefPrefix = DefaultRefPrefix
	}
	if len(cfg.ByteTypes) == 0 {
		cfg.ByteTypes = defaultByteTypes()
	}
	return cfg, nil
}

// freeze returns a private deep copy of the config with defaults filled in,
// so later mutations by the caller cannot leak into a running generator.
func (c *Config) freeze() *Config {
	if c == nil {
		return NewDefaultConfig()
	}
	frozen := deepcopy.Copy(*c).(Config)
	if frozen.RefPrefix == "" {
		frozen.RefPrefix = DefaultRefPrefix
	}
	if len(frozen.ByteTypes) == 0 {
		frozen.ByteTypes = defaultByteTypes()
	}
	return &frozen
}
