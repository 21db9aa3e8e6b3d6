package generator

// SimpleType is one entry of the simple-type table: how a fully-qualified
// type name renders as a schema primitive.
type SimpleType struct {
	Type   string `koanf:"type" json:"type"`
	Format string `koanf:"format" json:"format,omitempty"`
}

// DefaultSimpleTypes returns the built-in simple-type table keyed by
// fully-qualified type name. User mappings from the config overlay these
// defaults at generator construction.
func DefaultSimpleTypes() map[string]SimpleType {
	return map[string]SimpleType{
		"bool": {Type: "boolean"},

		"int":    {Type: "integer"},
		"int8":   {Type: "integer", Format: "int32"},
		"int16":  {Type: "integer", Format: "int32"},
		"int32":  {Type: "integer", Format: "int32"},
		"int64":  {Type: "integer", Format: "int64"},
		"uint":   {Type: "integer"},
		"uint8":  {Type: "integer", Format: "int32"},
		"uint16": {Type: "integer", Format: "int32"},
		"uint32": {Type: "integer", Format: "int64"},
		"uint64": {Type: "integer", Format: "int64"},
		"byte":   {Type: "integer", Format: "int32"},
		"rune":   {Type: "integer", Format: "int32"},

		"float32": {Type: "number", Format: "float"},
		"float64": {Type: "number", Format: "double"},

		"string": {Type: "string"},
		"error":  {Type: "string"},

		"time.Time":     {Type: "string", Format: "date-time"},
		"time.Duration": {Type: "string", Format: "duration"},
		"url.URL":       {Type: "string", Format: "uri"},
		"uuid.UUID":     {Type: "string", Format: "uuid"},
		"big.Int":       {Type: "integer"},
		"big.Float":     {Type: "number"},
	}
}

// defaultByteTypes lists element type names whose arrays render as binary
// strings instead of integer arrays.
func defaultByteTypes() []string {
	return []string{"byte", "uint8"}
}
