package generator

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNestedAnnotation is returned when a custom annotation attribute
	// holds another annotation. Nested annotation metadata cannot be
	// represented in a schema node and must not be dropped silently.
	ErrNestedAnnotation = errors.New("nested annotation values are not supported")

	// ErrUnsupportedValue is returned for annotation values of an unknown
	// shape.
	ErrUnsupportedValue = errors.New("unsupported annotation value")

	// ErrUnsupportedArrayElement is returned when an array attribute holds
	// an element that does not coerce to a JSON value.
	ErrUnsupportedArrayElement = errors.New("array element is not a JSON value")

	// ErrInvalidComposition is returned when a oneOf/anyOf/allOf annotation
	// does not declare a types array of type references.
	ErrInvalidComposition = errors.New("invalid composition declaration")
)
