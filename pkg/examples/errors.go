package examples

import "errors"

var (
	// ErrDuplicateLabel is returned when two examples share a label.
	ErrDuplicateLabel = errors.New("examples: duplicate label")
	// ErrUnknownField is returned for values keyed by an unknown field name.
	ErrUnknownField = errors.New("examples: unknown field")
	// ErrEmptyExample is returned for examples that set no value at all.
	ErrEmptyExample = errors.New("examples: example sets no values")
)
