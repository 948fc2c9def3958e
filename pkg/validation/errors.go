package validation

import "errors"

// ErrSchemaMissing signals that no usable object schema was found.
var ErrSchemaMissing = errors.New("validation: schema not found")
