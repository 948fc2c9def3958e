package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

// SchemaGate validates fields against the properties of an OpenAPI object
// schema. Properties the schema does not declare are always valid.
type SchemaGate struct {
	schema *openapi3.Schema
}

// NewSchemaGate wraps an object schema.
func NewSchemaGate(schema *openapi3.Schema) (*SchemaGate, error) {
	if schema == nil {
		return nil, ErrSchemaMissing
	}
	return &SchemaGate{schema: schema}, nil
}

// DefaultSchema mirrors DefaultRules as an OpenAPI object schema.
func DefaultSchema() *openapi3.Schema {
	obj := openapi3.NewObjectSchema()
	for _, name := range fields.Names() {
		obj = obj.WithProperty(name, openapi3.NewStringSchema())
	}
	for _, rule := range DefaultRules() {
		obj = obj.WithProperty(rule.Field, openapi3.NewStringSchema().WithMinLength(int64(rule.MinLength)))
	}
	return obj
}

// SchemaGateFromDocument loads an OpenAPI document and builds a gate from the
// named component schema.
func SchemaGateFromDocument(ctx context.Context, raw []byte, component string) (*SchemaGate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("validation: schema document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("validation: load document: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaMissing, component)
	}
	ref, ok := doc.Components.Schemas[strings.TrimSpace(component)]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaMissing, component)
	}
	return NewSchemaGate(ref.Value)
}

// Validate implements Gate.
func (g *SchemaGate) Validate(names []string, values fields.Values) Results {
	out := make(Results, len(names))
	for _, name := range names {
		ref, ok := g.schema.Properties[name]
		if !ok || ref == nil || ref.Value == nil {
			out[name] = Result{Valid: true}
			continue
		}
		if err := ref.Value.VisitJSON(values.Get(name)); err != nil {
			out[name] = Result{Valid: false, Message: messageFromSchemaError(name, err)}
			continue
		}
		out[name] = Result{Valid: true}
	}
	return out
}

func messageFromSchemaError(name string, err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if reason := strings.TrimSpace(schemaErr.Reason); reason != "" {
			return name + ": " + reason
		}
	}
	return name + ": " + strings.TrimSpace(err.Error())
}

var _ Gate = (*SchemaGate)(nil)
