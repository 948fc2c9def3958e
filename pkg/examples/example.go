package examples

import (
	"context"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

// Example is a named, partial set of field values used to pre-fill the
// wizard.
type Example struct {
	Label   string        `yaml:"label" json:"label"`
	Summary string        `yaml:"summary,omitempty" json:"summary,omitempty"`
	Values  fields.Values `yaml:"values" json:"values"`
}

// Provider supplies example templates.
type Provider interface {
	Examples(ctx context.Context) ([]Example, error)
}

// StaticProvider serves a fixed list.
type StaticProvider []Example

// Examples implements Provider.
func (p StaticProvider) Examples(ctx context.Context) ([]Example, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Example, len(p))
	for i, ex := range p {
		ex.Values = ex.Values.Clone()
		out[i] = ex
	}
	return out, nil
}

// Applier merges examples into a field store and flips the wizard into form
// mode.
type Applier struct {
	activateForm func()
}

// NewApplier returns an applier that calls activateForm whenever Apply or
// Skip runs. A nil callback is allowed.
func NewApplier(activateForm func()) *Applier {
	return &Applier{activateForm: activateForm}
}

// Apply overwrites the store entries for every non-empty value in ex. Fields
// the example leaves empty or absent keep their current value.
func (a *Applier) Apply(ex Example, store *fields.Store) {
	if store != nil {
		for _, name := range fields.Names() {
			if value := ex.Values.Get(name); value != "" {
				store.Set(name, value)
			}
		}
	}
	a.activate()
}

// Skip switches to form mode without touching any field.
func (a *Applier) Skip() {
	a.activate()
}

func (a *Applier) activate() {
	if a != nil && a.activateForm != nil {
		a.activateForm()
	}
}
