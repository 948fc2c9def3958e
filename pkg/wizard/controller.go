package wizard

import (
	"github.com/goliatone/go-demandwizard/pkg/fields"
	"github.com/goliatone/go-demandwizard/pkg/validation"
)

// Controller owns the step index and the rules for moving between steps.
// Forward motion is one step at a time and gated by the validation Gate;
// backward motion is never validated.
type Controller struct {
	gate        validation.Gate
	step        Step
	fieldErrors map[string]string
}

// NewController starts at StepBasicInfo. A nil gate falls back to the default
// rule gate.
func NewController(gate validation.Gate) *Controller {
	if gate == nil {
		gate = validation.NewRuleGate()
	}
	return &Controller{gate: gate, step: FirstStep}
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.step
}

// FieldErrors returns a copy of the messages from the last rejected GoNext.
func (c *Controller) FieldErrors() map[string]string {
	if len(c.fieldErrors) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.fieldErrors))
	for k, v := range c.fieldErrors {
		out[k] = v
	}
	return out
}

// GoNext advances when the current step's required fields pass. On failure
// the step is unchanged and the per-field results are returned and kept for
// presentation. At LastStep a passing GoNext is a no-op.
func (c *Controller) GoNext(values fields.Values) (bool, validation.Results) {
	results := validation.CheckStep(c.gate, int(c.step), values)
	if !results.Valid() {
		c.fieldErrors = results.Failures()
		return false, results
	}
	c.fieldErrors = nil
	if c.step < LastStep {
		c.step++
	}
	return true, results
}

// GoBack moves one step back, stopping at FirstStep.
func (c *Controller) GoBack() {
	c.fieldErrors = nil
	if c.step > FirstStep {
		c.step--
	}
}

// JumpTo moves directly to an earlier step. Requests for the current or a
// later step are ignored so validation cannot be bypassed.
func (c *Controller) JumpTo(target Step) bool {
	if target < FirstStep || target >= c.step {
		return false
	}
	c.fieldErrors = nil
	c.step = target
	return true
}
