package validation

import "github.com/goliatone/go-demandwizard/pkg/fields"

// StepCount is the number of wizard steps.
const StepCount = 3

var stepRequirements = [StepCount][]string{
	{fields.Title, fields.Category, fields.Description},
	nil,
	nil,
}

// RequiredFields lists the fields that must pass before leaving step. Out of
// range steps require nothing.
func RequiredFields(step int) []string {
	if step < 0 || step >= StepCount {
		return nil
	}
	return append([]string(nil), stepRequirements[step]...)
}

// CheckStep validates the fields required by step. The results are empty for
// steps without requirements.
func CheckStep(gate Gate, step int, values fields.Values) Results {
	required := RequiredFields(step)
	if len(required) == 0 || gate == nil {
		return Results{}
	}
	return gate.Validate(required, values)
}

// StepPasses reports whether every field required by step is valid.
func StepPasses(gate Gate, step int, values fields.Values) bool {
	return CheckStep(gate, step, values).Valid()
}
