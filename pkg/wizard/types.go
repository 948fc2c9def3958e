package wizard

import (
	"github.com/goliatone/go-demandwizard/pkg/fields"
	"github.com/goliatone/go-demandwizard/pkg/validation"
)

// Step identifies a wizard stage by its zero-based index.
type Step int

const (
	StepBasicInfo Step = iota
	StepProjectDetails
	StepConfirmation
)

// FirstStep and LastStep bound the valid step range.
const (
	FirstStep = StepBasicInfo
	LastStep  = StepConfirmation
)

var stepTitles = [...]string{
	StepBasicInfo:      "Basic info",
	StepProjectDetails: "Project details",
	StepConfirmation:   "Confirmation",
}

// Valid reports whether s is within FirstStep..LastStep.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title is the human readable step name.
func (s Step) Title() string {
	if !s.Valid() {
		return "Unknown"
	}
	return stepTitles[s]
}

func (s Step) String() string {
	return s.Title()
}

// RequiredFields lists the fields that must pass validation before leaving s.
func (s Step) RequiredFields() []string {
	return validation.RequiredFields(int(s))
}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepBasicInfo, StepProjectDetails, StepConfirmation}
}

// Mode is the tab the wizard currently shows: the example picker or the form.
type Mode int

const (
	ModeExamples Mode = iota
	ModeForm
)

func (m Mode) String() string {
	switch m {
	case ModeExamples:
		return "examples"
	case ModeForm:
		return "form"
	default:
		return "unknown"
	}
}

// State is a point-in-time snapshot of a Session.
type State struct {
	CurrentStep  Step
	Values       fields.Values
	IsSubmitting bool
	ActiveMode   Mode
	// FieldErrors holds the messages from the last rejected GoNext, keyed by
	// field name. It is cleared once the step is left.
	FieldErrors map[string]string
}
