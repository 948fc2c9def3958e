package wizard

import "errors"

var (
	// ErrNotConfirmation is returned by Submit outside StepConfirmation.
	ErrNotConfirmation = errors.New("wizard: submit is only allowed on the confirmation step")
	// ErrNoCoordinator is returned by Submit when the session was built
	// without a submission coordinator.
	ErrNoCoordinator = errors.New("wizard: no submission coordinator configured")
)
