package submission

import "errors"

var (
	// ErrInFlight is returned when Submit is called while a previous call has
	// not settled yet.
	ErrInFlight = errors.New("submission: a submission is already in flight")
	// ErrNoSubmitter is returned when the coordinator has nothing to call.
	ErrNoSubmitter = errors.New("submission: submitter is nil")
)
