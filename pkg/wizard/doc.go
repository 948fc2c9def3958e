// Package wizard implements the three-step demand wizard as a state machine
// that does not know about rendering. A Session combines the field store, the
// step Controller, the example applier and the submission coordinator behind
// a mutex; front ends call its methods and read State snapshots.
//
// Steps:
//
//	0 StepBasicInfo       requires title, category, description
//	1 StepProjectDetails  requires nothing
//	2 StepConfirmation    requires nothing; Submit is only allowed here
//
// Moving back, by GoBack or JumpTo, never re-validates the step being left.
package wizard
