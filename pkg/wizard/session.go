package wizard

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-demandwizard/pkg/examples"
	"github.com/goliatone/go-demandwizard/pkg/fields"
	"github.com/goliatone/go-demandwizard/pkg/submission"
	"github.com/goliatone/go-demandwizard/pkg/validation"
)

// Session is one run of the demand wizard. It serialises edits, navigation
// and example application; the only call that blocks is Submit.
type Session struct {
	mu          sync.Mutex
	store       *fields.Store
	controller  *Controller
	applier     *examples.Applier
	coordinator *submission.Coordinator
	mode        Mode
	logger      *zap.Logger
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	gate    validation.Gate
	initial fields.Values
	logger  *zap.Logger
}

// WithGate replaces the default rule gate.
func WithGate(gate validation.Gate) Option {
	return func(cfg *sessionConfig) {
		if gate != nil {
			cfg.gate = gate
		}
	}
}

// WithInitialValues seeds the field store.
func WithInitialValues(values fields.Values) Option {
	return func(cfg *sessionConfig) {
		cfg.initial = values.Clone()
	}
}

// WithLogger attaches a zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *sessionConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// NewSession starts a session at StepBasicInfo in examples mode. coordinator
// may be nil when the caller never submits (previews, tests); Submit then
// fails with ErrNoCoordinator.
func NewSession(coordinator *submission.Coordinator, opts ...Option) *Session {
	cfg := sessionConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	s := &Session{
		store:       fields.NewStore(cfg.initial),
		controller:  NewController(cfg.gate),
		coordinator: coordinator,
		mode:        ModeExamples,
		logger:      cfg.logger,
	}
	// The applier callback runs while s.mu is held by ApplyExample/SkipExamples.
	s.applier = examples.NewApplier(func() { s.mode = ModeForm })
	return s
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		CurrentStep:  s.controller.Step(),
		Values:       s.store.All(),
		IsSubmitting: s.submitting(),
		ActiveMode:   s.mode,
		FieldErrors:  s.controller.FieldErrors(),
	}
}

// Step returns the current step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Step()
}

// Mode returns the active tab.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Submitting reports whether a submission is outstanding.
func (s *Session) Submitting() bool {
	return s.submitting()
}

func (s *Session) submitting() bool {
	return s.coordinator != nil && s.coordinator.Submitting()
}

// Set overwrites a single field.
func (s *Session) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Set(name, value)
}

// Get returns the current value of a field.
func (s *Session) Get(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(name)
}

// Values returns a snapshot of every field.
func (s *Session) Values() fields.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.All()
}

// ApplyExample pre-fills the form from ex and switches to form mode.
func (s *Session) ApplyExample(ex examples.Example) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applier.Apply(ex, s.store)
	s.logger.Debug("example applied", zap.String("example", ex.Label), zap.Int("fields", len(ex.Values)))
}

// SkipExamples switches to form mode without touching the fields.
func (s *Session) SkipExamples() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applier.Skip()
}

// GoNext validates the current step and advances when it passes. The bool
// reports whether validation passed; results carry per-field verdicts.
func (s *Session) GoNext() (bool, validation.Results) {
	s.mu.Lock()
	defer s.mu.Unlock()
	from := s.controller.Step()
	ok, results := s.controller.GoNext(s.store.All())
	if !ok {
		s.logger.Debug("step rejected", zap.Stringer("step", from), zap.Any("errors", results.Failures()))
	}
	return ok, results
}

// GoBack moves one step back.
func (s *Session) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.GoBack()
}

// JumpTo moves back to an already visited step; see Controller.JumpTo.
func (s *Session) JumpTo(target Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.JumpTo(target)
}

// Submit sends the current values. It must be called on StepConfirmation.
// Failures and transport errors are reported via the coordinator's notifier
// and leave the session unchanged.
func (s *Session) Submit(ctx context.Context) (submission.Outcome, error) {
	values, err := s.submittable()
	if err != nil {
		return submission.Outcome{}, err
	}
	return s.coordinator.Submit(ctx, values)
}

// SubmitAsync is Submit without blocking. IsSubmitting is already true when
// it returns successfully.
func (s *Session) SubmitAsync(ctx context.Context) (<-chan submission.Outcome, error) {
	values, err := s.submittable()
	if err != nil {
		return nil, err
	}
	return s.coordinator.Start(ctx, values)
}

func (s *Session) submittable() (fields.Values, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coordinator == nil {
		return nil, ErrNoCoordinator
	}
	if s.controller.Step() != StepConfirmation {
		return nil, ErrNotConfirmation
	}
	return s.store.All(), nil
}
