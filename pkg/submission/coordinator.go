package submission

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

// Coordinator turns field values into a payload, calls the Submitter and
// routes the result to the notifier and navigator. At most one call is in
// flight at a time; overlapping calls are rejected with ErrInFlight.
type Coordinator struct {
	submitter   Submitter
	notifier    Notifier
	navigator   Navigator
	destination string
	messages    Messages
	logger      *zap.Logger

	inFlight atomic.Bool
}

// NewCoordinator wires a coordinator around submitter.
func NewCoordinator(submitter Submitter, opts ...Option) (*Coordinator, error) {
	if submitter == nil {
		return nil, ErrNoSubmitter
	}
	c := &Coordinator{
		submitter:   submitter,
		notifier:    NotifierFunc(func(Notification) {}),
		navigator:   NavigatorFunc(func(string) {}),
		destination: DefaultDestination,
		messages:    DefaultMessages(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Submitting reports whether a submission is outstanding.
func (c *Coordinator) Submitting() bool {
	return c.inFlight.Load()
}

// Submit blocks until the submitter settles. The returned error is non-nil
// only when the call was refused; every submitter outcome, including
// transport errors, is reported through Outcome and the notifier.
func (c *Coordinator) Submit(ctx context.Context, values fields.Values) (Outcome, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Outcome{}, ErrInFlight
	}
	return c.settle(ctx, BuildPayload(values)), nil
}

// Start is the non-blocking form of Submit. The in-flight flag is raised
// before Start returns; the outcome is delivered on the returned channel,
// which is closed afterwards.
func (c *Coordinator) Start(ctx context.Context, values fields.Values) (<-chan Outcome, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	payload := BuildPayload(values)
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		out <- c.settle(ctx, payload)
	}()
	return out, nil
}

// settle must only run while the in-flight flag is held; it releases it on
// every exit path.
func (c *Coordinator) settle(ctx context.Context, payload Payload) Outcome {
	defer c.inFlight.Store(false)

	started := time.Now()
	c.logger.Debug("submitting demand", zap.Int("fields", len(payload)))

	result, err := c.call(ctx, payload)
	outcome := Outcome{Payload: payload, Result: result, Err: err}

	switch {
	case err != nil:
		outcome.Kind = KindError
		c.notifier.Notify(Notification{
			Kind:   KindError,
			Title:  c.messages.ErrorTitle,
			Detail: c.messages.ErrorDetail,
		})
	case !result.Success:
		outcome.Kind = KindFailure
		detail := strings.TrimSpace(result.Message)
		if detail == "" {
			detail = c.messages.FailureDetail
		}
		c.notifier.Notify(Notification{
			Kind:   KindFailure,
			Title:  c.messages.FailureTitle,
			Detail: detail,
		})
	default:
		outcome.Kind = KindSuccess
		detail := strings.TrimSpace(result.Message)
		if detail == "" {
			detail = c.messages.SuccessDetail
		}
		c.notifier.Notify(Notification{
			Kind:   KindSuccess,
			Title:  c.messages.SuccessTitle,
			Detail: detail,
		})
		c.navigator.Navigate(c.destination)
	}

	fieldsLogged := []zap.Field{
		zap.String("outcome", outcome.Kind.String()),
		zap.Duration("elapsed", time.Since(started)),
	}
	if err != nil {
		c.logger.Warn("demand submission errored", append(fieldsLogged, zap.Error(err))...)
	} else {
		c.logger.Info("demand submission settled", append(fieldsLogged, zap.String("message", result.Message))...)
	}
	return outcome
}

func (c *Coordinator) call(ctx context.Context, payload Payload) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = fmt.Errorf("submission: submitter panicked: %v", r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return c.submitter.Submit(ctx, payload)
}
