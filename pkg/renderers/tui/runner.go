package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-demandwizard/pkg/examples"
	"github.com/goliatone/go-demandwizard/pkg/fields"
	"github.com/goliatone/go-demandwizard/pkg/submission"
	"github.com/goliatone/go-demandwizard/pkg/summary"
	"github.com/goliatone/go-demandwizard/pkg/validation"
	"github.com/goliatone/go-demandwizard/pkg/wizard"
)

const (
	skipExamplesLabel = "Start from scratch"
	emptyChoiceLabel  = "(leave empty)"
)

// Runner drives a wizard.Session from the terminal: example picker, one
// prompt block per step, then review and submit.
type Runner struct {
	driver   PromptDriver
	summary  *summary.Engine
	examples []examples.Example
	theme    Theme
	logger   *zap.Logger
}

// New constructs a Runner with the survey driver and embedded summary
// templates.
func New(options ...Option) (*Runner, error) {
	r := &Runner{
		driver: NewSurveyDriver(),
		theme:  Theme{ErrorPrefix: "✖ "},
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.summary == nil {
		engine, err := summary.New()
		if err != nil {
			return nil, err
		}
		r.summary = engine
	}
	return r, nil
}

// Run loops over the session's steps until a submission succeeds or the
// driver returns an error (ErrAborted on Ctrl+C). Failed submissions keep the
// user on the confirmation step.
func (r *Runner) Run(ctx context.Context, session *wizard.Session) (submission.Outcome, error) {
	if session == nil {
		return submission.Outcome{}, ErrNoSession
	}
	if err := ctx.Err(); err != nil {
		return submission.Outcome{}, err
	}

	if session.Mode() == wizard.ModeExamples {
		if err := r.pickExample(ctx, session); err != nil {
			return submission.Outcome{}, err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return submission.Outcome{}, err
		}

		var err error
		switch session.Step() {
		case wizard.StepBasicInfo:
			err = r.runBasicInfo(ctx, session)
		case wizard.StepProjectDetails:
			err = r.runProjectDetails(ctx, session)
		case wizard.StepConfirmation:
			var outcome submission.Outcome
			var done bool
			outcome, done, err = r.runConfirmation(ctx, session)
			if err == nil && done {
				return outcome, nil
			}
		}
		if err != nil {
			return submission.Outcome{}, err
		}
	}
}

func (r *Runner) pickExample(ctx context.Context, session *wizard.Session) error {
	if len(r.examples) == 0 {
		session.SkipExamples()
		return nil
	}

	options := make([]string, 0, len(r.examples)+1)
	options = append(options, skipExamplesLabel)
	for _, ex := range r.examples {
		label := ex.Label
		if ex.Summary != "" {
			label += " · " + ex.Summary
		}
		options = append(options, label)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: "Start from an example?",
		Options: options,
		Help:    "Examples pre-fill the form; every field stays editable.",
	})
	if err != nil {
		return err
	}
	if idx <= 0 || idx > len(r.examples) {
		session.SkipExamples()
		return nil
	}
	ex := r.examples[idx-1]
	session.ApplyExample(ex)
	r.logger.Debug("example picked", zap.String("example", ex.Label))
	return nil
}

func (r *Runner) runBasicInfo(ctx context.Context, session *wizard.Session) error {
	if err := r.info(ctx, r.stepHeader(wizard.StepBasicInfo)); err != nil {
		return err
	}

	title, err := r.driver.Input(ctx, InputConfig{
		Message: "Title",
		Default: session.Get(fields.Title),
		Help:    "At least 5 characters.",
	})
	if err != nil {
		return err
	}
	session.Set(fields.Title, strings.TrimSpace(title))

	if err := r.promptChoice(ctx, session, fields.Category, "Category", wizard.CategoryOptions); err != nil {
		return err
	}

	desc, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: "Description",
		Default: session.Get(fields.Description),
		Help:    "At least 20 characters. Describe the goal, scope and constraints.",
	})
	if err != nil {
		return err
	}
	session.Set(fields.Description, strings.TrimSpace(desc))

	if ok, results := session.GoNext(); !ok {
		return r.reportInvalid(ctx, results)
	}
	return nil
}

func (r *Runner) runProjectDetails(ctx context.Context, session *wizard.Session) error {
	if err := r.info(ctx, r.stepHeader(wizard.StepProjectDetails)); err != nil {
		return err
	}
	if err := r.promptChoice(ctx, session, fields.Budget, "Budget", wizard.BudgetOptions); err != nil {
		return err
	}
	if err := r.promptChoice(ctx, session, fields.Timeline, "Timeline", wizard.TimelineOptions); err != nil {
		return err
	}
	if err := r.promptChoice(ctx, session, fields.CooperationType, "Cooperation type", wizard.CooperationOptions); err != nil {
		return err
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: "Continue",
		Options: []string{"Next: review", "Back: basic info"},
	})
	if err != nil {
		return err
	}
	if idx == 1 {
		session.GoBack()
		return nil
	}
	if ok, results := session.GoNext(); !ok {
		return r.reportInvalid(ctx, results)
	}
	return nil
}

func (r *Runner) runConfirmation(ctx context.Context, session *wizard.Session) (submission.Outcome, bool, error) {
	review, err := r.summary.Confirmation(r.stepHeader(wizard.StepConfirmation), session.Values())
	if err != nil {
		return submission.Outcome{}, false, err
	}
	if err := r.info(ctx, strings.TrimRight(review, "\n")); err != nil {
		return submission.Outcome{}, false, err
	}

	actions := []string{"Submit", "Edit basic info", "Edit project details"}
	idx, err := r.driver.Select(ctx, SelectConfig{Message: "Ready?", Options: actions})
	if err != nil {
		return submission.Outcome{}, false, err
	}
	switch idx {
	case 1:
		session.JumpTo(wizard.StepBasicInfo)
		return submission.Outcome{}, false, nil
	case 2:
		session.JumpTo(wizard.StepProjectDetails)
		return submission.Outcome{}, false, nil
	}

	publish, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Publish this demand?", Default: true})
	if err != nil {
		return submission.Outcome{}, false, err
	}
	if !publish {
		return submission.Outcome{}, false, nil
	}

	outcome, err := session.Submit(ctx)
	if errors.Is(err, submission.ErrInFlight) {
		return submission.Outcome{}, false, r.info(ctx, r.theme.InfoPrefix+"A submission is already in progress.")
	}
	if err != nil {
		return submission.Outcome{}, false, err
	}
	r.logger.Debug("submission settled", zap.Stringer("outcome", outcome.Kind))
	return outcome, outcome.Succeeded(), nil
}

// promptChoice offers the catalogue plus an empty entry. A value that came
// from an example but is not in the catalogue is offered as well.
func (r *Runner) promptChoice(ctx context.Context, session *wizard.Session, name, label string, catalogue []string) error {
	current := session.Get(name)
	options := append([]string{emptyChoiceLabel}, catalogue...)
	if current != "" && indexOf(options, current) < 0 {
		options = append(options, current)
	}
	def := 0
	if current != "" {
		def = indexOf(options, current)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      options,
		DefaultIndex: def,
	})
	if err != nil {
		return err
	}
	if idx <= 0 || idx >= len(options) {
		session.Set(name, "")
		return nil
	}
	session.Set(name, options[idx])
	return nil
}

func (r *Runner) reportInvalid(ctx context.Context, results validation.Results) error {
	failures := results.Failures()
	names := make([]string, 0, len(failures))
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.info(ctx, r.theme.ErrorPrefix+failures[name]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) stepHeader(step wizard.Step) string {
	return fmt.Sprintf("Step %d/%d · %s", int(step)+1, len(wizard.Steps()), step.Title())
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
