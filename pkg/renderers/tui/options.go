package tui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-demandwizard/pkg/examples"
	"github.com/goliatone/go-demandwizard/pkg/summary"
)

// Theme captures optional prefixes the runner puts in front of messages it
// prints through the driver.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithExamples sets the examples offered before the form. When the list is
// empty the picker is skipped.
func WithExamples(list []examples.Example) Option {
	return func(r *Runner) {
		r.examples = append([]examples.Example(nil), list...)
	}
}

// WithSummaryEngine overrides the template engine used on the confirmation
// step.
func WithSummaryEngine(engine *summary.Engine) Option {
	return func(r *Runner) {
		if engine != nil {
			r.summary = engine
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithLogger attaches a zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}
