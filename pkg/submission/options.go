package submission

import (
	"strings"

	"go.uber.org/zap"
)

// DefaultDestination is where the navigator is sent after a successful
// submission unless WithDestination overrides it.
const DefaultDestination = "/demands/mine"

// Messages holds the user-facing notification texts.
type Messages struct {
	SuccessTitle  string
	SuccessDetail string
	FailureTitle  string
	FailureDetail string
	ErrorTitle    string
	ErrorDetail   string
}

// DefaultMessages returns the stock notification texts.
func DefaultMessages() Messages {
	return Messages{
		SuccessTitle:  "Demand submitted",
		SuccessDetail: "Your demand has been published.",
		FailureTitle:  "Submission failed",
		FailureDetail: "The demand could not be submitted, please try again.",
		ErrorTitle:    "Submission error",
		ErrorDetail:   "Something went wrong while submitting, please try again later.",
	}
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithNotifier sets the notification collaborator.
func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithNavigator sets the navigation collaborator.
func WithNavigator(n Navigator) Option {
	return func(c *Coordinator) {
		if n != nil {
			c.navigator = n
		}
	}
}

// WithDestination overrides DefaultDestination.
func WithDestination(dest string) Option {
	return func(c *Coordinator) {
		if trimmed := strings.TrimSpace(dest); trimmed != "" {
			c.destination = trimmed
		}
	}
}

// WithLogger attaches a zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMessages replaces the non-empty notification texts in m.
func WithMessages(m Messages) Option {
	return func(c *Coordinator) {
		merge := func(dst *string, src string) {
			if strings.TrimSpace(src) != "" {
				*dst = src
			}
		}
		merge(&c.messages.SuccessTitle, m.SuccessTitle)
		merge(&c.messages.SuccessDetail, m.SuccessDetail)
		merge(&c.messages.FailureTitle, m.FailureTitle)
		merge(&c.messages.FailureDetail, m.FailureDetail)
		merge(&c.messages.ErrorTitle, m.ErrorTitle)
		merge(&c.messages.ErrorDetail, m.ErrorDetail)
	}
}
