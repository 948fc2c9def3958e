package submission

import (
	"context"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

// Payload is the body handed to a Submitter: only fields with a non-empty
// value are present.
type Payload map[string]string

// BuildPayload drops every empty value from values.
func BuildPayload(values fields.Values) Payload {
	out := make(Payload, len(values))
	for name, value := range values {
		if value == "" {
			continue
		}
		out[name] = value
	}
	return out
}

// Result is what the remote side reports for a submission.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submitter performs the actual submission call.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) (Result, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, payload Payload) (Result, error)

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, payload Payload) (Result, error) {
	return f(ctx, payload)
}

// Kind classifies a notification and the outcome that produced it.
type Kind int

const (
	KindSuccess Kind = iota + 1
	KindFailure
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is handed to the Notifier for display.
type Notification struct {
	Kind   Kind
	Title  string
	Detail string
}

// Notifier displays notifications. Calls are fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Navigator leaves the wizard after a successful submission.
type Navigator interface {
	Navigate(destination string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(destination string) { f(destination) }

// Outcome describes how a submission settled.
type Outcome struct {
	Kind    Kind
	Payload Payload
	Result  Result
	Err     error
}

// Succeeded reports whether the submission was accepted.
func (o Outcome) Succeeded() bool {
	return o.Kind == KindSuccess
}
