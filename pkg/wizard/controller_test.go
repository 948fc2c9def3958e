package wizard

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

func validBasics() fields.Values {
	return fields.Values{
		fields.Title:       "Build a website",
		fields.Description: strings.Repeat("d", 25),
		fields.Category:    "软件开发",
	}
}

func TestGoNextBoundary(t *testing.T) {
	cases := []struct {
		title string
		desc  int
		want  Step
	}{
		{title: "abcd", desc: 20, want: StepBasicInfo},
		{title: "abcde", desc: 20, want: StepProjectDetails},
		{title: "abcde", desc: 19, want: StepBasicInfo},
	}
	for _, tc := range cases {
		c := NewController(nil)
		c.GoNext(fields.Values{fields.Title: tc.title, fields.Description: strings.Repeat("x", tc.desc)})
		if got := c.Step(); got != tc.want {
			t.Fatalf("title=%q desc=%d: step = %v, want %v", tc.title, tc.desc, got, tc.want)
		}
	}
}

func TestGoNextStopsAtConfirmation(t *testing.T) {
	c := NewController(nil)
	for i := 0; i < 5; i++ {
		c.GoNext(validBasics())
	}
	if c.Step() != StepConfirmation {
		t.Fatalf("expected confirmation, got %v", c.Step())
	}
}

func TestGoNextRejectionKeepsFieldErrors(t *testing.T) {
	c := NewController(nil)
	ok, results := c.GoNext(fields.Values{fields.Title: "Hi"})
	if ok {
		t.Fatalf("expected rejection")
	}
	if results["title"].Valid {
		t.Fatalf("title should be reported invalid")
	}
	if _, found := c.FieldErrors()[fields.Title]; !found {
		t.Fatalf("field errors not kept: %#v", c.FieldErrors())
	}

	if ok, _ := c.GoNext(validBasics()); !ok {
		t.Fatalf("expected advance")
	}
	if c.FieldErrors() != nil {
		t.Fatalf("field errors should clear after advancing")
	}
}

func TestGoBackClampsAtFirstStep(t *testing.T) {
	c := NewController(nil)
	c.GoBack()
	if c.Step() != StepBasicInfo {
		t.Fatalf("expected first step, got %v", c.Step())
	}

	c.GoNext(validBasics())
	c.GoNext(nil)
	c.GoBack()
	if c.Step() != StepProjectDetails {
		t.Fatalf("expected project details, got %v", c.Step())
	}
}

func TestJumpToOnlyBackwards(t *testing.T) {
	c := NewController(nil)
	c.GoNext(validBasics())
	c.GoNext(nil)

	for _, target := range []Step{StepConfirmation, Step(3), Step(7)} {
		if c.JumpTo(target) {
			t.Fatalf("jump to %d must be rejected", target)
		}
		if c.Step() != StepConfirmation {
			t.Fatalf("rejected jump changed step to %v", c.Step())
		}
	}
	if c.JumpTo(Step(-1)) {
		t.Fatalf("negative jump must be rejected")
	}

	if !c.JumpTo(StepBasicInfo) {
		t.Fatalf("expected backward jump to succeed")
	}
	if c.Step() != StepBasicInfo {
		t.Fatalf("expected basic info, got %v", c.Step())
	}
	if c.JumpTo(StepProjectDetails) {
		t.Fatalf("forward jump after going back must be rejected")
	}
}

func TestStepMetadata(t *testing.T) {
	if diff := cmp.Diff([]string{"title", "category", "description"}, StepBasicInfo.RequiredFields()); diff != "" {
		t.Fatalf("required fields mismatch (-want +got):\n%s", diff)
	}
	if len(StepProjectDetails.RequiredFields()) != 0 || len(StepConfirmation.RequiredFields()) != 0 {
		t.Fatalf("later steps require nothing")
	}
	if StepConfirmation.Title() != "Confirmation" || Step(9).Title() != "Unknown" {
		t.Fatalf("unexpected titles")
	}
}
