package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

// Result is the verdict for a single field.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Results maps field names to their verdicts.
type Results map[string]Result

// Valid reports whether every result passed.
func (r Results) Valid() bool {
	for _, res := range r {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Failures returns only the failing messages keyed by field name, or nil when
// everything passed.
func (r Results) Failures() map[string]string {
	var out map[string]string
	for name, res := range r {
		if res.Valid {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[name] = res.Message
	}
	return out
}

// Gate judges a subset of fields against a rule set. Implementations must be
// pure: no I/O and no mutation of values.
type Gate interface {
	Validate(names []string, values fields.Values) Results
}

// Rule constrains a single field. MinLength counts Unicode code points.
type Rule struct {
	Field     string
	MinLength int
	Message   string
}

func (r Rule) check(value string) Result {
	if r.MinLength > 0 && utf8.RuneCountInString(value) < r.MinLength {
		msg := r.Message
		if msg == "" {
			msg = fmt.Sprintf("%s must be at least %d characters", r.Field, r.MinLength)
		}
		return Result{Valid: false, Message: msg}
	}
	return Result{Valid: true}
}

// DefaultRules returns the demand rules: a title of at least 5 characters and
// a description of at least 20. Every other field is unconstrained.
func DefaultRules() []Rule {
	return []Rule{
		{Field: fields.Title, MinLength: 5, Message: "title must be at least 5 characters"},
		{Field: fields.Description, MinLength: 20, Message: "description must be at least 20 characters"},
	}
}

// RuleGate validates fields against a static rule table.
type RuleGate struct {
	rules map[string]Rule
}

// RuleOption customises a RuleGate.
type RuleOption func(*RuleGate)

// WithRule adds or replaces the rule for rule.Field.
func WithRule(rule Rule) RuleOption {
	return func(g *RuleGate) {
		if rule.Field == "" {
			return
		}
		g.rules[rule.Field] = rule
	}
}

// NewRuleGate builds a gate seeded with DefaultRules.
func NewRuleGate(opts ...RuleOption) *RuleGate {
	g := &RuleGate{rules: make(map[string]Rule)}
	for _, rule := range DefaultRules() {
		g.rules[rule.Field] = rule
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Validate implements Gate. Fields without a rule are always valid.
func (g *RuleGate) Validate(names []string, values fields.Values) Results {
	out := make(Results, len(names))
	for _, name := range names {
		rule, ok := g.rules[name]
		if !ok {
			out[name] = Result{Valid: true}
			continue
		}
		out[name] = rule.check(values.Get(name))
	}
	return out
}

var _ Gate = (*RuleGate)(nil)
