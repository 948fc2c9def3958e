package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-demandwizard/pkg/fields"
	"github.com/goliatone/go-demandwizard/pkg/validation"
)

var (
	validateFields []string
	validateStep   int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check field values against the gate of a wizard step",
	Long: `Runs the validation gate for one step and prints a line per required field.

Example:
  demand-wizard validate --field title="Smart lamps" --field description="Remote dimming for the campus"`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringArrayVar(&validateFields, "field", nil, "field value as name=value (repeatable)")
	validateCmd.Flags().IntVar(&validateStep, "step", 0, "step whose required fields are checked (0-2)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	values, err := parseFieldArgs(validateFields)
	if err != nil {
		return err
	}
	if validateStep < 0 || validateStep >= validation.StepCount {
		return fmt.Errorf("step must be between 0 and %d", validation.StepCount-1)
	}
	gate, err := buildGate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	required := validation.RequiredFields(validateStep)
	if len(required) == 0 {
		fmt.Fprintf(out, "step %d has no required fields\n", validateStep)
		return nil
	}
	results := validation.CheckStep(gate, validateStep, values)
	for _, name := range required {
		res := results[name]
		if res.Valid {
			fmt.Fprintf(out, "ok  %s\n", name)
			continue
		}
		fmt.Fprintf(out, "✖   %s: %s\n", name, res.Message)
	}
	if !results.Valid() {
		return errSilent
	}
	return nil
}

func parseFieldArgs(args []string) (fields.Values, error) {
	values := make(fields.Values, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --field %q, expected name=value", arg)
		}
		if !fields.Known(name) {
			return nil, fmt.Errorf("unknown field %q (known: %s)", name, strings.Join(fields.Names(), ", "))
		}
		values[name] = value
	}
	return values, nil
}
