package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-demandwizard/pkg/fields"
	"github.com/goliatone/go-demandwizard/pkg/summary"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the example demands offered before the form",
	Long: `Lists the example catalogue: the built-in one, or the file set through
examples_file. Only non-empty values are applied when an example is picked.`,
	Args: cobra.NoArgs,
	RunE: runExamples,
}

func runExamples(cmd *cobra.Command, args []string) error {
	catalogue, err := loadExamples(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(catalogue) == 0 {
		fmt.Fprintln(out, "No examples configured.")
		return nil
	}
	for i, ex := range catalogue {
		if i > 0 {
			fmt.Fprintln(out)
		}
		header := labelStyle.Render(ex.Label)
		if ex.Summary != "" {
			header += " " + mutedStyle.Render(ex.Summary)
		}
		fmt.Fprintln(out, header)
		for _, name := range fields.Names() {
			if value := ex.Values.Get(name); value != "" {
				fmt.Fprintf(out, "  %-13s %s\n", summary.Label(name)+":", value)
			}
		}
	}
	return nil
}
