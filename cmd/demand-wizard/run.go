package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-demandwizard/internal/config"
	"github.com/goliatone/go-demandwizard/pkg/examples"
	"github.com/goliatone/go-demandwizard/pkg/renderers/tui"
	"github.com/goliatone/go-demandwizard/pkg/submission"
	"github.com/goliatone/go-demandwizard/pkg/validation"
	"github.com/goliatone/go-demandwizard/pkg/wizard"
)

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if cfg.SubmitURL == "" {
		return fmt.Errorf("submit_url not configured\n\nSet it via:\n  - --submit-url\n  - DEMAND_WIZARD_SUBMIT_URL environment variable\n  - submit_url in %s", config.FilePath())
	}

	catalogue, err := loadExamples(ctx, cfg)
	if err != nil {
		return err
	}
	gate, err := buildGate(ctx, cfg)
	if err != nil {
		return err
	}

	httpOpts := []submission.HTTPOption{
		submission.WithHTTPClient(&http.Client{Timeout: cfg.SubmitTimeout}),
	}
	if cfg.SubmitToken != "" {
		httpOpts = append(httpOpts, submission.WithHeader("Authorization", "Bearer "+cfg.SubmitToken))
	}
	submitter, err := submission.NewHTTPSubmitter(cfg.SubmitURL, httpOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	coordinator, err := submission.NewCoordinator(submitter,
		submission.WithNotifier(tui.NewNotifier(out)),
		submission.WithNavigator(tui.NewNavigator(out)),
		submission.WithDestination(cfg.SuccessDestination),
		submission.WithLogger(logger.Named("submission")),
	)
	if err != nil {
		return err
	}

	session := wizard.NewSession(coordinator,
		wizard.WithGate(gate),
		wizard.WithLogger(logger.Named("wizard")),
	)
	runner, err := tui.New(
		tui.WithExamples(catalogue),
		tui.WithLogger(logger.Named("tui")),
	)
	if err != nil {
		return err
	}

	outcome, err := runner.Run(ctx, session)
	switch {
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
		fmt.Fprintln(out, "Aborted, nothing was submitted.")
		return nil
	case err != nil:
		return fmt.Errorf("wizard failed: %w", err)
	}
	logger.Info("demand published", zap.Int("fields", len(outcome.Payload)))
	return nil
}

func loadExamples(ctx context.Context, cfg *config.Config) ([]examples.Example, error) {
	var provider examples.Provider = examples.Default()
	if cfg.ExamplesFile != "" {
		loaded, err := examples.LoadFile(cfg.ExamplesFile)
		if err != nil {
			return nil, err
		}
		provider = loaded
	}
	return provider.Examples(ctx)
}

func buildGate(ctx context.Context, cfg *config.Config) (validation.Gate, error) {
	if cfg.SchemaFile == "" {
		return validation.NewRuleGate(), nil
	}
	raw, err := os.ReadFile(cfg.SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", cfg.SchemaFile, err)
	}
	gate, err := validation.SchemaGateFromDocument(ctx, raw, cfg.SchemaComponent)
	if err != nil {
		return nil, err
	}
	logger.Debug("schema validation enabled",
		zap.String("file", cfg.SchemaFile),
		zap.String("component", cfg.SchemaComponent),
	)
	return gate, nil
}
