package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-demandwizard/internal/config"
	"github.com/goliatone/go-demandwizard/internal/logging"
)

// Version set via ldflags during build
var version = "dev"

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

// errSilent marks failures that were already reported to the user.
var errSilent = errors.New("")

var rootCmd = &cobra.Command{
	Use:     "demand-wizard",
	Short:   "Publish a demand through a three step terminal wizard",
	Version: version,
	Long: `demand-wizard collects a demand (title, category, description, budget,
timeline, cooperation type) in three steps, shows a review and posts it to the
configured endpoint.

Configuration is loaded with the following precedence:
  CLI flags > DEMAND_WIZARD_* environment variables > ./demand-wizard.yml > defaults

Set DEMAND_WIZARD_CONFIG to read a different file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		built, err := logging.New(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = built
		logger.Debug("config resolved",
			zap.String("file", config.FilePath()),
			zap.String("submit_url", cfg.SubmitURL),
			zap.Duration("submit_timeout", cfg.SubmitTimeout),
			zap.String("examples_file", cfg.ExamplesFile),
			zap.String("schema_file", cfg.SchemaFile),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runWizard,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("submit-url", "", "endpoint demands are posted to")
	flags.Duration("submit-timeout", 0, "HTTP timeout for a submission (default 10s)")
	flags.String("examples-file", "", "YAML example catalogue replacing the built-in one")
	flags.String("success-destination", "", "where to go after a successful submission")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.String("schema-file", "", "OpenAPI document whose schema validates the fields")
	flags.String("schema-component", "", "schema name under components.schemas")

	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
