// Package config resolves the demand-wizard settings using Viper.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-demandwizard/pkg/submission"
)

const (
	envPrefix   = "DEMAND_WIZARD"
	projectFile = "demand-wizard.yml"
)

// ErrInvalidTimeout is returned when submit_timeout resolves to a non positive
// duration.
var ErrInvalidTimeout = errors.New("config: submit_timeout must be positive")

// Config holds all configuration values for demand-wizard.
type Config struct {
	SubmitURL          string        `mapstructure:"submit_url"`
	SubmitTimeout      time.Duration `mapstructure:"submit_timeout"`
	SubmitToken        string        `mapstructure:"submit_token"`
	ExamplesFile       string        `mapstructure:"examples_file"`
	SuccessDestination string        `mapstructure:"success_destination"`
	LogLevel           string        `mapstructure:"log_level"`
	LogFile            string        `mapstructure:"log_file"`
	SchemaFile         string        `mapstructure:"schema_file"`
	SchemaComponent    string        `mapstructure:"schema_component"`
}

var keys = []string{
	"submit_url",
	"submit_timeout",
	"submit_token",
	"examples_file",
	"success_destination",
	"log_level",
	"log_file",
	"schema_file",
	"schema_component",
}

// Load resolves configuration with precedence:
// flags > DEMAND_WIZARD_* env vars > project config file > defaults.
// Flags are matched by key with underscores replaced by dashes
// (submit_url -> --submit-url). flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("submit_url", "")
	v.SetDefault("submit_timeout", 10*time.Second)
	v.SetDefault("submit_token", "")
	v.SetDefault("examples_file", "")
	v.SetDefault("success_destination", submission.DefaultDestination)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("schema_file", "")
	v.SetDefault("schema_component", "Demand")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if flags != nil {
		for _, key := range keys {
			flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding %s flag: %w", key, err)
			}
		}
	}

	if path := FilePath(); fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.SubmitTimeout <= 0 {
		return nil, ErrInvalidTimeout
	}
	cfg.SubmitURL = strings.TrimSpace(cfg.SubmitURL)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return &cfg, nil
}

// FilePath returns the config file consulted by Load: $DEMAND_WIZARD_CONFIG
// when set, otherwise ./demand-wizard.yml.
func FilePath() string {
	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		return path
	}
	return projectFile
}

type document struct {
	SubmitURL          string `yaml:"submit_url"`
	SubmitTimeout      string `yaml:"submit_timeout"`
	ExamplesFile       string `yaml:"examples_file,omitempty"`
	SuccessDestination string `yaml:"success_destination"`
	LogLevel           string `yaml:"log_level"`
	LogFile            string `yaml:"log_file,omitempty"`
	SchemaFile         string `yaml:"schema_file,omitempty"`
	SchemaComponent    string `yaml:"schema_component,omitempty"`
}

// Encode writes cfg as YAML in the layout Load reads back.
func Encode(w io.Writer, cfg *Config) error {
	doc := document{
		SubmitURL:          cfg.SubmitURL,
		SubmitTimeout:      cfg.SubmitTimeout.String(),
		ExamplesFile:       cfg.ExamplesFile,
		SuccessDestination: cfg.SuccessDestination,
		LogLevel:           cfg.LogLevel,
		LogFile:            cfg.LogFile,
		SchemaFile:         cfg.SchemaFile,
	}
	if cfg.SchemaFile != "" {
		doc.SchemaComponent = cfg.SchemaComponent
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
