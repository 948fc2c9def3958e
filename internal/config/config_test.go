package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DEMAND_WIZARD_CONFIG", filepath.Join(dir, "demand-wizard.yml"))
	for _, key := range keys {
		name := "DEMAND_WIZARD_" + strings.ToUpper(key)
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
	return filepath.Join(dir, "demand-wizard.yml")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		SubmitTimeout:      10 * time.Second,
		SuccessDestination: "/demands/mine",
		LogLevel:           "info",
		SchemaComponent:    "Demand",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := isolate(t)
	file := []byte("submit_url: http://file.example/demands\nsubmit_timeout: 3s\nlog_level: warn\nexamples_file: extra.yaml\n")
	if err := os.WriteFile(path, file, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DEMAND_WIZARD_LOG_LEVEL", "DEBUG")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("submit-url", "", "")
	flags.String("examples-file", "", "")
	if err := flags.Parse([]string{"--submit-url", "http://flag.example/demands"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		SubmitURL:          "http://flag.example/demands",
		SubmitTimeout:      3 * time.Second,
		ExamplesFile:       "extra.yaml",
		SuccessDestination: "/demands/mine",
		LogLevel:           "debug",
		SchemaComponent:    "Demand",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("DEMAND_WIZARD_SUBMIT_TIMEOUT", "0s")

	if _, err := Load(nil); !errors.Is(err, ErrInvalidTimeout) {
		t.Fatalf("expected ErrInvalidTimeout, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	path := isolate(t)
	original := &Config{
		SubmitURL:          "https://demands.example/api",
		SubmitTimeout:      1500 * time.Millisecond,
		SuccessDestination: "/demands/mine",
		LogLevel:           "error",
		SchemaFile:         "demand.yaml",
		SchemaComponent:    "Demand",
	}

	var buf bytes.Buffer
	if err := Encode(&buf, original); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(original, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
