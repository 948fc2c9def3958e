package testsupport

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

//go:embed testdata/*.json
var demands embed.FS

// LoadDemand returns the named demand fixture (testdata/<name>.json) without
// requiring testing.T, so callers can build tables in package scope.
func LoadDemand(name string) (fields.Values, error) {
	if name == "" {
		return nil, errors.New("testsupport: demand name is required")
	}
	data, err := demands.ReadFile("testdata/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("testsupport: read demand: %w", err)
	}
	var out fields.Values
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal demand: %w", err)
	}
	return out, nil
}

// Demand loads a demand fixture, failing the test on error. Available
// fixtures: complete, required_only, invalid.
func Demand(t *testing.T, name string) fields.Values {
	t.Helper()

	values, err := LoadDemand(name)
	if err != nil {
		t.Fatalf("load demand: %v", err)
	}
	return values
}

// CaptureOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
