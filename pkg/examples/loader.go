package examples

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

//go:embed catalog/*.yaml
var embeddedCatalog embed.FS

type catalogDocument struct {
	Examples []Example `yaml:"examples"`
}

// Default returns the bundled example catalogue.
func Default() StaticProvider {
	list, err := LoadFS(embeddedCatalog)
	if err != nil {
		// The embedded catalogue is part of the build; a parse failure is a
		// programming error.
		panic(err)
	}
	return list
}

// LoadFile parses a single YAML catalogue from disk.
func LoadFile(path string) (StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("examples: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS walks fsys and concatenates every YAML catalogue it finds, in lexical
// path order. Labels must be unique across files.
func LoadFS(fsys fs.FS) (StaticProvider, error) {
	if fsys == nil {
		return nil, nil
	}
	var out StaticProvider
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("examples: read %s: %w", path, err)
		}
		list, err := Parse(data, path)
		if err != nil {
			return err
		}
		for _, ex := range list {
			if prev, exists := seen[ex.Label]; exists {
				return fmt.Errorf("%w: %q in %s (first defined in %s)", ErrDuplicateLabel, ex.Label, path, prev)
			}
			seen[ex.Label] = path
		}
		out = append(out, list...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Parse decodes a YAML catalogue. source is only used in error messages.
func Parse(data []byte, source string) (StaticProvider, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("examples: parse %s: %w", source, err)
	}

	out := make(StaticProvider, 0, len(doc.Examples))
	seen := make(map[string]struct{}, len(doc.Examples))
	for idx, ex := range doc.Examples {
		ex.Label = strings.TrimSpace(ex.Label)
		if ex.Label == "" {
			return nil, fmt.Errorf("examples: %s entry %d has no label", source, idx)
		}
		if _, exists := seen[ex.Label]; exists {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateLabel, ex.Label, source)
		}
		seen[ex.Label] = struct{}{}

		clean := make(fields.Values, len(ex.Values))
		for name, value := range ex.Values {
			if !fields.Known(name) {
				return nil, fmt.Errorf("%w: %q in example %q (%s)", ErrUnknownField, name, ex.Label, source)
			}
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				clean[name] = trimmed
			}
		}
		if len(clean) == 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrEmptyExample, ex.Label, source)
		}
		ex.Values = clean
		out = append(out, ex)
	}
	return out, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
