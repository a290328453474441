// Package records loads ReferenceDataManager records from YAML or JSON files.
//
// Files are decoded with YAML (JSON is a subset) and then re-encoded as JSON
// so the record's own decoder runs, keeping unknown keys as additional
// properties.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrNoMatches is returned when a glob matches no files.
var ErrNoMatches = errors.New("no files match")

// Load decodes the single document in path into v.
func Load(path string, v any) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	return decode(path, doc, v)
}

// LoadList decodes path into a list of T. A file holding one object yields
// one element; a file holding a sequence yields one element per entry.
func LoadList[T any](path string) ([]T, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	entries, ok := doc.([]any)
	if !ok {
		entries = []any{doc}
	}
	out := make([]T, 0, len(entries))
	for i, entry := range entries {
		var item T
		if err := decode(fmt.Sprintf("%s[%d]", path, i), entry, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Glob expands every pattern (supporting **) and loads all matched files
// in order. Each pattern must match at least one file.
func Glob[T any](patterns ...string) ([]T, error) {
	var out []T
	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w %q", ErrNoMatches, pattern)
		}
		for _, path := range matches {
			items, err := LoadList[T](path)
			if err != nil {
				return nil, err
			}
			out = append(out, items...)
		}
	}
	return out, nil
}

func readDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%s: file is empty", path)
	}
	return doc, nil
}

func decode(where string, doc, v any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", where, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", where, err)
	}
	return nil
}
