// Package output provides common output formatting utilities.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// JSON writes indented JSON to w.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table creates an aligned table writer for w.
// Remember to call Flush() when done writing.
func Table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Warn prints a warning message to w.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}

// Generic converts v to its plain JSON representation (maps, slices,
// strings, numbers), going through v's own JSON encoding.
func Generic(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return oj.Parse(data)
}

// Query evaluates a JSONPath expression against the JSON form of v.
func Query(v any, path string) ([]any, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid --query %q: %w", path, err)
	}
	data, err := Generic(v)
	if err != nil {
		return nil, err
	}
	return x.Get(data), nil
}

// Filter is a compiled boolean expression evaluated against the JSON form
// of one result entity. Entity keys are top level variables.
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles a filter expression.
func NewFilter(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid --filter %q: %w", source, err)
	}
	return &Filter{source: source, program: program}, nil
}

// Match reports whether item satisfies the filter.
func (f *Filter) Match(item any) (bool, error) {
	data, err := Generic(item)
	if err != nil {
		return false, err
	}
	env, ok := data.(map[string]any)
	if !ok {
		env = map[string]any{"it": data}
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", f.source, err)
	}
	matched, _ := out.(bool)
	return matched, nil
}

// Apply keeps the items that satisfy f. A nil filter keeps everything.
func Apply[T any](f *Filter, items []T) ([]T, error) {
	if f == nil {
		return items, nil
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, item)
		}
	}
	return kept, nil
}
