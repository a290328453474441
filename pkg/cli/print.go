package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/kbaseapps/refdatamgr/pkg/cli/internal/output"
)

// printResult outputs a single operation result.
//
// Contract: with --query the JSONPath matches are written as JSON; with
// --json ONLY the JSON encoding of data is written to stdout. Anything
// human-readable goes to stderr. textFn is called only in text mode.
func printResult(cmd *cobra.Command, data any, textFn func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if queryPath != "" {
		matches, err := output.Query(data, queryPath)
		if err != nil {
			return err
		}
		return output.JSON(w, matches)
	}
	if jsonOutput {
		return output.JSON(w, data)
	}
	textFn(w)
	return nil
}

// dash renders a missing optional value in tables.
func dash[T any](p *T) any {
	if p == nil {
		return "-"
	}
	return *p
}
