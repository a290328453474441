package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbaseapps/refdatamgr/pkg/cli/internal/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the service status document",
	Long: `Ask the service for its status document (state, version, git commit).

Examples:
  rdm status
  rdm status --json
  rdm status --query '$.version'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		status, err := c.Status(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(cmd, status, func(w io.Writer) {
			keys := make([]string, 0, len(status))
			for k := range status {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			tw := output.Table(w)
			fmt.Fprintln(tw, "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(tw, "%s\t%s\n", k, strings.TrimSpace(fmt.Sprint(status[k])))
			}
			_ = tw.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
