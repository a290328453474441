package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kbaseapps/refdatamgr/pkg/cli/internal/output"
)

// ConfigOutput is the JSON form of 'rdm config'.
type ConfigOutput struct {
	Config  any               `json:"config"`
	Sources map[string]string `json:"sources"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Display the effective configuration after merging defaults, the global
config, the local .rdmrc.yaml (or --config), RDM_* environment variables
and flags. The token is masked.

Examples:
  rdm config
  rdm config --sources
  rdm config --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		redacted := cfg.Redacted()
		if queryPath != "" || jsonOutput {
			return printResult(cmd, ConfigOutput{Config: redacted, Sources: cfg.Sources}, nil)
		}

		w := cmd.OutOrStdout()
		if showSources {
			printSources(w, cfg.Sources)
			return nil
		}

		if redacted.ConfigFile != "" {
			fmt.Fprintf(w, "# Resolved configuration from %s\n", redacted.ConfigFile)
		} else {
			fmt.Fprintln(w, "# Resolved configuration (no config file)")
		}
		fmt.Fprintln(w)
		data, err := yaml.Marshal(redacted)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		_, err = w.Write(data)
		return err
	},
}

var showSources bool

func printSources(w io.Writer, sources map[string]string) {
	keys := make([]string, 0, len(sources))
	for k := range sources {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tw := output.Table(w)
	fmt.Fprintln(tw, "KEY\tSOURCE")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, sources[k])
	}
	_ = tw.Flush()
}

func init() {
	configCmd.Flags().BoolVar(&showSources, "sources", false, "Show where each setting came from")
	rootCmd.AddCommand(configCmd)
}
