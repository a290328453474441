package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbaseapps/refdatamgr/pkg/cli/internal/flags"
	"github.com/kbaseapps/refdatamgr/pkg/cli/internal/output"
	"github.com/kbaseapps/refdatamgr/pkg/cli/internal/records"
	"github.com/kbaseapps/refdatamgr/pkg/rdm"
)

var taxonsCmd = &cobra.Command{
	Use:     "taxons",
	Aliases: []string{"taxon"},
	Short:   "List and load reference taxons",
}

var taxonsLoadedCmd = &cobra.Command{
	Use:   "loaded",
	Short: "List taxons loaded into a workspace",
	Long: `List the taxons stored in a workspace together with their workspace
references.

Examples:
  rdm taxons loaded --workspace-name ReferenceTaxons
  rdm taxons loaded --workspace-name ReferenceTaxons --filter 'taxon.rank == "species"'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := &rdm.ListLoadedTaxonsParams{}
		if err := loadParams(cmd, p); err != nil {
			return err
		}
		if v, ok := flags.String(cmd, "workspace-name"); ok {
			p.WithWorkspaceName(v)
		}
		if v, ok := flags.Bit(cmd, "create-report"); ok {
			p.WithCreateReport(v)
		}

		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		taxons, err := c.ListLoadedTaxons(cmd.Context(), p)
		if err != nil {
			return err
		}
		if taxons, err = output.Apply(filter, taxons); err != nil {
			return err
		}
		return printResult(cmd, taxons, func(w io.Writer) {
			if len(taxons) == 0 {
				fmt.Fprintln(w, "No taxons")
				return
			}
			tw := output.Table(w)
			fmt.Fprintln(tw, "WS_REF\tTAXONOMY_ID\tRANK\tSCIENTIFIC_NAME")
			for _, t := range taxons {
				tx := t.Taxon
				if tx == nil {
					tx = &rdm.ReferenceTaxonData{}
				}
				fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", dash(t.WSRef), dash(tx.TaxonomyID), dash(tx.Rank), dash(tx.ScientificName))
			}
			_ = tw.Flush()
		})
	},
}

var taxonsLoadCmd = &cobra.Command{
	Use:   "load [taxon-file-pattern...]",
	Short: "Load taxons into a workspace",
	Long: `Load taxons from record files (YAML or JSON, one taxon or a list per file,
** globs allowed), from a --params file, or from a --data string.

Examples:
  rdm taxons load taxons.yaml --workspace-name ReferenceTaxons
  rdm taxons load 'taxa/**/*.json' --index-in-solr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &rdm.LoadTaxonsParams{}
		if err := loadParams(cmd, p); err != nil {
			return err
		}
		if len(args) > 0 {
			taxons, err := records.Glob[rdm.ReferenceTaxonData](args...)
			if err != nil {
				return err
			}
			p.WithTaxons(taxons)
		}
		if v, ok := flags.String(cmd, "data"); ok {
			p.WithData(v)
		}
		if v, ok := flags.Bit(cmd, "index-in-solr"); ok {
			p.WithIndexInSolr(v)
		}
		if v, ok := flags.String(cmd, "workspace-name"); ok {
			p.WithWorkspaceName(v)
		}
		if v, ok := flags.Bit(cmd, "create-report"); ok {
			p.WithCreateReport(v)
		}
		if p.Taxons == nil && p.Data == nil {
			return ErrNoInput
		}

		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		logger.Info("loading taxons", "count", len(p.Taxons))
		taxons, err := c.LoadTaxons(cmd.Context(), p)
		if err != nil {
			return err
		}
		if taxons, err = output.Apply(filter, taxons); err != nil {
			return err
		}
		return printResult(cmd, taxons, func(w io.Writer) {
			if len(taxons) == 0 {
				fmt.Fprintln(w, "No taxons")
				return
			}
			tw := output.Table(w)
			fmt.Fprintln(tw, "TAXONOMY_ID\tRANK\tDOMAIN\tSCIENTIFIC_NAME")
			for _, t := range taxons {
				fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", dash(t.TaxonomyID), dash(t.Rank), dash(t.Domain), dash(t.ScientificName))
			}
			_ = tw.Flush()
		})
	},
}

func init() {
	addParamsFlag(taxonsLoadedCmd)
	taxonsLoadedCmd.Flags().String("workspace-name", "", "Workspace to list")
	taxonsLoadedCmd.Flags().Bool("create-report", false, "Ask the service to write a report")

	addParamsFlag(taxonsLoadCmd)
	taxonsLoadCmd.Flags().String("data", "", "Free form taxon selection understood by the service")
	taxonsLoadCmd.Flags().Bool("index-in-solr", false, "Index the taxons in Solr after loading")
	taxonsLoadCmd.Flags().String("workspace-name", "", "Workspace to load into")
	taxonsLoadCmd.Flags().Bool("create-report", false, "Ask the service to write a report")

	taxonsCmd.AddCommand(taxonsLoadedCmd, taxonsLoadCmd)
	rootCmd.AddCommand(taxonsCmd)
}
