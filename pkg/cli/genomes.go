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

var genomesCmd = &cobra.Command{
	Use:     "genomes",
	Aliases: []string{"genome"},
	Short:   "List, load, index and update reference genomes",
}

var genomesReferenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "List genomes available from the upstream sources",
	Long: `List the reference genomes the service can load from Ensembl, RefSeq or
Phytozome.

Examples:
  rdm genomes reference --refseq
  rdm genomes reference --refseq --updated-only --filter 'domain == "bacteria"'
  rdm genomes reference --params list.yaml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := &rdm.ListReferenceGenomesParams{}
		if err := loadParams(cmd, p); err != nil {
			return err
		}
		if v, ok := flags.Bit(cmd, "ensembl"); ok {
			p.WithEnsembl(v)
		}
		if v, ok := flags.Bit(cmd, "refseq"); ok {
			p.WithRefSeq(v)
		}
		if v, ok := flags.Bit(cmd, "phytozome"); ok {
			p.WithPhytozome(v)
		}
		if v, ok := flags.Bit(cmd, "updated-only"); ok {
			p.WithUpdatedOnly(v)
		}

		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		genomes, err := c.ListReferenceGenomes(cmd.Context(), p)
		if err != nil {
			return err
		}
		if genomes, err = output.Apply(filter, genomes); err != nil {
			return err
		}
		return printResult(cmd, genomes, func(w io.Writer) { printReferenceGenomes(w, genomes) })
	},
}

var genomesLoadedCmd = &cobra.Command{
	Use:   "loaded",
	Short: "List genomes already loaded into the reference workspace",
	Long: `List the genomes stored in the reference workspace.

Examples:
  rdm genomes loaded
  rdm genomes loaded --workspace RefSeq_Genomes --refseq
  rdm genomes loaded --query '$[*].ref'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := &rdm.ListLoadedGenomesParams{}
		if err := loadParams(cmd, p); err != nil {
			return err
		}
		if v, ok := flags.Bit(cmd, "ensembl"); ok {
			p.WithEnsembl(v)
		}
		if v, ok := flags.Bit(cmd, "refseq"); ok {
			p.WithRefSeq(v)
		}
		if v, ok := flags.Bit(cmd, "phytozome"); ok {
			p.WithPhytozome(v)
		}
		if v, ok := flags.String(cmd, "workspace"); ok {
			p.WithWorkspace(v)
		}
		if v, ok := flags.Bit(cmd, "create-report"); ok {
			p.WithCreateReport(v)
		}

		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		genomes, err := c.ListLoadedGenomes(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printLoadedGenomes(cmd, genomes)
	},
}

var genomesLoadCmd = &cobra.Command{
	Use:   "load [genome-file-pattern...]",
	Short: "Load genomes into the reference workspace",
	Long: `Load genomes into the reference workspace. Genomes come from record
files (YAML or JSON, one genome or a list per file, ** globs allowed), from a
--params file, or from a --data string understood by the service.

Examples:
  rdm genomes reference --refseq --json > genomes.json
  rdm genomes load genomes.json --workspace-name RefSeq_Genomes
  rdm genomes load 'records/**/*.yaml' --index-in-solr
  rdm genomes load --data GCF_000005845.2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &rdm.LoadGenomesParams{}
		if err := loadParams(cmd, p); err != nil {
			return err
		}
		if len(args) > 0 {
			genomes, err := records.Glob[rdm.ReferenceGenomeData](args...)
			if err != nil {
				return err
			}
			p.WithGenomes(genomes)
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
		if p.Genomes == nil && p.Data == nil {
			return ErrNoInput
		}

		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		logger.Info("loading genomes", "count", len(p.Genomes))
		genomes, err := c.LoadGenomes(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printLoadedGenomes(cmd, genomes)
	},
}

var genomesIndexCmd = &cobra.Command{
	Use:   "index [genome-file-pattern...]",
	Short: "Index loaded genomes in Solr",
	Long: `Index genomes already loaded into the workspace in Solr. Without record
files every genome currently loaded is indexed.

Examples:
  rdm genomes index
  rdm genomes index loaded.json --workspace RefSeq_Genomes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &rdm.IndexGenomesInSolrParams{}
		if err := loadParams(cmd, p); err != nil {
			return err
		}

		c, err := newClient(cmd)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			genomes, err := records.Glob[rdm.KBaseReferenceGenomeData](args...)
			if err != nil {
				return err
			}
			p.WithGenomes(genomes)
		}
		if p.Genomes == nil {
			loaded, err := c.ListLoadedGenomes(cmd.Context(), &rdm.ListLoadedGenomesParams{})
			if err != nil {
				return fmt.Errorf("listing loaded genomes: %w", err)
			}
			p.WithGenomes(loaded)
		}
		if v, ok := flags.String(cmd, "workspace"); ok {
			p.WithWorkspace(v)
		}
		if v, ok := flags.Bit(cmd, "create-report"); ok {
			p.WithCreatReport(v)
		}

		genomes, err := c.IndexGenomesInSolr(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printLoadedGenomes(cmd, genomes)
	},
}

var genomesUpdateCmd = &cobra.Command{
	Use:   "update [genome-file-pattern...]",
	Short: "Refresh loaded genomes from their upstream sources",
	Long: `Update the loaded genomes whose upstream records changed.

--v1 sends the first revision of the parameters, for services that still
expect 'fileformats' and 'create_report'.

Examples:
  rdm genomes update --refseq
  rdm genomes update --refseq --formats gbff --workspace-name RefSeq_Genomes
  rdm genomes update --v1 --refseq --formats gbff`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var genomeData []rdm.ReferenceGenomeData
		if len(args) > 0 {
			var err error
			if genomeData, err = records.Glob[rdm.ReferenceGenomeData](args...); err != nil {
				return err
			}
		}

		var params rdm.UpdateParams
		if useV1, _ := cmd.Flags().GetBool("v1"); useV1 {
			p := &rdm.UpdateLoadedGenomesParamsV1{}
			if err := loadParams(cmd, p); err != nil {
				return err
			}
			if v, ok := flags.Bit(cmd, "ensembl"); ok {
				p.WithEnsembl(v)
			}
			if v, ok := flags.Bit(cmd, "refseq"); ok {
				p.WithRefSeq(v)
			}
			if v, ok := flags.Bit(cmd, "phytozome"); ok {
				p.WithPhytozome(v)
			}
			if genomeData != nil {
				p.WithGenomeData(genomeData)
			}
			if v, ok := flags.String(cmd, "workspace-name"); ok {
				p.WithWorkspaceName(v)
			}
			if v, ok := flags.Bit(cmd, "create-report"); ok {
				p.WithCreateReport(v)
			}
			if v, ok := flags.String(cmd, "formats"); ok {
				p.WithFileFormats(v)
			}
			params = p
		} else {
			p := &rdm.UpdateLoadedGenomesParams{}
			if err := loadParams(cmd, p); err != nil {
				return err
			}
			if v, ok := flags.Bit(cmd, "ensembl"); ok {
				p.WithEnsembl(v)
			}
			if v, ok := flags.Bit(cmd, "refseq"); ok {
				p.WithRefSeq(v)
			}
			if v, ok := flags.Bit(cmd, "phytozome"); ok {
				p.WithPhytozome(v)
			}
			if genomeData != nil {
				p.WithGenomeData(genomeData)
			}
			if v, ok := flags.String(cmd, "workspace-name"); ok {
				p.WithWorkspaceName(v)
			}
			if v, ok := flags.Bit(cmd, "create-report"); ok {
				p.WithCreatReport(v)
			}
			if v, ok := flags.String(cmd, "formats"); ok {
				p.WithFormats(v)
			}
			params = p
		}

		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		genomes, err := c.UpdateLoadedGenomes(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printLoadedGenomes(cmd, genomes)
	},
}

// loadParams decodes the --params file, when given, into p.
func loadParams(cmd *cobra.Command, p any) error {
	path, ok := flags.String(cmd, "params")
	if !ok {
		return nil
	}
	return records.Load(path, p)
}

func printLoadedGenomes(cmd *cobra.Command, genomes []rdm.KBaseReferenceGenomeData) error {
	genomes, err := output.Apply(filter, genomes)
	if err != nil {
		return err
	}
	return printResult(cmd, genomes, func(w io.Writer) {
		if len(genomes) == 0 {
			fmt.Fprintln(w, "No genomes")
			return
		}
		tw := output.Table(w)
		fmt.Fprintln(tw, "REF\tID\tSOURCE\tVERSION\tNAME")
		for _, g := range genomes {
			fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\n", dash(g.Ref), dash(g.ID), dash(g.Source), dash(g.Version), dash(g.Name))
		}
		_ = tw.Flush()
	})
}

func printReferenceGenomes(w io.Writer, genomes []rdm.ReferenceGenomeData) {
	if len(genomes) == 0 {
		fmt.Fprintln(w, "No genomes")
		return
	}
	tw := output.Table(w)
	fmt.Fprintln(tw, "ID\tSOURCE\tDOMAIN\tSTATUS\tNAME")
	for _, g := range genomes {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\n", dash(g.ID), dash(g.Source), dash(g.Domain), dash(g.Status), dash(g.Name))
	}
	_ = tw.Flush()
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("ensembl", false, "Select Ensembl genomes")
	cmd.Flags().Bool("refseq", false, "Select RefSeq genomes")
	cmd.Flags().Bool("phytozome", false, "Select Phytozome genomes")
}

func addParamsFlag(cmd *cobra.Command) {
	cmd.Flags().String("params", "", "YAML or JSON file holding the call parameters; flags override it")
}

func init() {
	addParamsFlag(genomesReferenceCmd)
	addSourceFlags(genomesReferenceCmd)
	genomesReferenceCmd.Flags().Bool("updated-only", false, "Only genomes updated since they were loaded")

	addParamsFlag(genomesLoadedCmd)
	addSourceFlags(genomesLoadedCmd)
	genomesLoadedCmd.Flags().String("workspace", "", "Workspace to list")
	genomesLoadedCmd.Flags().Bool("create-report", false, "Ask the service to write a report")

	addParamsFlag(genomesLoadCmd)
	genomesLoadCmd.Flags().String("data", "", "Free form genome selection understood by the service")
	genomesLoadCmd.Flags().Bool("index-in-solr", false, "Index the genomes in Solr after loading")
	genomesLoadCmd.Flags().String("workspace-name", "", "Workspace to load into")
	genomesLoadCmd.Flags().Bool("create-report", false, "Ask the service to write a report")

	addParamsFlag(genomesIndexCmd)
	genomesIndexCmd.Flags().String("workspace", "", "Workspace holding the genomes")
	genomesIndexCmd.Flags().Bool("create-report", false, "Ask the service to write a report")

	addParamsFlag(genomesUpdateCmd)
	addSourceFlags(genomesUpdateCmd)
	genomesUpdateCmd.Flags().Bool("v1", false, "Send the first revision of the update parameters")
	genomesUpdateCmd.Flags().String("workspace-name", "", "Workspace holding the genomes")
	genomesUpdateCmd.Flags().Bool("create-report", false, "Ask the service to write a report")
	genomesUpdateCmd.Flags().String("formats", "", "Comma separated file formats to fetch, e.g. gbff")

	genomesCmd.AddCommand(genomesReferenceCmd, genomesLoadedCmd, genomesLoadCmd, genomesIndexCmd, genomesUpdateCmd)
	rootCmd.AddCommand(genomesCmd)
}
