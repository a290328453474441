package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbaseapps/refdatamgr/pkg/cli/internal/output"
	"github.com/kbaseapps/refdatamgr/pkg/cliconfig"
	"github.com/kbaseapps/refdatamgr/pkg/logging"
	"github.com/kbaseapps/refdatamgr/pkg/rdm"
)

var (
	// Persistent flags available to all subcommands
	configPath  string
	jsonOutput  bool
	queryPath   string
	filterSrc   string
	flagURL     string
	flagToken   string
	flagAuthURL string
	flagVersion string
	flagTimeout int
	flagLevel   string
	flagFormat  string
	flagInsec   bool
	flagTrust   bool
	flagStream  bool

	// Resolved in PersistentPreRunE
	cfg    *cliconfig.CLIConfig
	logger = logging.Nop()
	filter *output.Filter

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rdm",
	Short: "rdm talks to the KBase ReferenceDataManager service",
	Long: `rdm lists, loads, indexes and updates the reference genomes and taxons
managed by the KBase ReferenceDataManager service.

Configuration can be provided via flags, environment variables (RDM_*), a local
.rdmrc.yaml or the global $XDG_CONFIG_HOME/refdatamgr/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // Run prints errors
	PersistentPreRunE: setup,
}

// Run executes the command line and returns the process exit code.
func Run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		return 1
	}
	return 0
}

// Execute runs the command line and exits.
func Execute() {
	os.Exit(Run())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file to use instead of .rdmrc.yaml (env RDM_CONFIG)")
	pf.StringVar(&flagURL, "url", "", "ReferenceDataManager service URL")
	pf.StringVar(&flagToken, "token", "", "KBase auth token")
	pf.StringVar(&flagAuthURL, "auth-url", "", "Login endpoint used by 'rdm login'")
	pf.StringVar(&flagVersion, "service-version", "", "Pin calls to a service release (e.g. dev, beta, release)")
	pf.IntVar(&flagTimeout, "timeout", 0, "Read timeout in seconds, 0 disables it")
	pf.BoolVar(&flagInsec, "insecure", false, "Allow sending the token over plain http")
	pf.BoolVar(&flagTrust, "trust-all-certs", false, "Skip TLS certificate verification")
	pf.BoolVar(&flagStream, "streaming", false, "Stream request bodies instead of buffering them")
	pf.StringVar(&flagLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flagFormat, "log-format", "", "Log format (text, json)")
	pf.BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	pf.StringVar(&queryPath, "query", "", "JSONPath applied to the JSON result, e.g. '$[*].id'")
	pf.StringVar(&filterSrc, "filter", "", "Keep result entities matching an expression, e.g. 'source == \"refseq\"'")
}

// setup resolves configuration, logging and the result filter.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := cliconfig.LoadAll(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, loaded)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	cfg = loaded
	logger = logging.New(cfg.LoggingConfig(cmd.ErrOrStderr()))
	if cfg.JSON {
		jsonOutput = true
	}
	if cfg.TrustAllCerts {
		output.Warn(cmd.ErrOrStderr(), "TLS certificate verification is disabled")
	}

	filter = nil
	if filterSrc != "" {
		if filter, err = output.NewFilter(filterSrc); err != nil {
			return err
		}
	}
	logger.Debug("configuration resolved", "url", cfg.URL, "sources", cfg.Sources)
	return nil
}

// applyFlags copies the flags given on the command line over loaded.
func applyFlags(cmd *cobra.Command, c *cliconfig.CLIConfig) {
	fl := cmd.Flags()
	set := func(name, key string, apply func()) {
		if fl.Changed(name) {
			apply()
			c.Sources[key] = cliconfig.SourceFlag
		}
	}
	set("url", "url", func() { c.URL = flagURL })
	set("token", "token", func() { c.Token = flagToken })
	set("auth-url", "authUrl", func() { c.AuthURL = flagAuthURL })
	set("service-version", "serviceVersion", func() { c.ServiceVersion = flagVersion })
	set("timeout", "timeout", func() { c.Timeout = flagTimeout })
	set("insecure", "insecure", func() { c.Insecure = flagInsec })
	set("trust-all-certs", "trustAllCerts", func() { c.TrustAllCerts = flagTrust })
	set("streaming", "streaming", func() { c.Streaming = flagStream })
	set("log-level", "logLevel", func() { c.LogLevel = flagLevel })
	set("log-format", "logFormat", func() { c.LogFormat = flagFormat })
	set("json", "json", func() { c.JSON = jsonOutput })
}

// newClient builds a service client from the resolved configuration.
func newClient(cmd *cobra.Command) (*rdm.Client, error) {
	return cfg.NewClient(cmd.Context(), "", clientLogger())
}

func clientLogger() *slog.Logger {
	return logger.With("service", rdm.ServiceName)
}
