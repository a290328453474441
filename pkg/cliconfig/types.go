// Package cliconfig provides configuration types and loading for the rdm CLI.
//
// Values are layered with the following precedence (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (RDM_* prefix, plus KB_AUTH_TOKEN)
//  3. Local config file (.rdmrc.yaml in the current directory)
//  4. Global config file ($XDG_CONFIG_HOME/refdatamgr/config.yaml)
//  5. Default values
//
// The source of every value is tracked for `rdm config`.
package cliconfig

// CLIConfig is the complete configuration of the rdm CLI.
type CLIConfig struct {
	// Service settings
	URL            string `yaml:"url" json:"url"`
	ServiceVersion string `yaml:"serviceVersion,omitempty" json:"serviceVersion,omitempty"`

	// Credentials
	AuthURL string `yaml:"authUrl" json:"authUrl"`
	Token   string `yaml:"token,omitempty" json:"token,omitempty"`
	User    string `yaml:"user,omitempty" json:"user,omitempty"`

	// Transport settings
	Timeout       int  `yaml:"timeout" json:"timeout"` // seconds, 0 disables
	Insecure      bool `yaml:"insecure" json:"insecure"`
	TrustAllCerts bool `yaml:"trustAllCerts" json:"trustAllCerts"`
	Streaming     bool `yaml:"streaming" json:"streaming"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Output settings
	JSON bool `yaml:"json" json:"json"`

	// ConfigFile is an explicit config file replacing the local one.
	ConfigFile string `yaml:"-" json:"configFile,omitempty"`

	// Sources tracks where each value came from
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields lists the keys present in a loaded file, so explicit
	// false and zero values can override lower layers.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceFlag    = "flag"
)

// Redacted returns a copy safe to print: the token is masked.
func (c *CLIConfig) Redacted() *CLIConfig {
	cp := *c
	if len(cp.Token) > 4 {
		cp.Token = "****" + cp.Token[len(cp.Token)-4:]
	} else if cp.Token != "" {
		cp.Token = "****"
	}
	return &cp
}
