package cliconfig

import "github.com/kbaseapps/refdatamgr/pkg/auth"

// DefaultURL is the production ReferenceDataManager endpoint.
const DefaultURL = "https://kbase.us/services/ReferenceDataManager"

// DefaultAuthURL is the login endpoint used for password logins.
const DefaultAuthURL = auth.DefaultLoginURL

// DefaultTimeout is the default read timeout in seconds.
const DefaultTimeout = 1800

// DefaultLogLevel only reports warnings and errors.
const DefaultLogLevel = "warn"

// DefaultLogFormat is human readable.
const DefaultLogFormat = "text"

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		URL:       DefaultURL,
		AuthURL:   DefaultAuthURL,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	for _, key := range []string{"url", "authUrl", "timeout", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
