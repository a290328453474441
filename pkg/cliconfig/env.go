package cliconfig

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names
const (
	EnvURL            = "RDM_URL"
	EnvAuthURL        = "RDM_AUTH_URL"
	EnvToken          = "RDM_TOKEN"
	EnvKBaseToken     = "KB_AUTH_TOKEN"
	EnvUser           = "RDM_USER"
	EnvTimeout        = "RDM_TIMEOUT"
	EnvInsecure       = "RDM_INSECURE"
	EnvTrustAllCerts  = "RDM_TRUST_ALL_CERTS"
	EnvStreaming      = "RDM_STREAMING"
	EnvServiceVersion = "RDM_SERVICE_VERSION"
	EnvLogLevel       = "RDM_LOG_LEVEL"
	EnvLogFormat      = "RDM_LOG_FORMAT"
	EnvConfig         = "RDM_CONFIG"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	envString(cfg, &cfg.URL, EnvURL, "url")
	envString(cfg, &cfg.AuthURL, EnvAuthURL, "authUrl")
	envString(cfg, &cfg.User, EnvUser, "user")
	envString(cfg, &cfg.ServiceVersion, EnvServiceVersion, "serviceVersion")
	envString(cfg, &cfg.LogLevel, EnvLogLevel, "logLevel")
	envString(cfg, &cfg.LogFormat, EnvLogFormat, "logFormat")

	// RDM_TOKEN wins over the SDK wide KB_AUTH_TOKEN
	if !envString(cfg, &cfg.Token, EnvToken, "token") {
		envString(cfg, &cfg.Token, EnvKBaseToken, "token")
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = timeout
			cfg.Sources["timeout"] = SourceEnv
		}
	}

	envBool(cfg, &cfg.Insecure, EnvInsecure, "insecure")
	envBool(cfg, &cfg.TrustAllCerts, EnvTrustAllCerts, "trustAllCerts")
	envBool(cfg, &cfg.Streaming, EnvStreaming, "streaming")
}

func envString(cfg *CLIConfig, dst *string, name, key string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	*dst = v
	cfg.Sources[key] = SourceEnv
	return true
}

func envBool(cfg *CLIConfig, dst *bool, name, key string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		*dst = true
	default:
		*dst = false
	}
	cfg.Sources[key] = SourceEnv
}
