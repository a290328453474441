package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfigDir is the directory below the user config dir.
const GlobalConfigDir = "refdatamgr"

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".rdmrc.yaml", ".rdmrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches for .rdmrc.yaml or .rdmrc.yml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for _, name := range LocalConfigFileNames {
		path := filepath.Join(cwd, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// GlobalConfigPath returns where the global config file lives, whether or
// not it exists yet.
func GlobalConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(configDir, GlobalConfigDir, GlobalConfigFileNames[0]), nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir means no global config
		return "", nil
	}
	for _, name := range GlobalConfigFileNames {
		path := filepath.Join(configDir, GlobalConfigDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// LoadConfigFile loads a CLIConfig from a YAML file. JSON files load too,
// JSON being a subset of YAML.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newConfigError(path, err)
	}

	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, newConfigError(path, err)
	}
	cfg.SetFields = make(map[string]bool, len(keys))
	for k := range keys {
		cfg.SetFields[k] = true
	}
	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func newConfigError(path string, err error) *ConfigError {
	msg := err.Error()
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	ce := &ConfigError{Path: path, Message: msg}
	if m := yamlLine.FindStringSubmatch(msg); m != nil {
		ce.Line, _ = strconv.Atoi(m[1])
	}
	return ce
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: env > local (or explicit) config > global config > defaults.
// Flags are applied by the caller. explicitPath, when set, replaces the
// local config file and must exist.
func LoadAll(explicitPath string) (*CLIConfig, error) {
	cfg := NewDefault()

	globalPath, err := FindGlobalConfig()
	if err != nil {
		return nil, err
	}
	if globalPath != "" {
		globalCfg, err := LoadConfigFile(globalPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, globalCfg, SourceGlobal)
	}

	if explicitPath == "" {
		explicitPath = os.Getenv(EnvConfig)
	}
	if explicitPath != "" {
		fileCfg, err := LoadConfigFile(explicitPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, fileCfg, SourceFile)
		cfg.ConfigFile = explicitPath
	} else {
		localPath, err := FindLocalConfig()
		if err != nil {
			return nil, err
		}
		if localPath != "" {
			localCfg, err := LoadConfigFile(localPath)
			if err != nil {
				return nil, err
			}
			MergeConfig(cfg, localCfg, SourceLocal)
		}
	}

	LoadEnvConfig(cfg)
	return cfg, nil
}

// SaveCredentials writes user and token into the config file at path,
// keeping every other key already present. The file is created with
// owner-only permissions.
func SaveCredentials(path, user, token string) error {
	doc := make(map[string]any)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return newConfigError(path, err)
		}
		if doc == nil {
			doc = make(map[string]any)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to read config: %w", err)
	}

	doc["token"] = token
	if user != "" {
		doc["user"] = user
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
