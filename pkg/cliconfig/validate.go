package cliconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/kbaseapps/refdatamgr/pkg/jsonrpc"
)

// maxTimeout caps the read timeout at one day.
const maxTimeout = 86400

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate reports every invalid value at once.
func (c *CLIConfig) Validate() error {
	var errs []error

	if _, err := jsonrpc.ParseServiceURL(c.URL); err != nil {
		errs = append(errs, fmt.Errorf("url: %w", err))
	}
	if c.AuthURL != "" {
		if u, err := url.Parse(c.AuthURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("authUrl %q is not an http(s) URL", c.AuthURL))
		}
	}
	if c.Timeout < 0 || c.Timeout > maxTimeout {
		errs = append(errs, fmt.Errorf("timeout %d is out of range (0-%d seconds)", c.Timeout, maxTimeout))
	}
	if c.LogLevel != "" && !oneOf(c.LogLevel, validLogLevels) {
		errs = append(errs, fmt.Errorf("logLevel %q must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if c.LogFormat != "" && !oneOf(c.LogFormat, validLogFormats) {
		errs = append(errs, fmt.Errorf("logFormat %q must be one of %s", c.LogFormat, strings.Join(validLogFormats, ", ")))
	}
	return errors.Join(errs...)
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}
