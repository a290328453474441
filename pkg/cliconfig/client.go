package cliconfig

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/kbaseapps/refdatamgr/pkg/auth"
	"github.com/kbaseapps/refdatamgr/pkg/logging"
	"github.com/kbaseapps/refdatamgr/pkg/rdm"
)

// LoggingConfig turns the log settings into a logging.Config writing to out.
func (c *CLIConfig) LoggingConfig(out io.Writer) logging.Config {
	return logging.Config{
		Level:  logging.ParseLevel(c.LogLevel),
		Format: logging.ParseFormat(c.LogFormat),
		Output: out,
	}
}

// ClientOptions turns the transport settings into client options.
func (c *CLIConfig) ClientOptions(logger *slog.Logger) []rdm.Option {
	opts := []rdm.Option{
		rdm.WithTimeout(time.Duration(c.Timeout) * time.Second),
		rdm.WithInsecureHTTP(c.Insecure),
		rdm.WithTrustAllCerts(c.TrustAllCerts),
		rdm.WithStreaming(c.Streaming),
		rdm.WithServiceVersion(c.ServiceVersion),
	}
	if logger != nil {
		opts = append(opts, rdm.WithLogger(logger))
	}
	return opts
}

// NewClient builds a client from the resolved configuration. A configured
// token is used as is; otherwise password, when not empty, is exchanged
// for a token at AuthURL. Without either the client is anonymous.
func (c *CLIConfig) NewClient(ctx context.Context, password string, logger *slog.Logger) (*rdm.Client, error) {
	opts := c.ClientOptions(logger)
	switch {
	case c.Token != "":
		tok := auth.NewToken(c.Token)
		tok.User = c.User
		return rdm.NewWithToken(c.URL, tok, opts...)
	case password != "":
		return rdm.NewWithPasswordAuthURL(ctx, c.URL, c.User, password, c.AuthURL, opts...)
	default:
		return rdm.New(c.URL, opts...)
	}
}
