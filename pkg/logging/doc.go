// Package logging builds the structured loggers used by refdatamgr.
//
// It is a thin layer over log/slog. Library packages never log unless they
// are handed a logger; they default to [Nop]. The rdm command line builds
// one logger from its configuration and threads it through the JSON-RPC
// caller:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel(cfg.LogLevel),
//	    Format: logging.ParseFormat(cfg.LogFormat),
//	})
//	client, err := rdm.New(cfg.URL, rdm.WithLogger(logger))
//
// Text output is meant for terminals, JSON output for log collectors.
package logging
