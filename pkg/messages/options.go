package messages

import (
	"io"
	"log/slog"
)

// Option configures a Catalog instance.
type Option func(*Catalog)

// WithFallbackToKey determines whether Lookup falls back to the key when a
// template is not found. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(c *Catalog) {
		c.fallbackToKey = fallback
	}
}

// WithLogger provides a customizable logger for the catalog.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingMessagesLogging controls whether missing templates are logged.
// Default is false to avoid excessive logging.
func WithMissingMessagesLogging(log bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = log
	}
}

// WithNoLogging disables all logging.
func WithNoLogging() Option {
	return func(c *Catalog) {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		c.missingLogMode = false
	}
}
