package config

import (
	"io"
	"log/slog"
	"os"
)

// OpenLogger builds the application logger. It writes to LogFile when one
// is configured and to fallback otherwise; a nil fallback discards output.
// The returned close function must be called on shutdown.
func (c *Config) OpenLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := c.Level()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return slog.New(slog.NewTextHandler(f, opts)), f.Close, nil
	}
	if fallback == nil {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	return slog.New(slog.NewTextHandler(fallback, opts)), func() error { return nil }, nil
}
