// Package logging builds the slog loggers shared by the API and the CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Options selects the threshold and handler of a logger. Both fields take
// the values of the log.level and log.format config keys.
type Options struct {
	Level  string
	Format string
}

// New returns a logger writing to w. Format "json" selects the JSON handler;
// anything else writes logfmt-style text.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	if strings.EqualFold(opts.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel accepts the slog level names (with offsets such as "debug+2")
// and "warning". Anything else is info.
func ParseLevel(s string) slog.Level {
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
