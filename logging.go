package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// initLogging configures the default slog logger. If w is nil, os.Stderr is
// used. Format is "text" or "json".
func initLogging(level, format string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// newLogger returns the default logger tagged with a component attribute.
func newLogger(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
