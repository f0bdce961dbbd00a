// Package logging configures the process-wide slog logger. A TUI
// process owns the terminal, so the default sink is a rotated file
// under the user config dir rather than stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	EnvLogLevel  = "VSLIDER_LOG_LEVEL"
	EnvLogFormat = "VSLIDER_LOG_FORMAT"
	EnvLogSink   = "VSLIDER_LOG_SINK"
	EnvLogFile   = "VSLIDER_LOG_FILE"
)

// Config selects level, format and sink. Zero values mean defaults:
// error level, text format, file sink.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Sink   string // file, stderr, none
	File   string // file sink path; empty selects the default location
}

// FromEnv fills unset fields from the environment.
func (c Config) FromEnv() Config {
	if c.Level == "" {
		c.Level = os.Getenv(EnvLogLevel)
	}
	if c.Format == "" {
		c.Format = os.Getenv(EnvLogFormat)
	}
	if c.Sink == "" {
		c.Sink = os.Getenv(EnvLogSink)
	}
	if c.File == "" {
		c.File = os.Getenv(EnvLogFile)
	}
	return c
}

// DefaultLogPath returns the default file sink location.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vslider", "vslider.log")
}

// Setup installs the configured logger as the slog default and returns
// a closer for the sink.
func Setup(c Config) (io.Closer, error) {
	c = c.FromEnv()

	var out io.Writer
	var closer io.Closer = io.NopCloser(nil)
	switch strings.ToLower(c.Sink) {
	case "stderr":
		out = os.Stderr
	case "none":
		out = io.Discard
	default:
		path := c.File
		if path == "" {
			path = DefaultLogPath()
		}
		if path == "" {
			out = io.Discard
			break
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		out = lj
		closer = lj
	}

	opts := &slog.HandlerOptions{Level: parseLevel(c.Level)}
	var handler slog.Handler
	if strings.ToLower(c.Format) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	slog.SetDefault(slog.New(handler))
	return closer, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
