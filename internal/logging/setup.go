// Package logging configures the process logger and carries request-scoped
// loggers through context.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, json, logfmt
	Output io.Writer
	// File, when Path is set, receives a copy of every entry with rotation.
	File FileOptions
}

// FileOptions controls the rotated log file.
type FileOptions struct {
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// New builds a logger from options. Unknown levels fall back to info and are
// reported as an error alongside the usable logger.
func New(opts Options) (*log.Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.File.Path != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSize,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAge,
		})
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Prefix:          "boxkeep",
		Formatter:       formatterFor(opts.Format),
	})

	if opts.Level == "" {
		return logger, nil
	}

	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return logger, fmt.Errorf("invalid log level %q, using info", opts.Level)
	}
	logger.SetLevel(level)
	return logger, nil
}

// Setup builds the logger and installs it as the package default so code
// without a context still logs consistently.
func Setup(opts Options) *log.Logger {
	logger, err := New(opts)
	log.SetDefault(logger)
	if err != nil {
		logger.Warn("invalid log level, using info", "invalid_level", opts.Level)
	}
	return logger
}

func formatterFor(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
