// Package logging builds charmbracelet/log loggers and per-session log files.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options holds configuration for a logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default logger options.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "tidy",
	}
}

// OptionsFromConfig builds Options from string configuration values.
// Unknown names keep the defaults; config loading rejects them earlier.
func OptionsFromConfig(level, format string, timestamps bool) Options {
	opts := DefaultOptions()
	if l, err := ParseLevel(level); err == nil {
		opts.Level = l
	}
	if f, err := ParseFormatter(format); err == nil {
		opts.Formatter = f
	}
	opts.ReportTimestamp = timestamps
	return opts
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a log level name. An empty name is info.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn, error or fatal)", level)
}

// ParseFormatter parses a formatter name. An empty name is text.
func ParseFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("unknown log format %q (want text, json or logfmt)", format)
}

const (
	logPrefix = "tidy-"
	logSuffix = ".log"
)

// SessionLog is the log file for one interactive session. The terminal is
// owned by the UI while it runs, so session output goes here instead.
type SessionLog struct {
	Dir       string
	SessionID string
	Path      string
	file      *os.File
}

// NewSessionLog creates dir if needed and opens a fresh log file in it.
func NewSessionLog(dir string) (*SessionLog, error) {
	if dir == "" {
		return nil, fmt.Errorf("log dir is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	id := uuid.NewString()
	path := filepath.Join(dir, logPrefix+id+logSuffix)
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &SessionLog{
		Dir:       dir,
		SessionID: id,
		Path:      path,
		file:      file,
	}, nil
}

// Logger returns a logger writing to the session file, tagged with the
// session id.
func (s *SessionLog) Logger(opts Options) *log.Logger {
	return New(s.file, opts).With("session", s.SessionID)
}

// Close closes the log file.
func (s *SessionLog) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

// FindLatestLog returns the most recently modified session log in dir, or
// "" if there is none.
func FindLatestLog(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read log dir: %w", err)
	}

	var latest string
	var latestTime time.Time
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latest = filepath.Join(dir, name)
		}
	}
	return latest, nil
}

// CopyLog writes the contents of the log at path to w.
func CopyLog(w io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(w, file); err != nil {
		return fmt.Errorf("copy log file: %w", err)
	}
	return nil
}
