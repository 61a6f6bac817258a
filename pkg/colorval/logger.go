package colorval

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"
)

// Logger receives diagnostics such as the clamping warning.
// It follows the slog-style signature for compatibility with Go's structured logging.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a Logger adapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *SlogAdapter) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *SlogAdapter) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *SlogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// DefaultLogger returns a Logger writing text records to w at the given level.
// A nil writer means stderr.
func DefaultLogger(w io.Writer, level slog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogAdapter{logger: slog.New(handler)}
}

// NopLogger returns a Logger that discards all log messages.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Record is one message captured by a Recorder.
type Record struct {
	Level   slog.Level
	Message string
	Args    []any
}

// Recorder is a Logger that keeps every message at or above a threshold.
// It is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	threshold slog.Level
	records   []Record
}

// NewRecorder creates a Recorder keeping messages at threshold or above.
func NewRecorder(threshold slog.Level) *Recorder {
	return &Recorder{threshold: threshold}
}

func (r *Recorder) Debug(msg string, args ...any) { r.record(slog.LevelDebug, msg, args) }
func (r *Recorder) Info(msg string, args ...any)  { r.record(slog.LevelInfo, msg, args) }
func (r *Recorder) Warn(msg string, args ...any)  { r.record(slog.LevelWarn, msg, args) }
func (r *Recorder) Error(msg string, args ...any) { r.record(slog.LevelError, msg, args) }

func (r *Recorder) record(level slog.Level, msg string, args []any) {
	if level < r.threshold {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Record{Level: level, Message: msg, Args: slices.Clone(args)})
}

// Records returns a copy of the captured records.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.records)
}

// Len returns the number of captured records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset discards all captured records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}
