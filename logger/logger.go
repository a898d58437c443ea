package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger writes JSON log lines to a per-run file. It is a no-op until Init.
type Logger struct {
	file  *os.File
	log   zerolog.Logger
	runID string
	mu    sync.Mutex
}

// NewLogger creates a new Logger instance
func NewLogger() *Logger {
	return &Logger{
		log:   zerolog.Nop(),
		runID: uuid.New().String(),
	}
}

// Init opens flywaydeck_<date>_<n>.log in logDir, n counting runs that day.
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("flywaydeck_%s_*.log", dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("flywaydeck_%s_%d.log", dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = f
	l.log = zerolog.New(f).With().Timestamp().Str("run", l.runID).Logger()
	l.log.Info().Msg("started")
	return nil
}

// Log writes a fixed message.
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info().Msg(message)
}

// Logf writes a formatted message to the log file
func (l *Logger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info().Msgf(format, args...)
}

// Errorf records a failure.
func (l *Logger) Errorf(err error, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Error().Err(err).Msgf(format, args...)
}

// Close writes the closing line and drops back to a no-op logger.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.log.Info().Msg("stopped")
		l.file.Close()
		l.file = nil
		l.log = zerolog.Nop()
	}
}
