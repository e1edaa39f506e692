// ABOUTME: Standard logger implementation using Go's standard log package
// ABOUTME: Provides structured logging with level support and a minimum-level filter

package standard

import (
	"encoding/json"
	"log"
	"os"
)

// Level ordering for the minimum-level filter.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// StandardLogger implements the Logger interface using standard library
type StandardLogger struct {
	debug    *log.Logger
	info     *log.Logger
	warn     *log.Logger
	error    *log.Logger
	minLevel int
}

// NewStandardLogger creates a new standard logger emitting all levels
func NewStandardLogger() *StandardLogger {
	return NewStandardLoggerWithLevel("debug")
}

// NewStandardLoggerWithLevel creates a standard logger that drops messages
// below the given level (debug/info/warn/error). Unknown levels emit
// everything.
func NewStandardLoggerWithLevel(level string) *StandardLogger {
	return &StandardLogger{
		debug:    log.New(os.Stdout, "[DEBUG] ", log.LstdFlags),
		info:     log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		warn:     log.New(os.Stdout, "[WARN] ", log.LstdFlags),
		error:    log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
		minLevel: parseLevel(level),
	}
}

// parseLevel maps a level name to its ordering value
func parseLevel(level string) int {
	switch level {
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelDebug
	}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	if l.minLevel > levelDebug {
		return
	}
	l.logWithFields(l.debug, msg, fields)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	if l.minLevel > levelInfo {
		return
	}
	l.logWithFields(l.info, msg, fields)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	if l.minLevel > levelWarn {
		return
	}
	l.logWithFields(l.warn, msg, fields)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.logWithFields(l.error, msg, fields)
}

// logWithFields logs a message with structured fields
func (l *StandardLogger) logWithFields(logger *log.Logger, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		logger.Println(msg)
		return
	}

	// Convert fields to JSON for structured logging
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		logger.Printf("%s (failed to marshal fields: %v)", msg, err)
		return
	}

	logger.Printf("%s %s", msg, string(fieldsJSON))
}
