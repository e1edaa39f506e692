// ABOUTME: Logrus logger implementation of the Logger interface
// ABOUTME: Structured field logging for production deployments

package logrus

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using sirupsen/logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a logrus-backed logger with the given minimum
// level (debug/info/warn/error). Unknown levels default to info.
func NewLogrusLogger(level string) *LogrusLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &LogrusLogger{log: log}
}

// Debug logs a debug message with structured fields
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
