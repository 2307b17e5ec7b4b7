// Package logger provides the colored, prefixed logger used across the services.
package logger

import (
	"errors"
	"io"
	"log"
)

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	logger *log.Logger
	prefix string
	color  string
}

// New creates a Logger writing to w. color is the ANSI color of the prefix, usually one of
// the Color constants.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, errors.New("logger requires a writer")
	}
	return &Logger{
		logger: log.New(w, "", log.LstdFlags),
		prefix: prefix,
		color:  color,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(ColorGreen, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(ColorYellow, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(ColorRed, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.logger.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, ColorReset, levelColor, level, ColorReset, msg)
}
