// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger provides leveled diagnostics for docx2txt. Progress lines
// for the user are written by the converter itself; this logger carries
// everything else (config resolution, backend choice, debug detail).
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// ParseLevel maps a level name to a Level. Unknown names are an error.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn, or error)", s)
	}
	return l, nil
}

// Logger writes leveled, printf-style messages.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type implLogger struct {
	logger *log.Logger
	level  Level
}

// New returns a Logger writing to w that drops messages below level.
func New(w io.Writer, level Level) Logger {
	return &implLogger{
		logger: log.New(w, "", 0),
		level:  level,
	}
}

// Discard returns a Logger that writes nothing.
func Discard() Logger {
	return New(io.Discard, LevelError+1)
}

func (l *implLogger) shouldLog(level Level) bool {
	return level >= l.level
}

func (l *implLogger) printf(level Level, tag, msg string, args ...any) {
	if l.shouldLog(level) {
		l.logger.Printf("["+tag+"] "+msg, args...)
	}
}

func (l *implLogger) Debug(msg string, args ...any) { l.printf(LevelDebug, "DEBUG", msg, args...) }
func (l *implLogger) Info(msg string, args ...any)  { l.printf(LevelInfo, "INFO", msg, args...) }
func (l *implLogger) Warn(msg string, args ...any)  { l.printf(LevelWarn, "WARN", msg, args...) }
func (l *implLogger) Error(msg string, args ...any) { l.printf(LevelError, "ERROR", msg, args...) }
