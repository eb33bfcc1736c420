// Package logging provides a timestamped, severity-tagged diagnostic
// logger with optional ANSI colorization per severity.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Level is the severity of a log record, ordered by increasing urgency.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the bracketed label text for the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

const colorReset = "\033[0m"

func (l Level) color() string {
	switch l {
	case LevelDebug:
		return "\033[36m" // cyan
	case LevelInfo:
		return "\033[32m" // green
	case LevelWarning:
		return "\033[33m" // yellow
	case LevelError:
		return "\033[31m" // red
	default:
		return colorReset
	}
}

// Logger writes one formatted line per record to its destination.
// Emission is best-effort and unbuffered: write failures are ignored,
// and each record is a single Write so line order matches call order.
type Logger struct {
	out   io.Writer
	color bool
	now   func() time.Time
}

// New returns a logger writing to stderr, colorized when stderr is a
// color-capable terminal.
func New() *Logger {
	return NewWithWriter(os.Stderr, isColorTerminal(os.Stderr))
}

// NewWithWriter returns a logger writing to w, colorized per the flag.
func NewWithWriter(w io.Writer, color bool) *Logger {
	return &Logger{out: w, color: color, now: time.Now}
}

// Log emits one record at the given level. It never returns an error;
// diagnostics must not fail the caller.
func (l *Logger) Log(level Level, message string) {
	fmt.Fprintln(l.out, formatLine(level, message, l.now(), l.color))
}

// Debugf logs a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) {
	l.Log(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...any) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at LevelWarning.
func (l *Logger) Warnf(format string, args ...any) {
	l.Log(LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...any) {
	l.Log(LevelError, fmt.Sprintf(format, args...))
}

// formatLine renders "YYYY-MM-DD HH:MM:SS.mmm [LEVEL] message",
// wrapped in the level's ANSI color when color is set. Pure so the
// layout can be tested apart from terminal detection.
func formatLine(level Level, message string, t time.Time, color bool) string {
	line := t.Format("2006-01-02 15:04:05.000") + " [" + level.String() + "] " + message
	if color {
		return level.color() + line + colorReset
	}
	return line
}

func isColorTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
