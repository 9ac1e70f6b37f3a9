// Package logging provides structured logging for the API server and the CLI.
package logging

import (
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with the console/JSON switch used across commands.
type Logger struct {
	zlog zerolog.Logger
}

// New creates a logger. Production writes JSON lines; anything else gets the console writer.
func New(w io.Writer, production bool, level string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	if !production {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	zl := zerolog.New(w).With().Timestamp().Logger().Level(ParseLevel(level))
	return &Logger{zlog: zl}
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Info() *zerolog.Event  { return l.zlog.Info() }
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }
func (l *Logger) Warn() *zerolog.Event  { return l.zlog.Warn() }
func (l *Logger) Fatal() *zerolog.Event { return l.zlog.Fatal() }

// Named returns a child logger tagged with a component name.
func (l *Logger) Named(component string) *Logger {
	return &Logger{zlog: l.zlog.With().Str("component", component).Logger()}
}

// RedirectStdLog routes the standard library logger (and anything printing
// through it) into l at info level.
func RedirectStdLog(l *Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdWriter{zlog: l.zlog})
}

type stdWriter struct {
	zlog zerolog.Logger
}

func (w stdWriter) Write(p []byte) (int, error) {
	w.zlog.Info().Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
