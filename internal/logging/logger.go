// Package logging provides the leveled console logger used by the CLI, with
// an optional rotated JSON log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/backmassage/namewright/internal/config"
	"github.com/backmassage/namewright/internal/term"
)

// levelSuccess is written as the level of Success events. zerolog has no
// such level, so those events are logged without one and carry this value
// in the level field instead.
const levelSuccess = "success"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	log  zerolog.Logger
	file *lumberjack.Logger
}

// NewLogger configures term colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return NewLoggerTo(cfg, os.Stdout, os.Stderr)
}

// NewLoggerTo is [NewLogger] with the console streams supplied by the caller.
func NewLoggerTo(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	return newLogger(cfg, stdout, stderr)
}

func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	l := &Logger{}
	writers := []io.Writer{splitWriter{
		out: consoleWriter(stdout),
		err: consoleWriter(stderr),
	}}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		l.file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
		}
		writers = append(writers, l.file)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	l.log = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return l, nil
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         w,
		NoColor:     !term.Enabled(),
		TimeFormat:  "2006-01-02 15:04:05",
		FormatLevel: formatLevel,
	}
}

// formatLevel renders the level column as a bracketed, colored tag.
func formatLevel(i interface{}) string {
	s, _ := i.(string)
	color := ""
	switch s {
	case zerolog.LevelDebugValue:
		color = term.Cyan
	case zerolog.LevelInfoValue:
		color = term.Blue
	case levelSuccess:
		color = term.Green
	case zerolog.LevelWarnValue:
		color = term.Yellow
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		color = term.Red
	}
	return color + "[" + strings.ToUpper(s) + "]" + term.NC
}

// splitWriter sends error events to err and everything else to out.
type splitWriter struct {
	out io.Writer
	err io.Writer
}

func (w splitWriter) Write(p []byte) (int, error) { return w.out.Write(p) }

func (w splitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	switch level {
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Info().Msg(fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green). It is never filtered.
func (l *Logger) Success(format string, args ...interface{}) {
	l.log.Log().Str(zerolog.LevelFieldName, levelSuccess).Msg(fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Error().Msg(fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan). Dropped unless the config was verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}
