package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFile is relative to the XDG state directory
var logFile = filepath.Join("termout", "termout.log")

// Options configure the global logger
type Options struct {
	Verbosity int
	// Console receives human readable output; nil means stderr
	Console io.Writer
	// Suppress reports whether console output would currently corrupt the
	// terminal, for example while a status spinner owns the line. Records
	// dropped from the console still reach the log file.
	Suppress func() bool
}

// Setup configures the global logger. Records go to the console and to the
// log file under the XDG state directory.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        suppressible{out: console, suppress: opts.Suppress},
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		},
	}

	path, fileErr := xdg.StateFile(logFile)
	var file *os.File
	if fileErr == nil {
		file, fileErr = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	}
	if fileErr == nil {
		writers = append(writers, file)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")
}

// suppressible drops writes while suppress reports true
type suppressible struct {
	out      io.Writer
	suppress func() bool
}

func (s suppressible) Write(p []byte) (int, error) {
	if s.suppress != nil && s.suppress() {
		return len(p), nil
	}
	return s.out.Write(p)
}

// levelFor maps terminal verbosity onto a zerolog level. Negative
// verbosity (quiet flags) only lets errors through.
func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity < 0:
		return zerolog.ErrorLevel
	case verbosity == 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// LogFilePath returns where the log file is written
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, logFile)
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
