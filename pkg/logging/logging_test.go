package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG state directory at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// registered first so it runs after the environment is restored
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	return dir
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"quiet only errors", -1, zerolog.ErrorLevel},
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)

			var console bytes.Buffer
			Setup(Options{Verbosity: tt.verbosity, Console: &console})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(dir, "termout", "termout.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
			assert.Equal(t, logPath, LogFilePath())
		})
	}
}

func TestSetup_SuppressesConsoleWhileStatusActive(t *testing.T) {
	dir := isolate(t)

	var console bytes.Buffer
	busy := true
	Setup(Options{Verbosity: 0, Console: &console, Suppress: func() bool { return busy }})

	log.Warn().Msg("hidden from console")
	assert.Empty(t, console.String())

	busy = false
	log.Warn().Msg("shown on console")
	assert.Contains(t, console.String(), "shown on console")
	assert.NotContains(t, console.String(), "hidden from console")

	data, err := os.ReadFile(filepath.Join(dir, "termout", "termout.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hidden from console")
	assert.Contains(t, string(data), "shown on console")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := GetLogger("status")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"status"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	LogCommand("demo", []string{"--steps", "3"})

	output := buf.String()
	assert.Contains(t, output, "demo")
	assert.Contains(t, output, "--steps")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	done := LogOperationStart(logger, "Building")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}
