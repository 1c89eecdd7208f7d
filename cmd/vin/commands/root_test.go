package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel), "level %v should be enabled", tt.wantLevel)
			if tt.wantLevel > logging.LevelTrace {
				below := tt.wantLevel - 4
				assert.False(t, logger.Enabled(t.Context(), below), "level %v should be disabled", below)
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"VIN_DEBUG=1", "1", slog.LevelDebug},
		{"VIN_DEBUG=true", "true", slog.LevelDebug},
		{"VIN_DEBUG=2", "2", logging.LevelTrace},
		{"VIN_DEBUG=0", "0", slog.LevelWarn},
		{"VIN_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("VIN_DEBUG", tt.envVal)

			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel == slog.LevelDebug {
				assert.False(t, logger.Enabled(t.Context(), logging.LevelTrace))
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	t.Setenv("VIN_DEBUG", "2")
	verbosity = 1

	require.NoError(t, setupLogging(rootCmd))

	logger := slog.Default()
	assert.True(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelDebug), "flag should override env var")
}

func TestSetupLogging_Quiet(t *testing.T) {
	origQuiet, origVerbosity := quiet, verbosity
	defer func() { quiet, verbosity = origQuiet, origVerbosity }()

	quiet = true
	verbosity = 0

	require.NoError(t, setupLogging(rootCmd))

	logger := slog.Default()
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestSetupLogging_QuietMutualExclusion(t *testing.T) {
	origQuiet, origVerbosity := quiet, verbosity
	defer func() { quiet, verbosity = origQuiet, origVerbosity }()

	verbosity = 1
	quiet = true

	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestSetupLogging_LogFile(t *testing.T) {
	origFile, origVerbosity := logFile, verbosity
	defer func() { logFile, verbosity = origFile, origVerbosity }()

	logFile = filepath.Join(t.TempDir(), "vin.log")
	verbosity = 1

	require.NoError(t, setupLogging(rootCmd))
	t.Cleanup(func() { _ = closeLogFile() })
	logging.FromContext(rootCmd.Context()).Info("hello", "vin", "2G1WB5E37E1110567")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"vin":"2G1WB5E37E1110567"`)
}

func TestSetupLogging_LogFileClosed(t *testing.T) {
	origFile := logFile
	defer func() { logFile = origFile }()

	logFile = filepath.Join(t.TempDir(), "vin.log")
	require.NoError(t, setupLogging(rootCmd))
	first := logFileHandle
	require.NotNil(t, first)

	// a second setup replaces the handle and closes the first
	require.NoError(t, setupLogging(rootCmd))
	second := logFileHandle
	assert.NotSame(t, first, second)
	_, err := first.WriteString("x")
	assert.ErrorIs(t, err, os.ErrClosed)

	require.NoError(t, closeLogFile())
	assert.Nil(t, logFileHandle)
	_, err = second.WriteString("x")
	assert.ErrorIs(t, err, os.ErrClosed)
	require.NoError(t, closeLogFile())
}

func TestRoot_LogFileClosedAfterRun(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "vin.log")
	t.Cleanup(func() { resetFlags(rootCmd) })

	res := execute(t, "", "--log-file", path, "-v", "checksum", "2G1WB5E37E1110567")
	require.NoError(t, res.err)
	assert.Nil(t, logFileHandle)
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("version: 0\n"), 0o600))

	res := execute(t, "", "validate", "2G1WB5E37E1110567")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, errors.ErrInvalidConfig), "got %v", res.err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(res.err, &exitErr))
	assert.True(t, strings.Contains(exitErr.Suggestion, "vin config list"))

	// config subcommands still run so the file can be repaired
	res = execute(t, "", "config", "set", "version", "1")
	require.NoError(t, res.err)
}

func TestRoot_Help(t *testing.T) {
	isolate(t)

	res := execute(t, "")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "vin validate")
}
