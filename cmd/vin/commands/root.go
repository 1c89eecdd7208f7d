// Package commands implements the CLI commands for vin.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vin/cmd"
	"github.com/thoreinstein/vin/internal/config"
	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// logFileHandle is the open --log-file, closed after the command runs.
var logFileHandle *os.File

// configFile holds an explicit config file path from --config.
var configFile string

// cfg is the configuration loaded before each command runs.
var cfg = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/vin/config.yaml)")

	rootCmd.Version = cmd.ResolvedVersion()
	rootCmd.SetVersionTemplate("vin version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()

	loaded, err := config.Load(configFile)
	configLoadErr = err
	if err != nil {
		cfg = config.Default()
		return
	}
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "vin",
	Short: "Validate and generate vehicle identification numbers",
	Long: `vin checks the ISO 3779 / FMVSS 115 check digit of 17 character
vehicle identification numbers and generates random VINs that pass it.

Input is normalized before checking: letters are uppercased and every
character outside A-Z and 0-9 is dropped, so "2g1-wb5e3 7e1110567" is
accepted as 2G1WB5E37E1110567.`,
	Example: `  # Validate VINs given as arguments
  vin validate 2G1WB5E37E1110567 1M8GDM9AXKP042788

  # Validate one VIN per line from stdin
  cat vins.txt | vin validate --format json

  # Compute the check digit
  vin checksum 2G1WB5E37E1110567

  # Generate ten VINs from Honda prefixes
  vin generate -n 10 --wmi 1HG

  See Also: vin config, vin version`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeLogFile()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("VIN_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{
		logging.NewFormatHandler(logging.Config{
			Level:  level,
			Format: logging.Format(logFormat),
			Output: cmd.ErrOrStderr(),
		}),
	}

	if err := closeLogFile(); err != nil {
		return err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewSystemError(err, "failed to open log file")
		}
		logFileHandle = f
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// closeLogFile closes the log file opened by setupLogging, if any.
func closeLogFile() error {
	if logFileHandle == nil {
		return nil
	}
	f := logFileHandle
	logFileHandle = nil
	if err := f.Close(); err != nil {
		return errors.NewSystemError(err, "failed to close log file")
	}
	return nil
}

// checkConfig reports a config load failure, except for commands that must
// work with a broken config file.
func checkConfig(cmd *cobra.Command) error {
	if configLoadErr == nil {
		return nil
	}
	switch cmd.Name() {
	case "help", "version", "doctor":
		return nil
	}
	if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
		return nil
	}
	return errors.NewConfigError(configLoadErr)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	// PersistentPostRunE is skipped when the command fails.
	if cerr := closeLogFile(); err == nil {
		err = cerr
	}
	return err
}
