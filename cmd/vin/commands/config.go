package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vin/internal/config"
	"github.com/thoreinstein/vin/internal/editor"
	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/internal/paths"
	"github.com/thoreinstein/vin/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys lists the keys accepted by config get and config set.
var configKeys = []string{
	config.KeyVersion,
	config.KeyPrefixTable,
	config.KeyOutputFormat,
	config.KeyGenerateCount,
	config.KeyGenerateSeed,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vin configuration",
	Long: `Manage vin configuration stored in $XDG_CONFIG_HOME/vin/config.yaml.

Every key can also be set through the environment with a VIN_ prefix,
e.g. VIN_OUTPUT_FORMAT=json or VIN_GENERATE_COUNT=10.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  vin config

  # Write a config file with defaults
  vin config init

  # Set the default report format
  vin config set output_format json

See Also: vin generate, vin validate`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys, e.g. generate.count.`,
	Example: `  vin config get generate.count

See Also: vin config set, vin config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

The resulting configuration is validated before it is written.`,
	Example: `  vin config set generate.seed 42
  vin config set prefix_table ~/vin/prefixes.txt

See Also: vin config get, vin config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  vin config list

See Also: vin config get, vin config set`,
	RunE: runConfigList,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with default values",
	Long: `Write the default configuration to $XDG_CONFIG_HOME/vin/config.yaml.

An existing file is left untouched unless --force is given.`,
	Example: `  vin config init
  vin config init --force

See Also: vin config list`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses $EDITOR, then $VISUAL, falling back to nano or vi. If no
configuration file exists, run 'vin config init' first. The file is
validated again after the editor exits.`,
	Example: `  # Open config in default editor
  vin config edit

  # Open with specific editor
  EDITOR=nano vin config edit

See Also: vin config init, vin config list`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !slices.Contains(configKeys, key) {
		return unknownKey(key)
	}

	if !viper.IsSet(key) {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if !slices.Contains(configKeys, key) {
		return unknownKey(key)
	}

	viper.Set(key, value)

	updated, err := currentConfig()
	if err != nil {
		return errors.NewUserError(err, "")
	}
	if errs := config.Validate(updated); len(errs) > 0 {
		return errors.NewUserError(errs[0], "Run: vin config set --help")
	}

	path, err := writeConfig(updated)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	current, err := currentConfig()
	if err != nil {
		return errors.NewUserError(err, "")
	}

	data, err := yaml.Marshal(current)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if used := config.UsedFile(); used != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configPath()
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(errors.Newf("config file already exists at %s", path),
			"Run: vin config init --force to overwrite it")
	}

	if _, err := writeConfig(config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := configPath()
	if _, err := os.Stat(path); err != nil {
		return errors.NewUserError(errors.Newf("config file not found at %s", path), "Run: vin config init")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", path)
	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := editor.Open(cmd.Context(), path, streams); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}

	viper.Reset()
	config.Init()
	if _, err := config.Load(path); err != nil {
		return errors.NewConfigError(err)
	}
	return nil
}

// currentConfig decodes the merged viper state.
func currentConfig() (*config.Config, error) {
	var c config.Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &c, nil
}

// configPath is the file config set and config init write to.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	if used := config.UsedFile(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

func writeConfig(c *config.Config) (string, error) {
	path := configPath()
	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return "", errors.NewSystemError(err, "")
	}
	if err := fileutil.AtomicWriteYAML(path, c); err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}
	return path, nil
}

func unknownKey(key string) error {
	return errors.NewUserError(errors.Newf("unknown config key %q", key),
		"Valid keys: version, prefix_table, output_format, generate.count, generate.seed")
}
