package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/internal/paths"
)

// Config keys.
const (
	KeyVersion       = "version"
	KeyPrefixTable   = "prefix_table"
	KeyOutputFormat  = "output_format"
	KeyGenerateCount = "generate.count"
	KeyGenerateSeed  = "generate.seed"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version      int            `mapstructure:"version" yaml:"version"`
	PrefixTable  string         `mapstructure:"prefix_table" yaml:"prefix_table,omitempty"`
	OutputFormat string         `mapstructure:"output_format" yaml:"output_format"`
	Generate     GenerateConfig `mapstructure:"generate" yaml:"generate"`
}

// GenerateConfig holds defaults for VIN generation.
type GenerateConfig struct {
	// Count is the number of VINs generated per invocation.
	Count int `mapstructure:"count" yaml:"count"`
	// Seed makes generation reproducible; 0 picks a random seed.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:      1,
		OutputFormat: "text",
		Generate: GenerateConfig{
			Count: 1,
		},
	}
}

// Init initializes Viper with the search paths, environment binding and defaults.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("VIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault(KeyVersion, d.Version)
	viper.SetDefault(KeyPrefixTable, d.PrefixTable)
	viper.SetDefault(KeyOutputFormat, d.OutputFormat)
	viper.SetDefault(KeyGenerateCount, d.Generate.Count)
	viper.SetDefault(KeyGenerateSeed, d.Generate.Seed)
}

const doctorHint = "Run: vin doctor to diagnose the config file"

// Load reads the configuration file and validates the result.
// If path is empty the default locations are searched and a missing file is
// not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults only
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		case path != "" && isNotExist(err):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.WithHint(errors.Wrap(err, "reading config file"), doctorHint)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.WithHint(errors.Wrap(joinErrors(errs), "validating config"), doctorHint)
	}

	return &cfg, nil
}

// UsedFile returns the config file Viper read, or "" if none was found.
func UsedFile() string {
	return viper.ConfigFileUsed()
}
