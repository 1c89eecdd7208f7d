// Package config provides configuration management for the vin CLI.
//
// Configuration is read with Viper from config.yaml in the current
// directory or in ~/.config/vin, and every key can be overridden with a
// VIN_ prefixed environment variable (nested keys use underscores, for
// example VIN_GENERATE_COUNT).
//
//	version: 1
//	prefix_table: ~/.local/share/vin/prefixes.txt  # optional
//	output_format: text                            # text, json, yaml, toml
//	generate:
//	  count: 1
//	  seed: 0                                      # 0 = random
//
// [Load] returns the merged configuration; [Validate] reports every invalid
// field at once.
package config
