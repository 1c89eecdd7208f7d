package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/vin/internal/errors"
)

// OutputFormats lists the accepted output_format values.
var OutputFormats = []string{"text", "json", "yaml", "toml"}

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidOutputFormat indicates an unrecognized output format.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidCount indicates a non-positive generate.count.
	ErrInvalidCount = errors.New("generate.count must be >= 1")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if !slices.Contains(OutputFormats, cfg.OutputFormat) {
		errs = append(errs, &FieldError{
			Field: "output_format",
			Value: cfg.OutputFormat,
			Err:   ErrInvalidOutputFormat,
		})
	}

	if cfg.Generate.Count < 1 {
		errs = append(errs, ErrInvalidCount)
	}

	if err := validatePath(cfg.PrefixTable); err != nil {
		errs = append(errs, &FieldError{
			Field: "prefix_table",
			Value: cfg.PrefixTable,
			Err:   err,
		})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an invalid value for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func joinErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return errors.Mark(errors.Newf("%s", strings.Join(msgs, "; ")), errors.ErrInvalidConfig)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err)
}
