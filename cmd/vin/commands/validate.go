package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/internal/logging"
	"github.com/thoreinstein/vin/internal/validator"
)

var (
	validateFormat string
	validateJSON   bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "",
		"output format: text, json, yaml, toml (default from output_format)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"shorthand for --format json")
	validateCmd.MarkFlagsMutuallyExclusive("format", "json")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [VIN...]",
	Short: "Validate VIN check digits",
	Long: `Validate one or more VINs.

Each VIN is normalized, checked for illegal characters (I, O and Q) and its
check digit at position 9 is compared with the computed one. Without
arguments, VINs are read one per line from stdin; blank lines and lines
starting with # are skipped.

Exits with status 1 when any VIN is invalid.`,
	Example: `  # Validate a single VIN
  vin validate 2G1WB5E37E1110567

  # Validate a file of VINs and emit JSON
  vin validate --json < vins.txt

See Also: vin checksum, vin normalize`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	format, err := outputFormat(validateFormat, validateJSON)
	if err != nil {
		return err
	}

	inputs, err := readInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	result := validator.ValidateVINs(inputs)
	for _, issue := range result.Issues {
		logger.Debug("invalid VIN", "input", issue.Value, "kind", issue.Kind)
	}
	logger.Debug("validated VINs", "checked", result.Checked, "invalid", len(result.Errors()))

	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return errors.NewSystemError(err, "")
	}

	if n := len(result.Errors()); n > 0 {
		err := errors.Mark(errors.Newf("%d of %d VIN(s) invalid", n, result.Checked), errors.ErrInvalidVIN)
		return errors.NewExitError(err, errors.ExitUser)
	}
	return nil
}

// outputFormat resolves the report format from flags and config.
func outputFormat(flag string, asJSON bool) (validator.Format, error) {
	if asJSON {
		return validator.FormatJSON, nil
	}
	if flag == "" {
		flag = cfg.OutputFormat
	}
	format, err := validator.ParseFormat(flag)
	if err != nil {
		return "", errors.NewUserError(err, "Use one of: text, json, yaml, toml")
	}
	return format, nil
}
