package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/internal/logging"
	"github.com/thoreinstein/vin/pkg/vin"
)

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [VIN...]",
	Short: "Print VINs in canonical form",
	Long: `Uppercase each VIN and drop every character outside A-Z and 0-9.

The result must be exactly 17 characters long. Neither the check digit nor
illegal letters are examined; use 'vin validate' for that. Without
arguments, VINs are read one per line from stdin.`,
	Example: `  vin normalize "2g1 wb5e3-7e1110567"

See Also: vin validate`,
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	inputs, err := readInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var failed int
	for i := range inputs {
		normalized, err := vin.Normalize(&inputs[i])
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", inputs[i], err)
			continue
		}
		logger.Debug("normalized VIN", "input", inputs[i], "vin", normalized)
		fmt.Fprintln(cmd.OutOrStdout(), normalized)
	}

	if failed > 0 {
		err := errors.Mark(errors.Newf("%d of %d VIN(s) could not be normalized", failed, len(inputs)), errors.ErrInvalidVIN)
		return errors.NewExitError(err, errors.ExitUser)
	}
	return nil
}
