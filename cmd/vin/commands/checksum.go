package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/internal/logging"
	"github.com/thoreinstein/vin/pkg/vin"
)

func init() {
	rootCmd.AddCommand(checksumCmd)
}

var checksumCmd = &cobra.Command{
	Use:   "checksum <VIN>...",
	Short: "Compute the check digit of a VIN",
	Long: `Compute the check character of each VIN.

The character at position 9 is ignored, so the input may carry any
placeholder there. The output shows the normalized VIN, the check
character and the remainder (0-10) it was derived from.`,
	Example: `  # Compute a check digit
  vin checksum 2G1WB5E30E1110567

  # Lower case and separators are accepted
  vin checksum 1m8-gdm9a-0kp042788

See Also: vin validate`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChecksum,
}

func runChecksum(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	var failed int
	for _, arg := range args {
		normalized, err := vin.Normalize(&arg)
		if err == nil {
			var sum int
			sum, err = vin.Checksum(normalized)
			if err == nil {
				c, _ := vin.ChecksumChar(normalized)
				logger.Debug("computed checksum", "vin", normalized, "remainder", sum)
				fmt.Fprintf(out, "%s  check=%c remainder=%d\n", normalized, c, sum)
				continue
			}
		}

		failed++
		logger.Debug("checksum failed", "input", arg, "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
	}

	if failed > 0 {
		err := errors.Mark(errors.Newf("%d of %d VIN(s) could not be checksummed", failed, len(args)), errors.ErrInvalidVIN)
		return errors.NewExitError(err, errors.ExitUser)
	}
	return nil
}
