// Package errors provides error handling conventions for the vin CLI.
//
// It re-exports the constructors and inspectors of
// github.com/cockroachdb/errors so callers need a single import, defines
// sentinel errors for CLI-level failures, and provides [ExitError] for
// mapping failures to process exit codes.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid VIN, bad flags, configuration)
//   - ExitSystem (2): System-related error (I/O, permissions)
//
// # ExitError
//
//	err := vinerrors.NewUserError(vinerrors.ErrInvalidVIN, "Run: vin checksum <vin>")
//	var exitErr *vinerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
