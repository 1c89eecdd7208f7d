package commands

import (
	"bufio"
	"io"
	"strings"

	"github.com/thoreinstein/vin/internal/errors"
)

// readInputs returns args, or the non-blank lines of r when args is empty.
func readInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewSystemError(errors.Wrap(err, "reading stdin"), "")
	}
	if len(inputs) == 0 {
		return nil, errors.NewUserError(errors.ErrNoInput, "Pass VINs as arguments or one per line on stdin")
	}
	return inputs, nil
}
