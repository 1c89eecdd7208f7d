package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vin/internal/cli/prompt"
	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/internal/logging"
	"github.com/thoreinstein/vin/internal/paths"
	"github.com/thoreinstein/vin/pkg/fileutil"
	"github.com/thoreinstein/vin/pkg/vin"
	"github.com/thoreinstein/vin/pkg/vin/prefix"
)

var (
	generateCount  int
	generateSeed   uint64
	generateWMI    string
	generatePick   bool
	generateOutput string
	generateTable  string
)

// newPicker is replaced in tests.
var newPicker = prompt.NewPicker

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1,
		"number of VINs to generate (default from generate.count)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0,
		"seed for reproducible output; 0 picks a random seed (default from generate.seed)")
	generateCmd.Flags().StringVar(&generateWMI, "wmi", "",
		"only use prefixes starting with this world manufacturer identifier")
	generateCmd.Flags().BoolVar(&generatePick, "pick", false,
		"choose the prefix interactively")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "",
		"write VINs to this file instead of stdout")
	generateCmd.Flags().StringVar(&generateTable, "table", "",
		"prefix table file (default from prefix_table, else built in)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random VINs with valid check digits",
	Long: `Generate random VINs.

Each VIN starts with an 8 character manufacturer prefix and carries the
model year code of a prefix table entry; the remaining characters are
drawn at random from the VIN alphabet and the check digit is computed.

The built-in prefix table can be replaced with a file holding one
"PREFIX   YEAR" pair per line, via --table or the prefix_table setting.`,
	Example: `  # One random VIN
  vin generate

  # Reproducible batch written to a file
  vin generate -n 100 --seed 42 -o vins.txt

  # Only Chevrolet prefixes
  vin generate --wmi 1G1

  # Choose the prefix with a fuzzy finder
  vin generate --pick -n 5

See Also: vin validate, vin config`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	count := generateCount
	if !cmd.Flags().Changed("count") {
		count = cfg.Generate.Count
	}
	if count < 1 {
		return errors.NewUserError(errors.Newf("count must be >= 1, got %d", count), "")
	}

	seed := generateSeed
	if !cmd.Flags().Changed("seed") {
		seed = cfg.Generate.Seed
	}

	source, err := prefixSource(cmd, logger)
	if err != nil {
		return err
	}

	opts := []vin.GeneratorOption{vin.WithSource(source)}
	if seed != 0 {
		opts = append(opts, vin.WithSeed(seed))
	}
	vins := vin.NewGenerator(opts...).RandomN(count)
	logger.Debug("generated VINs", "count", len(vins), "seed", seed)

	if generateOutput != "" {
		if err := fileutil.AtomicWriteLines(generateOutput, vins, 0o644); err != nil {
			return errors.NewSystemError(err, "Check that the output directory exists and is writable")
		}
		logger.Info("wrote VINs", "path", generateOutput, "count", len(vins))
		return nil
	}

	out := cmd.OutOrStdout()
	for _, v := range vins {
		fmt.Fprintln(out, v)
	}
	return nil
}

// prefixSource resolves the table, applies --wmi and --pick, and returns
// what the generator should draw prefixes from.
func prefixSource(cmd *cobra.Command, logger *slog.Logger) (vin.PrefixSource, error) {
	table, err := loadTable(cmd, logger)
	if err != nil {
		return nil, err
	}

	if generateWMI != "" {
		table, err = table.FilterWMI(generateWMI)
		if err != nil {
			return nil, errors.NewUserError(err, "Run without --wmi or use --pick to browse available prefixes")
		}
		logger.Debug("filtered prefix table", "wmi", generateWMI, "entries", table.Len())
	}

	if !generatePick {
		return table, nil
	}

	entry, err := newPicker().Pick(table.Entries())
	if err != nil {
		if errors.Is(err, prompt.ErrSelectionCancelled) {
			return nil, errors.NewUserError(err, "")
		}
		return nil, errors.NewSystemError(err, "--pick needs an interactive terminal")
	}
	logger.Debug("picked prefix", "entry", entry.String())
	return entry, nil
}

func loadTable(cmd *cobra.Command, logger *slog.Logger) (*prefix.Table, error) {
	path := generateTable
	if !cmd.Flags().Changed("table") {
		path = cfg.PrefixTable
	}
	if path == "" {
		logger.Debug("using built-in prefix table")
		return prefix.Default(), nil
	}

	expanded, err := paths.ExpandHome(path)
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}
	table, err := prefix.Load(expanded)
	if err != nil {
		return nil, errors.NewUserError(err, "Each line must hold an 8 character prefix and a model year code")
	}
	logger.Debug("loaded prefix table", "path", expanded, "entries", table.Len())
	return table, nil
}
