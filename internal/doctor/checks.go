package doctor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vin/internal/config"
	"github.com/thoreinstein/vin/internal/logging"
	"github.com/thoreinstein/vin/internal/paths"
	"github.com/thoreinstein/vin/pkg/fileutil"
	"github.com/thoreinstein/vin/pkg/vin"
	"github.com/thoreinstein/vin/pkg/vin/prefix"
)

// ConfigFileCheck validates the config file and its permissions.
type ConfigFileCheck struct {
	path string
}

var (
	_ Check = (*ConfigFileCheck)(nil)
	_ Fixer = (*ConfigFileCheck)(nil)
)

// NewConfigFileCheck checks the file at path. An empty path means no config
// file was found.
func NewConfigFileCheck(path string) *ConfigFileCheck {
	return &ConfigFileCheck{path: path}
}

// Name implements Check.
func (c *ConfigFileCheck) Name() string { return "config-file" }

// Category implements Check.
func (c *ConfigFileCheck) Category() string { return "config" }

// Run implements Check.
func (c *ConfigFileCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	if c.path == "" {
		result.Status = SeverityInfo
		result.Message = "no config file found, using defaults"
		result.FixHint = "Run: vin config init"
		return result
	}
	result.Details = map[string]any{"path": c.path}

	info, err := os.Stat(c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat config file: %v", err)
		return result
	}
	result.Details["mode"] = fmt.Sprintf("%04o", info.Mode().Perm())

	data, err := fileutil.ReadFileWithLimit(c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read config file: %v", err)
		return result
	}

	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("invalid YAML: %v", err)
		result.FixHint = "Run: vin config edit"
		return result
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		result.Status = SeverityError
		result.Message = "invalid configuration: " + strings.Join(msgs, "; ")
		result.FixHint = "Run: vin config edit"
		return result
	}

	if info.Mode().Perm()&0o022 != 0 {
		result.Status = SeverityWarning
		result.Message = "config file is writable by group or others"
		result.Fixable = true
		result.FixHint = "Run: chmod go-w " + c.path
		return result
	}

	result.Status = SeverityPass
	result.Message = "config file is valid"
	return result
}

// Fix removes group and other write permission from the config file.
func (c *ConfigFileCheck) Fix() error {
	info, err := os.Stat(c.path)
	if err != nil {
		return err
	}
	return os.Chmod(c.path, info.Mode().Perm()&^0o022)
}

// PrefixTableCheck loads the prefix table used by vin generate.
type PrefixTableCheck struct {
	path string
}

var _ Check = (*PrefixTableCheck)(nil)

// NewPrefixTableCheck checks the table at path, or the built-in table when
// path is empty.
func NewPrefixTableCheck(path string) *PrefixTableCheck {
	return &PrefixTableCheck{path: path}
}

// Name implements Check.
func (c *PrefixTableCheck) Name() string { return "prefix-table" }

// Category implements Check.
func (c *PrefixTableCheck) Category() string { return "generator" }

// Run implements Check.
func (c *PrefixTableCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"source": "built-in"},
	}

	table := prefix.Default()
	if c.path != "" {
		path, err := paths.ExpandHome(c.path)
		if err != nil {
			result.Status = SeverityError
			result.Message = err.Error()
			return result
		}
		result.Details["source"] = path

		table, err = prefix.Load(path)
		if err != nil {
			result.Status = SeverityError
			result.Message = err.Error()
			result.FixHint = "Each line must hold an 8 character prefix and a model year code, separated by spaces"
			return result
		}
	}

	seen := make(map[prefix.Entry]int, table.Len())
	wmis := make(map[string]struct{})
	var dupes []string
	for _, e := range table.Entries() {
		seen[e]++
		if seen[e] == 2 {
			dupes = append(dupes, e.String())
		}
		wmis[e.WMI()] = struct{}{}
	}
	result.Details["entries"] = table.Len()
	result.Details["manufacturers"] = len(wmis)

	if len(dupes) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d duplicate entries skew generation", len(dupes))
		result.Details["duplicates"] = dupes
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d entries across %d manufacturers", table.Len(), len(wmis))
	return result
}

// checkVectors are VINs with published check digits.
var checkVectors = []struct {
	vin  string
	want byte
}{
	{"2G1WB5E37E1110567", '7'},
	{"1M8GDM9AXKP042788", 'X'},
	{"11111111111111111", '1'},
	{"1HGCM82633A004352", '3'},
}

// ChecksumCheck verifies the checksum engine against known VINs and checks
// that generated VINs validate.
type ChecksumCheck struct {
	samples int
}

var _ Check = (*ChecksumCheck)(nil)

// NewChecksumCheck generates samples VINs during the self test.
func NewChecksumCheck(samples int) *ChecksumCheck {
	return &ChecksumCheck{samples: samples}
}

// Name implements Check.
func (c *ChecksumCheck) Name() string { return "checksum-self-test" }

// Category implements Check.
func (c *ChecksumCheck) Category() string { return "checksum" }

// Run implements Check.
func (c *ChecksumCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	for _, v := range checkVectors {
		got, err := vin.ChecksumChar(v.vin)
		if err != nil || got != v.want {
			result.Status = SeverityError
			result.Message = fmt.Sprintf("check digit of %s: got %q (%v), want %q", v.vin, got, err, v.want)
			return result
		}
	}

	for _, generated := range vin.NewGenerator(vin.WithSeed(1)).RandomN(c.samples) {
		if !vin.IsValid(&generated) {
			result.Status = SeverityError
			result.Message = fmt.Sprintf("generated VIN %s does not validate", generated)
			return result
		}
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d known and %d generated VINs verified", len(checkVectors), c.samples)
	return result
}

// TerminalCheck reports whether colored output is in effect.
type TerminalCheck struct {
	out io.Writer
}

var _ Check = (*TerminalCheck)(nil)

// NewTerminalCheck inspects out.
func NewTerminalCheck(out io.Writer) *TerminalCheck {
	return &TerminalCheck{out: out}
}

// Name implements Check.
func (c *TerminalCheck) Name() string { return "terminal" }

// Category implements Check.
func (c *TerminalCheck) Category() string { return "terminal" }

// Run implements Check.
func (c *TerminalCheck) Run() *CheckResult {
	tty := logging.IsTTY(c.out)
	colored := logging.SupportsColor(c.out)

	msg := "colored output disabled"
	if colored {
		msg = "colored output enabled"
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Message:  msg,
		Details: map[string]any{
			"tty":   tty,
			"color": colored,
			"term":  os.Getenv("TERM"),
		},
	}
}
