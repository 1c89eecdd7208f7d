package prefix

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/vin/pkg/fileutil"
)

const (
	// PrefixLength is the length of the prefix field.
	PrefixLength = 8

	// WMILength is the length of a world manufacturer identifier.
	WMILength = 3

	// Alphabet lists the characters allowed anywhere in a VIN: digits and
	// uppercase letters except I, O and Q.
	Alphabet = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"
)

// Sentinel errors for table parsing and lookup.
var (
	// ErrMalformedLine indicates a table line that does not hold a prefix and a year code.
	ErrMalformedLine = errors.New("malformed prefix line")

	// ErrEmptyTable indicates a table without any entries.
	ErrEmptyTable = errors.New("prefix table is empty")

	// ErrNoMatch indicates no entry matched a WMI filter.
	ErrNoMatch = errors.New("no prefix matches")
)

//go:embed prefixes.txt
var embedded []byte

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Parse(bytes.NewReader(embedded))
})

// Entry is one table line.
type Entry struct {
	// Prefix holds VIN positions 0-7.
	Prefix string
	// Year is the model year code placed at VIN position 9.
	Year byte
}

// WMI returns the world manufacturer identifier of the entry.
func (e Entry) WMI() string {
	return e.Prefix[:WMILength]
}

func (e Entry) String() string {
	return e.Prefix + "   " + string(e.Year)
}

// Pick returns e itself, so a single entry can act as a prefix source.
func (e Entry) Pick(_ *rand.Rand) Entry {
	return e
}

// Table is an immutable list of entries.
type Table struct {
	entries []Entry
}

// Default returns the embedded prefix table.
// It panics if the embedded data is corrupt, which can only happen in a broken build.
func Default() *Table {
	t, err := loadDefault()
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "embedded prefix table"))
	}
	return t
}

// Load reads a table from the file at path.
func Load(path string) (*Table, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading prefix table %s", path)
	}
	t, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing prefix table %s", path)
	}
	return t, nil
}

// Parse reads a table from r.
func Parse(r io.Reader) (*Table, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading prefix table")
	}

	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	return &Table{entries: entries}, nil
}

func parseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Entry{}, errors.Wrapf(ErrMalformedLine, "want 2 fields, got %d", len(fields))
	}

	p, y := strings.ToUpper(fields[0]), strings.ToUpper(fields[1])
	if len(p) != PrefixLength || !inAlphabet(p) {
		return Entry{}, errors.Wrapf(ErrMalformedLine, "invalid prefix %q", fields[0])
	}
	if len(y) != 1 || !inAlphabet(y) {
		return Entry{}, errors.Wrapf(ErrMalformedLine, "invalid model year %q", fields[1])
	}

	return Entry{Prefix: p, Year: y[0]}, nil
}

func inAlphabet(s string) bool {
	for i := range len(s) {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Pick returns a uniformly chosen entry.
func (t *Table) Pick(r *rand.Rand) Entry {
	return t.entries[r.IntN(len(t.entries))]
}

// FilterWMI returns the entries whose prefix starts with wmi. The match is
// case-insensitive; wmi may be shorter than WMILength.
func (t *Table) FilterWMI(wmi string) (*Table, error) {
	wmi = strings.ToUpper(strings.TrimSpace(wmi))

	var matched []Entry
	for _, e := range t.entries {
		if strings.HasPrefix(e.Prefix, wmi) {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		return nil, errors.Wrapf(ErrNoMatch, "wmi %q", wmi)
	}
	return &Table{entries: matched}, nil
}
