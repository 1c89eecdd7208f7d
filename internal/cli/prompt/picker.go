// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/pkg/vin/prefix"
)

// Sentinel errors for prefix selection.
var (
	ErrNoEntries          = errors.New("no prefixes to select from")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// FindFunc runs the selection UI over n items and returns the chosen index.
type FindFunc func(n int, label func(int) string, preview func(int) string) (int, error)

// Picker lets the user choose a prefix table entry.
type Picker struct {
	find FindFunc
}

// NewPicker creates a Picker backed by a fuzzy finder on the terminal.
func NewPicker() *Picker {
	return &Picker{find: fuzzyFind}
}

// NewPickerWithFinder creates a Picker with a custom finder for testing.
func NewPickerWithFinder(find FindFunc) *Picker {
	return &Picker{find: find}
}

// Pick prompts for one of entries.
//
// Returns:
//   - ErrNoEntries if the list is empty
//   - The entry if only one exists (auto-selects without prompting)
//   - ErrSelectionCancelled if the user aborts
func (p *Picker) Pick(entries []prefix.Entry) (prefix.Entry, error) {
	if len(entries) == 0 {
		return prefix.Entry{}, ErrNoEntries
	}
	if len(entries) == 1 {
		return entries[0], nil
	}

	idx, err := p.find(len(entries),
		func(i int) string { return Label(entries[i]) },
		func(i int) string { return Preview(entries[i]) },
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) || errors.Is(err, ErrSelectionCancelled) {
			return prefix.Entry{}, ErrSelectionCancelled
		}
		return prefix.Entry{}, errors.Wrap(err, "selecting prefix")
	}
	if idx < 0 || idx >= len(entries) {
		return prefix.Entry{}, errors.Newf("selection %d is out of range [0-%d]", idx, len(entries)-1)
	}
	return entries[idx], nil
}

// Label is the single line shown for an entry in the finder list.
func Label(e prefix.Entry) string {
	return fmt.Sprintf("%s  %s  year %c", e.WMI(), e.Prefix, e.Year)
}

// Preview is the detail pane for an entry.
func Preview(e prefix.Entry) string {
	return fmt.Sprintf("WMI:    %s\nPrefix: %s\nYear:   %c\n\nGenerated VINs look like:\n%s?%c_______",
		e.WMI(), e.Prefix, e.Year, e.Prefix, e.Year)
}

func fuzzyFind(n int, label func(int) string, preview func(int) string) (int, error) {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return fuzzyfinder.Find(
		items,
		label,
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(i)
		}),
		fuzzyfinder.WithHeader("Select a VIN prefix"),
	)
}
