package validator

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/vin/internal/errors"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a recommended but non-blocking issue.
	SeverityWarning
	// SeverityInfo indicates an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", b)
	}
	return nil
}

// Issue represents a single validation problem.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity `json:"severity" yaml:"severity" toml:"severity"`
	// Field identifies the field with the issue (optional).
	Field string `json:"field,omitempty" yaml:"field,omitempty" toml:"field,omitempty"`
	// Kind is the machine readable failure kind, e.g. "illegal_character".
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	// Message is a human-readable description of the problem.
	Message string `json:"message" yaml:"message" toml:"message"`
	// Value is the raw input that failed validation (optional).
	Value string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	// Context carries additional details such as the normalized VIN.
	Context map[string]string `json:"context,omitempty" yaml:"context,omitempty" toml:"context,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		sb.WriteString("field \"")
		sb.WriteString(i.Field)
		sb.WriteString("\": ")
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates validation issues.
type Result struct {
	// Checked counts the values inspected, valid or not.
	Checked int     `json:"checked" yaml:"checked" toml:"checked"`
	Issues  []Issue `json:"issues,omitempty" yaml:"issues,omitempty" toml:"issues,omitempty"`
}

// Add appends an issue.
func (r *Result) Add(i Issue) {
	r.Issues = append(r.Issues, i)
}

// AddError adds an error issue to the result.
func (r *Result) AddError(field, message, value string) {
	r.Add(Issue{Severity: SeverityError, Field: field, Message: message, Value: value})
}

// AddWarning adds a warning issue to the result.
func (r *Result) AddWarning(field, message, value string) {
	r.Add(Issue{Severity: SeverityWarning, Field: field, Message: message, Value: value})
}

// Merge appends all issues and the checked count of other.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Checked += other.Checked
	r.Issues = append(r.Issues, other.Issues...)
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return len(r.bySeverity(SeverityError)) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return len(r.bySeverity(SeverityWarning)) > 0
}

// Errors returns all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.bySeverity(SeverityError)
}

// Warnings returns all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.bySeverity(SeverityWarning)
}

// Err returns the errors of r as a single error, or nil if there are none.
func (r *Result) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return errors.Mark(errors.Newf("%s", strings.Join(msgs, "\n")), errors.ErrInvalidVIN)
}

func (r *Result) bySeverity(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

func (r *Result) String() string {
	return fmt.Sprintf("%d checked, %d error(s), %d warning(s)", r.Checked, len(r.Errors()), len(r.Warnings()))
}
