package doctor

import (
	"time"

	"github.com/thoreinstein/vin/internal/errors"
)

// Check is the interface that diagnostic checks must implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check.
	Category() string

	// Run executes the diagnostic check and returns its result.
	Run() *CheckResult
}

// Fixer is implemented by checks that can repair the problem they report.
type Fixer interface {
	Fix() error
}

// Runner executes diagnostic checks and aggregates their results.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner creates a new diagnostic runner.
func NewRunner(checks ...Check) *Runner {
	return &Runner{
		checks: checks,
		now:    time.Now,
	}
}

// AddCheck registers a diagnostic check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes all registered checks and returns a report.
func (r *Runner) Run() *Report {
	return r.run(false)
}

// RunAndFix runs every check, applies the fix of each fixable failure and
// reports the result of re-running the fixed checks.
func (r *Runner) RunAndFix() *Report {
	return r.run(true)
}

func (r *Runner) run(fix bool) *Report {
	report := &Report{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		if fix && result.Fixable && result.Status >= SeverityWarning {
			result = applyFix(check, result)
		}
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	return report
}

func applyFix(check Check, failed *CheckResult) *CheckResult {
	fixer, ok := check.(Fixer)
	if !ok {
		return failed
	}
	if err := fixer.Fix(); err != nil {
		failed.Details = withDetail(failed.Details, "fix_error", errors.Wrapf(err, "fixing %s", check.Name()).Error())
		return failed
	}
	result := check.Run()
	result.Details = withDetail(result.Details, "fixed", true)
	return result
}

func withDetail(details map[string]any, key string, value any) map[string]any {
	if details == nil {
		details = map[string]any{}
	}
	details[key] = value
	return details
}

// Report aggregates all check results with timing and summary.
type Report struct {
	// Timestamp is when the diagnostic run started.
	Timestamp time.Time `json:"timestamp"`

	// Results contains the outcome of each check.
	Results []*CheckResult `json:"results"`

	// Summary contains counts by severity level.
	Summary Summary `json:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
