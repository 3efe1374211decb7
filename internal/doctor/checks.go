// Package doctor diagnoses problems that would make generated SSH guides
// misleading: a broken registry, environments whose aliases collide, worker
// URLs that silently fall back, and clashes with the user's ssh_config.
package doctor

import (
	"fmt"
	"sync"

	"github.com/lyra-labs/lyra/internal/util"
)

// Check categories, in display order.
const (
	CategoryConfig       = "CONFIG"
	CategoryEnvironments = "ENVIRONMENTS"
	CategorySSH          = "SSH"
)

// CategoryOrder lists the categories in the order reports show them.
var CategoryOrder = []string{CategoryConfig, CategoryEnvironments, CategorySSH}

// CheckStatus represents the result status of a check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status as its string form in JSON output.
func (s CheckStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes the string form written by MarshalText.
func (s *CheckStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pass":
		*s = StatusPass
	case "warn":
		*s = StatusWarn
	case "fail":
		*s = StatusFail
	default:
		return fmt.Errorf("unknown check status %q", text)
	}
	return nil
}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Check is one diagnostic. Checks only read local files.
type Check interface {
	// Name returns the check's identifier.
	Name() string

	// Category returns one of the Category constants.
	Category() string

	// Run executes the check and returns the result.
	Run() CheckResult
}

// RunAll executes all checks in order and returns the results.
func RunAll(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, check := range checks {
		results[i] = check.Run()
	}
	return results
}

// RunAllParallel executes all checks concurrently. Results keep the order
// of checks.
func RunAllParallel(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	var wg sync.WaitGroup

	for i, check := range checks {
		wg.Add(1)
		go func(idx int, c Check) {
			defer wg.Done()
			results[idx] = c.Run()
		}(i, check)
	}

	wg.Wait()
	return results
}

// GroupByCategory organizes checks by their category.
func GroupByCategory(checks []Check) map[string][]Check {
	grouped := make(map[string][]Check)
	for _, check := range checks {
		cat := check.Category()
		grouped[cat] = append(grouped[cat], check)
	}
	return grouped
}

// CountByStatus counts results by status.
func CountByStatus(results []CheckResult) map[CheckStatus]int {
	counts := make(map[CheckStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// HasFailures returns true if any result has a fail status.
func HasFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// HasIssues returns true if any result has a fail or warn status.
func HasIssues(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail || r.Status == StatusWarn {
			return true
		}
	}
	return false
}

// Summary returns a summary string of the check results.
func Summary(results []CheckResult) string {
	counts := CountByStatus(results)
	total := counts[StatusWarn] + counts[StatusFail]

	if total == 0 {
		return "Everything looks good"
	}
	return fmt.Sprintf("%d %s found", total, util.Pluralize(total, "issue", "issues"))
}

func pass(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusPass, Message: message}
}
