package model

import "time"

// CheckRun represents an individual CI/CD check run from the GitHub Checks API.
type CheckRun struct {
	ID          int64
	Name        string    // Check run name (e.g., "build", "lint").
	Status      string    // queued, in_progress, completed, waiting, requested, pending.
	Conclusion  string    // success, failure, neutral, canceled, skipped, timed_out, action_required.
	DetailsURL  string    // URL to the check run details page.
	StartedAt   time.Time
	CompletedAt time.Time // Zero if not yet completed.
}

// Failed reports whether a completed check run ended in a failing conclusion.
func (cr CheckRun) Failed() bool {
	if cr.Status != "completed" {
		return false
	}
	switch cr.Conclusion {
	case "failure", "canceled", "cancelled", "timed_out", "action_required": //nolint:misspell // GitHub API uses British "cancelled"
		return true
	}
	return false
}

// CombinedStatus represents the aggregated commit status from the GitHub Status API.
type CombinedStatus struct {
	State    string         // Overall state: success, failure, pending.
	Statuses []CommitStatus // Individual status entries.
}

// CommitStatus represents an individual status entry from the GitHub Status API.
type CommitStatus struct {
	Context     string // CI service identifier (e.g., "ci/circleci").
	State       string // success, failure, pending, error.
	Description string
	TargetURL   string
}

// Failed reports whether the status entry is in a failing state.
func (s CommitStatus) Failed() bool {
	return s.State == "failure" || s.State == "error"
}

// CheckFailure is one failing check surfaced to the user, regardless of
// whether it came from the Checks API or the legacy Status API.
type CheckFailure struct {
	Name       string
	DetailsURL string
}
