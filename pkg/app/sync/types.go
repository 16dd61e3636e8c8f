// Package sync performs the clone-or-pull batch over discovered projects.
package sync

// Status classifies the outcome of synchronizing one project.
type Status string

const (
	// StatusCloned means the repository was absent and has been cloned.
	StatusCloned Status = "cloned"
	// StatusUpdated means an existing working copy was pulled.
	StatusUpdated Status = "updated"
	// StatusSkipped means the project was deliberately not synchronized
	// (e.g. archived project without --include-archived).
	StatusSkipped Status = "skipped"
	// StatusFailed means clone/pull or directory creation failed.
	StatusFailed Status = "failed"
)

// Result is the outcome of synchronizing a single project.
type Result struct {
	// ProjectID is the stable identity of the project.
	ProjectID int64
	// ProjectPath is the namespace-qualified path, e.g. "grp/sub/tool".
	ProjectPath string
	// Destination is the local directory the project maps to.
	Destination string
	// Status classifies the outcome.
	Status Status
	// Err carries the failure reason when Status is StatusFailed.
	Err error
}

// Report aggregates the results of a whole run.
type Report struct {
	Results []Result
}

// Count returns the number of results with the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// HasFailures returns true if any project failed to synchronize.
func (r *Report) HasFailures() bool {
	return r.Count(StatusFailed) > 0
}

// Failures returns the failed results.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
