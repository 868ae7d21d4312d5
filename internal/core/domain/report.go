package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Outcome is the result of processing a single file.
type Outcome string

const (
	// OutcomeWritten means a new or changed output was written.
	OutcomeWritten Outcome = "written"
	// OutcomeUnchanged means the output already held identical bytes.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeSkipped means the file produces no output (style partials).
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the file could not be transformed or written.
	OutcomeFailed Outcome = "failed"
)

// Trigger records why a task run happened.
type Trigger string

const (
	// TriggerInitial is the startup run of a watch registration.
	TriggerInitial Trigger = "initial"
	// TriggerChange is a run caused by a file system event.
	TriggerChange Trigger = "change"
	// TriggerBuild is a one-shot run from the build command.
	TriggerBuild Trigger = "build"
)

// FileResult is the outcome of one file-processing attempt.
type FileResult struct {
	Source     string
	Output     string
	Outcome    Outcome
	Err        error
	InputSize  int
	OutputSize int
}

// RunReport aggregates the file results of one task run.
type RunReport struct {
	Task     string
	Trigger  Trigger
	Started  time.Time
	Finished time.Time
	Results  []FileResult
}

// Count returns the number of results with the given outcome.
func (r *RunReport) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Failed returns the results that failed, in source order.
func (r *RunReport) Failed() []FileResult {
	var failed []FileResult
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Outputs returns the output paths of written and unchanged results.
func (r *RunReport) Outputs() []string {
	var out []string
	for _, res := range r.Results {
		if res.Outcome == OutcomeWritten || res.Outcome == OutcomeUnchanged {
			out = append(out, res.Output)
		}
	}
	return out
}

// Err joins the per-file errors, or returns nil when every file succeeded.
func (r *RunReport) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrRunFailed}, errs...)...)
}

// Duration returns how long the run took.
func (r *RunReport) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Summary renders the outcome counts, e.g. "2 written, 1 unchanged, 1 failed".
// Outcomes with no files are left out; an empty run reads "no files".
func (r *RunReport) Summary() string {
	parts := make([]string, 0, 4)
	for _, o := range []Outcome{OutcomeWritten, OutcomeUnchanged, OutcomeSkipped, OutcomeFailed} {
		if n := r.Count(o); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, o))
		}
	}
	if len(parts) == 0 {
		return "no files"
	}
	return strings.Join(parts, ", ")
}
