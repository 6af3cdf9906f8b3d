package pipeline

import "time"

// TaskStatus is the terminal state of one task in a run.
type TaskStatus string

const (
	StatusCompleted TaskStatus = "completed"
	StatusFailed    TaskStatus = "failed"
	StatusSkipped   TaskStatus = "skipped" // left unexecuted after a failure
)

// TaskResult holds the outcome of a single task execution.
type TaskResult struct {
	Name     string
	Status   TaskStatus
	Duration time.Duration
	Output   any
	Error    error
}

// Result holds the outcome of one pipeline run. Each run produces an
// independent Result; it is not retained by the pipeline.
type Result struct {
	// RunID uniquely identifies this run.
	RunID string
	// Outputs maps each executed task's handle to its recorded output.
	// On a failed run it contains only the tasks that completed before
	// the failure.
	Outputs map[Handle]any
	// Tasks holds per-task outcomes in execution order.
	Tasks []TaskResult
	// Duration is the wall time of the whole run.
	Duration time.Duration
}

// Output returns the recorded output for h.
func (r *Result) Output(h Handle) (any, bool) {
	v, ok := r.Outputs[h]
	return v, ok
}

// skip records the tasks left unexecuted after an aborted run.
func (r *Result) skip(names []string) {
	for _, name := range names {
		r.Tasks = append(r.Tasks, TaskResult{Name: name, Status: StatusSkipped})
	}
}
