// Package policy holds the pure decision functions that map a finished
// task to what, if anything, gets printed for it.
package policy

import "go.trai.ch/rlo/internal/core/domain"

// Options are the display knobs a run is configured with.
type Options struct {
	Verbosity             int
	DisplaySkippedHosts   bool
	DisplayOkHosts        bool
	CheckModeMarkers      bool
	ShowTaskPathOnFailure bool
}

// isDebugAction reports whether the task is a debug-kind action whose
// output the operator asked for explicitly.
func isDebugAction(task domain.TaskMeta) bool {
	return task.Action == "debug" && !task.NoLog
}

// ShouldLogLine decides whether a finished task gets a line in the
// scrolling log at all.
func ShouldLogLine(task domain.TaskMeta, status domain.Status, changed bool, opts Options) bool {
	// The run is verbose enough (-vv)
	if opts.Verbosity > 1 {
		return true
	}
	// The task is a 'debug' action that doesn't set no_log
	if isDebugAction(task) {
		return true
	}
	// The task result is a failure
	if status == domain.StatusFailed || status == domain.StatusUnreachable {
		return true
	}
	// The task is skipped and we are either asked to display skipped hosts,
	// or the run is verbose enough (-vvv)
	if status == domain.StatusSkipped && (opts.DisplaySkippedHosts || opts.Verbosity > 2) {
		return true
	}
	// The task is ok, and either it changed something, we are asked to
	// display ok hosts, or the run is verbose enough (-vvv)
	if status == domain.StatusOk && (changed || opts.DisplayOkHosts || opts.Verbosity > 2) {
		return true
	}

	return false
}

// ShouldShowComprehensive decides whether the near-complete result payload
// is printed. It takes precedence over the reduced form.
func ShouldShowComprehensive(task domain.TaskMeta, status domain.Status, opts Options) bool {
	// The run is verbose enough (-vvvv)
	if opts.Verbosity > 3 {
		return true
	}
	// The task result is failed, but explicitly not an unreachable
	if status == domain.StatusFailed {
		return true
	}
	return isDebugAction(task)
}

// ShouldShowReduced decides whether the small stdout/stderr/msg payload is
// printed.
func ShouldShowReduced(status domain.Status, changed bool, opts Options) bool {
	// The run is verbose enough (-vv)
	if opts.Verbosity > 1 {
		return true
	}
	// The task succeeded and changed something
	return status == domain.StatusOk && changed
}
