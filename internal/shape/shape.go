// Package shape builds the printable form of a task result payload. A
// shaped result that comes back empty means "print nothing", not an error.
package shape

import (
	"strings"

	"go.trai.ch/rlo/internal/core/domain"
)

// internalKeyPrefix marks engine-private bookkeeping keys that never
// belong in output.
const internalKeyPrefix = "_ansible_"

// loopDoneMsg is the engine's literal loop-completion message. Dropping it
// from reduced results is a compatibility shim tied to that exact text,
// not a general rule.
const loopDoneMsg = "All items completed"

// Censored is the fixed placeholder shown instead of a no_log result.
func Censored() domain.Mapping {
	return domain.Mapping{{
		Key: "censored",
		Val: domain.String("the output has been hidden due to the fact that 'no_log: true' was specified for this result (via RLO)"),
	}}
}

// censor reports whether the result must be replaced by the censored
// placeholder: the task asked for no_log and the run is not verbose
// enough (-vvv) to override it.
func censor(task domain.TaskMeta, verbosity int) bool {
	return task.NoLog && verbosity <= 2
}

// Comprehensive returns the near-complete result used for debugging a
// task: internal keys are always stripped, the invocation is stripped
// unless the run is very verbose, and information the log line already
// shows (diff, skipped flag) is stripped unless the run is verbose enough.
func Comprehensive(result domain.Mapping, task domain.TaskMeta, verbosity int) domain.Mapping {
	if censor(task, verbosity) {
		return Censored()
	}

	out := make(domain.Mapping, 0, len(result))
	for _, p := range result {
		if strings.HasPrefix(p.Key, internalKeyPrefix) {
			continue
		}
		out = append(out, p)
	}

	if verbosity <= 3 {
		out = out.Delete("invocation")
	}
	if verbosity <= 2 {
		out = out.Delete("diff")
		out = out.Delete("skipped")
	}

	// If we already have stdout, we don't need stdout_lines
	if out.Has("stdout") && out.Has("stdout_lines") {
		out = out.Set("stdout_lines", domain.String("<omitted>"))
	}
	// If we already have stderr, we don't need stderr_lines
	if out.Has("stderr") && out.Has("stderr_lines") {
		out = out.Set("stderr_lines", domain.String("<omitted>"))
	}

	if len(task.Vars) > 0 {
		out = out.Set("task_vars", task.Vars)
	}

	return out
}

// Reduced returns the small result object expected on medium verbosity:
// stdout, stderr, msg and task vars only.
func Reduced(result domain.Mapping, task domain.TaskMeta, verbosity int) domain.Mapping {
	if censor(task, verbosity) {
		return Censored()
	}

	var out domain.Mapping
	for _, key := range []string{"stdout", "stderr"} {
		if v, ok := result.Get(key); ok {
			out = out.Set(key, v)
		}
	}

	// Specifically ignore a loop's completion msg in a reduced result,
	// otherwise print it.
	if v, ok := result.Get("msg"); ok {
		if s, isStr := v.(domain.String); !isStr || string(s) != loopDoneMsg {
			out = out.Set("msg", v)
		}
	}

	if len(task.Vars) > 0 {
		out = out.Set("task_vars", task.Vars)
	}

	return out
}
