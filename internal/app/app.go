// Package app implements the event dispatcher: it routes each lifecycle
// event through the tracker, the visibility policy, the result shaper and
// the transform chain, and hands the resulting lines to the renderer.
package app

import (
	"time"

	"go.trai.ch/rlo/internal/adapters/config"
	"go.trai.ch/rlo/internal/adapters/render"
	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/rlo/internal/core/ports"
	"go.trai.ch/rlo/internal/policy"
	"go.trai.ch/rlo/internal/shape"
	"go.trai.ch/rlo/internal/track"
	"go.trai.ch/rlo/internal/transform"
	"go.trai.ch/rlo/internal/ui/style"
	"go.trai.ch/rlo/internal/ui/timefmt"
	"go.trai.ch/zerr"
)

// App owns the per-run pipeline state: the configured options, the fixed
// sanitizer chain, the lazily resolved user chain and the progress
// tracker. All event handling is synchronous; the renderer is the only
// component with background activity.
type App struct {
	cfg      config.Config
	opts     policy.Options
	renderer ports.Renderer
	logger   ports.Logger
	tracker  *track.Tracker

	sanitizer transform.Transformer
	user      transform.Transformer
	now       func() time.Time
}

// New wires an App. A nil clock defaults to time.Now.
func New(cfg config.Config, renderer ports.Renderer, logger ports.Logger, clock func() time.Time) *App {
	if clock == nil {
		clock = time.Now
	}
	return &App{
		cfg:       cfg,
		opts:      cfg.Options(),
		renderer:  renderer,
		logger:    logger,
		tracker:   track.New(clock),
		sanitizer: transform.NewSanitizer(),
		now:       clock,
	}
}

// Handle routes one lifecycle event. Only configuration errors are
// returned; data anomalies degrade to safe fallbacks so a single odd
// event cannot take the run down.
func (a *App) Handle(ev domain.Event) error {
	switch ev := ev.(type) {
	case domain.TaskStarted:
		a.onTaskStarted(ev)
	case domain.TaskFinished:
		return a.onTaskFinished(ev)
	case domain.TaskRetried:
		a.onTaskRetried(ev)
	case domain.PlayStarted:
		a.onPlayStarted(ev)
	case domain.HostNotified:
		a.onHostNotified(ev)
	case domain.NoHostsMatched:
		a.logTask(style.Unreachable.Bold(true).Render("No hosts matched"))
	case domain.RunStats:
		a.onRunStats(ev)
	}
	return nil
}

func (a *App) onTaskStarted(ev domain.TaskStarted) {
	info := a.describe(ev.Host, ev.Task)
	slot := a.tracker.Start(info.hostName, info.label, info.desc)
	a.renderer.SetRole(info.role)
	a.renderer.TaskStarted(slot.Host, slot.Label, slot.Desc, slot.StartedAt)
}

func (a *App) onTaskFinished(ev domain.TaskFinished) error {
	info := a.describe(ev.Host, ev.Task)

	// State first: a failure while printing must not leave a stale slot
	// behind for the next event.
	elapsed, known := a.tracker.Finish(info.hostName)
	if !known {
		a.logger.Warn("finish event for " + info.hostName + " without a task in flight")
	}
	a.tracker.Observe(info.role)
	a.renderer.TaskFinished(info.hostName)

	changed := ev.Changed()
	if policy.ShouldLogLine(ev.Task, ev.Status, changed, a.opts) {
		line := statusLine(info, ev.Status, changed)
		line += " - " + style.Time.Render(timefmt.Elapsed(elapsed))
		a.logTask(line)
	}

	if changed {
		if err := a.printDiffs(ev); err != nil {
			return err
		}
	}

	// Only one kind of result is printed; the comprehensive form wins.
	switch {
	case policy.ShouldShowComprehensive(ev.Task, ev.Status, a.opts):
		if err := a.printResult(shape.Comprehensive(ev.Result, ev.Task, a.opts.Verbosity)); err != nil {
			return err
		}
	case policy.ShouldShowReduced(ev.Status, changed, a.opts):
		if err := a.printResult(shape.Reduced(ev.Result, ev.Task, a.opts.Verbosity)); err != nil {
			return err
		}
	}

	if ev.Status == domain.StatusFailed && a.opts.ShowTaskPathOnFailure && ev.Task.Path != "" {
		a.print(style.TaskPath.Render("task path: " + ev.Task.Path))
	}

	return nil
}

func (a *App) onTaskRetried(ev domain.TaskRetried) {
	info := a.describe(ev.Host, ev.Task)
	a.logTask(retryLine(info, ev.RetriesLeft))
}

func (a *App) onPlayStarted(ev domain.PlayStarted) {
	msg := style.Bold.Render(" - Playbook - " + ev.Name + " -")
	if ev.CheckMode {
		msg += " " + style.Italic.Render("Check Mode")
	}
	a.log(msg)
}

func (a *App) onHostNotified(ev domain.HostNotified) {
	info := a.describe(ev.Host, ev.Task)
	a.log(style.Italic.Render(style.Bold.Render("notified") + " - " + info.desc))
}

func (a *App) onRunStats(ev domain.RunStats) {
	a.renderer.Finish(render.Recap(ev.Stats, a.tracker.RunElapsed()))
}

// print writes one permanent line; the renderer repaints the live region
// right after it.
func (a *App) print(line string) {
	a.renderer.Println(line)
}

// log prefixes a line with the wall-clock stamp.
func (a *App) log(line string) {
	stamp := style.Bold.Render("[") + style.Time.Bold(true).Render(timefmt.Stamp(a.now())) + style.Bold.Render("]")
	a.print(stamp + " " + line)
}

// logTask emits a task-scoped line, preceded by the role banner when one
// is armed. The banner prints at most once per contiguous role run.
func (a *App) logTask(line string) {
	if role, ok := a.tracker.ConsumeBanner(); ok {
		a.log(style.Banner.Render(" --- Role - " + role + " ---"))
	}
	a.log(line)
}

// printResult pushes a shaped result through sanitization, the user chain
// and the YAML dump. An empty shaped result prints nothing.
func (a *App) printResult(shaped domain.Mapping) error {
	if len(shaped) == 0 {
		return nil
	}

	transformed, err := a.transformValue(shaped)
	if err != nil {
		return err
	}

	text, err := domain.Dump(transformed)
	if err != nil {
		return zerr.Wrap(err, "failed to dump result")
	}
	a.print(style.Result.Render(text))
	return nil
}

// transformValue applies the fixed sanitizer and then the user chain.
func (a *App) transformValue(v domain.Value) (domain.Value, error) {
	user, err := a.userChain()
	if err != nil {
		return nil, err
	}
	return transform.Apply(user, transform.Apply(a.sanitizer, v)), nil
}

// userChain resolves the configured transformer on first use and caches
// it for the rest of the run. A resolution failure is fatal configuration.
func (a *App) userChain() (transform.Transformer, error) {
	if a.user != nil {
		return a.user, nil
	}

	t, err := transform.Resolve(a.cfg.Transformer)
	if err != nil {
		return nil, err
	}
	a.user = t
	return t, nil
}

// printDiffs prints the diffs of a changed result. Looped tasks carry one
// potential diff per item under "results".
func (a *App) printDiffs(ev domain.TaskFinished) error {
	if ev.Task.Loop {
		items, ok := ev.Result.Get("results")
		if seq, isSeq := items.(domain.Sequence); ok && isSeq {
			for _, item := range seq {
				m, isMap := item.(domain.Mapping)
				if !isMap {
					continue
				}
				if err := a.printSingleDiff(m); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return a.printSingleDiff(ev.Result)
}

// printSingleDiff prints the diff of one result object when it both has a
// diff and reports a change.
func (a *App) printSingleDiff(result domain.Mapping) error {
	itemChanged := false
	if v, ok := result.Get("changed"); ok {
		b, isBool := v.(domain.Bool)
		itemChanged = isBool && bool(b)
	}

	diff, ok := result.Get("diff")
	if !ok || !itemChanged {
		return nil
	}

	// A single diff object and a list of them are both accepted.
	entries, ok := diff.(domain.Sequence)
	if !ok {
		entries = domain.Sequence{diff}
	}

	for _, entry := range entries {
		transformed, err := a.transformValue(entry)
		if err != nil {
			return err
		}
		if text := render.FormatDiff(transformed); text != "" {
			a.print(text)
		}
	}
	return nil
}

// Tracker exposes the run state for tests.
func (a *App) Tracker() *track.Tracker {
	return a.tracker
}
