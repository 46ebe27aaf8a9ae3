// Package ingest decodes a recorded job-event stream (runner-style JSON
// lines) into domain events. Result payloads cross into the tagged value
// model exactly once, here at the boundary.
package ingest

import (
	"encoding/json"
	"io"

	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/rlo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner event types understood by the reader.
const (
	eventPlayStart      = "playbook_on_play_start"
	eventRunnerStart    = "runner_on_start"
	eventRunnerOk       = "runner_on_ok"
	eventRunnerFailed   = "runner_on_failed"
	eventRunnerSkipped  = "runner_on_skipped"
	eventRunnerUnreach  = "runner_on_unreachable"
	eventRunnerRetry    = "runner_retry"
	eventNotify         = "playbook_on_notify"
	eventNoHostsMatched = "playbook_on_no_hosts_matched"
	eventStats          = "playbook_on_stats"
)

// record mirrors one line of a runner job-event stream.
type record struct {
	Event     string    `json:"event"`
	EventData eventData `json:"event_data"`
}

type eventData struct {
	Play      string         `json:"play"`
	CheckMode bool           `json:"check_mode"`
	Host      string         `json:"host"`
	Task      string         `json:"task"`
	Action    string         `json:"task_action"`
	Path      string         `json:"task_path"`
	Role      string         `json:"role"`
	NoLog     bool           `json:"no_log"`
	Delegate  string         `json:"delegate_to"`
	Handler   bool           `json:"handler"`
	TaskVars  map[string]any `json:"task_vars"`
	Result    map[string]any `json:"res"`

	// Per-host counters, present on the stats event only.
	Ok        map[string]int `json:"ok"`
	Changed   map[string]int `json:"changed"`
	Dark      map[string]int `json:"dark"`
	Failures  map[string]int `json:"failures"`
	Skipped   map[string]int `json:"skipped"`
	Rescued   map[string]int `json:"rescued"`
	Ignored   map[string]int `json:"ignored"`
	Processed map[string]int `json:"processed"`
}

// Reader decodes domain events from a stream of JSON records.
type Reader struct {
	dec     *json.Decoder
	log     ports.Logger
	skipped map[string]bool
}

// NewReader creates a reader over r. Skipped event types are reported
// through log; a nil log silences them.
func NewReader(r io.Reader, log ports.Logger) *Reader {
	return &Reader{
		dec:     json.NewDecoder(r),
		log:     log,
		skipped: make(map[string]bool),
	}
}

// Next returns the next recognized event. Unknown event types are skipped
// and logged once per type; io.EOF signals a clean end of stream.
func (r *Reader) Next() (domain.Event, error) {
	for {
		var rec record
		if err := r.dec.Decode(&rec); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, zerr.Wrap(domain.ErrBadEvent, err.Error())
		}

		ev, ok := rec.toEvent()
		if !ok {
			r.skip(rec.Event)
			continue
		}
		return ev, nil
	}
}

// skip notes an event type the reader does not render, once per type so a
// chatty stream cannot flood the diagnostics.
func (r *Reader) skip(event string) {
	if r.log == nil || r.skipped[event] {
		return
	}
	r.skipped[event] = true
	r.log.Info("skipping unrecognized event type: " + event)
}

func (rec record) toEvent() (domain.Event, bool) {
	d := rec.EventData

	switch rec.Event {
	case eventPlayStart:
		return domain.PlayStarted{Name: d.Play, CheckMode: d.CheckMode}, true
	case eventRunnerStart:
		return domain.TaskStarted{Host: d.host(), Task: d.task()}, true
	case eventRunnerOk:
		return d.finished(domain.StatusOk), true
	case eventRunnerFailed:
		return d.finished(domain.StatusFailed), true
	case eventRunnerSkipped:
		return d.finished(domain.StatusSkipped), true
	case eventRunnerUnreach:
		return d.finished(domain.StatusUnreachable), true
	case eventRunnerRetry:
		return domain.TaskRetried{Host: d.host(), Task: d.task(), RetriesLeft: d.retriesLeft()}, true
	case eventNotify:
		return domain.HostNotified{Host: d.host(), Task: d.task()}, true
	case eventNoHostsMatched:
		return domain.NoHostsMatched{}, true
	case eventStats:
		return domain.RunStats{Stats: d.stats()}, true
	default:
		return nil, false
	}
}

func (d eventData) host() domain.HostMeta {
	return domain.HostMeta{Name: d.Host}
}

func (d eventData) task() domain.TaskMeta {
	var vars domain.Mapping
	if len(d.TaskVars) > 0 {
		if m, ok := domain.FromAny(d.TaskVars).(domain.Mapping); ok {
			vars = m
		}
	}

	return domain.TaskMeta{
		Name:       d.Task,
		Action:     d.Action,
		Role:       d.Role,
		Path:       d.Path,
		DelegateTo: d.Delegate,
		NoLog:      d.NoLog,
		CheckMode:  d.CheckMode,
		Handler:    d.Handler,
		Loop:       d.Result["results"] != nil,
		Vars:       vars,
	}
}

func (d eventData) finished(status domain.Status) domain.TaskFinished {
	var result domain.Mapping
	if m, ok := domain.FromAny(d.Result).(domain.Mapping); ok {
		result = m
	}

	return domain.TaskFinished{
		Host:   d.host(),
		Task:   d.task(),
		Status: status,
		Result: result,
	}
}

// retriesLeft derives the remaining attempts the way the engine reports
// them: total retries minus attempts so far.
func (d eventData) retriesLeft() int {
	retries, _ := d.Result["retries"].(float64)
	attempts, _ := d.Result["attempts"].(float64)
	left := int(retries) - int(attempts)
	if left < 0 {
		left = 0
	}
	return left
}

// stats folds the per-counter host maps into one row per processed host.
func (d eventData) stats() []domain.HostStats {
	hosts := make(map[string]bool)
	for _, m := range []map[string]int{d.Processed, d.Ok, d.Changed, d.Dark, d.Failures, d.Skipped, d.Rescued, d.Ignored} {
		for h := range m {
			hosts[h] = true
		}
	}

	out := make([]domain.HostStats, 0, len(hosts))
	for h := range hosts {
		out = append(out, domain.HostStats{
			Host:        h,
			Ok:          d.Ok[h],
			Changed:     d.Changed[h],
			Unreachable: d.Dark[h],
			Failed:      d.Failures[h],
			Skipped:     d.Skipped[h],
			Rescued:     d.Rescued[h],
			Ignored:     d.Ignored[h],
		})
	}
	return out
}
