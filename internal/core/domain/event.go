// Package domain holds the event, value and statistics model shared by the
// rendering pipeline.
package domain

// Status is the terminal outcome of a task on one host.
type Status string

const (
	// StatusOk indicates the task completed successfully.
	StatusOk Status = "ok"
	// StatusSkipped indicates the task was skipped on this host.
	StatusSkipped Status = "skipped"
	// StatusFailed indicates the task failed.
	StatusFailed Status = "failed"
	// StatusUnreachable indicates the host could not be contacted.
	StatusUnreachable Status = "unreachable"
)

// RoleNone is the sentinel for tasks that belong to no role. The role
// banner is never printed for it.
const RoleNone = "None"

// TaskMeta is the read-only task metadata carried by events.
type TaskMeta struct {
	Name       string
	Action     string
	Role       string
	Path       string
	DelegateTo string
	NoLog      bool
	CheckMode  bool
	Handler    bool
	Loop       bool
	Vars       Mapping
}

// HostMeta is the read-only host metadata carried by events.
type HostMeta struct {
	Name string
}

// Event is one lifecycle notification from the execution engine. Events
// are immutable once constructed and handled strictly in dispatch order.
type Event interface {
	isEvent()
}

// TaskStarted signals that a task began executing on a host.
type TaskStarted struct {
	Host HostMeta
	Task TaskMeta
}

// TaskFinished signals that a task reached a terminal status on a host.
type TaskFinished struct {
	Host   HostMeta
	Task   TaskMeta
	Status Status
	Result Mapping
}

// TaskRetried signals a failed attempt that the engine will retry. The
// unit of work continues, so the progress slot stays alive.
type TaskRetried struct {
	Host        HostMeta
	Task        TaskMeta
	RetriesLeft int
}

// PlayStarted signals the beginning of a named play.
type PlayStarted struct {
	Name      string
	CheckMode bool
}

// HostNotified signals that a handler was notified for a host.
type HostNotified struct {
	Host HostMeta
	Task TaskMeta
}

// NoHostsMatched signals that the play matched no hosts at all.
type NoHostsMatched struct{}

// RunStats carries the end-of-run per-host summary and terminates the run.
type RunStats struct {
	Stats []HostStats
}

func (TaskStarted) isEvent()    {}
func (TaskFinished) isEvent()   {}
func (TaskRetried) isEvent()    {}
func (PlayStarted) isEvent()    {}
func (HostNotified) isEvent()   {}
func (NoHostsMatched) isEvent() {}
func (RunStats) isEvent()       {}

// Changed reports whether the finished task changed the host, as recorded
// in its result payload.
func (e TaskFinished) Changed() bool {
	v, ok := e.Result.Get("changed")
	if !ok {
		return false
	}
	b, ok := v.(Bool)
	return ok && bool(b)
}
