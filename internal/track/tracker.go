// Package track owns the mutable run state: one progress slot per
// in-flight host and the role banner context. All mutation happens
// synchronously inside event handling, so the tracker needs no locking.
package track

import "time"

// Slot is one in-flight (host, task) unit of work.
type Slot struct {
	Host      string
	Label     string
	Desc      string
	StartedAt time.Time
}

// Tracker tracks in-flight slots and role boundaries for one run.
type Tracker struct {
	now   func() time.Time
	start time.Time

	slots map[string]Slot
	order []string

	currentRole     string
	lastPrintedRole string
	shouldPrintRole bool
}

// New creates a tracker. A nil clock defaults to time.Now.
func New(clock func() time.Time) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{
		now:   clock,
		start: clock(),
		slots: make(map[string]Slot),
	}
}

// Start opens the progress slot for a host. A host runs at most one task
// at a time, so any stale slot for it is replaced.
func (t *Tracker) Start(host, label, desc string) Slot {
	if _, ok := t.slots[host]; !ok {
		t.order = append(t.order, host)
	}
	s := Slot{Host: host, Label: label, Desc: desc, StartedAt: t.now()}
	t.slots[host] = s
	return s
}

// Finish closes the slot for a host and returns how long it ran. A finish
// with no matching slot should not occur in a well-formed event stream; it
// is answered with zero elapsed and ok=false rather than an error so one
// anomaly cannot take down the run.
func (t *Tracker) Finish(host string) (time.Duration, bool) {
	s, ok := t.slots[host]
	if !ok {
		return 0, false
	}

	delete(t.slots, host)
	for i, h := range t.order {
		if h == host {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
	return t.now().Sub(s.StartedAt), true
}

// Live returns the in-flight slots in start order.
func (t *Tracker) Live() []Slot {
	out := make([]Slot, 0, len(t.slots))
	for _, host := range t.order {
		out = append(out, t.slots[host])
	}
	return out
}

// Observe records the role a finishing task belongs to and arms the
// banner when the role changed. The sentinel "no role" value and a role
// that was already printed never arm it.
func (t *Tracker) Observe(role string) {
	if t.currentRole != role {
		t.shouldPrintRole = true
		t.currentRole = role
	}

	if role == "" || role == "None" {
		t.shouldPrintRole = false
	}

	if t.lastPrintedRole == t.currentRole {
		t.shouldPrintRole = false
	}
}

// ConsumeBanner returns the role to print a banner for, at most once per
// contiguous run of tasks sharing that role.
func (t *Tracker) ConsumeBanner() (string, bool) {
	if !t.shouldPrintRole {
		return "", false
	}
	t.lastPrintedRole = t.currentRole
	t.shouldPrintRole = false
	return t.currentRole, true
}

// CurrentRole returns the role of the most recently finished task.
func (t *Tracker) CurrentRole() string {
	return t.currentRole
}

// RunElapsed returns the wall-clock time since the tracker was created.
func (t *Tracker) RunElapsed() time.Duration {
	return t.now().Sub(t.start)
}
