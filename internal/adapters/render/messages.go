package render

import "time"

// msgTaskStarted adds a progress row for an in-flight host.
type msgTaskStarted struct {
	Host  string
	Label string
	Desc  string
	At    time.Time
}

// msgTaskFinished retires the progress row for a host.
type msgTaskFinished struct {
	Host string
}

// msgSetRole updates the role banner row.
type msgSetRole struct {
	Role string
}

// msgLog appends one permanent line above the progress region.
type msgLog struct {
	Line string
}

// msgFinish clears the progress region, prints the recap and quits.
type msgFinish struct {
	Recap string
}
