// Package ports defines the interfaces between the event pipeline and its
// adapters.
package ports

import (
	"context"
	"time"
)

// Renderer is the single owner of the output surface. It maintains the
// transient progress region and the permanent scrolling log above it; no
// other component writes to the terminal directly.
type Renderer interface {
	// Start begins the live display. It must be safe to call Println
	// before Start on renderers that have no live region.
	Start(ctx context.Context) error
	// Stop tears the live region down. It is idempotent and never fails
	// in a way that leaves the terminal in a broken state.
	Stop() error
	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// Println appends one permanent line to the scrolling log and
	// repaints the progress region immediately afterwards.
	Println(line string)

	// TaskStarted adds a progress row for an in-flight host.
	TaskStarted(host, label, desc string, at time.Time)
	// TaskFinished retires the progress row for a host.
	TaskFinished(host string)
	// SetRole updates the role banner row of the progress region.
	SetRole(role string)

	// Finish freezes the live region and prints the recap as a permanent
	// line. No further calls are expected after Finish.
	Finish(recap string)
}
