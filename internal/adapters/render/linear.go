package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Linear is the renderer for non-interactive output: no transient region,
// just chronological log lines. Progress rows are invisible here, which is
// exactly what captured or redirected output wants.
type Linear struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLinear creates a linear renderer writing to w, defaulting to stdout.
func NewLinear(w io.Writer) *Linear {
	if w == nil {
		w = os.Stdout
	}
	return &Linear{w: w}
}

// Start is a no-op; there is no live region.
func (r *Linear) Start(_ context.Context) error { return nil }

// Stop is a no-op and idempotent.
func (r *Linear) Stop() error { return nil }

// Wait is a no-op; writes are synchronous.
func (r *Linear) Wait() error { return nil }

// Println writes one log line.
func (r *Linear) Println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, line)
}

// TaskStarted is a no-op; in-flight state is not shown without a live region.
func (r *Linear) TaskStarted(_, _, _ string, _ time.Time) {}

// TaskFinished is a no-op.
func (r *Linear) TaskFinished(_ string) {}

// SetRole is a no-op.
func (r *Linear) SetRole(_ string) {}

// Finish prints the recap.
func (r *Linear) Finish(recap string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w)
	_, _ = fmt.Fprintln(r.w, recap)
}
