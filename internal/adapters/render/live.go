// Package render implements the two renderers behind the ports.Renderer
// interface: a live Bubble Tea surface for interactive terminals and a
// linear fallback for everything else.
package render

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Live is the interactive renderer. The Bubble Tea program's view is the
// transient progress region; every log line is sent through tea.Println,
// which repaints the region immediately after the line is written.
type Live struct {
	program *tea.Program
	model   *Model

	startOnce sync.Once
	stopOnce  sync.Once
	errCh     chan error
}

// NewLive creates the live renderer.
func NewLive(model *Model, opts ...tea.ProgramOption) *Live {
	return &Live{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the live region in a background goroutine.
func (l *Live) Start(_ context.Context) error {
	l.startOnce.Do(func() {
		go func() {
			_, err := l.program.Run()
			l.errCh <- err
		}()
	})
	return nil
}

// Stop signals the program to quit. Safe to call any number of times, at
// any point; Bubble Tea restores the terminal on exit even mid-run.
func (l *Live) Stop() error {
	l.stopOnce.Do(l.program.Quit)
	return nil
}

// Wait blocks until the program has terminated.
func (l *Live) Wait() error {
	return <-l.errCh
}

// Println appends one permanent line above the progress region.
func (l *Live) Println(line string) {
	l.program.Send(msgLog{Line: line})
}

// TaskStarted adds a progress row for an in-flight host.
func (l *Live) TaskStarted(host, label, desc string, at time.Time) {
	l.program.Send(msgTaskStarted{Host: host, Label: label, Desc: desc, At: at})
}

// TaskFinished retires the progress row for a host.
func (l *Live) TaskFinished(host string) {
	l.program.Send(msgTaskFinished{Host: host})
}

// SetRole updates the role banner row.
func (l *Live) SetRole(role string) {
	l.program.Send(msgSetRole{Role: role})
}

// Finish clears the progress region, prints the recap permanently and
// shuts the program down.
func (l *Live) Finish(recap string) {
	l.program.Send(msgFinish{Recap: recap})
}

// Program exposes the underlying program for tests.
func (l *Live) Program() *tea.Program {
	return l.program
}
