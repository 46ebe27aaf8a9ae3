package commands

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"go.trai.ch/rlo/internal/adapters/config"
	"go.trai.ch/rlo/internal/adapters/render"
	"go.trai.ch/rlo/internal/app"
	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/rlo/internal/core/ports"
)

// eventSource produces the next event of a run, ending with io.EOF.
type eventSource func() (domain.Event, error)

// newRenderer picks the live surface when stdout is a terminal or the
// environment forces interactivity, and the linear fallback otherwise.
func newRenderer(cfg config.Config) ports.Renderer {
	if cfg.ForceInteractive || term.IsTerminal(int(os.Stdout.Fd())) {
		return render.NewLive(render.NewModel(cfg.EnableTimer))
	}
	return render.NewLinear(os.Stdout)
}

// renderRun drives a whole run: start the renderer, dispatch every event,
// and wait for the surface to wind down. The live region is released on
// every path, including cancellation and dispatch errors.
func renderRun(ctx context.Context, cfg config.Config, diag ports.Logger, next eventSource) error {
	renderer := newRenderer(cfg)

	if err := renderer.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = renderer.Stop() }()

	a := app.New(cfg, renderer, diag, nil)

	finished := false
	for !finished {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if err := a.Handle(ev); err != nil {
			return err
		}

		// The stats event terminates the run and quits the live surface.
		_, finished = ev.(domain.RunStats)
	}

	if !finished {
		diag.Warn("event stream ended without a stats event")
		_ = renderer.Stop()
	}
	return renderer.Wait()
}
