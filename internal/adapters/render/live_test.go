package render_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"go.trai.ch/rlo/internal/adapters/render"
)

// newHeadlessLive builds a live renderer that runs without a terminal.
func newHeadlessLive() *render.Live {
	return render.NewLive(render.NewModel(false),
		tea.WithInput(&bytes.Buffer{}),
		tea.WithOutput(&bytes.Buffer{}),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
}

func TestLive_FinishTerminatesRun(t *testing.T) {
	l := newHeadlessLive()
	require.NoError(t, l.Start(t.Context()))

	l.Println("one line")
	l.TaskStarted("web-01", "web-01", "setup", time.Now())
	l.SetRole("common")
	l.TaskFinished("web-01")
	l.Finish("recap")

	require.NoError(t, l.Wait())
}

func TestLive_StopIsIdempotent(t *testing.T) {
	l := newHeadlessLive()
	require.NoError(t, l.Start(t.Context()))

	require.NoError(t, l.Stop())
	require.NoError(t, l.Stop())
	require.NoError(t, l.Wait())
}

func TestLive_StartTwiceLaunchesOnce(t *testing.T) {
	l := newHeadlessLive()
	require.NoError(t, l.Start(t.Context()))
	require.NoError(t, l.Start(t.Context()))

	require.NoError(t, l.Stop())
	require.NoError(t, l.Wait())
}
