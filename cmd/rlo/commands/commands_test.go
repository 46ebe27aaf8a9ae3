package commands

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/rlo/internal/adapters/config"
	"go.trai.ch/rlo/internal/adapters/render"
	"go.trai.ch/rlo/internal/core/domain"
)

func TestDemoSource_CoversEveryStatus(t *testing.T) {
	next := demoSource(config.Default(), 0)

	var events []domain.Event
	for {
		ev, err := next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		events = append(events, ev)
	}

	require.NotEmpty(t, events)
	_, ok := events[len(events)-1].(domain.RunStats)
	assert.True(t, ok, "the demo must terminate with the stats event")

	seen := map[domain.Status]bool{}
	for _, ev := range events {
		if f, ok := ev.(domain.TaskFinished); ok {
			seen[f.Status] = true
		}
	}
	for _, st := range []domain.Status{
		domain.StatusOk, domain.StatusFailed, domain.StatusSkipped, domain.StatusUnreachable,
	} {
		assert.True(t, seen[st], "status %q missing from the demo", st)
	}
}

func TestNewRenderer_FallsBackToLinear(t *testing.T) {
	cfg := config.Default()
	cfg.ForceInteractive = false

	// Test binaries run without a terminal on stdout.
	r := newRenderer(cfg)
	_, ok := r.(*render.Linear)
	assert.True(t, ok)
}

func TestExecute_ReplayMissingFile(t *testing.T) {
	c := New()
	c.SetArgs([]string{
		"replay", filepath.Join(t.TempDir(), "absent.jsonl"),
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
	})

	err := c.Execute(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open event stream")
}

func TestExecute_Demo(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv(config.EnvForceInteractive, "0")

	c := New()
	c.SetArgs([]string{
		"demo", "--pace", "0",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
	})

	require.NoError(t, c.Execute(t.Context()))
}

func TestExecute_FlagLayering(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv(config.EnvForceInteractive, "0")

	captured := config.Config{}
	probe := &cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			captured = cfg
			return err
		},
	}

	c := New()
	c.rootCmd.AddCommand(probe)
	c.SetArgs([]string{
		"probe", "-vv", "--display-ok-hosts=false",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
	})

	require.NoError(t, c.Execute(t.Context()))
	assert.Equal(t, 2, captured.Verbosity)
	assert.False(t, captured.DisplayOkHosts, "the flag overrides the default")
	assert.True(t, captured.DisplaySkippedHosts, "untouched options keep their default")
}

func TestRenderRun_WarnsWhenStreamEndsWithoutStats(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := config.Default()
	cfg.ForceInteractive = false

	events := []domain.Event{
		domain.PlayStarted{Name: "Truncated run"},
	}
	i := 0
	next := func() (domain.Event, error) {
		if i >= len(events) {
			return nil, io.EOF
		}
		ev := events[i]
		i++
		return ev, nil
	}

	diag := &recordingLogger{}
	require.NoError(t, renderRun(t.Context(), cfg, diag, next))
	require.Len(t, diag.warns, 1)
	assert.Contains(t, diag.warns[0], "without a stats event")
}

// recordingLogger captures diagnostics for assertions.
type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Info(string)     {}
func (l *recordingLogger) Warn(msg string) { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(error)     {}
