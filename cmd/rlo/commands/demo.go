package commands

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"go.trai.ch/rlo/internal/adapters/config"
	"go.trai.ch/rlo/internal/adapters/logger"
	"go.trai.ch/rlo/internal/core/domain"
)

func (c *CLI) newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a synthesized run exercising every status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			pace, err := cmd.Flags().GetDuration("pace")
			if err != nil {
				return err
			}

			return renderRun(cmd.Context(), cfg, logger.New(), demoSource(cfg, pace))
		},
	}

	cmd.Flags().Duration("pace", 400*time.Millisecond, "Pause between demo events")
	return cmd
}

// demoSource scripts a short three-host run touching every status, a
// retry, a role boundary, a handler notification and a final recap.
func demoSource(_ config.Config, pace time.Duration) eventSource {
	web1 := domain.HostMeta{Name: "web-01"}
	web2 := domain.HostMeta{Name: "web-02"}
	db1 := domain.HostMeta{Name: "db-01"}

	facts := domain.TaskMeta{Name: "Gather facts", Action: "setup"}
	pkgs := domain.TaskMeta{Name: "Install packages", Action: "package", Role: "common"}
	conf := domain.TaskMeta{Name: "Render configuration", Action: "template", Role: "common"}
	ping := domain.TaskMeta{Name: "Check database", Action: "ping", Role: "db"}
	restart := domain.TaskMeta{Name: "Restart service", Action: "service", Handler: true}

	okResult := result(map[string]any{"changed": false})
	changedResult := result(map[string]any{
		"changed": true,
		"diff": map[string]any{
			"before_header": "/etc/demo.conf (old)",
			"after_header":  "/etc/demo.conf (new)",
			"before":        "workers 2\n",
			"after":         "workers 8\n",
			"prepared":      "-workers 2\n+workers 8",
		},
		"msg": "configuration updated",
	})

	events := []domain.Event{
		domain.PlayStarted{Name: "Provision demo fleet"},
		domain.TaskStarted{Host: web1, Task: facts},
		domain.TaskStarted{Host: web2, Task: facts},
		domain.TaskStarted{Host: db1, Task: facts},
		domain.TaskFinished{Host: web1, Task: facts, Status: domain.StatusOk, Result: okResult},
		domain.TaskFinished{Host: web2, Task: facts, Status: domain.StatusOk, Result: okResult},
		domain.TaskFinished{Host: db1, Task: facts, Status: domain.StatusUnreachable, Result: result(map[string]any{
			"msg": "Failed to connect to the host via ssh", "unreachable": true,
		})},
		domain.TaskStarted{Host: web1, Task: pkgs},
		domain.TaskStarted{Host: web2, Task: pkgs},
		domain.TaskRetried{Host: web2, Task: pkgs, RetriesLeft: 2},
		domain.TaskFinished{Host: web1, Task: pkgs, Status: domain.StatusOk, Result: okResult},
		domain.TaskFinished{Host: web2, Task: pkgs, Status: domain.StatusFailed, Result: result(map[string]any{
			"changed": false, "msg": "No package matching 'demo-agent' found", "rc": 1,
			"stderr": "E: Unable to locate package demo-agent",
		})},
		domain.TaskStarted{Host: web1, Task: conf},
		domain.TaskFinished{Host: web1, Task: conf, Status: domain.StatusOk, Result: changedResult},
		domain.TaskStarted{Host: web1, Task: ping},
		domain.TaskFinished{Host: web1, Task: ping, Status: domain.StatusSkipped, Result: result(map[string]any{
			"skipped": true, "skip_reason": "Conditional result was False",
		})},
		domain.HostNotified{Host: web1, Task: restart},
		domain.TaskStarted{Host: web1, Task: restart},
		domain.TaskFinished{Host: web1, Task: restart, Status: domain.StatusOk, Result: okResult},
		domain.RunStats{Stats: []domain.HostStats{
			{Host: "web-01", Ok: 4, Changed: 1},
			{Host: "web-02", Ok: 1, Failed: 1},
			{Host: "db-01", Unreachable: 1},
		}},
	}

	i := 0
	return func() (domain.Event, error) {
		if i > 0 && pace > 0 {
			time.Sleep(pace)
		}
		if i >= len(events) {
			return nil, io.EOF
		}
		ev := events[i]
		i++
		return ev, nil
	}
}

func result(m map[string]any) domain.Mapping {
	v, _ := domain.FromAny(m).(domain.Mapping)
	return v
}
