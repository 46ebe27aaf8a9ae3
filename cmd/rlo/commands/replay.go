package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"go.trai.ch/rlo/internal/adapters/ingest"
	"go.trai.ch/rlo/internal/adapters/logger"
	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <events.jsonl>",
		Short: "Render a recorded job-event stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			delay, err := cmd.Flags().GetDuration("delay")
			if err != nil {
				return err
			}

			f, err := os.Open(args[0]) //nolint:gosec // path is provided by user
			if err != nil {
				return zerr.Wrap(err, "failed to open event stream")
			}
			defer func() { _ = f.Close() }()

			diag := logger.New()
			reader := ingest.NewReader(f, diag)
			first := true
			next := func() (domain.Event, error) {
				if !first && delay > 0 {
					time.Sleep(delay)
				}
				first = false
				return reader.Next()
			}

			return renderRun(cmd.Context(), cfg, diag, next)
		},
	}

	cmd.Flags().Duration("delay", 0, "Pause between replayed events")
	return cmd
}
