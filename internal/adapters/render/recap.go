package render

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/rlo/internal/ui/style"
	"go.trai.ch/rlo/internal/ui/timefmt"
)

// Recap builds the end-of-run summary table: one row per host, sorted
// lexicographically by name regardless of event arrival order.
func Recap(stats []domain.HostStats, elapsed time.Duration) string {
	sorted := make([]domain.HostStats, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Host < sorted[j].Host })

	cell := lipgloss.NewStyle().Padding(0, 1)
	columnColors := map[int]lipgloss.Color{
		1: style.Green,  // ok
		2: style.Yellow, // changed
		3: style.Red,    // unreachable
		4: style.Red,    // failed
		5: style.Blue,   // skipped
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("host", "ok", "changed", "unreachable", "failed", "skipped", "rescued", "ignored").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			if col == 0 {
				return cell.Bold(true).Align(lipgloss.Right).Foreground(hostColor(sorted[row]))
			}
			if c, ok := columnColors[col]; ok {
				return cell.Foreground(c)
			}
			return cell
		})

	for _, s := range sorted {
		t.Row(s.Host,
			fmt.Sprintf("%d", s.Ok),
			fmt.Sprintf("%d", s.Changed),
			fmt.Sprintf("%d", s.Unreachable),
			fmt.Sprintf("%d", s.Failed),
			fmt.Sprintf("%d", s.Skipped),
			fmt.Sprintf("%d", s.Rescued),
			fmt.Sprintf("%d", s.Ignored))
	}

	title := style.Italic.Render("Play Recap - ") + style.Time.Render(timefmt.Elapsed(elapsed))
	return title + "\n" + t.Render()
}

// hostColor picks the row color by precedence: any failure or unreachable
// beats changed, which beats ok.
func hostColor(s domain.HostStats) lipgloss.Color {
	switch {
	case s.Degraded():
		return style.Red
	case s.Changed != 0:
		return style.Yellow
	default:
		return style.Green
	}
}
