package render

import (
	"strings"

	"go.trai.ch/rlo/internal/ui/style"
	"go.trai.ch/rlo/internal/ui/timefmt"
)

// View renders the transient progress region: the role banner row and one
// row per in-flight host.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var s strings.Builder
	s.WriteString(style.Banner.Italic(true).Render(m.role))
	s.WriteString("\n")

	rows := m.slots
	if len(rows) > maxProgressRows {
		rows = rows[len(rows)-maxProgressRows:]
	}

	for _, slot := range rows {
		elapsed := timefmt.Elapsed(m.now().Sub(slot.at))
		s.WriteString(m.spinner.View())
		s.WriteString(" ")
		s.WriteString(style.Bold.Render(slot.label))
		s.WriteString(" - ")
		s.WriteString(slot.desc)
		s.WriteString(" - ")
		s.WriteString(style.Time.Render(elapsed))
		s.WriteString("\n")
	}

	return s.String()
}
