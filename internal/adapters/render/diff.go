package render

import (
	"fmt"
	"strings"

	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/rlo/internal/ui/style"
)

// FormatDiff renders one diff entry from a changed result. Entries with a
// "prepared" body are printed as-is; before/after entries get unified-diff
// style headers. Returns "" when there is nothing to show.
func FormatDiff(diff domain.Value) string {
	m, ok := diff.(domain.Mapping)
	if !ok {
		return ""
	}

	var b strings.Builder

	if prepared, ok := m.Get("prepared"); ok {
		if s, ok := prepared.(domain.String); ok {
			b.WriteString(string(s))
		}
	} else {
		writeSide(&b, m, "before", "---")
		writeSide(&b, m, "after", "+++")
	}

	return colorize(strings.Trim(b.String(), " \n"))
}

func writeSide(b *strings.Builder, m domain.Mapping, side, marker string) {
	v, ok := m.Get(side)
	if !ok {
		return
	}

	header := side
	if h, ok := m.Get(side + "_header"); ok {
		if s, ok := h.(domain.String); ok {
			header = string(s)
		}
	}

	fmt.Fprintf(b, "%s %s\n", marker, header)
	if s, ok := v.(domain.String); ok {
		b.WriteString(string(s))
		if !strings.HasSuffix(string(s), "\n") {
			b.WriteString("\n")
		}
	}
}

// colorize paints removed lines red and added lines green.
func colorize(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = style.Ok.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = style.Failed.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
