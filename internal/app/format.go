package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/rlo/internal/ui/style"
)

// taskInfo is the presentation identity of one (host, task) pair.
type taskInfo struct {
	hostName string
	label    string
	desc     string
	role     string
}

// describe derives the host label, the task description and the role name
// the way every log line and progress row shows them.
func (a *App) describe(host domain.HostMeta, task domain.TaskMeta) taskInfo {
	label := host.Name
	if task.DelegateTo != "" && task.DelegateTo != host.Name {
		label += " -> " + task.DelegateTo
	}

	desc := style.Italic.Render(task.Action)
	if task.Name != "" {
		desc += " - " + task.Name
	}
	if task.Handler {
		desc += " - " + style.Bold.Render("handler")
	}
	if task.CheckMode && a.opts.CheckModeMarkers {
		desc += " - " + style.Italic.Render("check")
	}

	role := task.Role
	if role == "" {
		role = domain.RoleNone
	}

	return taskInfo{hostName: host.Name, label: label, desc: desc, role: role}
}

// statusLine builds the colored log line for a finished task.
func statusLine(info taskInfo, status domain.Status, changed bool) string {
	switch status {
	case domain.StatusOk:
		if changed {
			return segment(style.Changed, style.SymbolChanged, info, " - ", "changed")
		}
		return segment(style.Ok, style.SymbolOk, info, "", "")
	case domain.StatusSkipped:
		return segment(style.Skipped, style.SymbolSkipped, info, " - ", "skipped")
	case domain.StatusUnreachable:
		return segment(style.Unreachable, style.SymbolUnreachable, info, " - ", "unreachable")
	case domain.StatusFailed:
		return segment(style.Failed, style.SymbolFailed, info, " - ", "failed")
	default:
		return segment(style.Ok, "", info, "", "")
	}
}

// segment colors the whole line uniformly while keeping the host label and
// the trailing status word bold. Styles are applied per piece because a
// nested render would reset the surrounding color.
func segment(st lipgloss.Style, symbol string, info taskInfo, sep, word string) string {
	line := ""
	if symbol != "" {
		line += st.Render(symbol + " ")
	}
	line += st.Bold(true).Render(info.label)
	line += st.Render(" - " + info.desc)
	if word != "" {
		line += st.Render(sep) + st.Bold(true).Render(word)
	}
	return line
}

// retryLine builds the log line for a retried task.
func retryLine(info taskInfo, retriesLeft int) string {
	msg := fmt.Sprintf(" - %s - ", info.desc)
	return style.Retried.Bold(true).Render(info.label) +
		style.Retried.Render(msg) +
		style.Retried.Bold(true).Render(fmt.Sprintf("Failed - Retrying... (%d retries left)", retriesLeft))
}
