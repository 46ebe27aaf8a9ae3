package render

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go.trai.ch/rlo/internal/ui/style"
)

// maxProgressRows caps the height of the transient region so a run across
// many hosts cannot push the log off screen.
const maxProgressRows = 8

// slotRow is the view state for one in-flight host.
type slotRow struct {
	host  string
	label string
	desc  string
	at    time.Time
}

// Model is the Bubble Tea model behind the live renderer. Its View is the
// transient progress region; permanent log lines bypass it via
// tea.Println.
type Model struct {
	slots   []slotRow
	role    string
	spinner spinner.Model
	width   int
	timer   bool
	done    bool
	now     func() time.Time
}

// NewModel creates the live-region model. enableTimer gates the
// auto-refresh that keeps elapsed times ticking between events.
func NewModel(enableTimer bool) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	return &Model{
		spinner: s,
		role:    "None",
		timer:   enableTimer,
		now:     time.Now,
	}
}

// Init starts the spinner tick when the timer is enabled.
func (m *Model) Init() tea.Cmd {
	if !m.timer {
		return nil
	}
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case msgTaskStarted:
		m.upsertSlot(msg)

	case msgTaskFinished:
		m.removeSlot(msg.Host)

	case msgSetRole:
		m.role = msg.Role

	case msgLog:
		return m, tea.Println(msg.Line)

	case msgFinish:
		// Blank the transient region before quitting so the progress rows
		// do not survive in the scrollback.
		m.done = true
		return m, tea.Sequence(tea.Println(""), tea.Println(msg.Recap), tea.Quit)
	}

	return m, nil
}

// upsertSlot replaces the row for a host already in flight, otherwise
// appends one. A host runs at most one task at a time.
func (m *Model) upsertSlot(msg msgTaskStarted) {
	for i, s := range m.slots {
		if s.host == msg.Host {
			m.slots[i] = slotRow{host: msg.Host, label: msg.Label, desc: msg.Desc, at: msg.At}
			return
		}
	}
	m.slots = append(m.slots, slotRow{host: msg.Host, label: msg.Label, desc: msg.Desc, at: msg.At})
}

func (m *Model) removeSlot(host string) {
	for i, s := range m.slots {
		if s.host == host {
			m.slots = append(m.slots[:i:i], m.slots[i+1:]...)
			return
		}
	}
}
