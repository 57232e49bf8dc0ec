package main

import (
	"strings"
	"time"

	"github.com/Zachkp/cloud-portfolio/content"
	"github.com/Zachkp/cloud-portfolio/typewriter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ tea.Model = model{}

// tickMsg is delivered by tea.Tick when one of the two typewriter timers
// elapses.
type tickMsg struct {
	kind typewriter.TickKind
}

func tick(kind typewriter.TickKind, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{kind: kind}
	})
}

type styles struct {
	Name   lipgloss.Style
	Role   lipgloss.Style
	Hero   lipgloss.Style
	Cursor lipgloss.Style
	Muted  lipgloss.Style
	Frame  lipgloss.Style
}

func newStyles() styles {
	return styles{
		Name:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Role:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Hero:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
		Frame:  lipgloss.NewStyle().Padding(1, 3).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
	}
}

// model renders the portfolio hero in a terminal. The bubbletea event loop
// is the only goroutine touching state, so it drives Machine.Step directly.
type model struct {
	machine *typewriter.Machine
	state   typewriter.State
	profile content.Profile
	styles  styles

	width    int
	height   int
	quitting bool
}

func newModel(machine *typewriter.Machine, profile content.Profile) model {
	return model{
		machine: machine,
		state:   machine.Initial(),
		profile: profile,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tick(typewriter.TypeTick, m.machine.FirstDelay(typewriter.TypeTick)),
		tick(typewriter.BlinkTick, m.machine.FirstDelay(typewriter.BlinkTick)),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		var d time.Duration
		m.state, d = m.machine.Step(m.state, msg.kind)
		return m, tick(msg.kind, d)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	cursor := " "
	if m.state.CursorVisible {
		cursor = m.styles.Cursor.Render("▌")
	}

	var b strings.Builder
	b.WriteString(m.styles.Role.Render(strings.ToUpper(m.profile.Role)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Name.Render(m.profile.Name))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hero.Render(m.machine.Text(m.state)))
	b.WriteString(cursor)
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("q to quit"))

	box := m.styles.Frame.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
