package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avela/gravibeat/internal/gravity"
)

const historyLines = 16

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	traceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// LiveModel replays precomputed tick snapshots at a fixed frame rate. It is
// a playback view, not a physics loop: the run has already happened.
type LiveModel struct {
	snaps   []gravity.Snapshot
	tracer  *Tracer
	frame   int
	fps     int
	paused  bool
	history []string
}

func NewLiveModel(snaps []gravity.Snapshot, maxPos float64, fps int) LiveModel {
	if fps <= 0 {
		fps = 30
	}
	return LiveModel{
		snaps:  snaps,
		tracer: NewTracer(io.Discard, maxPos),
		fps:    fps,
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.frame = 0
			m.history = nil
		}
		return m, nil

	case TickMsg:
		if !m.paused && m.frame < len(m.snaps)-1 {
			line := m.tracer.Line(m.snaps[m.frame])
			m.history = append(m.history, fmt.Sprintf("%s %d", line, m.snaps[m.frame].Tick))
			if len(m.history) > historyLines {
				m.history = m.history[len(m.history)-historyLines:]
			}
			m.frame++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m LiveModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("gravibeat live trace"))
	b.WriteString("\n")

	for _, line := range m.history {
		b.WriteString(traceStyle.Render(line))
		b.WriteString("\n")
	}

	if len(m.snaps) > 0 {
		snap := m.snaps[m.frame]
		b.WriteString(traceStyle.Render(fmt.Sprintf("%s %d", m.tracer.Line(snap), snap.Tick)))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("tick"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d / %d", snap.Tick, m.snaps[len(m.snaps)-1].Tick)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("bodies"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d", len(snap.Bodies))))
		b.WriteString("\n")
		for i, body := range snap.Bodies {
			b.WriteString(labelStyle.Render(fmt.Sprintf("  body %d", i)))
			b.WriteString(valueStyle.Render(fmt.Sprintf("pos %.2f  mass %.0f", body.Position, body.Mass)))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("space pause · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}
