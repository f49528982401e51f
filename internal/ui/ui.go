// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-rigel/internal/state"
	"github.com/litescript/ls-rigel/internal/version"
)

const (
	panStepDeg   = 5.0
	timeStep     = time.Hour
	radiusFactor = 2.0
	minRadius    = 1e-3
	maxRadius    = 4.0
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager

	// UI state
	width     int
	height    int
	ready     bool
	statusMsg string

	// Sub-models
	bodies BodiesModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	m := Model{
		state:  stateMgr,
		bodies: NewBodiesModel(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.state.PanCenter(-panStepDeg, 0)
		case "right", "l":
			m.state.PanCenter(panStepDeg, 0)
		case "up", "k":
			m.state.PanCenter(0, panStepDeg)
		case "down", "j":
			m.state.PanCenter(0, -panStepDeg)

		case "+", "=":
			m.state.StepTime(timeStep)
		case "-", "_":
			m.state.StepTime(-timeStep)
		case "n":
			m.state.SetTimeNow()

		case "[":
			m.scaleRadius(1 / radiusFactor)
		case "]":
			m.scaleRadius(radiusFactor)

		default:
			return m, nil
		}
		m.refresh()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.bodies = m.bodies.SetSize(msg.Width, msg.Height-6)
	}

	return m, nil
}

func (m *Model) scaleRadius(f float64) {
	r := math.Max(minRadius, math.Min(maxRadius, m.state.View().Radius*f))
	if err := m.state.SetRadius(r); err != nil {
		m.statusMsg = err.Error()
	}
}

// refresh takes a new snapshot and pushes it to the sub-models.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.bodies = m.bodies.UpdateData(m.snapshot)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.bodies.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n  ")

	title := []rune("ls-rigel")
	for col, r := range title {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(col, 0, len(title), 1)))
		b.WriteString(style.Render(string(r)))
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  v%s · %s", version.Version, m.snapshot.Time.UTC().Format("2006-01-02 15:04 MST"))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	help := dimStyle.Render("arrows: pan | +/-: ±1h | n: now | [/]: radius | q: quit")
	footer := "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + errorStyle.Render(m.statusMsg)
	}
	return footer
}

// gradientColor returns a hex color for a position in the title gradient.
// Blue -> purple -> magenta -> pink
func gradientColor(col, row, width, height int) string {
	// Normalize positions to 0-1
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64

	if xRatio < 0.33 {
		// Blue to Purple
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		// Purple to Magenta
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		// Magenta to Pink
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	// Vertical fade: brighter at top, darker toward bottom
	brightness := 1.0 - (yRatio * 0.5)

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r*brightness), clampByte(g*brightness), clampByte(b*brightness))
}

func clampByte(v float64) int {
	return int(math.Max(0, math.Min(255, v)))
}
