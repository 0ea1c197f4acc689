package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/emberstrip/internal/fire"
	"github.com/san-kum/emberstrip/internal/menu"
	"github.com/san-kum/emberstrip/internal/params"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	stripStyle  = lipgloss.NewStyle().Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("emberstrip"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d leds @ %d fps  tick %d", m.cfg.Leds, m.cfg.FPS, m.ticks)))
	b.WriteString("\n")

	frame, brightness := m.sink.Last()
	b.WriteString(stripStyle.Render(renderStrip(frame, brightness)))
	b.WriteString("\n")

	b.WriteString(m.renderParams())
	b.WriteString("\n")

	if graphW := min(m.width-10, 70); len(m.history) > 2 && graphW >= 10 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(graphW),
			asciigraph.Caption("frame intensity"),
		)
		b.WriteString(dimStyle.Render(graph))
		b.WriteString("\n")
	}

	for _, line := range m.diag.lines {
		b.WriteString(dimStyle.Render("  " + line))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("←/→ rotate · space click · d double-click · h hold · r release · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderStrip draws each LED as a colored block, with the driver's
// brightness scaling applied so the terminal shows what the wire gets.
func renderStrip(frame fire.Frame, brightness uint8) string {
	if len(frame) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range frame {
		r := int(c.R) * int(brightness) / 255
		g := int(c.G) * int(brightness) / 255
		bl := int(c.B) * int(brightness) / 255
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, bl)))
		b.WriteString(style.Render("█"))
	}
	return b.String()
}

func (m Model) renderParams() string {
	var b strings.Builder
	mode := m.machine.Mode()
	store := m.machine.Store()

	modeLabel := mode.String()
	if m.machine.HighlightActive() {
		modeLabel += " *"
	}
	b.WriteString(labelStyle.Render("mode"))
	b.WriteString(activeStyle.Render(modeLabel))
	b.WriteString("\n")

	rows := []struct {
		p Param
		m menu.Mode
	}{
		{params.Brightness, menu.Brightness},
		{params.Sparking, menu.Sparking},
		{params.Cooling, menu.Cooling},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.p.String()))
		val := fmt.Sprintf("%3d", store.Get(row.p))
		if mode == row.m {
			b.WriteString(activeStyle.Render(val))
		} else {
			b.WriteString(valueStyle.Render(val))
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s", bar(store.Fraction(row.p)))))
		b.WriteString("\n")
	}
	return b.String()
}

// Param aliases the store's key type for the row table above.
type Param = params.Param

func bar(fraction float64) string {
	const width = 20
	lit := int(fraction*width + 0.5)
	return strings.Repeat("■", lit) + strings.Repeat("·", width-lit)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
