package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/xonecas/splitpane/internal/layout"
	"github.com/xonecas/splitpane/internal/splitpane"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// renderContent produces the string content for the view.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.renderBody() + "\n" + m.renderStatus()
}

// renderBody draws panels and dividers, one string per screen row.
func (m Model) renderBody() string {
	if m.sp.Axis() == layout.Vertical {
		return strings.Join(m.bodyRowsVertical(), "\n")
	}
	return strings.Join(m.bodyRowsHorizontal(), "\n")
}

func (m Model) bodyRowsHorizontal() []string {
	boxes := m.sp.Boxes()
	rows := make([]string, 0, m.bodyRows())
	for row := 0; row < m.bodyRows(); row++ {
		var b strings.Builder
		for _, box := range boxes {
			if box.Size <= 0 {
				continue
			}
			if box.Kind == splitpane.BoxDivider {
				b.WriteString(m.dividerStyle(box.Index).Render(strings.Repeat("│", box.Size)))
				continue
			}
			b.WriteString(m.panelRow(box, row, box.Size))
		}
		rows = append(rows, fit(b.String(), m.width))
	}
	return rows
}

func (m Model) bodyRowsVertical() []string {
	limit := m.bodyRows()
	rows := make([]string, 0, limit)
	for _, box := range m.sp.Boxes() {
		for r := 0; r < box.Size && len(rows) < limit; r++ {
			if box.Kind == splitpane.BoxDivider {
				rows = append(rows, m.dividerStyle(box.Index).Render(strings.Repeat("─", m.width)))
				continue
			}
			rows = append(rows, m.panelRow(box, r, m.width))
		}
	}
	for len(rows) < limit {
		rows = append(rows, strings.Repeat(" ", m.width))
	}
	return rows
}

// panelRow renders row r of a panel: the title first, then content lines.
func (m Model) panelRow(box splitpane.Box, r, width int) string {
	if r == 0 {
		return m.styles.Title.Render(fit(box.Name, width))
	}
	lines := m.pane(box.Index).Lines
	if r-1 < len(lines) {
		return fit(lines[r-1], width)
	}
	return strings.Repeat(" ", width)
}

func (m Model) renderStatus() string {
	left := m.styles.Status.Render(fmt.Sprintf(" %s %v ", m.sp.Mode(), m.sp.Sizes()))
	return fit(left+" "+m.help.ShortHelpView(m.keys.ShortHelp()), m.width)
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
