package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/xonecas/splitpane/internal/highlight"
)

type styles struct {
	Title         lipgloss.Style
	Divider       lipgloss.Style
	DividerActive lipgloss.Style
	DividerReject lipgloss.Style
	Status        lipgloss.Style
}

func newStyles(p highlight.Palette) styles {
	return styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Title)),
		Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Divider)),
		DividerActive: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		DividerReject: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Reject)),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Fg)).Background(lipgloss.Color(p.Dim)),
	}
}

// dividerStyle picks the style for divider i: refused steps flash, the
// dragged or selected divider is highlighted.
func (m Model) dividerStyle(i int) lipgloss.Style {
	if i == m.flash {
		return m.styles.DividerReject
	}
	if d, ok := m.sp.Dragging(); ok && d == i {
		return m.styles.DividerActive
	}
	if i == m.selected {
		return m.styles.DividerActive
	}
	return m.styles.Divider
}
