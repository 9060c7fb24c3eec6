package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/splitpane/internal/layout"
)

// handleResize applies a window size change and re-lays out the panels.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	if err := m.sp.ContainerResized(m.containerSize()); err != nil {
		log.Warn().Err(err).Int("width", m.width).Int("height", m.height).Msg("relayout failed")
	}
	if n := len(m.sp.Dividers()); m.selected >= n {
		m.selected = max(n-1, 0)
	}
}

// containerSize is the extent of the body along the split axis.
func (m Model) containerSize() int {
	if m.sp.Axis() == layout.Vertical {
		return m.bodyRows()
	}
	return m.width
}
