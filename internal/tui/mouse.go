package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/splitpane/internal/layout"
)

// ---------------------------------------------------------------------------
// Mouse filter: throttle high-frequency events at program level.
// ---------------------------------------------------------------------------

var lastMouseEvent time.Time

// MouseEventFilter rate-limits wheel and motion events (15 ms).
// Pass to tea.WithFilter. Never drops clicks or releases.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}

// ---------------------------------------------------------------------------
// Mouse handling: divider drag along the split axis.
// ---------------------------------------------------------------------------

// mouseXY extracts X, Y from any mouse message via the MouseMsg interface.
func mouseXY(msg tea.MouseMsg) (int, int) {
	m := msg.Mouse()
	return m.X, m.Y
}

// axisPos projects a screen cell onto the split axis and reports whether
// the cell lies in the panel body rather than the status bar.
func (m Model) axisPos(x, y int) (int, bool) {
	inBody := y >= 0 && y < m.bodyRows()
	if m.sp.Axis() == layout.Vertical {
		return y, inBody
	}
	return x, inBody
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos, inBody := m.axisPos(mouseXY(msg))

	switch ev := msg.(type) {
	case tea.MouseClickMsg:
		if ev.Button != tea.MouseLeft || !inBody {
			return m, nil
		}
		if d, ok := m.sp.DividerAt(pos); ok {
			m.selected = d
			if err := m.sp.BeginDrag(d, pos); err != nil {
				log.Warn().Err(err).Int("divider", d).Msg("begin drag failed")
			}
		}
	case tea.MouseMotionMsg:
		if d, ok := m.sp.Dragging(); ok {
			return m, m.reportStep(d, m.sp.DragMove(pos))
		}
	case tea.MouseReleaseMsg:
		m.sp.EndDrag()
	}
	return m, nil
}
