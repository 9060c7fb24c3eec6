package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/splitpane/internal/engine"
)

// handleKeyPress processes key events.
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.cycleDivider(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleDivider(-1)
	case key.Matches(msg, m.keys.Grow):
		return m, m.nudge(nudgeStep)
	case key.Matches(msg, m.keys.Shrink):
		return m, m.nudge(-nudgeStep)
	case key.Matches(msg, m.keys.GrowMore):
		return m, m.nudge(bigNudgeStep)
	case key.Matches(msg, m.keys.ShrinkMore):
		return m, m.nudge(-bigNudgeStep)
	case key.Matches(msg, m.keys.Mode):
		if m.sp.Mode() == engine.Local {
			m.sp.SetMode(engine.Group)
		} else {
			m.sp.SetMode(engine.Local)
		}
	}
	return m, nil
}

func (m *Model) cycleDivider(step int) {
	n := len(m.sp.Dividers())
	if n == 0 {
		return
	}
	m.selected = ((m.selected+step)%n + n) % n
}

func (m *Model) nudge(delta int) tea.Cmd {
	if m.selected >= len(m.sp.Dividers()) {
		return nil
	}
	return m.reportStep(m.selected, m.sp.Nudge(m.selected, delta))
}
