package tui

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/splitpane/internal/engine"
)

// flashDoneMsg clears a rejection flash unless a newer one replaced it.
type flashDoneMsg struct{ seq int }

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseMsg:
		return m.handleMouse(msg)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	// -- Rejection flash -----------------------------------------------------
	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = -1
		}
	}

	return m, nil
}

// reportStep turns the result of a drag or nudge into UI feedback. A refused
// step flashes the divider; anything else unexpected is logged.
func (m *Model) reportStep(divider int, err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if !errors.Is(err, engine.ErrRejected) {
		log.Warn().Err(err).Int("divider", divider).Msg("divider step failed")
		return nil
	}
	m.flash = divider
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}
