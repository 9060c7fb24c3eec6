// Package tui hosts a split layout in a bubbletea program. It turns window
// sizes, mouse drags and key presses into controller calls and draws the
// resulting panels and dividers.
package tui

import (
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/splitpane/internal/highlight"
	"github.com/xonecas/splitpane/internal/splitpane"
)

const (
	statusRows    = 1
	nudgeStep     = 1
	bigNudgeStep  = 5
	flashDuration = 180 * time.Millisecond
	tabWidth      = 4
)

// Pane is the content shown in one panel.
type Pane struct {
	Name  string
	Lines []string
}

// TextPane wraps plain text.
func TextPane(name, text string) Pane {
	return Pane{Name: name, Lines: strings.Split(expandTabs(text), "\n")}
}

// LoadPane reads path and highlights it with the given Chroma theme.
func LoadPane(name, path, theme string) (Pane, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pane{}, err
	}
	text := strings.TrimRight(expandTabs(string(data)), "\n")
	return Pane{Name: name, Lines: highlight.Rows(text, highlight.DetectLanguage(path), theme)}, nil
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// Model is the application model.
type Model struct {
	sp    *splitpane.SplitPane
	panes []Pane

	width  int
	height int

	selected int // divider keyboard nudges apply to
	flash    int // divider refused a step, -1 when none
	flashSeq int

	keys   keyMap
	help   help.Model
	styles styles
}

// New creates a model around sp. panes are matched to panels by index.
func New(sp *splitpane.SplitPane, panes []Pane, theme string) Model {
	return Model{
		sp:     sp,
		panes:  panes,
		flash:  -1,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(highlight.ThemePalette(theme)),
	}
}

// Init initializes the TUI (required by BubbleTea).
func (m Model) Init() tea.Cmd {
	return nil
}

// bodyRows is the height left for panels once the status bar is drawn.
func (m Model) bodyRows() int {
	return max(m.height-statusRows, 0)
}

func (m Model) pane(i int) Pane {
	if i >= 0 && i < len(m.panes) {
		return m.panes[i]
	}
	return Pane{}
}
