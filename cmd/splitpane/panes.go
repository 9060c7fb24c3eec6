package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/splitpane/internal/config"
	"github.com/xonecas/splitpane/internal/layout"
	"github.com/xonecas/splitpane/internal/splitpane"
	"github.com/xonecas/splitpane/internal/tui"
)

// buildSplitPane creates the controller for cfg. Positional files fill the
// configured panels in order and add panels past the configured ones. When
// load is false, panel content is not read.
func buildSplitPane(cfg *config.Config, files []string, load bool) (*splitpane.SplitPane, []tui.Pane, error) {
	panels, err := cfg.LayoutPanels()
	if err != nil {
		return nil, nil, err
	}
	sources := make([]string, len(panels))
	for i, pc := range cfg.Panels {
		sources[i] = pc.File
	}
	for i, f := range files {
		if i < len(panels) {
			sources[i] = f
			continue
		}
		panels = append(panels, layout.NewPanel(filepath.Base(f)))
		sources = append(sources, f)
	}

	sp := splitpane.New(splitpane.Options{
		Axis:             cfg.LayoutAxis(),
		DividerThickness: dividerThickness(cfg),
		Mode:             cfg.Mode(),
		Logger:           &log.Logger,
	})
	if err := sp.AttachPanels(0, panels...); err != nil {
		return nil, nil, fmt.Errorf("attach panels: %w", err)
	}
	if !load {
		return sp, nil, nil
	}

	theme := cfg.UI.SyntaxThemeOrDefault()
	panes := make([]tui.Pane, len(panels))
	for i, p := range panels {
		if sources[i] == "" {
			panes[i] = tui.Pane{Name: p.Name}
			continue
		}
		pane, err := tui.LoadPane(p.Name, sources[i], theme)
		if err != nil {
			return nil, nil, fmt.Errorf("panel %q: %w", p.Name, err)
		}
		panes[i] = pane
	}
	return sp, panes, nil
}

// dividerThickness treats zero as unset; a terminal divider needs a cell to
// be grabbed.
func dividerThickness(cfg *config.Config) int {
	if cfg.DividerThickness == 0 {
		return 1
	}
	return cfg.DividerThickness
}
