// Package splitpane is the host-facing controller for one split container.
// A host reports container resizes, panel attachment and divider pointer
// events; the controller runs the engine and keeps the layout consistent.
//
// A SplitPane belongs to a single event loop and is not safe for concurrent
// use. Every call completes its layout update before returning.
package splitpane

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/splitpane/internal/engine"
	"github.com/xonecas/splitpane/internal/layout"
)

var (
	// ErrNoDrag is returned by DragMove when no drag is in progress.
	ErrNoDrag = errors.New("no drag in progress")

	// ErrClosed is returned by every mutating call after Close.
	ErrClosed = errors.New("split pane closed")
)

// Options configures a SplitPane.
type Options struct {
	Axis             layout.Axis
	DividerThickness int
	Mode             engine.Mode

	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// SplitPane owns a PanelSet and the state of the current drag.
type SplitPane struct {
	set  *layout.PanelSet
	mode engine.Mode
	log  zerolog.Logger

	drag    *dragState
	subs    map[int]func(Event)
	nextSub int
	closed  bool
}

type dragState struct {
	divider int
	last    int // last pointer position along the axis
}

// New returns an empty split pane.
func New(opts Options) *SplitPane {
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &SplitPane{
		set:  layout.New(opts.Axis, opts.DividerThickness),
		mode: opts.Mode,
		log:  logger.With().Str("component", "splitpane").Logger(),
		subs: make(map[int]func(Event)),
	}
}

func (sp *SplitPane) Axis() layout.Axis { return sp.set.Axis() }
func (sp *SplitPane) Mode() engine.Mode { return sp.mode }
func (sp *SplitPane) SetMode(m engine.Mode) { sp.mode = m }
func (sp *SplitPane) Len() int { return sp.set.Len() }
func (sp *SplitPane) GripSize() int { return sp.set.GripSize() }
func (sp *SplitPane) ContainerSize() int { return sp.set.ContainerSize() }
func (sp *SplitPane) Panels() []layout.Panel { return sp.set.Panels() }
func (sp *SplitPane) Sizes() []int { return engine.Sizes(sp.set.Panels()) }
func (sp *SplitPane) Validate() error { return sp.set.Validate() }
func (sp *SplitPane) Dividers() []layout.Divider { return sp.set.Dividers() }

// ContainerResized records the new container extent and lays out again.
func (sp *SplitPane) ContainerResized(size int) error {
	if sp.closed {
		return ErrClosed
	}
	sp.set.SetContainerSize(size)
	return sp.relayout()
}

// AttachPanel inserts p at position and lays out again. Any drag in
// progress ends, since divider indices shift.
func (sp *SplitPane) AttachPanel(p layout.Panel, position int) error {
	if sp.closed {
		return ErrClosed
	}
	if err := sp.set.Insert(p, position); err != nil {
		return err
	}
	sp.EndDrag()
	return sp.relayout()
}

// AttachPanels inserts a batch of panels starting at position and lays out
// once, so every new panel is sized against the same available space.
func (sp *SplitPane) AttachPanels(position int, panels ...layout.Panel) error {
	if sp.closed {
		return ErrClosed
	}
	for k, p := range panels {
		if err := sp.set.Insert(p, position+k); err != nil {
			return err
		}
	}
	sp.EndDrag()
	return sp.relayout()
}

// DetachPanel removes panel i and lays out again.
func (sp *SplitPane) DetachPanel(i int) (layout.Panel, error) {
	if sp.closed {
		return layout.Panel{}, ErrClosed
	}
	p, err := sp.set.Remove(i)
	if err != nil {
		return layout.Panel{}, err
	}
	sp.EndDrag()
	return p, sp.relayout()
}

// Restore seeds panel sizes, typically from a saved layout, and scales them
// to the current container.
func (sp *SplitPane) Restore(sizes []int) error {
	if sp.closed {
		return ErrClosed
	}
	if err := engine.Commit(sp.set, sizes); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return sp.relayout()
}

func (sp *SplitPane) relayout() error {
	err := engine.Relayout(sp.set)
	switch {
	case errors.Is(err, engine.ErrUnsatisfiable):
		sp.log.Warn().Err(err).Int("container", sp.set.ContainerSize()).Msg("layout constraints not satisfiable")
	case err != nil:
		return err
	}
	sp.log.Debug().
		Int("container", sp.set.ContainerSize()).
		Ints("sizes", sp.Sizes()).
		Msg("relayout")
	sp.emit(Event{Kind: EventLayout, Divider: -1})
	return nil
}
