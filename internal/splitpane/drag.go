package splitpane

import (
	"errors"
	"fmt"

	"github.com/xonecas/splitpane/internal/engine"
	"github.com/xonecas/splitpane/internal/layout"
)

// BeginDrag starts dragging divider at the given pointer position.
func (sp *SplitPane) BeginDrag(divider, pointer int) error {
	if sp.closed {
		return ErrClosed
	}
	if divider < 0 || divider >= len(sp.set.Dividers()) {
		return fmt.Errorf("%w: divider %d: %w", layout.ErrInvalidUsage, divider, layout.ErrOutOfRange)
	}
	sp.drag = &dragState{divider: divider, last: pointer}
	sp.emit(Event{Kind: EventDragStart, Divider: divider})
	return nil
}

// Dragging returns the divider being dragged, if any.
func (sp *SplitPane) Dragging() (int, bool) {
	if sp.drag == nil {
		return -1, false
	}
	return sp.drag.divider, true
}

// DragMove applies the pointer movement since the last event. The pointer
// position is recorded even when the step is rejected, so the divider does
// not jump when the pointer comes back into range.
func (sp *SplitPane) DragMove(pointer int) error {
	if sp.closed {
		return ErrClosed
	}
	if sp.drag == nil {
		return fmt.Errorf("%w: %w", layout.ErrInvalidUsage, ErrNoDrag)
	}
	delta := pointer - sp.drag.last
	sp.drag.last = pointer
	return sp.step(sp.drag.divider, delta)
}

// EndDrag finishes the current drag. The layout stays where the last
// accepted step left it.
func (sp *SplitPane) EndDrag() {
	if sp.drag == nil {
		return
	}
	divider := sp.drag.divider
	sp.drag = nil
	sp.emit(Event{Kind: EventDragEnd, Divider: divider})
}

// Nudge moves a divider by delta outside of a pointer drag, as keyboard
// resizing does.
func (sp *SplitPane) Nudge(divider, delta int) error {
	if sp.closed {
		return ErrClosed
	}
	return sp.step(divider, delta)
}

func (sp *SplitPane) step(divider, delta int) error {
	sizes, err := engine.ApplyDragDelta(sp.set.Panels(), divider, delta, sp.mode)
	if errors.Is(err, engine.ErrRejected) {
		sp.log.Debug().Err(err).Int("divider", divider).Int("delta", delta).Msg("drag rejected")
		sp.emit(Event{Kind: EventRejected, Divider: divider, Delta: delta, Err: err})
		return err
	}
	if err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}
	if err := engine.Commit(sp.set, sizes); err != nil {
		return err
	}
	sp.emit(Event{Kind: EventMove, Divider: divider, Delta: delta})
	return nil
}
