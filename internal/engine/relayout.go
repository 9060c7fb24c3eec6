package engine

import (
	"fmt"

	"github.com/xonecas/splitpane/internal/layout"
)

// Relayout recomputes every panel size for the set's current container and
// commits sizes and offsets. Running it twice in a row is a no-op the
// second time.
//
// When the bounds cannot all be met the sizes still fill the container and
// the returned error wraps ErrUnsatisfiable.
func Relayout(set *layout.PanelSet) error {
	if set.AvailableSize() <= 0 {
		return collapse(set)
	}
	sizes := ComputeInitialSizes(set.Panels(), set.AvailableSize())
	if err := Commit(set, sizes); err != nil {
		return err
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsatisfiable, err)
	}
	return nil
}

// collapse lays every panel out at zero without marking it sized. A set
// that has no room yet keeps weighing panels by their explicit sizes once
// the container grows.
func collapse(set *layout.PanelSet) error {
	if err := Commit(set, make([]int, set.Len())); err != nil {
		return err
	}
	for i := range set.Len() {
		if err := set.ClearPanelSize(i); err != nil {
			return err
		}
	}
	return nil
}

// Commit writes sizes to the set and derives offsets left to right:
// each panel starts where the previous divider ends.
func Commit(set *layout.PanelSet, sizes []int) error {
	if len(sizes) != set.Len() {
		return fmt.Errorf("%w: %d sizes for %d panels", layout.ErrInvalidUsage, len(sizes), set.Len())
	}
	for i, s := range sizes {
		if s < 0 {
			return fmt.Errorf("%w: negative size %d for panel %d", layout.ErrInvalidUsage, s, i)
		}
	}

	grip := set.GripSize()
	offset := 0
	for i, s := range sizes {
		if err := set.SetPanelSize(i, s); err != nil {
			return err
		}
		if err := set.SetPanelOffset(i, offset); err != nil {
			return err
		}
		offset += s
		if i < len(sizes)-1 {
			if err := set.SetDividerOffset(i, offset); err != nil {
				return err
			}
			offset += grip
		}
	}
	return nil
}
