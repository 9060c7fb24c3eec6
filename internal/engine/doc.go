// Package engine distributes space across the panels of a layout.PanelSet.
//
// ComputeInitialSizes and ApplyDragDelta are pure: they read a snapshot of
// the panels and return new sizes without touching the set. Relayout and
// Commit are the only functions that write sizes and offsets back.
package engine
