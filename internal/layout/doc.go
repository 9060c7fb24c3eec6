// Package layout holds the data model of a split-pane container: an ordered
// sequence of panels separated by fixed-thickness dividers along one axis.
//
// The model is pure data. Sizes and offsets are computed elsewhere (see the
// engine package) and written back in a single commit, so readers never see
// a half-updated set.
package layout
