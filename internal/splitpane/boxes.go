package splitpane

// BoxKind tells panels and dividers apart in Boxes.
type BoxKind uint8

const (
	BoxPanel BoxKind = iota
	BoxDivider
)

// Box is the extent of one panel or divider along the axis.
type Box struct {
	Kind   BoxKind
	Index  int // panel or divider index
	Name   string
	Offset int
	Size   int
}

// End is the first offset past the box.
func (b Box) End() int { return b.Offset + b.Size }

// Boxes lists panels and dividers in sequence order with their offsets and
// sizes, ready for rendering.
func (sp *SplitPane) Boxes() []Box {
	panels := sp.set.Panels()
	dividers := sp.set.Dividers()
	out := make([]Box, 0, len(panels)+len(dividers))
	for i, p := range panels {
		out = append(out, Box{Kind: BoxPanel, Index: i, Name: p.Name, Offset: p.Offset, Size: p.Size})
		if i < len(dividers) {
			d := dividers[i]
			out = append(out, Box{Kind: BoxDivider, Index: i, Offset: d.Offset, Size: d.GripSize})
		}
	}
	return out
}

// DividerAt returns the divider covering pos along the axis.
func (sp *SplitPane) DividerAt(pos int) (int, bool) {
	for i, d := range sp.set.Dividers() {
		if pos == d.Offset || (pos > d.Offset && pos < d.Offset+d.GripSize) {
			return i, true
		}
	}
	return -1, false
}

// PanelAt returns the panel covering pos along the axis.
func (sp *SplitPane) PanelAt(pos int) (int, bool) {
	for i, p := range sp.set.Panels() {
		if pos >= p.Offset && pos < p.Offset+p.Size {
			return i, true
		}
	}
	return -1, false
}
