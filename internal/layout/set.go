package layout

import "fmt"

// PanelSet is the ordered sequence Panel, Divider, Panel, ..., Panel.
// A set with N panels always has N-1 dividers.
//
// PanelSet is not safe for concurrent use; it is owned by one event loop.
type PanelSet struct {
	axis      Axis
	container int
	grip      int
	panels    []Panel
	dividers  []Divider
}

// New returns an empty set laid out along axis with dividers of gripSize cells.
func New(axis Axis, gripSize int) *PanelSet {
	if gripSize < 0 {
		gripSize = 0
	}
	return &PanelSet{axis: axis, grip: gripSize}
}

func (s *PanelSet) Axis() Axis { return s.axis }
func (s *PanelSet) GripSize() int { return s.grip }
func (s *PanelSet) ContainerSize() int { return s.container }
func (s *PanelSet) Len() int { return len(s.panels) }

// SetContainerSize records the container extent along the axis.
// Negative sizes are treated as zero.
func (s *PanelSet) SetContainerSize(n int) {
	if n < 0 {
		n = 0
	}
	s.container = n
}

// AvailableSize is the container size minus all divider thickness, never
// negative. Zero means there is no space to allocate.
func (s *PanelSet) AvailableSize() int {
	avail := s.container - s.grip*len(s.dividers)
	if avail < 0 {
		return 0
	}
	return avail
}

// Panels returns a copy of the panels in order.
func (s *PanelSet) Panels() []Panel {
	out := make([]Panel, len(s.panels))
	copy(out, s.panels)
	return out
}

// Dividers returns a copy of the dividers in order.
func (s *PanelSet) Dividers() []Divider {
	out := make([]Divider, len(s.dividers))
	copy(out, s.dividers)
	return out
}

// Panel returns a copy of panel i.
func (s *PanelSet) Panel(i int) (Panel, error) {
	if err := s.checkPanel(i); err != nil {
		return Panel{}, err
	}
	return s.panels[i], nil
}

// Insert places p at position pos (0..Len). The panel starts unsized; the
// next layout pass resolves its explicit size.
func (s *PanelSet) Insert(p Panel, pos int) error {
	if pos < 0 || pos > len(s.panels) {
		return fmt.Errorf("%w: insert position %d: %w", ErrInvalidUsage, pos, ErrOutOfRange)
	}
	p.Sized = false
	p.Size = 0
	p.Offset = 0

	s.panels = append(s.panels, Panel{})
	copy(s.panels[pos+1:], s.panels[pos:])
	s.panels[pos] = p
	s.rebuildDividers()
	return nil
}

// Remove detaches panel i and returns it.
func (s *PanelSet) Remove(i int) (Panel, error) {
	if err := s.checkPanel(i); err != nil {
		return Panel{}, err
	}
	p := s.panels[i]
	s.panels = append(s.panels[:i], s.panels[i+1:]...)
	s.rebuildDividers()
	return p, nil
}

// SetPanelSize writes the size of panel i and marks it sized.
func (s *PanelSet) SetPanelSize(i, size int) error {
	if err := s.checkPanel(i); err != nil {
		return err
	}
	s.panels[i].Size = size
	s.panels[i].Sized = true
	return nil
}

// ClearPanelSize zeroes panel i and drops its sized mark, so the next
// layout pass weighs it by its explicit size again.
func (s *PanelSet) ClearPanelSize(i int) error {
	if err := s.checkPanel(i); err != nil {
		return err
	}
	s.panels[i].Size = 0
	s.panels[i].Sized = false
	return nil
}

// SetPanelOffset writes the leading-edge offset of panel i.
func (s *PanelSet) SetPanelOffset(i, offset int) error {
	if err := s.checkPanel(i); err != nil {
		return err
	}
	s.panels[i].Offset = offset
	return nil
}

// SetDividerOffset writes the leading-edge offset of divider i.
func (s *PanelSet) SetDividerOffset(i, offset int) error {
	if err := s.checkDivider(i); err != nil {
		return err
	}
	s.dividers[i].Offset = offset
	return nil
}

// SetDividerSize always fails: divider thickness is fixed for the set.
func (s *PanelSet) SetDividerSize(i, _ int) error {
	if err := s.checkDivider(i); err != nil {
		return err
	}
	return fmt.Errorf("%w: divider %d: grip size cannot be set", ErrInvalidUsage, i)
}

// Validate checks the sum, bounds and contiguity invariants.
func (s *PanelSet) Validate() error {
	if len(s.panels) == 0 {
		return nil
	}

	if s.container >= s.grip*len(s.dividers) {
		total := s.grip * len(s.dividers)
		for _, p := range s.panels {
			total += p.Size
		}
		if total != s.container {
			return fmt.Errorf("%w: sizes sum to %d, container is %d", ErrInconsistent, total, s.container)
		}
	}

	for i, p := range s.panels {
		if !p.Admits(p.Size) {
			return fmt.Errorf("%w: panel %d size %d outside [%d, %d]", ErrInconsistent, i, p.Size, p.MinSize, p.MaxSize)
		}
	}

	if s.panels[0].Offset != 0 {
		return fmt.Errorf("%w: first panel offset %d", ErrInconsistent, s.panels[0].Offset)
	}
	for i, d := range s.dividers {
		if s.panels[i].Offset+s.panels[i].Size != d.Offset {
			return fmt.Errorf("%w: gap before divider %d", ErrInconsistent, i)
		}
		if d.Offset+d.GripSize != s.panels[i+1].Offset {
			return fmt.Errorf("%w: gap after divider %d", ErrInconsistent, i)
		}
	}
	return nil
}

func (s *PanelSet) rebuildDividers() {
	n := len(s.panels) - 1
	if n < 0 {
		n = 0
	}
	s.dividers = make([]Divider, n)
	for i := range s.dividers {
		s.dividers[i] = Divider{Before: i, After: i + 1, GripSize: s.grip}
	}
}

func (s *PanelSet) checkPanel(i int) error {
	if i < 0 || i >= len(s.panels) {
		return fmt.Errorf("%w: panel %d of %d: %w", ErrInvalidUsage, i, len(s.panels), ErrOutOfRange)
	}
	return nil
}

func (s *PanelSet) checkDivider(i int) error {
	if i < 0 || i >= len(s.dividers) {
		return fmt.Errorf("%w: divider %d of %d: %w", ErrInvalidUsage, i, len(s.dividers), ErrOutOfRange)
	}
	return nil
}
