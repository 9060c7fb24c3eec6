package layout

// Panel is a sized, positioned region of content along the layout axis.
type Panel struct {
	Name string

	// Size and Offset are written by the engine; treat them as read-only.
	Size   int
	Offset int

	MinSize int
	MaxSize int // 0 means unbounded

	// Resizable panels share space proportionally and may be shrunk by a
	// drag. Fixed panels keep their explicit size.
	Resizable bool

	// Explicit is the designer-specified size, resolved on first layout.
	Explicit Size

	// Sized is set once a layout pass has assigned Size. Until then the
	// explicit size is used as the panel's weight.
	Sized bool
}

// NewPanel returns a resizable panel with no explicit size or bounds.
func NewPanel(name string) Panel {
	return Panel{Name: name, Resizable: true}
}

// Admits reports whether size lies within the panel's bounds.
func (p Panel) Admits(size int) bool {
	if size < p.MinSize {
		return false
	}
	return p.MaxSize <= 0 || size <= p.MaxSize
}

// Clamp returns size limited to the panel's bounds.
func (p Panel) Clamp(size int) int {
	if p.MaxSize > 0 && size > p.MaxSize {
		size = p.MaxSize
	}
	if size < p.MinSize {
		size = p.MinSize
	}
	return size
}

// Divider separates panel Before from panel After (After == Before+1).
type Divider struct {
	Before   int
	After    int
	GripSize int
	Offset   int
}
