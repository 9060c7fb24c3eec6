package layout

import (
	"fmt"
	"strings"
)

// Axis is the dimension along which panels are laid out.
type Axis uint8

const (
	Horizontal Axis = iota // Panels side by side, dividers are vertical bars
	Vertical               // Panels stacked, dividers are horizontal bars
)

// String returns the config spelling of the axis.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis accepts "horizontal"/"cols" and "vertical"/"rows".
// An empty string means Horizontal.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "cols", "columns":
		return Horizontal, nil
	case "vertical", "rows":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown axis %q", s)
}
