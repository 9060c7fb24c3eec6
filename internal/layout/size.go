package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Size is interpreted.
type Unit uint8

const (
	UnitUnset    Unit = iota // Equal share of available space
	UnitAbsolute             // Cells, used verbatim
	UnitPercent              // Percentage of available space (0-100)
)

// Size is a designer-specified panel extent, resolved once against the
// available space when the panel is first laid out.
type Size struct {
	Amount float64
	Unit   Unit
}

// Unset returns a Size that defers to an equal share.
func Unset() Size { return Size{Unit: UnitUnset} }

// Absolute returns a Size of n cells.
func Absolute(n float64) Size { return Size{Amount: n, Unit: UnitAbsolute} }

// Percent returns a Size of p percent of the available space.
func Percent(p float64) Size { return Size{Amount: p, Unit: UnitPercent} }

// IsUnset reports whether no explicit size was given.
func (s Size) IsUnset() bool { return s.Unit == UnitUnset }

// Resolve returns the size in cells for the given available space.
// The second result is false for Unset sizes.
func (s Size) Resolve(available int) (float64, bool) {
	switch s.Unit {
	case UnitAbsolute:
		return s.Amount, true
	case UnitPercent:
		return float64(available) * s.Amount / 100.0, true
	default:
		return 0, false
	}
}

// String formats the size the way ParseSize reads it.
func (s Size) String() string {
	amount := strconv.FormatFloat(s.Amount, 'f', -1, 64)
	switch s.Unit {
	case UnitAbsolute:
		return amount + "px"
	case UnitPercent:
		return amount + "%"
	default:
		return ""
	}
}

// ParseSize reads "50%", "300px", "300" or "". Bare numbers are absolute.
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset(), nil
	}

	unit := UnitAbsolute
	num := s
	switch {
	case strings.HasSuffix(s, "%"):
		unit = UnitPercent
		num = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Unset(), fmt.Errorf("invalid size %q: %w", s, err)
	}
	if amount < 0 {
		return Unset(), fmt.Errorf("invalid size %q: must not be negative", s)
	}
	return Size{Amount: amount, Unit: unit}, nil
}
