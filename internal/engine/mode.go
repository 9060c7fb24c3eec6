package engine

import (
	"fmt"
	"strings"
)

// Mode selects which panels absorb a divider drag.
type Mode uint8

const (
	// Local moves space between the two panels adjacent to the divider.
	Local Mode = iota
	// Group grows the panel next to the divider and shrinks every resizable
	// panel on the opposite side in proportion to its size.
	Group
)

func (m Mode) String() string {
	if m == Group {
		return "group"
	}
	return "local"
}

// ParseMode reads "local" or "group". Empty means Local.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "local":
		return Local, nil
	case "group":
		return Group, nil
	}
	return Local, fmt.Errorf("unknown drag mode %q", s)
}
