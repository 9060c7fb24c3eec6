package engine

import (
	"math"

	"github.com/xonecas/splitpane/internal/layout"
)

// ComputeInitialSizes assigns a size to every panel so the sizes sum to
// available exactly.
//
// Fixed panels keep their explicit size. The rest of the space is shared by
// resizable panels in proportion to their weight: the current size once a
// panel has been laid out, otherwise its resolved explicit size, otherwise an
// equal share. The last resizable panel absorbs rounding slack. A final pass
// pulls panels back inside their min/max bounds.
func ComputeInitialSizes(panels []layout.Panel, available int) []int {
	n := len(panels)
	sizes := make([]int, n)
	if n == 0 || available <= 0 {
		return sizes
	}

	share := float64(available) / float64(n)
	weights := make([]float64, n)
	remaining := available
	resizable := 0
	var total float64
	for i, p := range panels {
		weights[i] = weight(p, available, share)
		if p.Resizable {
			total += weights[i]
			resizable++
		} else {
			remaining -= round(weights[i])
		}
	}

	absorber := absorberIndex(panels)
	assigned := 0
	for i, p := range panels {
		if i == absorber {
			continue
		}
		var size int
		switch {
		case !p.Resizable:
			size = round(weights[i])
		case total > 0:
			size = round(float64(remaining) * weights[i] / total)
		default:
			// Every resizable panel declared zero: split evenly.
			size = round(float64(remaining) / float64(resizable))
		}
		if size < 0 {
			size = 0
		}
		sizes[i] = size
		assigned += size
	}
	sizes[absorber] = available - assigned

	constrain(sizes, panels, available, absorber)
	return sizes
}

// weight is the declared extent a panel claims before scaling.
func weight(p layout.Panel, available int, share float64) float64 {
	if p.Resizable && p.Sized {
		return float64(p.Size)
	}
	if w, ok := p.Explicit.Resolve(available); ok {
		return w
	}
	if p.Sized {
		return float64(p.Size)
	}
	return share
}

// absorberIndex is the panel that takes rounding slack: the last panel,
// unless it is fixed and some other panel is resizable.
func absorberIndex(panels []layout.Panel) int {
	last := len(panels) - 1
	if panels[last].Resizable {
		return last
	}
	for i := last - 1; i >= 0; i-- {
		if panels[i].Resizable {
			return i
		}
	}
	return last
}

// constrain clamps sizes into their bounds and moves the difference onto
// panels with slack, last to first. When the bounds cannot all be met the
// sum still wins: the remainder is forced onto panels regardless of bounds,
// never below zero.
func constrain(sizes []int, panels []layout.Panel, available, absorber int) {
	for i, p := range panels {
		sizes[i] = p.Clamp(sizes[i])
	}
	diff := available - sum(sizes)

	for i := len(panels) - 1; i >= 0 && diff != 0; i-- {
		p := panels[i]
		if !p.Resizable && i != absorber {
			continue
		}
		diff = absorb(sizes, i, diff, p.MinSize, p.MaxSize)
	}

	// Infeasible bounds.
	for i := len(panels) - 1; i >= 0 && diff != 0; i-- {
		diff = absorb(sizes, i, diff, 0, 0)
	}
}

// absorb moves as much of diff as the [min, max] bounds allow into sizes[i]
// and returns what is left. max 0 is unbounded.
func absorb(sizes []int, i, diff, minSize, maxSize int) int {
	if diff > 0 {
		room := diff
		if maxSize > 0 {
			room = min(diff, maxSize-sizes[i])
		}
		if room > 0 {
			sizes[i] += room
			diff -= room
		}
		return diff
	}
	room := min(-diff, sizes[i]-minSize)
	if room > 0 {
		sizes[i] -= room
		diff += room
	}
	return diff
}

func round(f float64) int {
	return int(math.Round(f))
}

func sum(sizes []int) int {
	total := 0
	for _, s := range sizes {
		total += s
	}
	return total
}

// Sizes returns the current size of each panel.
func Sizes(panels []layout.Panel) []int {
	out := make([]int, len(panels))
	for i, p := range panels {
		out[i] = p.Size
	}
	return out
}
