package engine

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/xonecas/splitpane/internal/layout"
)

// ApplyDragDelta moves the divider by delta cells and returns the new panel
// sizes. Positive delta moves the divider toward higher offsets, growing the
// side before it.
//
// A step that would break a constraint returns a *RejectedError and no
// sizes. A divider index outside the set returns layout.ErrInvalidUsage.
// A zero delta succeeds with the current sizes.
func ApplyDragDelta(panels []layout.Panel, divider, delta int, mode Mode) ([]int, error) {
	if divider < 0 || divider >= len(panels)-1 {
		return nil, fmt.Errorf("%w: divider %d with %d panels: %w",
			layout.ErrInvalidUsage, divider, len(panels), layout.ErrOutOfRange)
	}

	sizes := Sizes(panels)
	if delta == 0 {
		return sizes, nil
	}

	var err error
	switch mode {
	case Local:
		err = dragLocal(panels, sizes, divider, delta)
	case Group:
		err = dragGroup(panels, sizes, divider, delta)
	default:
		return nil, fmt.Errorf("%w: drag mode %d", layout.ErrInvalidUsage, mode)
	}
	if err != nil {
		return nil, err
	}
	return sizes, nil
}

// dragLocal adjusts only the two neighbors of the divider.
func dragLocal(panels []layout.Panel, sizes []int, d, delta int) error {
	before, after := panels[d], panels[d+1]
	if !before.Resizable || !after.Resizable {
		return reject(d, delta, "neighbor panel is fixed")
	}

	nb := before.Size + delta
	na := after.Size - delta
	switch {
	case na <= 0:
		return reject(d, delta, "panel %d would collapse to %d", d+1, na)
	case nb < 0:
		return reject(d, delta, "divider would pass the leading edge of panel %d", d)
	case !before.Admits(nb):
		return reject(d, delta, "panel %d size %d outside [%d, %d]", d, nb, before.MinSize, before.MaxSize)
	case !after.Admits(na):
		return reject(d, delta, "panel %d size %d outside [%d, %d]", d+1, na, after.MinSize, after.MaxSize)
	}

	sizes[d], sizes[d+1] = nb, na
	return nil
}

// dragGroup grows the active panel by |delta| and shrinks the resizable
// panels on the other side of the divider proportionally.
func dragGroup(panels []layout.Panel, sizes []int, d, delta int) error {
	mag := delta
	active := d
	growSide, shrinkSide := span(0, d), span(d+1, len(panels)-1)
	if delta < 0 {
		mag = -delta
		active = d + 1
		growSide, shrinkSide = span(d+1, len(panels)-1), span(0, d)
		// Nearest the divider first.
		slices.Reverse(shrinkSide)
	} else {
		slices.Reverse(growSide)
	}

	ap := panels[active]
	if !ap.Resizable {
		return reject(d, delta, "active panel %d is fixed", active)
	}
	if ap.MaxSize > 0 && ap.Size+mag > ap.MaxSize {
		return reject(d, delta, "panel %d would exceed max %d", active, ap.MaxSize)
	}

	group := resizableOf(panels, shrinkSide, -1)
	if len(group) == 0 {
		return reject(d, delta, "no resizable panel to shrink")
	}
	groupTotal, groupMin := 0, 0
	for _, i := range group {
		groupTotal += panels[i].Size
		groupMin += panels[i].MinSize
	}
	if groupTotal-mag < groupMin {
		return reject(d, delta, "shrinking by %d leaves %d, group minimum is %d", mag, groupTotal-mag, groupMin)
	}

	grow := resizableOf(panels, growSide, active)
	if !spreadEqual(panels, sizes, active, grow, mag) {
		sizes[active] += mag
	}
	shrinkProportional(panels, sizes, group, groupTotal-mag)
	return nil
}

// spreadEqual grows the active panel together with the rest of the grow
// group when they all share its size (within one cell), keeping them equal.
// It reports false, leaving sizes alone, if the group is empty, unequal, or
// a member would pass its max.
func spreadEqual(panels []layout.Panel, sizes []int, active int, grow []int, mag int) bool {
	if len(grow) == 0 {
		return false
	}
	members := append([]int{active}, grow...)
	total := mag
	for _, i := range members {
		if abs(panels[i].Size-panels[active].Size) > 1 {
			return false
		}
		total += panels[i].Size
	}

	// Extra cells go to the larger members first so nobody shrinks.
	slices.SortStableFunc(members, func(a, b int) int {
		return cmp.Compare(panels[b].Size, panels[a].Size)
	})
	base, extra := total/len(members), total%len(members)
	next := make([]int, len(members))
	for k, i := range members {
		next[k] = base
		if k < extra {
			next[k]++
		}
		if !panels[i].Admits(next[k]) {
			return false
		}
	}
	for k, i := range members {
		sizes[i] = next[k]
	}
	return true
}

// shrinkProportional scales the group down to target, keeping each panel's
// share of the group. Panels that would fall under their minimum are pinned
// there and the rest is rescaled. Rounding slack goes to the largest
// remainders so the group sums to target exactly.
func shrinkProportional(panels []layout.Panel, sizes []int, group []int, target int) {
	free := slices.Clone(group)
	budget := target

	for {
		freeTotal := 0
		for _, i := range free {
			freeTotal += panels[i].Size
		}
		var pinned []int
		for _, i := range free {
			// size*budget/freeTotal < min, in integers.
			if int64(panels[i].Size)*int64(budget) < int64(panels[i].MinSize)*int64(freeTotal) {
				pinned = append(pinned, i)
			}
		}
		if len(pinned) == 0 {
			distribute(panels, sizes, free, budget, freeTotal)
			return
		}
		for _, i := range pinned {
			sizes[i] = panels[i].MinSize
			budget -= panels[i].MinSize
		}
		free = slices.DeleteFunc(free, func(i int) bool { return slices.Contains(pinned, i) })
		if len(free) == 0 {
			if budget != 0 {
				sizes[group[0]] += budget
			}
			return
		}
	}
}

// distribute assigns budget across free by largest remainder.
func distribute(panels []layout.Panel, sizes []int, free []int, budget, freeTotal int) {
	if freeTotal == 0 {
		each, extra := budget/len(free), budget%len(free)
		for k, i := range free {
			sizes[i] = each
			if k < extra {
				sizes[i]++
			}
		}
		return
	}

	type part struct {
		index int
		rem   int64
	}
	parts := make([]part, len(free))
	assigned := 0
	for k, i := range free {
		num := int64(panels[i].Size) * int64(budget)
		sizes[i] = int(num / int64(freeTotal))
		assigned += sizes[i]
		parts[k] = part{index: i, rem: num % int64(freeTotal)}
	}
	slices.SortStableFunc(parts, func(a, b part) int {
		return cmp.Compare(b.rem, a.rem)
	})
	for k := 0; k < budget-assigned; k++ {
		sizes[parts[k%len(parts)].index]++
	}
}

// span returns the indices from..to inclusive.
func span(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// resizableOf filters indices to resizable panels, dropping skip.
func resizableOf(panels []layout.Panel, indices []int, skip int) []int {
	var out []int
	for _, i := range indices {
		if i != skip && panels[i].Resizable {
			out = append(out, i)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
