package engine

import (
	"slices"
	"testing"

	"github.com/xonecas/splitpane/internal/layout"
)

func unset(n int) []layout.Panel {
	out := make([]layout.Panel, n)
	for i := range out {
		out[i] = layout.NewPanel("")
	}
	return out
}

func fixed(explicit layout.Size) layout.Panel {
	p := layout.NewPanel("")
	p.Resizable = false
	p.Explicit = explicit
	return p
}

func explicit(s layout.Size) layout.Panel {
	p := layout.NewPanel("")
	p.Explicit = s
	return p
}

func sized(sizes ...int) []layout.Panel {
	out := make([]layout.Panel, len(sizes))
	for i, s := range sizes {
		out[i] = layout.Panel{Size: s, Sized: true, Resizable: true}
	}
	return out
}

func TestComputeInitialSizes(t *testing.T) {
	type tc struct {
		panels    []layout.Panel
		available int
		want      []int
	}

	withMax := unset(3)
	withMax[0].MaxSize = 50

	withMin := unset(2)
	withMin[1].MinSize = 70

	tests := map[string]tc{
		"equal weight": {
			panels:    unset(3),
			available: 300,
			want:      []int{100, 100, 100},
		},
		"fixed plus proportional": {
			panels:    []layout.Panel{fixed(layout.Absolute(50)), layout.NewPanel(""), layout.NewPanel("")},
			available: 250,
			want:      []int{50, 100, 100},
		},
		"last panel absorbs rounding": {
			panels:    unset(3),
			available: 100,
			want:      []int{33, 33, 34},
		},
		"percentages scale by weight": {
			panels:    []layout.Panel{explicit(layout.Percent(25)), explicit(layout.Percent(75))},
			available: 200,
			want:      []int{50, 150},
		},
		"percent mixed with default share": {
			panels:    []layout.Panel{explicit(layout.Percent(30)), layout.NewPanel("")},
			available: 200,
			want:      []int{75, 125},
		},
		"zero weight falls back to equal split": {
			panels:    []layout.Panel{explicit(layout.Absolute(0)), explicit(layout.Absolute(0))},
			available: 100,
			want:      []int{50, 50},
		},
		"fixed last panel keeps its size": {
			panels:    []layout.Panel{layout.NewPanel(""), fixed(layout.Absolute(30))},
			available: 100,
			want:      []int{70, 30},
		},
		"all fixed, last absorbs": {
			panels:    []layout.Panel{fixed(layout.Absolute(80)), fixed(layout.Absolute(80))},
			available: 100,
			want:      []int{80, 20},
		},
		"sized panels keep proportions on resize": {
			panels:    sized(140, 60),
			available: 100,
			want:      []int{70, 30},
		},
		"max bound pushes slack to last": {
			panels:    withMax,
			available: 300,
			want:      []int{50, 100, 150},
		},
		"min bound takes from earlier panels": {
			panels:    withMin,
			available: 100,
			want:      []int{30, 70},
		},
		"no space": {
			panels:    unset(2),
			available: 0,
			want:      []int{0, 0},
		},
		"no panels": {
			panels:    nil,
			available: 100,
			want:      []int{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ComputeInitialSizes(tt.panels, tt.available)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ComputeInitialSizes() = %v, want %v", got, tt.want)
			}
			if tt.available > 0 && len(tt.panels) > 0 && sum(got) != tt.available {
				t.Errorf("sum = %d, want %d", sum(got), tt.available)
			}
		})
	}
}

func TestComputeInitialSizes_StableOnItsOwnOutput(t *testing.T) {
	panels := []layout.Panel{
		explicit(layout.Percent(20)),
		fixed(layout.Absolute(17)),
		layout.NewPanel(""),
		explicit(layout.Absolute(41)),
	}
	panels[2].MinSize = 30

	first := ComputeInitialSizes(panels, 157)
	for i := range panels {
		panels[i].Size = first[i]
		panels[i].Sized = true
	}
	second := ComputeInitialSizes(panels, 157)

	if !slices.Equal(first, second) {
		t.Errorf("second pass = %v, first = %v", second, first)
	}
}
