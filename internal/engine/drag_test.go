package engine

import (
	"errors"
	"slices"
	"testing"

	"github.com/xonecas/splitpane/internal/layout"
)

func TestApplyDragDelta_Local(t *testing.T) {
	type tc struct {
		panels  []layout.Panel
		divider int
		delta   int
		want    []int // nil means rejected
	}

	bounded := sized(120, 80)
	bounded[0].MaxSize = 130
	bounded[1].MinSize = 70

	withFixed := sized(120, 80)
	withFixed[1].Resizable = false

	tests := map[string]tc{
		"grow before":              {panels: sized(120, 80), divider: 0, delta: 20, want: []int{140, 60}},
		"shrink before":            {panels: sized(120, 80), divider: 0, delta: -90, want: []int{30, 170}},
		"after would go negative":  {panels: sized(120, 80), divider: 0, delta: 90},
		"after would reach zero":   {panels: sized(120, 80), divider: 0, delta: 80},
		"divider passes leading":   {panels: sized(120, 80), divider: 0, delta: -130},
		"before may reach zero":    {panels: sized(120, 80), divider: 0, delta: -120, want: []int{0, 200}},
		"before max":               {panels: bounded, divider: 0, delta: 11},
		"after min":                {panels: bounded, divider: 0, delta: 10, want: []int{130, 70}},
		"fixed neighbor":           {panels: withFixed, divider: 0, delta: 5},
		"only neighbors move":      {panels: sized(10, 20, 30), divider: 1, delta: -5, want: []int{10, 15, 35}},
		"zero delta is a success":  {panels: sized(120, 80), divider: 0, delta: 0, want: []int{120, 80}},
		"zero delta on fixed pair": {panels: withFixed, divider: 0, delta: 0, want: []int{120, 80}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			before := slices.Clone(tt.panels)
			got, err := ApplyDragDelta(tt.panels, tt.divider, tt.delta, Local)

			if tt.want == nil {
				if !errors.Is(err, ErrRejected) {
					t.Fatalf("err = %v, want ErrRejected", err)
				}
				if got != nil {
					t.Errorf("rejected drag returned sizes %v", got)
				}
			} else {
				if err != nil {
					t.Fatalf("ApplyDragDelta: %v", err)
				}
				if !slices.Equal(got, tt.want) {
					t.Errorf("sizes = %v, want %v", got, tt.want)
				}
			}
			if !slices.Equal(before, tt.panels) {
				t.Error("input panels were modified")
			}
		})
	}
}

func TestApplyDragDelta_Group(t *testing.T) {
	type tc struct {
		panels  []layout.Panel
		divider int
		delta   int
		want    []int // nil means rejected
	}

	minTail := sized(100, 100, 100)
	minTail[1].MinSize = 50
	minTail[2].MinSize = 50

	pinned := sized(100, 100, 100)
	pinned[1].MinSize = 90

	capped := sized(100, 100, 100)
	capped[1].MaxSize = 110

	capSpread := sized(100, 100, 100)
	capSpread[0].MaxSize = 105

	fixedTail := sized(100, 100, 100)
	fixedTail[2].Resizable = false

	fixedActive := sized(100, 100, 100)
	fixedActive[1].Resizable = false

	tests := map[string]tc{
		"min constraint rejects":       {panels: minTail, divider: 0, delta: 120},
		"shrink group proportionally":  {panels: minTail, divider: 0, delta: 60, want: []int{160, 70, 70}},
		"exact group minimum":          {panels: minTail, divider: 0, delta: 100, want: []int{200, 50, 50}},
		"equal neighbors grow together": {panels: sized(100, 100, 100), divider: 1, delta: 30, want: []int{115, 115, 70}},
		"unequal neighbors stay":       {panels: sized(80, 100, 120), divider: 1, delta: 30, want: []int{80, 130, 90}},
		"negative delta":               {panels: sized(100, 100, 100), divider: 0, delta: -40, want: []int{60, 120, 120}},
		"proportional shares":          {panels: sized(50, 100, 150), divider: 0, delta: 25, want: []int{75, 90, 135}},
		"largest remainder rounding":   {panels: sized(10, 33, 67), divider: 0, delta: 10, want: []int{20, 30, 60}},
		"member pinned at min":         {panels: pinned, divider: 0, delta: 50, want: []int{150, 90, 60}},
		"active max rejects":           {panels: capped, divider: 0, delta: -20},
		"spread over max falls back":   {panels: capSpread, divider: 1, delta: 30, want: []int{100, 130, 70}},
		"fixed panel left alone":       {panels: fixedTail, divider: 0, delta: 40, want: []int{140, 60, 100}},
		"fixed active rejects":         {panels: fixedActive, divider: 0, delta: -10},
		"nothing left to shrink":       {panels: fixedTail, divider: 1, delta: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			before := slices.Clone(tt.panels)
			got, err := ApplyDragDelta(tt.panels, tt.divider, tt.delta, Group)

			if tt.want == nil {
				if !errors.Is(err, ErrRejected) {
					t.Fatalf("err = %v, want ErrRejected", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyDragDelta: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("sizes = %v, want %v", got, tt.want)
			}
			if sum(got) != sum(Sizes(before)) {
				t.Errorf("total changed: %d -> %d", sum(Sizes(before)), sum(got))
			}
			if !slices.Equal(before, tt.panels) {
				t.Error("input panels were modified")
			}
		})
	}
}

func TestApplyDragDelta_Misuse(t *testing.T) {
	panels := sized(50, 50)
	for _, d := range []int{-1, 1, 5} {
		_, err := ApplyDragDelta(panels, d, 3, Local)
		if !errors.Is(err, layout.ErrInvalidUsage) {
			t.Errorf("divider %d: err = %v, want ErrInvalidUsage", d, err)
		}
		if errors.Is(err, ErrRejected) {
			t.Errorf("divider %d: misuse reported as rejection", d)
		}
	}

	if _, err := ApplyDragDelta(sized(50), 0, 1, Group); !errors.Is(err, layout.ErrInvalidUsage) {
		t.Errorf("single panel: err = %v", err)
	}
}

func TestRejectedError(t *testing.T) {
	_, err := ApplyDragDelta(sized(10, 10), 0, 10, Local)
	var rej *RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("err = %v, want *RejectedError", err)
	}
	if rej.Divider != 0 || rej.Delta != 10 || rej.Reason == "" {
		t.Errorf("rejection = %+v", rej)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": Local, "local": Local, "GROUP": Group} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("elastic"); err == nil {
		t.Error("expected error")
	}
}
