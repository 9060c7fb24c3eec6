package engine

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/xonecas/splitpane/internal/layout"
)

func newSet(t *testing.T, container, grip int, panels ...layout.Panel) *layout.PanelSet {
	t.Helper()
	set := layout.New(layout.Horizontal, grip)
	set.SetContainerSize(container)
	for _, p := range panels {
		if err := set.Insert(p, set.Len()); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return set
}

func TestRelayout_Offsets(t *testing.T) {
	set := newSet(t, 302, 1, unset(3)...)
	if err := Relayout(set); err != nil {
		t.Fatalf("Relayout: %v", err)
	}

	var sizes, offsets []int
	for _, p := range set.Panels() {
		sizes = append(sizes, p.Size)
		offsets = append(offsets, p.Offset)
	}
	if want := []int{100, 100, 100}; !slices.Equal(sizes, want) {
		t.Errorf("sizes = %v, want %v", sizes, want)
	}
	if want := []int{0, 101, 202}; !slices.Equal(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
	for i, want := range []int{100, 201} {
		if got := set.Dividers()[i].Offset; got != want {
			t.Errorf("divider %d offset = %d, want %d", i, got, want)
		}
	}
	if err := set.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestRelayout_Idempotent(t *testing.T) {
	panels := []layout.Panel{
		fixed(layout.Percent(10)),
		explicit(layout.Absolute(33)),
		layout.NewPanel(""),
		explicit(layout.Percent(40)),
	}
	panels[2].MaxSize = 25
	set := newSet(t, 211, 2, panels...)

	if err := Relayout(set); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	firstPanels, firstDividers := set.Panels(), set.Dividers()

	if err := Relayout(set); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	if !slices.Equal(firstPanels, set.Panels()) {
		t.Errorf("panels changed:\n%v\n%v", firstPanels, set.Panels())
	}
	if !slices.Equal(firstDividers, set.Dividers()) {
		t.Errorf("dividers changed:\n%v\n%v", firstDividers, set.Dividers())
	}
}

func TestRelayout_ContainerResizeKeepsProportions(t *testing.T) {
	set := newSet(t, 201, 1, unset(2)...)
	if err := Relayout(set); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	sizes, err := ApplyDragDelta(set.Panels(), 0, 50, Local)
	if err != nil {
		t.Fatalf("ApplyDragDelta: %v", err)
	}
	if err := Commit(set, sizes); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	set.SetContainerSize(101)
	if err := Relayout(set); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	if got := Sizes(set.Panels()); !slices.Equal(got, []int{75, 25}) {
		t.Errorf("sizes after resize = %v, want [75 25]", got)
	}
}

func TestRelayout_DegenerateContainer(t *testing.T) {
	set := newSet(t, 1, 1, unset(3)...)
	if err := Relayout(set); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	for i, p := range set.Panels() {
		if p.Size != 0 {
			t.Errorf("panel %d size = %d, want 0", i, p.Size)
		}
	}
}

func TestRelayout_EmptyContainerKeepsExplicitWeights(t *testing.T) {
	set := newSet(t, 0, 1, explicit(layout.Percent(30)), layout.NewPanel(""))
	if err := Relayout(set); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	for i, p := range set.Panels() {
		if p.Size != 0 || p.Sized {
			t.Errorf("panel %d = size %d sized %v, want an unsized zero", i, p.Size, p.Sized)
		}
	}

	set.SetContainerSize(101)
	if err := Relayout(set); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	if got := Sizes(set.Panels()); !slices.Equal(got, []int{38, 62}) {
		t.Errorf("sizes = %v, want [38 62]", got)
	}
}

func TestRelayout_Unsatisfiable(t *testing.T) {
	panels := unset(2)
	panels[0].MinSize = 80
	panels[1].MinSize = 80
	set := newSet(t, 101, 1, panels...)

	err := Relayout(set)
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatalf("err = %v, want ErrUnsatisfiable", err)
	}
	if !errors.Is(err, layout.ErrInconsistent) {
		t.Errorf("err = %v, want it to wrap the validation error", err)
	}
	if got := Sizes(set.Panels()); got[0]+got[1] != 100 {
		t.Errorf("sizes = %v, want them to fill 100", got)
	}
}

func TestCommit_WrongLength(t *testing.T) {
	set := newSet(t, 100, 1, unset(2)...)
	if err := Commit(set, []int{99}); !errors.Is(err, layout.ErrInvalidUsage) {
		t.Errorf("err = %v, want ErrInvalidUsage", err)
	}
	if err := Commit(set, []int{100, -1}); !errors.Is(err, layout.ErrInvalidUsage) {
		t.Errorf("err = %v, want ErrInvalidUsage", err)
	}
}

// Random drags in both modes must never break the sum, bounds or
// contiguity invariants, and rejected steps must not change anything.
func TestDragSequence_Invariants(t *testing.T) {
	for _, mode := range []Mode{Local, Group} {
		t.Run(mode.String(), func(t *testing.T) {
			panels := unset(5)
			panels[0].MinSize = 5
			panels[1].MaxSize = 80
			panels[2].MinSize = 10
			panels[3].Resizable = false
			panels[3].Explicit = layout.Absolute(20)
			panels[4].MinSize = 3
			set := newSet(t, 244, 1, panels...)
			if err := Relayout(set); err != nil {
				t.Fatalf("Relayout: %v", err)
			}
			if err := set.Validate(); err != nil {
				t.Fatalf("initial layout: %v", err)
			}

			r := rand.New(rand.NewPCG(7, 11))
			accepted := 0
			for step := 0; step < 500; step++ {
				divider := r.IntN(set.Len() - 1)
				delta := r.IntN(41) - 20
				before := set.Panels()

				sizes, err := ApplyDragDelta(before, divider, delta, mode)
				if errors.Is(err, ErrRejected) {
					if !slices.Equal(before, set.Panels()) {
						t.Fatalf("step %d: rejected drag changed the set", step)
					}
					continue
				}
				if err != nil {
					t.Fatalf("step %d: %v", step, err)
				}
				if err := Commit(set, sizes); err != nil {
					t.Fatalf("step %d: Commit: %v", step, err)
				}
				if err := set.Validate(); err != nil {
					t.Fatalf("step %d (divider %d, delta %d): %v", step, divider, delta, err)
				}
				accepted++
			}
			if accepted == 0 {
				t.Error("no drag step was accepted")
			}
		})
	}
}
