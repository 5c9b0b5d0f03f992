package menu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeLayout(t *testing.T) {
	sizes := []Size{{Width: 100, Height: 20}, {Width: 200, Height: 30}}
	cfg := DefaultLayoutConfig()

	tests := []struct {
		name       string
		transition Transition
		want       []Point
	}{
		{
			name:       "at rest",
			transition: Transition{Progress: 0, Direction: Entering},
			want:       []Point{{X: 350, Y: 300}, {X: 300, Y: 370}},
		},
		{
			name:       "half way entering shifts left",
			transition: Transition{Progress: 0.5, Direction: Entering},
			want:       []Point{{X: 286, Y: 300}, {X: 236, Y: 370}},
		},
		{
			name:       "half way exiting shifts right twice as far",
			transition: Transition{Progress: 0.5, Direction: Exiting},
			want:       []Point{{X: 478, Y: 300}, {X: 428, Y: 370}},
		},
		{
			name:       "fully exited",
			transition: Transition{Progress: 1, Direction: Exiting},
			want:       []Point{{X: 862, Y: 300}, {X: 812, Y: 370}},
		},
		{
			name:       "progress above one is clamped",
			transition: Transition{Progress: 3, Direction: Entering},
			want:       []Point{{X: 94, Y: 300}, {X: 44, Y: 370}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLayout(sizes, viewport800x600, tt.transition, cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeLayout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeLayoutDeterministic(t *testing.T) {
	sizes := []Size{{Width: 120, Height: 33}, {Width: 80, Height: 21}, {Width: 310, Height: 47}}
	tr := Transition{Progress: 0.37, Direction: Exiting}
	cfg := DefaultLayoutConfig()

	first := ComputeLayout(sizes, viewport800x600, tr, cfg)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, ComputeLayout(sizes, viewport800x600, tr, cfg)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestHorizontalOffsetZeroAtRest(t *testing.T) {
	cfg := DefaultLayoutConfig()
	for _, dir := range []TransitionDirection{Entering, Exiting} {
		if got := cfg.HorizontalOffset(Transition{Progress: 0, Direction: dir}); got != 0 {
			t.Errorf("%s: offset = %v, want 0", dir, got)
		}
	}
}

func TestComputeLayoutEmpty(t *testing.T) {
	if got := ComputeLayout(nil, viewport800x600, Transition{}, DefaultLayoutConfig()); len(got) != 0 {
		t.Errorf("got %d positions for no entries", len(got))
	}
}

func TestComputeTitle(t *testing.T) {
	cfg := DefaultLayoutConfig()
	size := Size{Width: 200, Height: 40}

	rest := ComputeTitle(size, viewport800x600, Transition{}, cfg)
	if diff := cmp.Diff(TitleLayout{Position: Point{X: 300, Y: 60}, Alpha: 1}, rest); diff != "" {
		t.Errorf("at rest (-want +got):\n%s", diff)
	}

	half := ComputeTitle(size, viewport800x600, Transition{Progress: 0.5, Direction: Exiting}, cfg)
	if diff := cmp.Diff(TitleLayout{Position: Point{X: 300, Y: 35}, Alpha: 0.5}, half); diff != "" {
		t.Errorf("half way (-want +got):\n%s", diff)
	}
}
