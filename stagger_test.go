package reveal

import (
	"math"
	"testing"
)

func gridWithChildren(n int) (*Element, []*Element) {
	grid := NewElement("grid", "projects-grid")
	grid.Y, grid.Width, grid.Height = 100, 800, 400
	children := make([]*Element, n)
	for i := range children {
		tile := NewElement("tile")
		tile.Y = 120
		tile.Width, tile.Height = 200, 150
		grid.AddChild(tile)
		children[i] = tile
	}
	return grid, children
}

func TestStaggerHidesChildrenUpFront(t *testing.T) {
	grid, children := gridWithChildren(3)

	newStaggerReveal(grid, 0.1, 0.6, ElementRenderer{})

	for i, child := range children {
		if child.Opacity != 0 {
			t.Errorf("child %d opacity = %f, want 0", i, child.Opacity)
		}
		if child.TranslateY != staggerHideOffset {
			t.Errorf("child %d TranslateY = %f, want %f", i, child.TranslateY, staggerHideOffset)
		}
	}
}

func TestStaggerWaitsUntilArmed(t *testing.T) {
	grid, children := gridWithChildren(2)

	s := newStaggerReveal(grid, 0.1, 0.6, ElementRenderer{})

	for i := 0; i < 10; i++ {
		if !s.update(0.1) {
			t.Fatal("unarmed stagger should stay pending")
		}
	}
	if children[0].Opacity != 0 {
		t.Error("children must stay hidden until the container is visible")
	}
}

func TestStaggerRevealsInOrderWithDelay(t *testing.T) {
	grid, children := gridWithChildren(3)

	s := newStaggerReveal(grid, 0.1, 0.6, ElementRenderer{})
	s.arm()

	// First frame: only child 0 has started.
	s.update(0.05)
	if children[0].Opacity <= 0 {
		t.Error("child 0 should have started revealing")
	}
	if children[1].Opacity != 0 || children[2].Opacity != 0 {
		t.Error("children 1 and 2 should still be hidden at t=0.05")
	}

	// t=0.15: child 1 has started, child 2 has not.
	s.update(0.10)
	if children[1].Opacity <= 0 {
		t.Error("child 1 should have started by t=0.15")
	}
	if children[2].Opacity != 0 {
		t.Error("child 2 should still be hidden at t=0.15")
	}
	if children[1].Opacity >= children[0].Opacity {
		t.Errorf("child 1 (%f) should lag child 0 (%f)", children[1].Opacity, children[0].Opacity)
	}
}

func TestStaggerCompletesFully(t *testing.T) {
	grid, children := gridWithChildren(3)

	s := newStaggerReveal(grid, 0.1, 0.6, ElementRenderer{})
	s.arm()

	// Total runtime: 2*0.1 delay + 0.6 reveal = 0.8s.
	running := true
	for i := 0; i < 20 && running; i++ {
		running = s.update(0.05)
	}
	if running {
		t.Fatal("stagger should finish within a second")
	}

	for i, child := range children {
		if math.Abs(child.Opacity-1) > 0.01 {
			t.Errorf("child %d opacity = %f, want 1", i, child.Opacity)
		}
		if math.Abs(child.TranslateY) > 0.5 {
			t.Errorf("child %d TranslateY = %f, want 0", i, child.TranslateY)
		}
	}
}

func TestStaggerSkipsDisposedChildren(t *testing.T) {
	grid, children := gridWithChildren(2)

	s := newStaggerReveal(grid, 0.1, 0.6, ElementRenderer{})
	children[1].Dispose()
	s.arm()

	running := true
	for i := 0; i < 20 && running; i++ {
		running = s.update(0.05)
	}
	if running {
		t.Fatal("stagger should finish with a disposed child")
	}
	if math.Abs(children[0].Opacity-1) > 0.01 {
		t.Errorf("surviving child opacity = %f, want 1", children[0].Opacity)
	}
}

func TestStaggerEmptyGrid(t *testing.T) {
	grid := NewElement("grid", "projects-grid")

	s := newStaggerReveal(grid, 0.1, 0.6, ElementRenderer{})
	s.arm()

	if s.update(0.1) {
		t.Error("empty grid should finish immediately")
	}
}
