// Package ebitenhost drives a reveal.Controller from an Ebitengine game
// loop: wheel input scrolls the viewport, the cursor position feeds hover
// enter/leave, and clicks are routed through the controller's anchor
// handling. Drawing stays with the game — read the element fields back in
// your Draw and render however you like.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/reveal"
)

// defaultWheelSpeed is the scroll distance in pixels per wheel notch.
const defaultWheelSpeed = 40.0

// Host adapts Ebitengine input and timing to a Controller. Call Update
// once per tick from your game's Update.
type Host struct {
	// WheelSpeed is the scroll distance in pixels per wheel notch.
	WheelSpeed float64

	ctrl    *reveal.Controller
	hovered *reveal.Element
}

// New creates a host for the given controller.
func New(c *reveal.Controller) *Host {
	return &Host{ctrl: c, WheelSpeed: defaultWheelSpeed}
}

// Controller returns the wrapped controller.
func (h *Host) Controller() *reveal.Controller {
	return h.ctrl
}

// Update reads input, routes hover and click events, and advances the
// controller by one tick.
func (h *Host) Update() {
	c := h.ctrl
	vp := c.Viewport()

	if _, wy := ebiten.Wheel(); wy != 0 {
		vp.ScrollBy(-wy * h.WheelSpeed)
	}

	cx, cy := ebiten.CursorPosition()
	pageX := float64(cx)
	pageY := float64(cy) + vp.ScrollY
	hit := hitTest(c.Root(), pageX, pageY)

	if hit != h.hovered {
		if h.hovered != nil {
			c.HoverLeave(h.hovered)
		}
		if hit != nil {
			c.HoverEnter(hit)
		}
		h.hovered = hit
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && hit != nil {
		c.Click(hit)
	}

	c.Update(float32(1.0 / float64(ebiten.TPS())))
}

// hitTest finds the topmost element at page coordinates (x, y): the last
// match in DOM order wins, matching paint order. Elements are tested at
// their translated positions. Invisible subtrees and zero-size elements
// are skipped.
func hitTest(root *reveal.Element, x, y float64) *reveal.Element {
	if root.IsDisposed() || !root.Visible {
		return nil
	}

	var hit *reveal.Element
	if root.Width > 0 && root.Height > 0 {
		bounds := reveal.Rect{
			X:      root.X + root.TranslateX,
			Y:      root.Y + root.TranslateY,
			Width:  root.Width,
			Height: root.Height,
		}
		if bounds.Contains(x, y) {
			hit = root
		}
	}
	for _, child := range root.Children() {
		if childHit := hitTest(child, x, y); childHit != nil {
			hit = childHit
		}
	}
	return hit
}
