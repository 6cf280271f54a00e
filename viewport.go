package reveal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport is the window into the page: a scroll offset plus dimensions.
// It owns the smooth-scroll animation used by anchor navigation.
type Viewport struct {
	// ScrollY is the page Y coordinate at the top of the viewport.
	ScrollY float64
	// Width and Height are the viewport dimensions in pixels.
	Width, Height float64
	// ContentHeight is the total page height. ScrollY is clamped to
	// [0, ContentHeight - Height].
	ContentHeight float64

	scrollTween *gween.Tween
	dirty       bool
}

// NewViewport creates a viewport at scroll offset 0.
func NewViewport(width, height, contentHeight float64) *Viewport {
	return &Viewport{
		Width:         width,
		Height:        height,
		ContentHeight: contentHeight,
		dirty:         true,
	}
}

// ScrollTo animates the viewport to the given page offset over duration
// seconds. A non-positive duration snaps immediately. Starting a new scroll
// replaces any scroll already in flight.
func (v *Viewport) ScrollTo(y float64, duration float32, fn ease.TweenFunc) {
	target := v.clamp(y)
	if duration <= 0 {
		v.scrollTween = nil
		v.ScrollY = target
		v.dirty = true
		return
	}
	v.scrollTween = gween.New(float32(v.ScrollY), float32(target), duration, fn)
}

// ScrollBy shifts the viewport immediately by dy pixels, cancelling any
// smooth scroll in flight. Used for wheel input.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.ScrollY = v.clamp(v.ScrollY + dy)
	v.dirty = true
}

// Scrolling reports whether a smooth scroll is in flight.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Update advances the smooth-scroll animation. Called from Controller.Update.
func (v *Viewport) Update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	val, done := v.scrollTween.Update(dt)
	v.ScrollY = float64(val)
	v.dirty = true
	if done {
		v.scrollTween = nil
	}
}

// VisibleBounds returns the page-space rectangle currently in view.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// Dirty reports whether the scroll offset changed since the last ClearDirty.
func (v *Viewport) Dirty() bool {
	return v.dirty
}

// ClearDirty resets the dirty flag. Hosts call this after drawing.
func (v *Viewport) ClearDirty() {
	v.dirty = false
}

// clamp restricts a scroll offset to the scrollable range.
func (v *Viewport) clamp(y float64) float64 {
	max := v.ContentHeight - v.Height
	if max < 0 {
		max = 0
	}
	if y < 0 {
		return 0
	}
	if y > max {
		return max
	}
	return y
}

// visibleFraction returns how much of el's height lies inside the viewport
// after shrinking the viewport bottom by bottomMargin pixels. Returns a
// value in [0, 1]. Zero-height elements report 1 when their top edge is in
// range and 0 otherwise.
func (v *Viewport) visibleFraction(el *Element, bottomMargin float64) float64 {
	top := v.ScrollY
	bottom := v.ScrollY + v.Height - bottomMargin
	if bottom <= top {
		return 0
	}

	elTop := el.Y
	elBottom := el.Y + el.Height

	if el.Height <= 0 {
		if elTop >= top && elTop <= bottom {
			return 1
		}
		return 0
	}

	overlapTop := elTop
	if top > overlapTop {
		overlapTop = top
	}
	overlapBottom := elBottom
	if bottom < overlapBottom {
		overlapBottom = bottom
	}
	if overlapBottom <= overlapTop {
		return 0
	}
	return (overlapBottom - overlapTop) / el.Height
}
