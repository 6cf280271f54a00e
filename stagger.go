package reveal

import "github.com/tanema/gween/ease"

// staggerHideOffset is how far down (pixels) grid children sit while hidden.
const staggerHideOffset = 30.0

// staggerChild is one grid item waiting out its reveal delay.
type staggerChild struct {
	el    *Element
	delay float32
	group *TweenGroup // nil until the delay elapses
}

// staggerReveal hides a grid container's children up front and, once the
// container becomes visible, reveals them in DOM order with incremental
// delay. Fire-once: the container is observed until it first appears, then
// the reveal plays out and the whole effect is discarded.
type staggerReveal struct {
	container *Element
	children  []staggerChild
	duration  float32
	armed     bool
}

// newStaggerReveal hides every child of container (opacity 0, shifted
// staggerHideOffset down) and schedules child i to reveal i*step seconds
// after the container becomes visible.
func newStaggerReveal(container *Element, step, duration float32, r Renderer) *staggerReveal {
	s := &staggerReveal{container: container, duration: duration}
	for i, child := range container.Children() {
		r.SetOpacity(child, 0)
		r.SetTranslation(child, 0, staggerHideOffset)
		s.children = append(s.children, staggerChild{
			el:    child,
			delay: float32(i) * step,
		})
	}
	return s
}

// arm starts the delay countdowns. Called when the container first becomes
// visible.
func (s *staggerReveal) arm() {
	s.armed = true
}

// update advances delays and reveal tweens by dt seconds. Returns true
// while any child still has work left.
func (s *staggerReveal) update(dt float32) bool {
	if !s.armed {
		return true
	}

	running := false
	for i := range s.children {
		c := &s.children[i]
		if c.group == nil {
			c.delay -= dt
			if c.delay > 0 {
				running = true
				continue
			}
			if c.el.IsDisposed() {
				continue
			}
			g := &TweenGroup{target: c.el}
			g.add(&c.el.Opacity, c.el.Opacity, 1, s.duration, ease.OutCubic)
			g.add(&c.el.TranslateY, c.el.TranslateY, 0, s.duration, ease.OutCubic)
			c.group = g
			// Carry the overshoot into the first tween frame so reveal
			// timing stays exact regardless of frame boundaries.
			g.Update(-c.delay)
			if !g.Done {
				running = true
			}
			continue
		}
		c.group.Update(dt)
		if !c.group.Done {
			running = true
		}
	}
	return running
}
