package reveal

import (
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// counterAnim counts an element's text up from 0 to a target integer.
// The displayed value each frame is the floor of a linear interpolation,
// so it is monotonically non-decreasing and lands exactly on the target.
type counterAnim struct {
	el     *Element
	tween  *gween.Tween
	target int
	done   bool
}

func newCounterAnim(el *Element, target int, duration float32) *counterAnim {
	return &counterAnim{
		el:     el,
		tween:  gween.New(0, float32(target), duration, ease.Linear),
		target: target,
	}
}

// update advances the count by dt seconds and writes the displayed text
// through the renderer. Returns true while the animation is still running.
func (c *counterAnim) update(dt float32, r Renderer) bool {
	if c.done {
		return false
	}
	if c.el.IsDisposed() {
		c.done = true
		return false
	}

	val, finished := c.tween.Update(dt)
	if finished {
		// Land exactly on the target, immune to float rounding.
		r.SetText(c.el, strconv.Itoa(c.target))
		c.done = true
		return false
	}
	r.SetText(c.el, strconv.Itoa(int(val)))
	return true
}
