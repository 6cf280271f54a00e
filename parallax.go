package reveal

// parallaxEffect shifts matched elements vertically in proportion to the
// scroll offset. Applied every update, no debounce: the offset is a pure
// function of the current scroll position.
type parallaxEffect struct {
	rate    float64
	targets []*Element
}

// apply writes translation offsets for every target whose top edge is
// above the viewport bottom. Elements below the fold are left untouched.
func (p *parallaxEffect) apply(vp *Viewport, r Renderer) {
	bottom := vp.ScrollY + vp.Height
	for _, el := range p.targets {
		if el.IsDisposed() {
			continue
		}
		if el.Y >= bottom {
			continue
		}
		r.SetTranslation(el, 0, (el.Y-vp.ScrollY)*p.rate)
	}
}
