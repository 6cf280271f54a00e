package reveal

// VisibilityObserver fires a callback the first time each observed element
// becomes sufficiently visible in the viewport, then stops observing that
// element. The checking is pull-based: the Controller calls check once per
// Update with the current viewport.
type VisibilityObserver struct {
	// Threshold is the minimum visible fraction of the element's height,
	// in (0, 1].
	Threshold float64
	// BottomMargin shrinks the viewport's bottom edge by this many pixels
	// before measuring, so elements trigger only after scrolling a little
	// past the fold.
	BottomMargin float64
	// OnVisible is invoked once per element, after observation of that
	// element has already stopped.
	OnVisible func(*Element)

	targets []*Element
}

// NewVisibilityObserver creates an observer with the given trigger margin.
func NewVisibilityObserver(threshold, bottomMargin float64, onVisible func(*Element)) *VisibilityObserver {
	return &VisibilityObserver{
		Threshold:    threshold,
		BottomMargin: bottomMargin,
		OnVisible:    onVisible,
	}
}

// Observe starts watching el. Observing the same element twice, or a
// disposed element, is a no-op.
func (o *VisibilityObserver) Observe(el *Element) {
	if el == nil || el.IsDisposed() {
		return
	}
	for _, t := range o.targets {
		if t == el {
			return
		}
	}
	o.targets = append(o.targets, el)
}

// Unobserve stops watching el. No-op if el is not observed.
func (o *VisibilityObserver) Unobserve(el *Element) {
	for i, t := range o.targets {
		if t == el {
			copy(o.targets[i:], o.targets[i+1:])
			o.targets[len(o.targets)-1] = nil
			o.targets = o.targets[:len(o.targets)-1]
			return
		}
	}
}

// Len returns the number of elements still being observed.
func (o *VisibilityObserver) Len() int {
	return len(o.targets)
}

// check measures every observed element against the viewport. Elements
// that meet the threshold are removed from observation before their
// callback runs, so a callback can never retrigger itself. Disposed
// elements are dropped silently.
func (o *VisibilityObserver) check(vp *Viewport) {
	if len(o.targets) == 0 {
		return
	}

	var fired []*Element
	kept := o.targets[:0]
	for _, el := range o.targets {
		if el.IsDisposed() {
			continue
		}
		fraction := vp.visibleFraction(el, o.BottomMargin)
		if fraction > 0 && fraction >= o.Threshold {
			fired = append(fired, el)
			continue
		}
		kept = append(kept, el)
	}
	for i := len(kept); i < len(o.targets); i++ {
		o.targets[i] = nil
	}
	o.targets = kept

	if o.OnVisible == nil {
		return
	}
	for _, el := range fired {
		o.OnVisible(el)
	}
}
