package reveal

// Renderer is the narrow surface through which behaviors mutate elements.
// The default ElementRenderer writes element fields directly; tests swap in
// a recording implementation to observe behavior without a host.
type Renderer interface {
	// SetTranslation sets the element's translation offset in pixels.
	SetTranslation(el *Element, x, y float64)
	// SetOpacity sets the element's opacity in [0, 1].
	SetOpacity(el *Element, opacity float64)
	// SetScale sets the element's uniform scale factor.
	SetScale(el *Element, scale float64)
	// SetText replaces the element's displayed text.
	SetText(el *Element, text string)
}

// ElementRenderer writes render state straight onto the element and marks
// it dirty. Disposed elements are never written.
type ElementRenderer struct{}

func (ElementRenderer) SetTranslation(el *Element, x, y float64) {
	if el.IsDisposed() {
		return
	}
	el.TranslateX = x
	el.TranslateY = y
	el.MarkDirty()
}

func (ElementRenderer) SetOpacity(el *Element, opacity float64) {
	if el.IsDisposed() {
		return
	}
	el.Opacity = opacity
	el.MarkDirty()
}

func (ElementRenderer) SetScale(el *Element, scale float64) {
	if el.IsDisposed() {
		return
	}
	el.Scale = scale
	el.MarkDirty()
}

func (ElementRenderer) SetText(el *Element, text string) {
	if el.IsDisposed() {
		return
	}
	el.Text = text
	el.MarkDirty()
}
