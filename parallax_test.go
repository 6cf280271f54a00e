package reveal

import (
	"math"
	"testing"
)

func TestParallaxOffsetFormula(t *testing.T) {
	vp := NewViewport(800, 600, 2400)
	vp.ScrollBy(100)

	el := NewElement("hero", "hero-cube")
	el.Y = 500
	el.Height = 300

	p := parallaxEffect{rate: 0.5, targets: []*Element{el}}
	p.apply(vp, ElementRenderer{})

	// (500 - 100) * 0.5 = 200.
	if math.Abs(el.TranslateY-200) > 0.001 {
		t.Errorf("TranslateY = %f, want 200", el.TranslateY)
	}
	if el.TranslateX != 0 {
		t.Errorf("TranslateX = %f, want 0", el.TranslateX)
	}
}

func TestParallaxOffsetShrinksWithScroll(t *testing.T) {
	vp := NewViewport(800, 600, 2400)

	el := NewElement("hero", "hero-cube")
	el.Y = 400
	el.Height = 300

	p := parallaxEffect{rate: 0.5, targets: []*Element{el}}

	p.apply(vp, ElementRenderer{})
	first := el.TranslateY

	vp.ScrollBy(200)
	p.apply(vp, ElementRenderer{})
	second := el.TranslateY

	if second >= first {
		t.Errorf("offset should shrink as scroll grows: %f then %f", first, second)
	}
}

func TestParallaxSkipsElementsBelowViewport(t *testing.T) {
	vp := NewViewport(800, 600, 2400)

	el := NewElement("card", "floating-card")
	el.Y = 900 // below 0+600
	el.Height = 100

	r := &recordingRenderer{}
	p := parallaxEffect{rate: 0.5, targets: []*Element{el}}
	p.apply(vp, r)

	if n := r.countOf("translate", el); n != 0 {
		t.Errorf("wrote %d translations to a below-fold element, want 0", n)
	}
}

func TestParallaxSkipsDisposed(t *testing.T) {
	vp := NewViewport(800, 600, 2400)

	el := NewElement("hero", "hero-cube")
	el.Y = 100
	el.Dispose()

	r := &recordingRenderer{}
	p := parallaxEffect{rate: 0.5, targets: []*Element{el}}
	p.apply(vp, r)

	if len(r.calls) != 0 {
		t.Error("disposed element must not receive parallax writes")
	}
}

func TestParallaxIsPureFunctionOfScroll(t *testing.T) {
	vp := NewViewport(800, 600, 2400)
	vp.ScrollBy(300)

	el := NewElement("hero", "hero-cube")
	el.Y = 500

	p := parallaxEffect{rate: 0.5, targets: []*Element{el}}
	p.apply(vp, ElementRenderer{})
	first := el.TranslateY

	// Re-applying at the same scroll position writes the same offset.
	p.apply(vp, ElementRenderer{})
	if el.TranslateY != first {
		t.Errorf("offset changed on re-apply: %f then %f", first, el.TranslateY)
	}
}
