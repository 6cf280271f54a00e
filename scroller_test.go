package reveal

import (
	"math"
	"testing"
)

func anchorPage() (*Element, *Element) {
	root := NewElement("page")

	nav := NewElement("nav", "btn")
	nav.SetAttr("href", "#stats")
	nav.Width, nav.Height = 140, 40
	root.AddChild(nav)

	stats := NewElement("stats")
	stats.ID = "stats"
	stats.Y = 1000
	stats.Width, stats.Height = 800, 200
	root.AddChild(stats)

	return root, nav
}

func TestAnchorClickScrollsToTarget(t *testing.T) {
	root, nav := anchorPage()
	vp := NewViewport(800, 600, 2400)
	c := New(root, vp)
	c.Init()

	if !c.Click(nav) {
		t.Fatal("fragment click should be handled")
	}
	if !vp.Scrolling() {
		t.Fatal("expected a smooth scroll in flight")
	}

	// Default scroll duration is 0.8s.
	c.Update(0.4)
	c.Update(0.4)

	if math.Abs(vp.ScrollY-1000) > 0.5 {
		t.Errorf("ScrollY = %f, want ~1000 (target top at viewport top)", vp.ScrollY)
	}
}

func TestAnchorClickMissingTargetIsSwallowed(t *testing.T) {
	root, _ := anchorPage()
	nav := NewElement("broken", "btn")
	nav.SetAttr("href", "#nowhere")
	root.AddChild(nav)

	vp := NewViewport(800, 600, 2400)
	c := New(root, vp)
	c.Init()

	if !c.Click(nav) {
		t.Fatal("fragment click should be handled even without a target")
	}
	c.Update(0.8)
	if vp.ScrollY != 0 {
		t.Errorf("ScrollY = %f, want 0 (no target, no scroll)", vp.ScrollY)
	}
}

func TestNonFragmentHrefIsNotHandled(t *testing.T) {
	root, _ := anchorPage()
	link := NewElement("external", "btn")
	link.SetAttr("href", "https://example.com")
	root.AddChild(link)

	vp := NewViewport(800, 600, 2400)
	c := New(root, vp)
	c.Init()

	if c.Click(link) {
		t.Error("external link should be left to the host")
	}
	if vp.Scrolling() {
		t.Error("external link must not scroll")
	}
}

func TestClickWithoutHref(t *testing.T) {
	root, _ := anchorPage()
	plain := NewElement("plain")
	root.AddChild(plain)

	vp := NewViewport(800, 600, 2400)
	c := New(root, vp)
	c.Init()

	if c.Click(plain) {
		t.Error("element without href should not be handled")
	}
}

func TestAnchorScrollClampsToContentEnd(t *testing.T) {
	root := NewElement("page")
	nav := NewElement("nav", "btn")
	nav.SetAttr("href", "#footer")
	root.AddChild(nav)

	footer := NewElement("footer")
	footer.ID = "footer"
	footer.Y = 2300 // deeper than the max scroll offset of 1800
	root.AddChild(footer)

	vp := NewViewport(800, 600, 2400)
	c := New(root, vp)
	c.Init()

	c.Click(nav)
	c.Update(0.4)
	c.Update(0.4)

	if vp.ScrollY != 1800 {
		t.Errorf("ScrollY = %f, want 1800 (clamped)", vp.ScrollY)
	}
}
