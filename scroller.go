package reveal

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// anchorScroll handles a click on an element carrying an href attribute.
// Same-page fragment links ("#section") are intercepted: the viewport
// smooth-scrolls so the target element's top aligns with the viewport top.
// A fragment with no matching element is swallowed silently. Non-fragment
// hrefs are not handled — the host performs its own navigation.
func (c *Controller) anchorScroll(el *Element) bool {
	href := el.Attr("href")
	if !strings.HasPrefix(href, "#") {
		return false
	}

	target := c.root.FindByID(strings.TrimPrefix(href, "#"))
	if target == nil {
		c.debugf("anchor %q has no matching element", href)
		return true
	}

	c.vp.ScrollTo(target.Y, c.cfg.ScrollDuration, ease.InOutQuad)
	return true
}
