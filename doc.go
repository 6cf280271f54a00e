// Package reveal attaches scroll-triggered and hover-triggered effects to
// elements laid out in a vertically scrolling page: parallax translation,
// fade-in on first visibility, animated numeric counters, staggered grid
// reveals, and smooth anchor scrolling.
//
// Reveal is renderer-agnostic. Elements are plain structs describing page
// geometry and render state; a [Controller] mutates them through a narrow
// [Renderer] interface as the viewport scrolls. Hosts read the element
// fields back each frame and draw however they like. An Ebitengine adapter
// lives in reveal/ebitenhost.
//
// # Quick start
//
//	root := reveal.NewElement("page")
//	hero := reveal.NewElement("hero", "hero-cube")
//	hero.Y, hero.Height = 120, 300
//	root.AddChild(hero)
//
//	vp := reveal.NewViewport(800, 600, 2400)
//	ctrl := reveal.New(root, vp)
//	ctrl.Init()
//
//	// Each frame:
//	ctrl.Update(dt)
//
// # Behaviors
//
// Every behavior is selected by element class or attribute, configured via
// [Config] (optionally loaded from YAML with [LoadConfig]):
//
//   - Parallax: matched elements are translated by
//     (elementTop - scrollY) * rate each frame.
//   - Fade-in: a one-shot entrance tween (0.8s, overshoot easing) the first
//     time an element is at least 10% visible.
//   - Counters: elements carrying a data-target attribute count up from 0
//     once visible.
//   - Stagger: grid children are hidden up front and revealed in DOM order
//     with 100ms incremental delay once the container is visible.
//   - Anchors: clicking an element whose href is a "#fragment" smooth-scrolls
//     the viewport to the element with that ID.
//   - Hover: lift/glow tweens on hover enter and leave.
//
// All timing is driven by caller-supplied dt through [Controller.Update],
// so effects are deterministic and testable without a real clock. Tweening
// is built on [gween].
//
// [gween]: https://github.com/tanema/gween
package reveal
