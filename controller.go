package reveal

import (
	"fmt"
	"strconv"
)

// Controller bundles a page's effects: it matches elements by class and
// attribute at Init time, then advances everything from Update(dt).
//
// The lifecycle is one-way: uninitialized → initialized (first Init call;
// later calls are no-ops) → disposed. A host may run several independent
// controllers, each with its own viewport and element tree.
type Controller struct {
	cfg      Config
	root     *Element
	vp       *Viewport
	renderer Renderer
	debug    bool

	initialized bool
	disposed    bool

	// Preset table, built once per Init. registrations counts how many
	// times the table was (re)built — it must stay at 1.
	presets       map[string]Preset
	registrations int

	parallax  parallaxEffect
	observers []*VisibilityObserver
	hovered   []*Element

	counters     []*counterAnim
	staggers     []*staggerReveal
	active       []*TweenGroup
	oscillations []*Oscillation
}

// Option configures a Controller at construction time.
type Option func(*Controller)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithRenderer replaces the default ElementRenderer.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithDebug enables warning output to stderr.
func WithDebug(enabled bool) Option {
	return func(c *Controller) { c.debug = enabled }
}

// New creates a controller over the given element tree and viewport.
// Call Init before Update. Panics if root or vp is nil.
func New(root *Element, vp *Viewport, opts ...Option) *Controller {
	if root == nil {
		panic("reveal: nil root element")
	}
	if vp == nil {
		panic("reveal: nil viewport")
	}
	c := &Controller{
		cfg:      DefaultConfig(),
		root:     root,
		vp:       vp,
		renderer: ElementRenderer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root returns the controller's element tree root.
func (c *Controller) Root() *Element {
	return c.root
}

// Viewport returns the controller's viewport.
func (c *Controller) Viewport() *Viewport {
	return c.vp
}

// Initialized reports whether Init has run.
func (c *Controller) Initialized() bool {
	return c.initialized
}

// Init matches elements and wires every behavior. The transition is
// one-way and idempotent: the first call does the work, later calls are
// no-ops. Init on a disposed controller panics.
func (c *Controller) Init() {
	if c.disposed {
		panic("reveal: Init on disposed controller")
	}
	if c.initialized {
		return
	}
	c.initialized = true

	c.presets = defaultPresets(c.cfg.FadeDuration)
	c.registrations++

	// Parallax targets are collected once; the offsets are recomputed
	// from scratch every Update.
	c.parallax = parallaxEffect{
		rate:    c.cfg.ParallaxRate,
		targets: collectByClass(c.root, c.cfg.ParallaxClasses, nil),
	}

	// Fade-in: one-shot entrance the first time each element is visible.
	fade := NewVisibilityObserver(c.cfg.FadeThreshold, c.cfg.FadeBottomMargin, func(el *Element) {
		if err := c.Play(PresetFadeUp, el); err != nil {
			c.debugf("fade-in: %v", err)
		}
	})
	for _, el := range collectByClass(c.root, c.cfg.FadeClasses, nil) {
		fade.Observe(el)
	}
	c.observers = append(c.observers, fade)

	// Counters: elements carrying the target attribute.
	counters := NewVisibilityObserver(c.cfg.FadeThreshold, c.cfg.FadeBottomMargin, c.startCounter)
	for _, el := range collectByAttr(c.root, c.cfg.CounterAttr, nil) {
		counters.Observe(el)
	}
	c.observers = append(c.observers, counters)

	// Stagger: children are hidden right now; the reveal waits for the
	// container to scroll into view.
	grids := NewVisibilityObserver(c.cfg.StaggerThreshold, 0, c.armStagger)
	for _, container := range collectByClass(c.root, c.cfg.StaggerClasses, nil) {
		c.staggers = append(c.staggers, newStaggerReveal(container, c.cfg.StaggerStep, c.cfg.StaggerDuration, c.renderer))
		grids.Observe(container)
	}
	c.observers = append(c.observers, grids)

	// Hover targets get lift/glow on enter and a return tween on leave.
	c.hovered = collectByClass(c.root, c.cfg.HoverClasses, nil)
}

// Update advances the whole controller by dt seconds: viewport scroll,
// parallax offsets, visibility checks, counters, staggered reveals, and
// running tweens. No-op before Init or after Dispose.
func (c *Controller) Update(dt float32) {
	if !c.initialized || c.disposed {
		return
	}

	c.vp.Update(dt)
	c.parallax.apply(c.vp, c.renderer)

	for _, o := range c.observers {
		o.check(c.vp)
	}

	n := 0
	for _, counter := range c.counters {
		if counter.update(dt, c.renderer) {
			c.counters[n] = counter
			n++
		}
	}
	c.counters = c.counters[:n]

	n = 0
	for _, s := range c.staggers {
		if s.update(dt) {
			c.staggers[n] = s
			n++
		}
	}
	c.staggers = c.staggers[:n]

	n = 0
	for _, g := range c.active {
		g.Update(dt)
		if !g.Done {
			c.active[n] = g
			n++
		}
	}
	c.active = c.active[:n]

	n = 0
	for _, o := range c.oscillations {
		o.Update(dt)
		if !o.Stopped {
			c.oscillations[n] = o
			n++
		}
	}
	c.oscillations = c.oscillations[:n]
}

// Play starts the named preset on el and hands the resulting animation to
// the controller's update loop. Returns an error for an unknown preset.
func (c *Controller) Play(name string, el *Element) error {
	p, ok := c.presets[name]
	if !ok {
		return fmt.Errorf("reveal: unknown preset %q", name)
	}
	if el == nil || el.IsDisposed() {
		return nil
	}
	group, osc := p.instantiate(el, c.renderer)
	if group != nil {
		c.active = append(c.active, group)
	}
	if osc != nil {
		c.oscillations = append(c.oscillations, osc)
	}
	return nil
}

// Click routes a click on el: the element's own OnClick fires first, then
// same-page fragment links are intercepted and smooth-scrolled. Returns
// true if the click was handled as an anchor (the host should not
// navigate). Nil or disposed elements report false.
func (c *Controller) Click(el *Element) bool {
	if !c.initialized || c.disposed || el == nil || el.IsDisposed() {
		return false
	}
	if el.OnClick != nil {
		el.OnClick(el)
	}
	return c.anchorScroll(el)
}

// HoverEnter plays the hover utility presets on el if it is a hover
// target, and fires the element's OnHoverEnter callback.
func (c *Controller) HoverEnter(el *Element) {
	if !c.initialized || c.disposed || el == nil || el.IsDisposed() {
		return
	}
	if el.OnHoverEnter != nil {
		el.OnHoverEnter(el)
	}
	if !c.isHoverTarget(el) {
		return
	}
	if err := c.Play(PresetHoverLift, el); err != nil {
		c.debugf("hover: %v", err)
	}
	if err := c.Play(PresetHoverGlow, el); err != nil {
		c.debugf("hover: %v", err)
	}
}

// HoverLeave tweens a hover target back to rest, and fires the element's
// OnHoverLeave callback.
func (c *Controller) HoverLeave(el *Element) {
	if !c.initialized || c.disposed || el == nil || el.IsDisposed() {
		return
	}
	if el.OnHoverLeave != nil {
		el.OnHoverLeave(el)
	}
	if !c.isHoverTarget(el) {
		return
	}
	p := c.presets[PresetHoverLift]
	c.active = append(c.active,
		TweenTranslation(el, 0, 0, p.Duration, p.Ease),
		TweenScale(el, 1, p.Duration, p.Ease),
	)
}

// Dispose tears the controller down: all observers, pending animations,
// and matched element lists are dropped. Terminal — the controller cannot
// be reinitialized.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.observers = nil
	c.counters = nil
	c.staggers = nil
	c.active = nil
	c.oscillations = nil
	c.parallax.targets = nil
	c.hovered = nil
	c.presets = nil
}

// isHoverTarget reports whether Init matched el as a hover element.
func (c *Controller) isHoverTarget(el *Element) bool {
	for _, t := range c.hovered {
		if t == el {
			return true
		}
	}
	return false
}

// startCounter begins the count-up for a visible counter element. The
// per-element marker guarantees at-most-once execution even if the same
// element is observed by more than one observer. A non-integer target
// skips the element entirely rather than displaying garbage.
func (c *Controller) startCounter(el *Element) {
	if el.counterDone {
		return
	}
	el.counterDone = true

	target, err := strconv.Atoi(el.Attr(c.cfg.CounterAttr))
	if err != nil {
		c.debugf("counter %q: invalid target %q", el.Name, el.Attr(c.cfg.CounterAttr))
		return
	}
	c.counters = append(c.counters, newCounterAnim(el, target, c.cfg.CounterDuration))
}

// armStagger starts the reveal countdowns for a grid that just became
// visible.
func (c *Controller) armStagger(container *Element) {
	for _, s := range c.staggers {
		if s.container == container {
			s.arm()
			return
		}
	}
}
