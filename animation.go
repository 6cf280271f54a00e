package reveal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Element simultaneously.
// Create one via the convenience constructors (TweenOpacity,
// TweenTranslation, TweenScale) or by playing a preset, and call Update(dt)
// each frame. The group auto-applies values and marks the element dirty.
// If the target element is disposed, the group stops immediately.
//
// The Controller updates the groups it creates; standalone groups are
// updated by the caller.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Element
	Done   bool

	// OnComplete, if set, is called once when all tweens finish. It is not
	// called when the group stops early because the element was disposed.
	OnComplete func()
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the element dirty. If the target element has been
// disposed, Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}

	if g.target != nil {
		g.target.MarkDirty()
	}

	if allDone {
		g.Done = true
		if g.OnComplete != nil {
			g.OnComplete()
		}
	}
}

// add appends one tween to the group. Panics if the group is full.
func (g *TweenGroup) add(field *float64, from, to float64, duration float32, fn ease.TweenFunc) {
	if g.count >= len(g.tweens) {
		panic("reveal: tween group is full")
	}
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenOpacity creates a TweenGroup that animates el.Opacity to the target
// value over the specified duration using the easing function.
func TweenOpacity(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: el}
	g.add(&el.Opacity, el.Opacity, to, duration, fn)
	return g
}

// TweenTranslation creates a TweenGroup that animates el.TranslateX and
// el.TranslateY to the given offsets over the specified duration.
func TweenTranslation(el *Element, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: el}
	g.add(&el.TranslateX, el.TranslateX, toX, duration, fn)
	g.add(&el.TranslateY, el.TranslateY, toY, duration, fn)
	return g
}

// TweenScale creates a TweenGroup that animates el.Scale to the target
// value over the specified duration using the easing function.
func TweenScale(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: el}
	g.add(&el.Scale, el.Scale, to, duration, fn)
	return g
}

// Oscillation loops a vertical bob on an element's TranslateY: up half a
// period, back down, repeat. Backs the "float" preset. Unlike a TweenGroup
// it never finishes on its own; call Stop to end it.
type Oscillation struct {
	seq     *gween.Sequence
	target  *Element
	Stopped bool
}

// Oscillate starts a looping bob of the given amplitude (pixels, upward)
// and full period (seconds) on el.TranslateY.
func Oscillate(el *Element, amplitude float64, period float32) *Oscillation {
	half := period / 2
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, float32(-amplitude), half, ease.InOutSine),
		gween.New(float32(-amplitude), 0, half, ease.InOutSine),
	)
	return &Oscillation{seq: seq, target: el}
}

// Update advances the oscillation by dt seconds. Stops if the element has
// been disposed.
func (o *Oscillation) Update(dt float32) {
	if o.Stopped {
		return
	}
	if o.target != nil && o.target.IsDisposed() {
		o.Stopped = true
		return
	}
	val, _, seqDone := o.seq.Update(dt)
	o.target.TranslateY = float64(val)
	o.target.MarkDirty()
	if seqDone {
		o.seq.Reset()
	}
}

// Stop ends the oscillation. The element keeps its current offset.
func (o *Oscillation) Stop() {
	o.Stopped = true
}
