package reveal

import "github.com/tanema/gween/ease"

// Preset is a named entrance or utility animation. Entrance presets snap
// the element to a "from" state and tween it to the "to" state; looping
// presets run an Oscillation instead.
type Preset struct {
	Name     string
	Duration float32
	Ease     ease.TweenFunc

	// Opacity track
	AnimateOpacity         bool
	FromOpacity, ToOpacity float64
	// Translation track
	AnimateTranslate       bool
	FromX, FromY, ToX, ToY float64
	// Scale track
	AnimateScale       bool
	FromScale, ToScale float64

	// Loop marks an oscillating preset (the "float" bob). Amplitude and
	// Period replace the tween tracks above.
	Loop      bool
	Amplitude float64
	Period    float32
}

// Preset and utility class names registered by the controller.
const (
	PresetFadeUp     = "fade-up"
	PresetSlideLeft  = "slide-left"
	PresetSlideRight = "slide-right"
	PresetScaleIn    = "scale-in"
	PresetFloat      = "float"
	PresetHoverLift  = "hover-lift"
	PresetHoverGlow  = "hover-glow"
)

// defaultPresets builds the built-in preset table. The fade-up entrance is
// the one used for fade-in-on-visibility; its duration and easing come from
// the config so hosts can retune it.
func defaultPresets(fadeDuration float32) map[string]Preset {
	return map[string]Preset{
		PresetFadeUp: {
			Name:             PresetFadeUp,
			Duration:         fadeDuration,
			Ease:             ease.OutBack,
			AnimateOpacity:   true,
			FromOpacity:      0,
			ToOpacity:        1,
			AnimateTranslate: true,
			FromY:            staggerHideOffset,
		},
		PresetSlideLeft: {
			Name:             PresetSlideLeft,
			Duration:         fadeDuration,
			Ease:             ease.OutCubic,
			AnimateOpacity:   true,
			FromOpacity:      0,
			ToOpacity:        1,
			AnimateTranslate: true,
			FromX:            -60,
		},
		PresetSlideRight: {
			Name:             PresetSlideRight,
			Duration:         fadeDuration,
			Ease:             ease.OutCubic,
			AnimateOpacity:   true,
			FromOpacity:      0,
			ToOpacity:        1,
			AnimateTranslate: true,
			FromX:            60,
		},
		PresetScaleIn: {
			Name:           PresetScaleIn,
			Duration:       fadeDuration,
			Ease:           ease.OutBack,
			AnimateOpacity: true,
			FromOpacity:    0,
			ToOpacity:      1,
			AnimateScale:   true,
			FromScale:      0.8,
			ToScale:        1,
		},
		PresetFloat: {
			Name:      PresetFloat,
			Loop:      true,
			Amplitude: 12,
			Period:    3,
		},
		// Utility presets for hover-triggered effects. These tween from the
		// element's current state, so enter and leave compose cleanly.
		PresetHoverLift: {
			Name:             PresetHoverLift,
			Duration:         0.2,
			Ease:             ease.OutQuad,
			AnimateTranslate: true,
			ToY:              -6,
		},
		PresetHoverGlow: {
			Name:         PresetHoverGlow,
			Duration:     0.2,
			Ease:         ease.OutQuad,
			AnimateScale: true,
			ToScale:      1.05,
		},
	}
}

// instantiate builds the running animation for a preset on an element.
// Exactly one of the two returns is non-nil. Entrance presets snap the
// "from" state through the renderer before tweening; utility presets
// (zero "from" deltas) start from wherever the element currently is.
func (p Preset) instantiate(el *Element, r Renderer) (*TweenGroup, *Oscillation) {
	if p.Loop {
		return nil, Oscillate(el, p.Amplitude, p.Period)
	}

	g := &TweenGroup{target: el}
	if p.AnimateOpacity {
		r.SetOpacity(el, p.FromOpacity)
		g.add(&el.Opacity, p.FromOpacity, p.ToOpacity, p.Duration, p.Ease)
	}
	if p.AnimateTranslate {
		fromX, fromY := el.TranslateX, el.TranslateY
		if p.FromX != 0 || p.FromY != 0 {
			fromX, fromY = p.FromX, p.FromY
			r.SetTranslation(el, fromX, fromY)
		}
		g.add(&el.TranslateX, fromX, p.ToX, p.Duration, p.Ease)
		g.add(&el.TranslateY, fromY, p.ToY, p.Duration, p.Ease)
	}
	if p.AnimateScale {
		fromScale := el.Scale
		if p.FromScale != 0 {
			fromScale = p.FromScale
			r.SetScale(el, fromScale)
		}
		g.add(&el.Scale, fromScale, p.ToScale, p.Duration, p.Ease)
	}
	return g, nil
}
