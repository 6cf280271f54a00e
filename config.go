package reveal

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects which elements each behavior targets and how the
// animations are timed. Zero values in a YAML file fall back to the
// defaults because LoadConfig unmarshals over DefaultConfig.
type Config struct {
	// Parallax
	ParallaxRate    float64  `yaml:"parallax_rate"`
	ParallaxClasses []string `yaml:"parallax_classes"`

	// Fade-in on visibility
	FadeClasses      []string `yaml:"fade_classes"`
	FadeDuration     float32  `yaml:"fade_duration"`
	FadeThreshold    float64  `yaml:"fade_threshold"`
	FadeBottomMargin float64  `yaml:"fade_bottom_margin"`

	// Counters
	CounterAttr     string  `yaml:"counter_attr"`
	CounterDuration float32 `yaml:"counter_duration"`

	// Staggered grid reveal
	StaggerClasses   []string `yaml:"stagger_classes"`
	StaggerStep      float32  `yaml:"stagger_step"`
	StaggerDuration  float32  `yaml:"stagger_duration"`
	StaggerThreshold float64  `yaml:"stagger_threshold"`

	// Smooth anchor scrolling
	ScrollDuration float32 `yaml:"scroll_duration"`

	// Hover effects
	HoverClasses []string `yaml:"hover_classes"`
}

// DefaultConfig returns the stock tuning: 0.5 parallax rate, 0.8s
// overshoot fade at 10% visibility with a 50px bottom margin, 1.5s
// counters on data-target, 100ms stagger steps, 0.8s anchor scrolls.
func DefaultConfig() Config {
	return Config{
		ParallaxRate:    0.5,
		ParallaxClasses: []string{"hero-cube", "floating-card"},

		FadeClasses:      []string{"project-card", "skill-category", "timeline-item"},
		FadeDuration:     0.8,
		FadeThreshold:    0.10,
		FadeBottomMargin: 50,

		CounterAttr:     "data-target",
		CounterDuration: 1.5,

		StaggerClasses:   []string{"projects-grid", "skills-grid"},
		StaggerStep:      0.1,
		StaggerDuration:  0.6,
		StaggerThreshold: 0.10,

		ScrollDuration: 0.8,

		HoverClasses: []string{"btn"},
	}
}

// LoadConfig reads a YAML tuning file if present. A missing file returns
// DefaultConfig with no error; fields absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
