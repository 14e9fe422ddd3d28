package transition

import (
	goerrors "errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-vessel/vessel/pkg/errors"
)

// builtinDuration is the default duration for animated styles.
const builtinDuration = 400 * time.Millisecond

// Config represents the optional vessel.yaml transition configuration.
type Config struct {
	DefaultStyle string                 `yaml:"default_style,omitempty"`
	Styles       map[string]StyleConfig `yaml:"styles,omitempty"`
}

// StyleConfig overrides the defaults of a single style.
type StyleConfig struct {
	// Duration is a Go duration string (e.g. "250ms").
	Duration string `yaml:"duration,omitempty"`
	// Curve names one of the registered timing curves.
	Curve string `yaml:"curve,omitempty"`
}

// Defaults holds the resolved per-style duration and curve defaults that
// back the DefaultDuration sentinel.
type Defaults struct {
	// DefaultStyle is the style containers use when none was requested.
	DefaultStyle Style

	durations map[Style]time.Duration
	curveOver map[Style]CurveName
}

// BuiltinDefaults returns the defaults used without any configuration:
// 400ms for every animated style, zero for none, style-derived curves.
func BuiltinDefaults() *Defaults {
	return &Defaults{
		DefaultStyle: StyleCoverFromBottom,
		durations:    make(map[Style]time.Duration),
		curveOver:    make(map[Style]CurveName),
	}
}

// DurationFor returns the default duration for a style.
func (d *Defaults) DurationFor(style Style) time.Duration {
	if dur, ok := d.durations[style]; ok {
		return dur
	}
	if style == StyleNone {
		return 0
	}
	return builtinDuration
}

// CurveFor returns the timing curve for a style, honoring overrides.
func (d *Defaults) CurveFor(style Style) CurveName {
	if curve, ok := d.curveOver[style]; ok {
		return curve
	}
	return styleCurve(style)
}

// LoadDefaults reads a transition configuration file. A missing file is not
// an error: the builtin defaults are returned, matching optional-config
// semantics.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return BuiltinDefaults(), nil
		}
		return nil, errors.New("transition.LoadDefaults", errors.KindConfig,
			fmt.Errorf("failed to read %s: %w", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New("transition.LoadDefaults", errors.KindConfig,
			fmt.Errorf("failed to parse %s: %w", path, err))
	}

	return resolve(&cfg)
}

// resolve validates a parsed config against the style and curve registries.
func resolve(cfg *Config) (*Defaults, error) {
	defaults := BuiltinDefaults()

	if cfg.DefaultStyle != "" {
		style, ok := ParseStyle(cfg.DefaultStyle)
		if !ok {
			return nil, errors.Newf("transition.LoadDefaults", errors.KindConfig,
				"unknown default_style %q", cfg.DefaultStyle)
		}
		defaults.DefaultStyle = style
	}

	for name, sc := range cfg.Styles {
		style, ok := ParseStyle(name)
		if !ok {
			return nil, errors.Newf("transition.LoadDefaults", errors.KindConfig,
				"unknown style %q", name)
		}
		if sc.Duration != "" {
			dur, err := time.ParseDuration(sc.Duration)
			if err != nil || dur < 0 {
				return nil, errors.Newf("transition.LoadDefaults", errors.KindConfig,
					"invalid duration %q for style %q", sc.Duration, name)
			}
			defaults.durations[style] = dur
		}
		if sc.Curve != "" {
			if !ValidCurve(CurveName(sc.Curve)) {
				return nil, errors.Newf("transition.LoadDefaults", errors.KindConfig,
					"unknown curve %q for style %q", sc.Curve, name)
			}
			defaults.curveOver[style] = CurveName(sc.Curve)
		}
	}

	return defaults, nil
}

var (
	activeDefaults = BuiltinDefaults()
	defaultsMu     sync.RWMutex
)

// SetDefaults installs process-wide transition defaults, typically at
// startup after LoadDefaults. Pass nil to restore the builtin defaults.
func SetDefaults(d *Defaults) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	if d == nil {
		activeDefaults = BuiltinDefaults()
	} else {
		activeDefaults = d
	}
}

// CurrentDefaults returns the active transition defaults.
func CurrentDefaults() *Defaults {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return activeDefaults
}
