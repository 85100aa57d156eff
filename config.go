package flywheel

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ItemConfig seeds one item from a config file.
type ItemConfig struct {
	Text string `toml:"text"`
	// Color overrides the default text color when set.
	Color *Color `toml:"color"`
	// Icon is an optional SVG file drawn above the text.
	Icon     string `toml:"icon"`
	IconSize int    `toml:"icon_size"`
}

// Config configures a Flywheel. Start from DefaultConfig; zero numeric and
// color fields fall back to the package defaults, but a zero Effect3D means
// the fold is off.
type Config struct {
	Orientation     Orientation `toml:"orientation"`
	Effect3D        bool        `toml:"effect_3d"`
	BackgroundColor Color       `toml:"background_color"`
	TextColor       Color       `toml:"text_color"`

	// TextSize is in density-independent pixels.
	TextSize    float64 `toml:"text_size"`
	TextPadding float64 `toml:"text_padding"`
	LineGap     float64 `toml:"line_gap"`
	// Density converts density-independent pixels to pixels. It scales text
	// sizes and fling physics.
	Density float64 `toml:"density"`

	// SnapDuration is in seconds.
	SnapDuration      float32 `toml:"snap_duration"`
	FlingDeceleration float64 `toml:"fling_deceleration"`
	MaxFlingVelocity  float64 `toml:"max_fling_velocity"`
	MinFlingVelocity  float64 `toml:"min_fling_velocity"`
	DragDeadZone      float64 `toml:"drag_dead_zone"`

	// DisablePlaceholders stops an empty list from being seeded with demo
	// items at its first layout.
	DisablePlaceholders bool `toml:"disable_placeholders"`

	// FontPath is a TrueType/OpenType file; empty uses Go Regular.
	FontPath string       `toml:"font"`
	Items    []ItemConfig `toml:"items"`

	LogLevel string `toml:"log_level"`
	// Debug logs per-frame render stats at debug level.
	Debug bool `toml:"debug"`

	// Logger receives all widget logging; nil uses the package Logger.
	Logger *slog.Logger `toml:"-"`
	// Typeface overrides FontPath.
	Typeface *Typeface `toml:"-"`
	// OnReady runs once after the first valid layout.
	OnReady func(fw *Flywheel) `toml:"-"`
}

// DefaultConfig returns the stock configuration: vertical, 3D on, dark gray
// text on white.
func DefaultConfig() Config {
	return Config{
		Orientation:       Vertical,
		Effect3D:          true,
		BackgroundColor:   ColorWhite,
		TextColor:         ColorDarkGray,
		TextSize:          DefaultTextSize,
		TextPadding:       DefaultTextPadding,
		LineGap:           DefaultLineGap,
		Density:           1,
		SnapDuration:      DefaultSnapDuration,
		FlingDeceleration: DefaultFlingDeceleration,
		MaxFlingVelocity:  DefaultMaxFlingVelocity,
		MinFlingVelocity:  DefaultMinFlingVelocity,
		DragDeadZone:      defaultDragDeadZone,
	}
}

// withDefaults fills zero numeric fields and zero colors. A transparent
// background needs a non-zero RGB, e.g. "#00ffffff".
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BackgroundColor == (Color{}) {
		c.BackgroundColor = d.BackgroundColor
	}
	if c.TextColor == (Color{}) {
		c.TextColor = d.TextColor
	}
	if c.TextSize <= 0 {
		c.TextSize = d.TextSize
	}
	if c.TextPadding <= 0 {
		c.TextPadding = d.TextPadding
	}
	if c.LineGap <= 0 {
		c.LineGap = d.LineGap
	}
	if c.Density <= 0 {
		c.Density = d.Density
	}
	if c.SnapDuration <= 0 {
		c.SnapDuration = d.SnapDuration
	}
	if c.FlingDeceleration <= 0 {
		c.FlingDeceleration = d.FlingDeceleration
	}
	if c.MaxFlingVelocity <= 0 {
		c.MaxFlingVelocity = d.MaxFlingVelocity
	}
	if c.MinFlingVelocity <= 0 {
		c.MinFlingVelocity = d.MinFlingVelocity
	}
	if c.DragDeadZone < 0 {
		c.DragDeadZone = 0
	}
	return c
}

// controllerOptions returns the controller physics in pixels.
func (c Config) controllerOptions() ControllerOptions {
	return ControllerOptions{
		SnapDuration:      c.SnapDuration,
		FlingDeceleration: c.FlingDeceleration * c.Density,
		MaxFlingVelocity:  c.MaxFlingVelocity * c.Density,
	}
}

// DecodeConfig parses TOML over DefaultConfig. Unknown keys are an error.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("flywheel: decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("flywheel: unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("flywheel: read config %s: %w", path, err)
	}
	return DecodeConfig(data)
}
