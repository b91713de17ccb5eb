package canopy

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// RunConfig configures a Host: the window it opens, its frame rate and the
// knobs of input translation.
type RunConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Resizable  bool   `toml:"resizable"`
	TPS        int    `toml:"tps"`
	Background string `toml:"background"` // hex color, "#rrggbb" or "#rrggbbaa"

	// Two presses of the same button closer than this in time and distance
	// count as a double click.
	DoubleClickMillis   int     `toml:"double_click_ms"`
	DoubleClickDistance float64 `toml:"double_click_distance"`

	ScreenshotDir string `toml:"screenshot_dir"`
	TestScript    string `toml:"test_script"` // path to a JSON test script
	EnvFile       string `toml:"env_file"`    // path to a YAML env file
	LogLevel      string `toml:"log_level"`
	Debug         bool   `toml:"debug"`
}

// DefaultRunConfig returns the configuration used for zero fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:               "canopy",
		Width:               800,
		Height:              600,
		Resizable:           true,
		TPS:                 60,
		Background:          "#1e1e24",
		DoubleClickMillis:   400,
		DoubleClickDistance: 4,
		ScreenshotDir:       "screenshots",
	}
}

// LoadRunConfig parses TOML over the defaults. Keys absent from data keep
// their default values.
func LoadRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("canopy: parse run config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadRunConfigFile reads path with LoadRunConfig. A missing file yields the
// defaults.
func LoadRunConfigFile(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultRunConfig(), nil
	}
	if err != nil {
		return DefaultRunConfig(), fmt.Errorf("canopy: read run config %s: %w", path, err)
	}
	return LoadRunConfig(data)
}

// Marshal encodes the config as TOML.
func (c RunConfig) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("canopy: marshal run config: %w", err)
	}
	return data, nil
}

// Validate reports the first invalid field.
func (c RunConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("canopy: invalid window size %dx%d", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("canopy: invalid tps %d", c.TPS)
	case c.DoubleClickMillis < 0:
		return fmt.Errorf("canopy: invalid double_click_ms %d", c.DoubleClickMillis)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("canopy: invalid background: %w", err)
	}
	return nil
}

// BackgroundColor returns the parsed background color, or opaque black if
// it does not parse.
func (c RunConfig) BackgroundColor() color.RGBA {
	bg, err := ParseHexColor(c.Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return bg
}

// DoubleClickTime returns DoubleClickMillis as a duration.
func (c RunConfig) DoubleClickTime() time.Duration {
	return time.Duration(c.DoubleClickMillis) * time.Millisecond
}
