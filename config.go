package fern

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures an Engine and the window it runs in.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// TPS is the fixed update rate. Render deltas are 1/TPS seconds.
	TPS int `yaml:"tps"`
	// ClearColor is [r, g, b, a] in [0, 1].
	ClearColor [4]float64 `yaml:"clear_color"`
	// Cull marks actors outside the viewport off-screen before each frame.
	Cull bool `yaml:"cull"`
	// Debug logs per-frame render stats at debug level.
	Debug bool `yaml:"debug"`
	// ShowFPS draws an FPS/TPS overlay after each frame.
	ShowFPS bool `yaml:"show_fps"`
	// LoadConcurrency bounds how many resources a Loader loads at once.
	LoadConcurrency int `yaml:"load_concurrency"`
	// ScreenshotDir is where Engine.Screenshot writes PNGs.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// DefaultConfig returns the configuration used for fields a config file
// leaves unset.
func DefaultConfig() Config {
	return Config{
		Title:           "fern",
		Width:           800,
		Height:          600,
		TPS:             60,
		ClearColor:      [4]float64{0, 0, 0, 1},
		Cull:            true,
		LoadConcurrency: 4,
		ScreenshotDir:   "screenshots",
	}
}

var (
	errConfigSize        = errors.New("fern: config width and height must be positive")
	errConfigTPS         = errors.New("fern: config tps must be positive")
	errConfigConcurrency = errors.New("fern: config load_concurrency must be positive")
	errConfigColor       = errors.New("fern: config clear_color components must be in [0, 1]")
)

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errConfigSize
	}
	if c.TPS <= 0 {
		return errConfigTPS
	}
	if c.LoadConcurrency <= 0 {
		return errConfigConcurrency
	}
	for _, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return errConfigColor
		}
	}
	return nil
}

// ClearColorValue returns ClearColor as a Color.
func (c Config) ClearColorValue() Color {
	return Color{c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], c.ClearColor[3]}
}

// LoadConfig decodes YAML from r over DefaultConfig and validates it.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("fern: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("fern: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
