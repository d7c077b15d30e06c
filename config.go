package triangle

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "TRIANGLE_"

// WindowConfig configures the window and its context.
type WindowConfig struct {
	Width  int    `toml:"width" env:"WIDTH"`
	Height int    `toml:"height" env:"HEIGHT"`
	Title  string `toml:"title" env:"TITLE"`
	VSync  bool   `toml:"vsync" env:"VSYNC"`
}

// Config is the program configuration.
type Config struct {
	Window WindowConfig `toml:"window"`

	// ClearColor is the RGBA background, each component in [0, 1].
	// From the environment it is written "r,g,b,a".
	ClearColor [4]float32 `toml:"clear_color" env:"CLEAR_COLOR"`

	// Frames caps the number of rendered frames.
	// To run until the window closes, set to 0
	Frames int `toml:"frames" env:"FRAMES"`

	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "Hello World",
			VSync:  true,
		},
		ClearColor: [4]float32{0, 0, 0, 1},
		LogLevel:   "info",
	}
}

// LoadConfig builds a Config from defaults, an optional TOML file at path,
// TRIANGLE_* variables from envFiles and finally the process environment.
// The result is validated.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		dec := toml.NewDecoder(f).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	vars := map[string]string{}
	if len(envFiles) > 0 {
		fileVars, err := godotenv.Read(envFiles...)
		if err != nil {
			return cfg, fmt.Errorf("read env files: %w", err)
		}
		vars = fileVars
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}

	err := env.ParseWithOptions(&cfg, env.Options{
		Environment: vars,
		Prefix:      EnvPrefix,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf([4]float32{}): func(v string) (any, error) {
				return parseColor(v)
			},
		},
	})
	if err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseColor parses "r,g,b,a" into four floats.
func parseColor(s string) ([4]float32, error) {
	var c [4]float32
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return c, fmt.Errorf("expected 4 comma-separated components, got %d", len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return c, err
		}
		c[i] = float32(v)
	}
	return c, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	for i, v := range c.ClearColor {
		if !(v >= 0 && v <= 1) {
			errs = append(errs, fmt.Errorf("clear_color[%d] = %v out of range [0, 1]", i, v))
		}
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", c.Frames))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Clear returns ClearColor as a vector.
func (c Config) Clear() mgl32.Vec4 {
	return mgl32.Vec4(c.ClearColor)
}

// Options returns the App options implied by the configuration.
func (c Config) Options() []AppOption {
	return []AppOption{
		WithClearColor(c.Clear()),
		WithMaxFrames(c.Frames),
	}
}
