// Package config resolves game settings from defaults, a YAML file,
// VI_SNAKE_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-snake/constants"
)

// EnvPrefix namespaces environment overrides, e.g. VI_SNAKE_WIDTH=60
const EnvPrefix = "VI_SNAKE_"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Driver modes
const (
	ModeAuto     = "auto"
	ModeLine     = "line"
	ModeStep     = "step"
	ModeRealtime = "realtime"
)

// Glyphs holds one-character strings for each cell kind
type Glyphs struct {
	Snake string `yaml:"snake"`
	Head  string `yaml:"head"`
	Food  string `yaml:"food"`
	Empty string `yaml:"empty"`
}

// Config is the resolved game configuration
type Config struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Fit          bool          `yaml:"fit"`
	Boundary     string        `yaml:"boundary"`
	QueueSize    int           `yaml:"queue_size"`
	Mode         string        `yaml:"mode"`
	TickInterval time.Duration `yaml:"tick_interval"`
	FoodFile     string        `yaml:"food_file"`
	Seed         int64         `yaml:"seed"`
	Sound        bool          `yaml:"sound"`
	Volume       float64       `yaml:"volume"`
	Glyphs       Glyphs        `yaml:"glyphs"`
	Listen       string        `yaml:"listen"`
	Autopilot    bool          `yaml:"autopilot"`
	Debug        bool          `yaml:"debug"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Width:        constants.DefaultBoardWidth,
		Height:       constants.DefaultBoardHeight,
		Boundary:     "wall",
		QueueSize:    constants.DefaultQueueSize,
		Mode:         ModeAuto,
		TickInterval: constants.DefaultTickInterval,
		Volume:       constants.DefaultVolume,
		Glyphs: Glyphs{
			Snake: string(constants.GlyphSnake),
			Head:  string(constants.GlyphHead),
			Food:  string(constants.GlyphFood),
			Empty: string(constants.GlyphEmpty),
		},
	}
}

// Load builds a config from defaults, the optional YAML file at path and the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.Environ()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies VI_SNAKE_<KEY>=value entries from environ
func (c *Config) ApplyEnv(environ []string) error {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if err := c.Set(name, value); err != nil {
			return fmt.Errorf("env %s: %w", key, err)
		}
	}
	return nil
}

// Set assigns one setting by key; flag names use '-' where keys use '_'
func (c *Config) Set(key, value string) error {
	key = strings.ReplaceAll(strings.ToLower(key), "-", "_")
	var err error

	switch key {
	case "width":
		c.Width, err = strconv.Atoi(value)
	case "height":
		c.Height, err = strconv.Atoi(value)
	case "fit":
		c.Fit, err = strconv.ParseBool(value)
	case "boundary":
		c.Boundary = value
	case "queue_size":
		c.QueueSize, err = strconv.Atoi(value)
	case "mode":
		c.Mode = strings.ToLower(value)
	case "tick_interval", "tick":
		c.TickInterval, err = time.ParseDuration(value)
	case "food_file", "food":
		c.FoodFile = value
	case "seed":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "sound":
		c.Sound, err = strconv.ParseBool(value)
	case "volume":
		c.Volume, err = strconv.ParseFloat(value, 64)
	case "listen":
		c.Listen = value
	case "autopilot":
		c.Autopilot, err = strconv.ParseBool(value)
	case "debug":
		c.Debug, err = strconv.ParseBool(value)
	case "glyph_snake":
		c.Glyphs.Snake = value
	case "glyph_head":
		c.Glyphs.Head = value
	case "glyph_food":
		c.Glyphs.Food = value
	case "glyph_empty":
		c.Glyphs.Empty = value
	case "config":
		// Consumed before Load
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err != nil {
		return fmt.Errorf("setting %s=%q: %w", key, value, err)
	}
	return nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	var problems []string

	if c.Width < constants.MinBoardWidth || c.Width > constants.MaxBoardWidth {
		problems = append(problems, fmt.Sprintf("width %d outside [%d,%d]", c.Width, constants.MinBoardWidth, constants.MaxBoardWidth))
	}
	if c.Height < constants.MinBoardHeight || c.Height > constants.MaxBoardHeight {
		problems = append(problems, fmt.Sprintf("height %d outside [%d,%d]", c.Height, constants.MinBoardHeight, constants.MaxBoardHeight))
	}
	switch strings.ToLower(c.Boundary) {
	case "wall", "clamp":
	default:
		problems = append(problems, fmt.Sprintf("boundary %q is not wall or clamp", c.Boundary))
	}
	if c.QueueSize < 1 || c.QueueSize > constants.MaxQueueSize {
		problems = append(problems, fmt.Sprintf("queue_size %d outside [1,%d]", c.QueueSize, constants.MaxQueueSize))
	}
	switch c.Mode {
	case ModeAuto, ModeLine, ModeStep, ModeRealtime:
	default:
		problems = append(problems, fmt.Sprintf("unknown mode %q", c.Mode))
	}
	if c.TickInterval < constants.MinTickInterval {
		problems = append(problems, fmt.Sprintf("tick_interval %s below %s", c.TickInterval, constants.MinTickInterval))
	}
	if c.Volume < 0 || c.Volume > 1 {
		problems = append(problems, fmt.Sprintf("volume %.2f outside [0,1]", c.Volume))
	}
	glyphs := [4][2]string{
		{"snake", c.Glyphs.Snake},
		{"head", c.Glyphs.Head},
		{"food", c.Glyphs.Food},
		{"empty", c.Glyphs.Empty},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g[1]) != 1 {
			problems = append(problems, fmt.Sprintf("glyph %s must be a single character, got %q", g[0], g[1]))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Rune returns the first character of a glyph string, or fallback when empty
func Rune(glyph string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(glyph)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
