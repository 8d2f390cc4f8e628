package utils

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-bitgol/model"
)

const (
	RendererText   = "text"
	RendererScreen = "screen"

	// DefaultScreenFrameRate paces the screen renderer when no frame rate is configured
	DefaultScreenFrameRate = 150 * time.Millisecond
)

var ErrUnknownRenderer = errors.New("unknown renderer")

// Config holds the configuration for a run
type Config struct {
	Rows        uint8         `json:"rows" yaml:"rows"`
	Cols        uint8         `json:"cols" yaml:"cols"`
	Pattern     string        `json:"pattern" yaml:"pattern"`
	Generations uint64        `json:"generations" yaml:"generations"`
	Seed        int64         `json:"seed" yaml:"seed"`
	FrameRate   time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Renderer    string        `json:"renderer" yaml:"renderer"`
	ClearScreen bool          `json:"clear_screen" yaml:"clear_screen"`
	ShowStats   bool          `json:"show_stats" yaml:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:        8,
		Cols:        8,
		Pattern:     model.Random.String(),
		Generations: 20,
		Renderer:    RendererText,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// SetDims sets the grid size from unsized values, rejecting anything that cannot be a grid dimension
func (c *Config) SetDims(rows, cols uint) error {
	if rows > math.MaxUint8 || cols > math.MaxUint8 {
		return errors.Wrapf(model.ErrGridTooLarge, "[SetDims] rows=%d cols=%d", rows, cols)
	}
	c.Rows, c.Cols = uint8(rows), uint8(cols)
	return nil
}

// FrameDelay returns the pause between frames. The screen renderer falls back
// to DefaultScreenFrameRate so the run stays visible.
func (c Config) FrameDelay() time.Duration {
	if c.FrameRate == 0 && c.Renderer == RendererScreen {
		return DefaultScreenFrameRate
	}
	return c.FrameRate
}

// Dims returns the grid dimensions
func (c Config) Dims() model.Dims {
	return model.Dims{Rows: c.Rows, Cols: c.Cols}
}

// PatternValue resolves the configured pattern name
func (c Config) PatternValue() (model.Pattern, error) {
	return model.ParsePattern(c.Pattern)
}

// Validate checks the configuration before any simulation starts
func (c Config) Validate() error {
	if err := c.Dims().Validate(); err != nil {
		return err
	}
	if _, err := c.PatternValue(); err != nil {
		return err
	}
	switch c.Renderer {
	case RendererText, RendererScreen:
	default:
		return errors.Wrapf(ErrUnknownRenderer, "[Validate] renderer=%q", c.Renderer)
	}
	return nil
}
