package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-bitgol/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if config.Dims() != (model.Dims{Rows: 8, Cols: 8}) {
		t.Errorf("default dims = %+v", config.Dims())
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "bitgol.json", `{
		"rows": 4,
		"cols": 16,
		"pattern": "toad",
		"generations": 7,
		"frame_rate": 5000000,
		"show_stats": true
	}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Rows, want.Cols = 4, 16
	want.Pattern = "toad"
	want.Generations = 7
	want.FrameRate = 5 * time.Millisecond
	want.ShowStats = true
	if config != want {
		t.Errorf("got %+v, want %+v", config, want)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "bitgol.yaml", `
rows: 2
cols: 32
pattern: Blinker
seed: 99
frame_rate: 150ms
renderer: screen
clear_screen: true
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Rows, want.Cols = 2, 32
	want.Pattern = "Blinker"
	want.Seed = 99
	want.FrameRate = 150 * time.Millisecond
	want.Renderer = RendererScreen
	want.ClearScreen = true
	if config != want {
		t.Errorf("got %+v, want %+v", config, want)
	}
	if p, err := config.PatternValue(); err != nil || p != model.Blinker {
		t.Errorf("PatternValue() = %v, %v", p, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := LoadConfig(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("expected an error for malformed JSON")
	}
	if _, err := LoadConfig(writeFile(t, "bad.yml", "rows: [")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"too many cells", func(c *Config) { c.Rows, c.Cols = 9, 8 }, model.ErrGridTooLarge},
		{"no rows", func(c *Config) { c.Rows = 0 }, model.ErrEmptyGrid},
		{"bad pattern", func(c *Config) { c.Pattern = "glider" }, model.ErrUnknownPattern},
		{"bad renderer", func(c *Config) { c.Renderer = "gui" }, ErrUnknownRenderer},
		{"full word", func(c *Config) { c.Rows, c.Cols = 1, 64 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigFrameDelay(t *testing.T) {
	tests := []struct {
		name      string
		renderer  string
		frameRate time.Duration
		want      time.Duration
	}{
		{"text without delay", RendererText, 0, 0},
		{"text with delay", RendererText, time.Second, time.Second},
		{"screen without delay", RendererScreen, 0, DefaultScreenFrameRate},
		{"screen with delay", RendererScreen, 5 * time.Millisecond, 5 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Renderer, config.FrameRate = tt.renderer, tt.frameRate
			if got := config.FrameDelay(); got != tt.want {
				t.Errorf("FrameDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigSetDims(t *testing.T) {
	config := DefaultConfig()
	if err := config.SetDims(4, 16); err != nil {
		t.Fatal(err)
	}
	if config.Dims() != (model.Dims{Rows: 4, Cols: 16}) {
		t.Errorf("dims = %+v, want 4x16", config.Dims())
	}

	if err := config.SetDims(256, 1); !errors.Is(err, model.ErrGridTooLarge) {
		t.Errorf("rows=256: got %v, want ErrGridTooLarge", err)
	}
	if err := config.SetDims(1, 300); !errors.Is(err, model.ErrGridTooLarge) {
		t.Errorf("cols=300: got %v, want ErrGridTooLarge", err)
	}
	if config.Dims() != (model.Dims{Rows: 4, Cols: 16}) {
		t.Errorf("rejected SetDims changed dims to %+v", config.Dims())
	}
}
