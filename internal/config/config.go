// Package config provides the settings a game session is built from.
// Settings are loaded from an optional JSON file layered over defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
)

// Config holds everything fixed at session construction.
type Config struct {
	// Board geometry
	Cells   int     `json:"cells"`   // Cells per axis; the lattice has Cells+1 points per axis
	Padding float64 `json:"padding"` // Pixel margin around the lattice

	// Window
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Title        string `json:"title"`

	// Input
	ClampToGrid bool `json:"clamp_to_grid"` // Snap out-of-grid pointer positions to the nearest edge of the lattice

	// Terminal
	TerminalPadding float64 `json:"terminal_padding"` // Padding in logical pixels when drawing on a terminal

	// Extras
	ShowHUD     bool   `json:"show_hud"`
	SnapshotDir string `json:"snapshot_dir"` // Where the P key writes PNG snapshots

	Style Style `json:"style"`
}

// Style controls how the board is drawn.
type Style struct {
	Background RGBA `json:"background"`
	Dot        RGBA `json:"dot"`
	Highlight  RGBA `json:"highlight"` // Nearest lattice point under the cursor
	Line       RGBA `json:"line"`
	Pending    RGBA `json:"pending"` // Line from the gesture start to the cursor
	Cursor     RGBA `json:"cursor"`
	Box        RGBA `json:"box"`
	Text       RGBA `json:"text"`

	DotRadius       float32 `json:"dot_radius"`
	HighlightRadius float32 `json:"highlight_radius"`
	CursorRadius    float32 `json:"cursor_radius"`
	LineWidth       float32 `json:"line_width"`
}

// RGBA is a color stored in JSON as [r, g, b, a].
type RGBA [4]uint8

// Color converts c to a color.RGBA. The stored channels are straight alpha;
// the result is premultiplied as color.RGBA requires.
func (c RGBA) Color() color.RGBA {
	a := uint16(c[3])
	return color.RGBA{
		R: uint8(uint16(c[0]) * a / 255),
		G: uint8(uint16(c[1]) * a / 255),
		B: uint8(uint16(c[2]) * a / 255),
		A: c[3],
	}
}

// DefaultConfig returns a 10x10 board on a black square window.
func DefaultConfig() *Config {
	return &Config{
		Cells:        10,
		Padding:      48,
		WindowWidth:  800,
		WindowHeight: 800,
		Title:        "Dots and Boxes",
		ClampToGrid:  true,
		ShowHUD:      true,
		SnapshotDir:  ".",

		TerminalPadding: 2,

		Style: Style{
			Background:      RGBA{0, 0, 0, 255},
			Dot:             RGBA{255, 255, 255, 255},
			Highlight:       RGBA{255, 0, 0, 255},
			Line:            RGBA{255, 255, 255, 255},
			Pending:         RGBA{255, 0, 0, 255},
			Cursor:          RGBA{255, 0, 0, 255},
			Box:             RGBA{255, 255, 255, 64},
			Text:            RGBA{220, 220, 220, 255},
			DotRadius:       4,
			HighlightRadius: 8,
			CursorRadius:    4,
			LineWidth:       1,
		},
	}
}

// LoadConfig loads a config from a JSON file. Fields missing from the file
// keep their defaults, and a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that the board and window can be built from c.
func (c *Config) Validate() error {
	if c.Cells < 1 {
		return fmt.Errorf("cells must be at least 1, got %d", c.Cells)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %v", c.Padding)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if min(c.WindowWidth, c.WindowHeight) <= int(2*c.Padding) {
		return fmt.Errorf("padding %v leaves no room for the board in a %dx%d window",
			c.Padding, c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// ForTerminal returns a copy of c sized for a terminal of width by height
// logical pixels, using TerminalPadding.
func (c *Config) ForTerminal(width, height int) *Config {
	tc := *c
	tc.WindowWidth, tc.WindowHeight = width, height
	tc.Padding = c.TerminalPadding
	return &tc
}
