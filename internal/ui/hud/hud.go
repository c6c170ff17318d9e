// Package hud draws a small status panel over the board: edges drawn,
// boxes claimed and the lattice point under the cursor.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/dotsandboxes/internal/core/lattice"
	"chosenoffset.com/dotsandboxes/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowCounts   bool    `json:"show_counts"`   // Edges and boxes
	ShowPosition bool    `json:"show_position"` // Highlighted lattice point
	ShowHelp     bool    `json:"show_help"`     // Key bindings
	Position     string  `json:"position"`      // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 `json:"opacity"`       // Background opacity (0-1)
	TextScale    float64 `json:"text_scale"`
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowCounts:   true,
		ShowPosition: true,
		ShowHelp:     true,
		Position:     "top-left",
		Opacity:      0.7,
		TextScale:    1,
	}
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	// Data sources
	edges        int
	boxes        int
	totalCells   int
	highlight    lattice.Point
	hasHighlight bool

	// Cached layout
	panelWidth  int
	panelHeight int
	inset       int
	margin      int
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetCounts updates the board totals. totalCells is the number of cells
// on the board, or 0 when the board is unbounded.
func (h *HUD) SetCounts(edges, boxes, totalCells int) {
	h.edges = edges
	h.boxes = boxes
	h.totalCells = totalCells
}

// SetHighlight updates the displayed lattice point.
func (h *HUD) SetHighlight(p lattice.Point, ok bool) {
	h.highlight = p
	h.hasHighlight = ok
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Lines returns the text lines the HUD currently shows.
func (h *HUD) Lines() []string {
	var lines []string
	if h.config.ShowCounts {
		lines = append(lines, fmt.Sprintf("Edges: %d", h.edges))
		if h.totalCells > 0 {
			lines = append(lines, fmt.Sprintf("Boxes: %d/%d", h.boxes, h.totalCells))
		} else {
			lines = append(lines, fmt.Sprintf("Boxes: %d", h.boxes))
		}
	}
	if h.config.ShowPosition && h.hasHighlight {
		lines = append(lines, fmt.Sprintf("Point: %d, %d", h.highlight.X, h.highlight.Y))
	}
	if h.config.ShowHelp {
		lines = append(lines, "C copy  P snapshot", "H hud  Esc quit")
	}
	return lines
}

// Draw renders the HUD to the screen. Spacing scales with the measured line
// height, so the same panel fits a window or a terminal.
func (h *HUD) Draw(screen render.Image) {
	lines := h.Lines()
	if len(lines) == 0 {
		return
	}

	// Measure content to size the panel
	lineHeight := 0
	textWidth := 0
	for _, line := range lines {
		w, lh := h.renderer.MeasureText(line, h.config.TextScale)
		textWidth = max(textWidth, w)
		lineHeight = max(lineHeight, lh)
	}
	h.inset = lineHeight / 2
	h.margin = lineHeight * 3 / 4
	hInset := h.inset + lineHeight/6
	lineHeight += lineHeight / 6
	h.panelWidth = textWidth + 2*hInset
	h.panelHeight = len(lines)*lineHeight + 2*h.inset

	x, y := h.calculatePosition()
	h.drawPanel(screen, x, y)

	currentY := y + h.inset
	for i, line := range lines {
		clr := color.RGBA{220, 220, 220, 255}
		if h.config.ShowHelp && i >= len(lines)-2 {
			clr = color.RGBA{150, 150, 150, 255}
		}
		h.renderer.DrawText(screen, line, x+hInset, currentY, clr, h.config.TextScale)
		currentY += lineHeight
	}
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	m := h.margin

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - m, m
	case "bottom-left":
		return m, h.screenHeight - h.panelHeight - m
	case "bottom-right":
		return h.screenWidth - h.panelWidth - m, h.screenHeight - h.panelHeight - m
	default: // "top-left"
		return m, m
	}
}

// drawPanel draws the semi-transparent background panel with a border
func (h *HUD) drawPanel(screen render.Image, x, y int) {
	alpha := uint8(h.config.Opacity * 255)
	fx, fy := float32(x), float32(y)
	fw, fh := float32(h.panelWidth), float32(h.panelHeight)

	h.renderer.FillRect(screen, fx, fy, fw, fh, premultiply(color.RGBA{20, 20, 30, 255}, alpha))

	// No room for a border around unpadded text
	if h.inset == 0 {
		return
	}
	border := premultiply(color.RGBA{60, 60, 80, 255}, alpha)
	h.renderer.StrokeLine(screen, fx, fy, fx+fw, fy, 1, border)
	h.renderer.StrokeLine(screen, fx, fy+fh, fx+fw, fy+fh, 1, border)
	h.renderer.StrokeLine(screen, fx, fy, fx, fy+fh, 1, border)
	h.renderer.StrokeLine(screen, fx+fw, fy, fx+fw, fy+fh, 1, border)
}

func premultiply(c color.RGBA, alpha uint8) color.RGBA {
	a := uint16(alpha)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: alpha,
	}
}
