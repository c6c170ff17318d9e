// Package raster implements the render interfaces on an in-memory gg
// canvas. It needs no window or GPU and is used to write PNG snapshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/dotsandboxes/internal/render"
)

// baseFontSize is the text size at scale 1, matching the window backend.
const baseFontSize = 14

var (
	_ render.Renderer = (*Renderer)(nil)
	_ render.Image    = (*Canvas)(nil)
)

// Renderer draws onto Canvas images.
type Renderer struct {
	fontOnce sync.Once
	fontSrc  *text.FontSource
}

// NewRenderer creates a raster renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Canvas is a render.Image backed by a gg.Context.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Bounds returns the bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.dc.Width(), c.dc.Height())
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.dc.Width(), c.dc.Height()
}

// Fill fills the entire canvas with the given color.
func (c *Canvas) Fill(clr color.Color) {
	c.dc.ClearWithColor(gg.FromColor(clr))
}

// Clear clears the canvas to transparent.
func (c *Canvas) Clear() {
	c.dc.Clear()
}

// Dispose releases the canvas resources.
func (c *Canvas) Dispose() {
	if err := c.dc.Close(); err != nil {
		slog.Warn("failed to release canvas", slog.Any("err", err))
	}
}

// Image returns the current pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

func canvasContext(img render.Image) *gg.Context {
	return img.(*Canvas).dc
}

// FillCircle draws a filled circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	dc := canvasContext(dst)
	dc.SetColor(clr)
	dc.DrawCircle(float64(x), float64(y), float64(radius))
	r.check(dc.Fill())
}

// StrokeCircle draws a circle outline.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	dc := canvasContext(dst)
	dc.SetColor(clr)
	dc.SetLineWidth(float64(strokeWidth))
	dc.DrawCircle(float64(x), float64(y), float64(radius))
	r.check(dc.Stroke())
}

// StrokeLine draws a line segment.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	dc := canvasContext(dst)
	dc.SetColor(clr)
	dc.SetLineWidth(float64(strokeWidth))
	dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	r.check(dc.Stroke())
}

// FillRect draws a filled rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	dc := canvasContext(dst)
	dc.SetColor(clr)
	dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	r.check(dc.Fill())
}

func (r *Renderer) face(scale float64) text.Face {
	r.fontOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			slog.Warn("failed to load font, snapshots will have no text", slog.Any("err", err))
			return
		}
		r.fontSrc = src
	})
	if r.fontSrc == nil {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	return r.fontSrc.Face(baseFontSize * scale)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	face := r.face(scale)
	if face == nil {
		return
	}
	dc := canvasContext(dst)
	dc.SetFont(face)
	dc.SetColor(clr)
	dc.DrawStringAnchored(str, float64(x), float64(y), 0, 1)
}

// MeasureText measures the width and height of text with the given scale.
func (r *Renderer) MeasureText(str string, scale float64) (width, height int) {
	face := r.face(scale)
	if face == nil {
		return 0, 0
	}
	w, h := text.Measure(str, face)
	return int(w + 0.5), int(h + 0.5)
}

func (r *Renderer) check(err error) {
	if err != nil {
		slog.Debug("raster draw failed", slog.Any("err", err))
	}
}
