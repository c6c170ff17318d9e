// Package term implements the render interfaces on a character terminal
// using tcell. One logical pixel is xScale columns wide and one row high,
// so the square board stays roughly square on screen.
package term

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"chosenoffset.com/dotsandboxes/internal/render"
)

// xScale is the number of terminal columns per logical pixel.
const xScale = 2

const (
	runeDot        = '●'
	runeBigDot     = '◉'
	runeRing       = '○'
	runeHorizontal = '─'
	runeVertical   = '│'
	runeDiagonal   = '·'
)

// bigDotRadius is the smallest radius drawn with runeBigDot.
const bigDotRadius = 6

// Screen is a render.Image covering a whole tcell screen.
type Screen struct {
	screen tcell.Screen
	bg     tcell.Color
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s, bg: tcell.ColorBlack}
}

// Bounds returns the logical bounds of the screen.
func (s *Screen) Bounds() image.Rectangle {
	w, h := s.Size()
	return image.Rect(0, 0, w, h)
}

// Size returns the logical width and height of the screen.
func (s *Screen) Size() (width, height int) {
	cols, rows := s.screen.Size()
	return cols / xScale, rows
}

// Fill blanks the screen with the given background color.
func (s *Screen) Fill(clr color.Color) {
	s.bg = toColor(clr)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

// Clear blanks the screen with the default background.
func (s *Screen) Clear() {
	s.bg = tcell.ColorBlack
	s.screen.Clear()
}

// Dispose is a no-op; the screen belongs to the engine.
func (s *Screen) Dispose() {}

// set draws r at column col and row, keeping the cell's background.
func (s *Screen) set(col, row int, r rune, fg tcell.Color) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	_, _, style, _ := s.screen.GetContent(col, row)
	s.screen.SetContent(col, row, r, nil, style.Foreground(fg).Background(s.background(style)))
}

// background returns the background of style, resolving the default to the
// last fill color.
func (s *Screen) background(style tcell.Style) tcell.Color {
	_, bg, _ := style.Decompose()
	if bg == tcell.ColorDefault {
		return s.bg
	}
	return bg
}

// shade blends clr over the background of the cell, keeping its rune.
func (s *Screen) shade(col, row int, clr color.Color) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	mainc, combc, style, _ := s.screen.GetContent(col, row)
	bg := blend(clr, s.background(style))
	s.screen.SetContent(col, row, mainc, combc, style.Background(bg))
}

func asScreen(img render.Image) *Screen {
	return img.(*Screen)
}

// Renderer implements render.Renderer with box-drawing runes.
type Renderer struct{}

// NewRenderer creates a terminal renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// FillCircle draws a dot at the cell containing (x, y).
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ch := runeDot
	if radius >= bigDotRadius {
		ch = runeBigDot
	}
	col, row := cellOf(x, y)
	asScreen(dst).set(col, row, ch, toColor(clr))
}

// StrokeCircle draws a ring at the cell containing (x, y).
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	col, row := cellOf(x, y)
	asScreen(dst).set(col, row, runeRing, toColor(clr))
}

// StrokeLine draws the cells strictly between the two endpoints so that
// dots drawn at the endpoints stay visible.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	s := asScreen(dst)
	fg := toColor(clr)
	c0, r0 := cellOf(x0, y0)
	c1, r1 := cellOf(x1, y1)

	switch {
	case r0 == r1:
		for c := min(c0, c1) + 1; c < max(c0, c1); c++ {
			s.set(c, r0, runeHorizontal, fg)
		}
	case c0 == c1:
		for row := min(r0, r1) + 1; row < max(r0, r1); row++ {
			s.set(c0, row, runeVertical, fg)
		}
	default:
		// Bresenham over logical pixels
		lx0, ly0 := int(math.Round(float64(x0))), int(math.Round(float64(y0)))
		lx1, ly1 := int(math.Round(float64(x1))), int(math.Round(float64(y1)))
		dx, dy := abs(lx1-lx0), -abs(ly1-ly0)
		sx, sy := sign(lx1-lx0), sign(ly1-ly0)
		e := dx + dy
		x, y := lx0, ly0
		for x != lx1 || y != ly1 {
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x += sx
			}
			if e2 <= dx {
				e += dx
				y += sy
			}
			if x == lx1 && y == ly1 {
				break
			}
			s.set(x*xScale, y, runeDiagonal, fg)
		}
	}
}

// FillRect shades the background of every cell in the rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	s := asScreen(dst)
	c0 := int(math.Round(float64(x) * xScale))
	c1 := int(math.Round(float64(x+width) * xScale))
	r0 := int(math.Round(float64(y)))
	r1 := int(math.Round(float64(y + height)))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.shade(col, row, clr)
		}
	}
}

// DrawText writes str starting at the cell for (x, y). Scale is ignored.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	s := asScreen(dst)
	fg := toColor(clr)
	col := x * xScale
	for _, ch := range str {
		s.set(col, y, ch, fg)
		col += runewidth.RuneWidth(ch)
	}
}

// MeasureText returns the logical size of str: half its column width,
// rounded up, by one row.
func (r *Renderer) MeasureText(str string, scale float64) (width, height int) {
	return (runewidth.StringWidth(str) + xScale - 1) / xScale, 1
}

// cellOf returns the terminal cell of a logical position.
func cellOf(x, y float32) (col, row int) {
	return int(math.Round(float64(x))) * xScale, int(math.Round(float64(y)))
}

// toColor converts clr to a tcell color, dropping alpha.
func toColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// blend composites the premultiplied clr over bg.
func blend(clr color.Color, bg tcell.Color) tcell.Color {
	sr, sg, sb, sa := clr.RGBA()
	br, bgc, bb := bg.RGB()
	if br < 0 {
		br, bgc, bb = 0, 0, 0
	}
	inv := float64(0xffff-sa) / 0xffff
	mix := func(s uint32, d int32) int32 {
		return int32(float64(s>>8) + float64(d)*inv + 0.5)
	}
	return tcell.NewRGBColor(mix(sr, br), mix(sg, bgc), mix(sb, bb))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

var (
	_ render.Image    = (*Screen)(nil)
	_ render.Renderer = (*Renderer)(nil)
)
