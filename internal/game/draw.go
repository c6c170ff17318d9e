package game

import (
	"image/color"

	"chosenoffset.com/dotsandboxes/internal/render"
	"chosenoffset.com/dotsandboxes/internal/scene"
)

// Draw renders the board, cursor feedback, messages and HUD.
func (s *Session) Draw(screen render.Image) {
	s.frame.Edges = s.Board.Edges()
	s.frame.Cells = s.Board.Cells()
	s.frame.FromGesture(s.gesture)
	scene.Draw(s.Renderer, screen, s.mapper, &s.frame, s.Config.Style)

	s.drawUI(screen)
	s.drawHUD(screen)
}

func (s *Session) drawUI(screen render.Image) {
	// Draw on-screen messages from the bottom up
	_, lineHeight := s.Renderer.MeasureText("M", 1.0)
	margin := lineHeight * 3 / 4
	lineHeight += lineHeight / 4
	y := s.ScreenHeight - margin - lineHeight*len(s.Messages)
	text := s.Config.Style.Text.Color()
	for _, msg := range s.Messages {
		alpha := msg.TimeLeft / msg.MaxTime
		clr := color.RGBA{
			R: uint8(float64(text.R) * alpha),
			G: uint8(float64(text.G) * alpha),
			B: uint8(float64(text.B) * alpha),
			A: uint8(float64(text.A) * alpha),
		}
		s.Renderer.DrawText(screen, msg.Text, margin, y, clr, 1.0)
		y += lineHeight
	}
}

func (s *Session) drawHUD(screen render.Image) {
	if !s.ShowHUD {
		return
	}
	s.GameHUD.SetCounts(s.Board.EdgeCount(), s.Board.CellCount(), s.Config.Cells*s.Config.Cells)
	s.GameHUD.SetHighlight(s.gesture.Highlight())
	s.GameHUD.Draw(screen)
}
