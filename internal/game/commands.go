package game

import (
	"log/slog"

	"chosenoffset.com/dotsandboxes/internal/render"
)

// handleKeys runs the keyboard commands for this tick.
func (s *Session) handleKeys() {
	if s.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		s.Stop()
		return
	}

	// Toggle HUD with H key
	if s.InputMgr.IsKeyJustPressed(render.KeyH) {
		s.ShowHUD = !s.ShowHUD
	}

	if s.InputMgr.IsKeyJustPressed(render.KeyC) {
		s.CopyBoard()
	}

	if s.InputMgr.IsKeyJustPressed(render.KeyP) {
		s.SaveSnapshot()
	}
}

// CopyBoard puts an ASCII drawing of the board on the clipboard. Failures
// are reported on screen.
func (s *Session) CopyBoard() {
	if err := s.copyBoard(s.Board, s.Config.Cells); err != nil {
		s.logger.Warn("copy failed", slog.Any("err", err))
		s.ShowMessage("Copy failed")
		return
	}
	s.ShowMessage("Board copied to clipboard")
}

// SaveSnapshot writes a PNG of the board into the snapshot directory.
// Failures are reported on screen.
func (s *Session) SaveSnapshot() {
	path, err := s.saveSnapshot(s.Board, s.SnapshotConfig, s.now())
	if err != nil {
		s.logger.Warn("snapshot failed", slog.Any("err", err))
		s.ShowMessage("Snapshot failed")
		return
	}
	s.logger.Info("snapshot saved", slog.String("path", path))
	s.ShowMessage("Saved " + path)
}
