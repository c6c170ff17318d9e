package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chosenoffset.com/dotsandboxes/internal/config"
	"chosenoffset.com/dotsandboxes/internal/core/board"
	"chosenoffset.com/dotsandboxes/internal/input"
	"chosenoffset.com/dotsandboxes/internal/render/raster"
	"chosenoffset.com/dotsandboxes/internal/scene"
)

// SnapshotName returns the file name used for a snapshot taken at t.
func SnapshotName(t time.Time) string {
	return "dots-" + t.Format("20060102-150405") + ".png"
}

// Snapshot renders the settled board (no cursor feedback) at the configured
// window size and writes it as a PNG into cfg.SnapshotDir. It returns the
// path written.
func Snapshot(b *board.Board, cfg *config.Config, now time.Time) (string, error) {
	dir := cfg.SnapshotDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	canvas := raster.NewCanvas(cfg.WindowWidth, cfg.WindowHeight)
	defer canvas.Dispose()

	m := input.NewMapper(cfg.Cells, cfg.Padding, cfg.WindowWidth, cfg.WindowHeight)
	st := &scene.State{Edges: b.Edges(), Cells: b.Cells()}
	scene.Draw(raster.NewRenderer(), canvas, m, st, cfg.Style)

	path := filepath.Join(dir, SnapshotName(now))
	if err := canvas.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}
