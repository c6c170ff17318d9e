package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"chosenoffset.com/dotsandboxes/internal/core/board"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// CopyText puts the ASCII drawing of b on the system clipboard.
func CopyText(b *board.Board, cells int) error {
	if err := writeClipboard(Text(b, cells)); err != nil {
		return fmt.Errorf("failed to copy board: %w", err)
	}
	return nil
}
