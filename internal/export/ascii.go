// Package export turns a board into things that leave the program: an ASCII
// drawing for the clipboard and a PNG snapshot.
package export

import (
	"strings"

	"chosenoffset.com/dotsandboxes/internal/core/board"
	"chosenoffset.com/dotsandboxes/internal/core/lattice"
)

// Text draws the lattice 0..cells on both axes. Points are '+', horizontal
// edges "---", vertical edges '|' and claimed cells are marked with '#'.
// Edges outside the lattice are not drawn.
func Text(b *board.Board, cells int) string {
	if cells < 1 {
		return ""
	}

	var sb strings.Builder
	for y := 0; y <= cells; y++ {
		var row strings.Builder
		for x := 0; x <= cells; x++ {
			row.WriteByte('+')
			if x == cells {
				break
			}
			if b.HasEdge(lattice.E(lattice.Pt(x, y), lattice.Pt(x+1, y))) {
				row.WriteString("---")
			} else {
				row.WriteString("   ")
			}
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')

		if y == cells {
			break
		}

		row.Reset()
		for x := 0; x <= cells; x++ {
			if b.HasEdge(lattice.E(lattice.Pt(x, y), lattice.Pt(x, y+1))) {
				row.WriteByte('|')
			} else {
				row.WriteByte(' ')
			}
			if x == cells {
				break
			}
			if b.Claimed(lattice.Pt(x, y)) {
				row.WriteString(" # ")
			} else {
				row.WriteString("   ")
			}
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
