package testutil

import (
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Squares lists the algebraic names of the marked cells of a legality
// matrix, in row-major order (a8 first).
func Squares(mat [][]bool) []string {
	var out []string
	for row := range mat {
		for col, ok := range mat[row] {
			if ok {
				out = append(out, chess.FromPosition(chess.Position{Row: row, Column: col}).String())
			}
		}
	}
	return out
}

// Diagram renders a piece matrix as eight lines, rank 8 first, using piece
// letters and '.' for empty cells. It is meant for readable test diffs.
func Diagram(pieces [][]*chess.Piece) string {
	var sb strings.Builder
	for _, row := range pieces {
		for _, p := range row {
			if p == nil {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
