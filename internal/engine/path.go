package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// slidingMoves casts a ray along each direction. Empty cells are reachable;
// the first occupied cell is reachable only if it holds an opponent piece.
func slidingMoves(board *chess.Board, piece *chess.Piece, from chess.Position, dirs [][2]int, mat Matrix) {
	for _, dir := range dirs {
		p := from.Offset(dir[0], dir[1])
		for board.PositionExists(p) && board.Get(p) == nil {
			mat.mark(p)
			p = p.Offset(dir[0], dir[1])
		}
		if board.PositionExists(p) && isOpponentPiece(board, piece, p) {
			mat.mark(p)
		}
	}
}
