package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// MoveContext carries the match state that move generation depends on.
// It replaces any reference from a piece back to its match.
type MoveContext struct {
	// EnPassant is true if a pawn just advanced two squares; EnPassantSquare
	// is the cell that pawn now stands on.
	EnPassant       bool
	EnPassantSquare chess.Position

	// InCheck is true if the moving side is currently in check. Castling is
	// not offered while it is set.
	InCheck bool
}

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// PossibleMoves computes the legality matrix of a piece on the board.
// The piece must be on the board; an off-board piece has no moves.
func PossibleMoves(board *chess.Board, piece *chess.Piece, ctx MoveContext) Matrix {
	mat := NewMatrix(board.Rows(), board.Columns())
	from, ok := piece.Position()
	if !ok {
		return mat
	}

	switch piece.Kind() {
	case chess.Pawn:
		pawnMoves(board, piece, from, ctx, mat)
	case chess.Knight:
		stepMoves(board, piece, from, knightOffsets, mat)
	case chess.Bishop:
		slidingMoves(board, piece, from, diagonalDirs, mat)
	case chess.Rook:
		slidingMoves(board, piece, from, straightDirs, mat)
	case chess.Queen:
		slidingMoves(board, piece, from, diagonalDirs, mat)
		slidingMoves(board, piece, from, straightDirs, mat)
	case chess.King:
		stepMoves(board, piece, from, kingOffsets, mat)
		castlingMoves(board, piece, from, ctx, mat)
	}
	return mat
}

// PossibleMove reports whether the piece may reach target.
func PossibleMove(board *chess.Board, piece *chess.Piece, target chess.Position, ctx MoveContext) bool {
	return PossibleMoves(board, piece, ctx).At(target)
}

// IsThereAnyPossibleMove reports whether the piece has at least one reachable cell.
func IsThereAnyPossibleMove(board *chess.Board, piece *chess.Piece, ctx MoveContext) bool {
	return PossibleMoves(board, piece, ctx).Any()
}

// stepMoves marks each fixed offset that is on the board and not held by
// a piece of the mover's colour.
func stepMoves(board *chess.Board, piece *chess.Piece, from chess.Position, offsets [][2]int, mat Matrix) {
	for _, off := range offsets {
		p := from.Offset(off[0], off[1])
		if board.PositionExists(p) && canMove(board, piece, p) {
			mat.mark(p)
		}
	}
}

// canMove reports whether the cell is empty or holds an opponent piece.
func canMove(board *chess.Board, piece *chess.Piece, p chess.Position) bool {
	other := board.Get(p)
	return other == nil || other.Colour() != piece.Colour()
}

// isOpponentPiece reports whether the cell holds a piece of the other colour.
func isOpponentPiece(board *chess.Board, piece *chess.Piece, p chess.Position) bool {
	other := board.Get(p)
	return other != nil && other.Colour() != piece.Colour()
}
