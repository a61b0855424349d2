package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Column distances from an unmoved king to the rooks it castles with.
const (
	kingsideRookDistance  = 3
	queensideRookDistance = 4
)

// castlingMoves marks the square two columns away from an unmoved king that
// is not in check when the matching rook is unmoved and the path is empty.
func castlingMoves(board *chess.Board, king *chess.Piece, from chess.Position, ctx MoveContext, mat Matrix) {
	if king.MoveCount() != 0 || ctx.InCheck {
		return
	}
	if canCastle(board, king, from, 1, kingsideRookDistance) {
		mat.mark(from.Offset(0, 2))
	}
	if canCastle(board, king, from, -1, queensideRookDistance) {
		mat.mark(from.Offset(0, -2))
	}
}

// canCastle tests the rook distance columns away in direction dir and
// every square strictly between it and the king.
func canCastle(board *chess.Board, king *chess.Piece, from chess.Position, dir, distance int) bool {
	rookPos := from.Offset(0, dir*distance)
	if !testRookCastling(board, king, rookPos) {
		return false
	}
	for step := 1; step < distance; step++ {
		if board.Get(from.Offset(0, dir*step)) != nil {
			return false
		}
	}
	return true
}

// testRookCastling reports whether pos holds an unmoved rook of the king's colour.
func testRookCastling(board *chess.Board, king *chess.Piece, pos chess.Position) bool {
	rook := board.Get(pos)
	return rook != nil && rook.Kind() == chess.Rook && rook.Colour() == king.Colour() && rook.MoveCount() == 0
}

// rookHop returns the rook's source and target cells for a king move, and
// whether the move is a castle at all.
func rookHop(king *chess.Piece, source, target chess.Position) (from, to chess.Position, ok bool) {
	if king.Kind() != chess.King || source.Row != target.Row {
		return from, to, false
	}
	switch target.Column - source.Column {
	case 2:
		return source.Offset(0, kingsideRookDistance), source.Offset(0, 1), true
	case -2:
		return source.Offset(0, -queensideRookDistance), source.Offset(0, -1), true
	}
	return from, to, false
}
