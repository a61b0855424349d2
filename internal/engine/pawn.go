package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// enPassantRow returns the row a pawn must stand on to capture en passant.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 3
	}
	return 4
}

// promotionRow returns the far row a pawn of the colour promotes on.
func promotionRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return board.Rows() - 1
}

// pawnMoves marks single and double advances, diagonal captures and en passant.
func pawnMoves(board *chess.Board, pawn *chess.Piece, from chess.Position, ctx MoveContext, mat Matrix) {
	dir := pawn.Colour().Forward()

	one := from.Offset(dir, 0)
	if board.PositionExists(one) && board.Get(one) == nil {
		mat.mark(one)

		two := from.Offset(2*dir, 0)
		if pawn.MoveCount() == 0 && board.PositionExists(two) && board.Get(two) == nil {
			mat.mark(two)
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := from.Offset(dir, dc)
		if board.PositionExists(diag) && isOpponentPiece(board, pawn, diag) {
			mat.mark(diag)
		}
	}

	// en passant
	if !ctx.EnPassant || from.Row != enPassantRow(pawn.Colour()) {
		return
	}
	for _, dc := range []int{-1, 1} {
		side := from.Offset(0, dc)
		if side != ctx.EnPassantSquare || !isOpponentPiece(board, pawn, side) {
			continue
		}
		if board.Get(side).Kind() != chess.Pawn {
			continue
		}
		if target := side.Offset(dir, 0); board.PositionExists(target) {
			mat.mark(target)
		}
	}
}
