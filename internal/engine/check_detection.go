package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked by any
// opponent piece. A missing king is a corrupt setup and panics.
func (m *Match) IsInCheck(colour chess.Colour) bool {
	kingPos := m.kingPosition(colour)
	opponent := colour.Opposite()
	ctx := m.moveContext(opponent)
	for _, p := range m.piecesOf(opponent) {
		if PossibleMoves(m.board, p, ctx).At(kingPos) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if colour is in check and every reachable move
// of every piece of colour still leaves its king attacked.
func (m *Match) IsCheckmate(colour chess.Colour) bool {
	if !m.IsInCheck(colour) {
		return false
	}
	return !m.hasLegalMove(colour)
}

// hasLegalMove tries each reachable move of colour and reports whether any
// leaves its king safe. The board is restored after every trial.
func (m *Match) hasLegalMove(colour chess.Colour) bool {
	ctx := m.moveContext(colour)
	for _, p := range m.piecesOf(colour) {
		source, ok := p.Position()
		if !ok {
			continue
		}
		for _, target := range PossibleMoves(m.board, p, ctx).Positions() {
			escapes := m.withTrialMove(source, target, func() bool {
				return !m.IsInCheck(colour)
			})
			if escapes {
				return true
			}
		}
	}
	return false
}

// kingPosition finds the king of the given colour on the board.
func (m *Match) kingPosition(colour chess.Colour) chess.Position {
	for _, p := range m.onBoard {
		if p.Kind() != chess.King || p.Colour() != colour {
			continue
		}
		if pos, ok := p.Position(); ok {
			return pos
		}
	}
	panic(fmt.Errorf("%w: there is no %s king on the board", errors.ErrNoKing, colour))
}
