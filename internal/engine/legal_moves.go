package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// LegalMoves returns every move of colour that does not leave its own king
// in check, ordered by source piece then target square.
func (m *Match) LegalMoves(colour chess.Colour) []Move {
	var moves []Move
	ctx := m.moveContext(colour)
	for _, p := range m.piecesOf(colour) {
		source, ok := p.Position()
		if !ok {
			continue
		}
		for _, target := range PossibleMoves(m.board, p, ctx).Positions() {
			safe := m.withTrialMove(source, target, func() bool {
				return !m.IsInCheck(colour)
			})
			if safe {
				moves = append(moves, Move{
					Source: chess.FromPosition(source),
					Target: chess.FromPosition(target),
				})
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (m *Match) HasLegalMoves(colour chess.Colour) bool {
	return m.hasLegalMove(colour)
}
