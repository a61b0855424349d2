package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ReplacePromotedPiece swaps the piece produced by the last promotion for
// one of the given code: "B", "N", "R" or "Q". An unknown code keeps the
// current piece. Check and checkmate are recomputed for the new piece.
func (m *Match) ReplacePromotedPiece(code string) (*chess.Piece, error) {
	if m.promoted == nil {
		return nil, errors.Wrap(errors.ErrNoPromotion, "replace promoted piece")
	}
	kind, ok := chess.PromotionKind(code)
	if !ok {
		return m.promoted, nil
	}

	mover := m.promoted.Colour()
	m.promoted = m.promote(kind)
	m.cfg.Logf(config.Summary, "[%s] turn %d: %s promoted to %s\n", m.shortID(), m.turn, mover, kind)

	wasCheckmate := m.checkmate
	if !wasCheckmate {
		m.previousTurn()
	}
	m.checkmate = false
	m.updateCheckState(mover)
	if m.checkmate && !wasCheckmate {
		m.cfg.Logf(config.Summary, "[%s] turn %d: CHECKMATE, %s wins\n", m.shortID(), m.turn, mover)
	}
	return m.promoted, nil
}

// promote replaces the piece in m.promoted with a new piece of kind on the
// same cell, keeping its colour, move count and place in the on-board list.
func (m *Match) promote(kind chess.PieceKind) *chess.Piece {
	old := m.promoted
	pos, ok := old.Position()
	if !ok || old.Kind() == kind {
		return old
	}

	mustRemove(m.board, pos)
	piece := old.PromotedTo(kind)
	mustPlace(m.board, piece, pos)

	if i := slices.Index(m.onBoard, old); i >= 0 {
		m.onBoard[i] = piece
	} else {
		m.onBoard = append(m.onBoard, piece)
	}
	return piece
}

func (m *Match) defaultPromotion() chess.PieceKind {
	if m.cfg.Match != nil {
		if kind, ok := chess.PromotionKind(m.cfg.Match.DefaultPromotion); ok {
			return kind
		}
	}
	return chess.Queen
}
