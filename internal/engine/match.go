// Package engine provides chess move generation and the match orchestrator.
package engine

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Match is a single chess game. It owns its board exclusively and is
// mutated only through PerformChessMove and ReplacePromotedPiece.
// A Match is not safe for concurrent use.
type Match struct {
	id  uuid.UUID
	cfg *config.Config

	board         *chess.Board
	turn          int
	currentPlayer chess.Colour

	// check refers to checked; after every accepted move checked is the
	// side to move unless the match ended in checkmate.
	check     bool
	checked   chess.Colour
	checkmate bool

	enPassantVulnerable *chess.Piece
	promoted            *chess.Piece

	onBoard  []*chess.Piece
	captured []*chess.Piece
}

// Move is a source and target square pair.
type Move struct {
	Source chess.ChessPosition
	Target chess.ChessPosition
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (mv Move) String() string {
	return mv.Source.String() + mv.Target.String()
}

func newMatch(cfg *config.Config, board *chess.Board) *Match {
	if cfg == nil {
		cfg = config.NewConfig()
		cfg.LogFile = nil
	}
	return &Match{
		id:            uuid.New(),
		cfg:           cfg,
		board:         board,
		turn:          1,
		currentPlayer: chess.White,
		checked:       chess.White,
	}
}

// ID returns the identifier used to tag this match's log lines.
func (m *Match) ID() uuid.UUID {
	return m.id
}

// Turn returns the current turn number, starting at 1.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentPlayer returns the colour to move.
func (m *Match) CurrentPlayer() chess.Colour {
	return m.currentPlayer
}

// Check reports whether the last move put the opponent in check. Unless the
// match is over, that opponent is the side to move.
func (m *Match) Check() bool {
	return m.check
}

// Checkmate reports whether the match has ended in checkmate.
func (m *Match) Checkmate() bool {
	return m.checkmate
}

// EnPassantVulnerable returns the pawn that may be captured en passant on
// this half-move, or nil.
func (m *Match) EnPassantVulnerable() *chess.Piece {
	return m.enPassantVulnerable
}

// Promoted returns the piece produced by the last promotion, or nil if the
// last move did not promote.
func (m *Match) Promoted() *chess.Piece {
	return m.promoted
}

// Pieces returns a snapshot of the board for display.
func (m *Match) Pieces() [][]*chess.Piece {
	return m.board.Snapshot()
}

// CapturedPieces returns the captured pieces in capture order.
func (m *Match) CapturedPieces() []*chess.Piece {
	out := make([]*chess.Piece, len(m.captured))
	copy(out, m.captured)
	return out
}

// PossibleMoves returns the legality matrix of the piece on source.
func (m *Match) PossibleMoves(source chess.ChessPosition) (Matrix, error) {
	if m.checkmate {
		return nil, &errors.MoveError{
			Err:    errors.ErrMatchOver,
			Source: source.String(),
			Reason: "the match ended in checkmate",
		}
	}
	pos := source.ToPosition()
	if err := m.validateSourcePosition(source); err != nil {
		return nil, err
	}
	piece := m.board.Get(pos)
	return PossibleMoves(m.board, piece, m.moveContext(piece.Colour())), nil
}

// PerformChessMove validates and executes a move for the current player and
// returns the captured piece, if any. A rejected move leaves the match
// exactly as it was.
func (m *Match) PerformChessMove(source, target chess.ChessPosition) (*chess.Piece, error) {
	if m.checkmate {
		return nil, &errors.MoveError{
			Err:    errors.ErrMatchOver,
			Source: source.String(),
			Target: target.String(),
			Reason: "the match ended in checkmate",
		}
	}
	if err := m.validateSourcePosition(source); err != nil {
		m.cfg.Logf(config.Commentary, "[%s] turn %d: %v\n", m.shortID(), m.turn, err)
		return nil, err
	}
	if err := m.validateTargetPosition(source, target); err != nil {
		m.cfg.Logf(config.Commentary, "[%s] turn %d: %v\n", m.shortID(), m.turn, err)
		return nil, err
	}

	from := source.ToPosition()
	to := target.ToPosition()
	rec := m.makeMove(from, to)

	if m.IsInCheck(m.currentPlayer) {
		m.undoMove(rec)
		err := &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Source: source.String(),
			Target: target.String(),
			Reason: "you can't put yourself in check",
		}
		m.cfg.Logf(config.Commentary, "[%s] turn %d: %v\n", m.shortID(), m.turn, err)
		return nil, err
	}

	mover := m.currentPlayer
	moved := rec.piece
	m.cfg.Logf(config.Commentary, "[%s] turn %d: %s %s %s\n",
		m.shortID(), m.turn, mover, moved.Kind(), Move{source, target})

	m.promoted = nil
	if moved.Kind() == chess.Pawn && to.Row == promotionRow(m.board, moved.Colour()) {
		m.promoted = moved
		m.promoted = m.promote(m.defaultPromotion())
	}

	// The opponent's replies, including the checkmate search, may capture
	// this pawn en passant.
	if moved.Kind() == chess.Pawn && abs(to.Row-from.Row) == 2 {
		m.enPassantVulnerable = moved
	} else {
		m.enPassantVulnerable = nil
	}

	m.updateCheckState(mover)
	if m.checkmate {
		m.cfg.Logf(config.Summary, "[%s] turn %d: CHECKMATE, %s wins\n", m.shortID(), m.turn, mover)
	} else if m.check {
		m.cfg.Logf(config.Summary, "[%s] turn %d: %s is in check\n", m.shortID(), m.turn, m.currentPlayer)
	}

	return rec.captured, nil
}

// updateCheckState recomputes check and checkmate for the opponent of mover
// and advances the turn unless the opponent is mated.
func (m *Match) updateCheckState(mover chess.Colour) {
	opponent := mover.Opposite()
	m.checked = opponent
	m.check = m.IsInCheck(opponent)
	if m.IsCheckmate(opponent) {
		m.checkmate = true
		return
	}
	m.nextTurn()
}

func (m *Match) validateSourcePosition(source chess.ChessPosition) error {
	piece := m.board.Get(source.ToPosition())
	if piece == nil {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Source: source.String(),
			Reason: "there is no piece on source position"}
	}
	if piece.Colour() != m.currentPlayer {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Source: source.String(),
			Reason: "the chosen piece is not yours"}
	}
	if !IsThereAnyPossibleMove(m.board, piece, m.moveContext(piece.Colour())) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Source: source.String(),
			Reason: "there is no possible moves for the chosen piece"}
	}
	return nil
}

func (m *Match) validateTargetPosition(source, target chess.ChessPosition) error {
	piece := m.board.Get(source.ToPosition())
	if !PossibleMove(m.board, piece, target.ToPosition(), m.moveContext(piece.Colour())) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Source: source.String(), Target: target.String(),
			Reason: "the chosen piece can't move to target position"}
	}
	return nil
}

// moveContext builds the move generation inputs for pieces of colour.
func (m *Match) moveContext(colour chess.Colour) MoveContext {
	ctx := MoveContext{InCheck: m.check && m.checked == colour}
	if m.enPassantVulnerable != nil {
		if pos, ok := m.enPassantVulnerable.Position(); ok {
			ctx.EnPassant = true
			ctx.EnPassantSquare = pos
		}
	}
	return ctx
}

func (m *Match) nextTurn() {
	m.turn++
	m.currentPlayer = m.currentPlayer.Opposite()
}

func (m *Match) previousTurn() {
	m.turn--
	m.currentPlayer = m.currentPlayer.Opposite()
}

// piecesOf returns the on-board pieces of colour as a new slice, safe to
// range over while trial moves reorder the on-board list.
func (m *Match) piecesOf(colour chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range m.onBoard {
		if p.Colour() == colour {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) shortID() string {
	return m.id.String()[:8]
}
