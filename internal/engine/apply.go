package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// moveRecord holds everything undoMove needs to restore the position
// exactly as it was before makeMove.
type moveRecord struct {
	source, target chess.Position
	piece          *chess.Piece

	// captured is nil for a quiet move. capturedAt differs from target
	// for an en passant capture.
	captured      *chess.Piece
	capturedAt    chess.Position
	capturedIndex int

	castle           bool
	rookFrom, rookTo chess.Position
}

// makeMove moves the piece on source to target, applying captures and the
// castling and en passant side effects. The move must already be known to
// be reachable; a board failure here means the match state is corrupt.
func (m *Match) makeMove(source, target chess.Position) moveRecord {
	p := mustRemove(m.board, source)
	p.IncreaseMoveCount()
	rec := moveRecord{source: source, target: target, piece: p}

	if captured := mustRemove(m.board, target); captured != nil {
		m.capture(&rec, captured, target)
	}
	mustPlace(m.board, p, target)

	// Castling: the rook hops over the king.
	if from, to, ok := rookHop(p, source, target); ok {
		rook := mustRemove(m.board, from)
		mustPlace(m.board, rook, to)
		rook.IncreaseMoveCount()
		rec.castle, rec.rookFrom, rec.rookTo = true, from, to
	}

	// En passant: a diagonal pawn move onto an empty cell takes the pawn
	// standing beside the source.
	if p.Kind() == chess.Pawn && source.Column != target.Column && rec.captured == nil {
		behind := chess.Position{Row: source.Row, Column: target.Column}
		if captured := mustRemove(m.board, behind); captured != nil {
			m.capture(&rec, captured, behind)
		}
	}

	return rec
}

// capture moves a piece from the on-board list to the captured list.
func (m *Match) capture(rec *moveRecord, captured *chess.Piece, at chess.Position) {
	rec.captured = captured
	rec.capturedAt = at
	rec.capturedIndex = slices.Index(m.onBoard, captured)
	if rec.capturedIndex >= 0 {
		m.onBoard = slices.Delete(m.onBoard, rec.capturedIndex, rec.capturedIndex+1)
	}
	m.captured = append(m.captured, captured)
}

// undoMove is the exact inverse of the makeMove that produced rec.
func (m *Match) undoMove(rec moveRecord) {
	if rec.castle {
		rook := mustRemove(m.board, rec.rookTo)
		mustPlace(m.board, rook, rec.rookFrom)
		rook.DecreaseMoveCount()
	}

	p := mustRemove(m.board, rec.target)
	p.DecreaseMoveCount()
	mustPlace(m.board, p, rec.source)

	if rec.captured != nil {
		mustPlace(m.board, rec.captured, rec.capturedAt)
		if i := slices.Index(m.captured, rec.captured); i >= 0 {
			m.captured = slices.Delete(m.captured, i, i+1)
		}
		if rec.capturedIndex >= 0 {
			m.onBoard = slices.Insert(m.onBoard, rec.capturedIndex, rec.captured)
		}
	}
}

// withTrialMove makes a move, runs probe and always undoes the move before
// returning the probe's result. Trial moves nest in strict LIFO order.
func (m *Match) withTrialMove(source, target chess.Position, probe func() bool) bool {
	rec := m.makeMove(source, target)
	defer m.undoMove(rec)
	return probe()
}

func mustRemove(board *chess.Board, pos chess.Position) *chess.Piece {
	p, err := board.RemovePiece(pos)
	if err != nil {
		panic(fmt.Errorf("corrupt match state: %w", err))
	}
	return p
}

func mustPlace(board *chess.Board, p *chess.Piece, pos chess.Position) {
	if p == nil {
		panic(fmt.Errorf("corrupt match state: no piece to place on %v", chess.FromPosition(pos)))
	}
	if err := board.PlacePiece(p, pos); err != nil {
		panic(fmt.Errorf("corrupt match state: %w", err))
	}
}
