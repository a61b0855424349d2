package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// backRank is the file order of the pieces on each side's first rank.
var backRank = []chess.PieceKind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// Placement puts one piece on a square when building a custom match.
type Placement struct {
	Square string
	Kind   chess.PieceKind
	Colour chess.Colour

	// Moves preloads the piece's move count, e.g. to forbid castling
	// or a pawn's double advance.
	Moves int
}

// NewMatch creates a match with the standard 32-piece starting arrangement.
// A nil cfg uses defaults with logging disabled.
func NewMatch(cfg *config.Config) *Match {
	board, err := chess.NewBoard(chess.BoardSize, chess.BoardSize)
	if err != nil {
		panic(err)
	}
	m := newMatch(cfg, board)
	if err := m.initialSetup(); err != nil {
		panic(err)
	}
	return m
}

// NewCustomMatch creates a match on an empty board populated from
// placements, with toMove to play first. Both kings must be present and the
// side not to move must not be in check. A position where toMove is already
// mated yields a finished match.
func NewCustomMatch(cfg *config.Config, toMove chess.Colour, placements ...Placement) (*Match, error) {
	board, err := chess.NewBoard(chess.BoardSize, chess.BoardSize)
	if err != nil {
		return nil, err
	}
	m := newMatch(cfg, board)
	m.currentPlayer = toMove
	m.checked = toMove

	kings := map[chess.Colour]int{}
	for _, pl := range placements {
		square, err := chess.ParseChessPosition(pl.Square)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrBoard, "placing %s %s: %v", pl.Colour, pl.Kind, err)
		}
		piece := chess.NewPiece(pl.Kind, pl.Colour)
		for i := 0; i < pl.Moves; i++ {
			piece.IncreaseMoveCount()
		}
		if err := m.placeNewPiece(square, piece); err != nil {
			return nil, err
		}
		if pl.Kind == chess.King {
			kings[pl.Colour]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings, want 1", errors.ErrNoKing, colour, kings[colour])
		}
	}

	if m.IsInCheck(toMove.Opposite()) {
		return nil, &errors.BoardError{
			Err:    errors.ErrBoard,
			Row:    -1,
			Column: -1,
			Reason: fmt.Sprintf("%s is in check but %s is to move", toMove.Opposite(), toMove),
		}
	}

	m.check = m.IsInCheck(toMove)
	if m.IsCheckmate(toMove) {
		// The match is over before it starts; the winner is the current player.
		m.checkmate = true
		m.currentPlayer = toMove.Opposite()
	}
	return m, nil
}

// placeNewPiece puts a fresh piece on the board and tracks it as on-board.
func (m *Match) placeNewPiece(square chess.ChessPosition, piece *chess.Piece) error {
	if err := m.board.PlacePiece(piece, square.ToPosition()); err != nil {
		return err
	}
	m.onBoard = append(m.onBoard, piece)
	return nil
}

// initialSetup lays out the standard starting position.
func (m *Match) initialSetup() error {
	for col, kind := range backRank {
		file := byte('a' + col)
		setup := []struct {
			rank   int
			kind   chess.PieceKind
			colour chess.Colour
		}{
			{1, kind, chess.White},
			{2, chess.Pawn, chess.White},
			{7, chess.Pawn, chess.Black},
			{8, kind, chess.Black},
		}
		for _, s := range setup {
			square, err := chess.NewChessPosition(file, s.rank)
			if err != nil {
				return err
			}
			if err := m.placeNewPiece(square, chess.NewPiece(s.kind, s.colour)); err != nil {
				return err
			}
		}
	}
	return nil
}
