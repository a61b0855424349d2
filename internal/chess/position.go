package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = 1
	FileBase  = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstFile = FileBase
	LastFile  = FileBase + BoardSize - 1
)

// Position is a zero-based (row, column) cell. Row 0 is rank 8.
type Position struct {
	Row    int
	Column int
}

// Offset returns the position shifted by the given deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dCol}
}

// String returns the string representation of a position.
func (p Position) String() string {
	return fmt.Sprintf("%d, %d", p.Row, p.Column)
}

// ChessPosition is an algebraic square: file 'a'-'h' and rank 1-8.
type ChessPosition struct {
	File byte
	Rank int
}

// NewChessPosition validates and builds an algebraic square.
func NewChessPosition(file byte, rank int) (ChessPosition, error) {
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return ChessPosition{}, errors.Wrapf(errors.ErrInvalidSquare,
			"%c%d: valid values are from a1 to h8", file, rank)
	}
	return ChessPosition{File: file, Rank: rank}, nil
}

// MustChessPosition is like ParseChessPosition but panics on bad input.
// It is intended for fixed squares in setup code and tests.
func MustChessPosition(text string) ChessPosition {
	cp, err := ParseChessPosition(text)
	if err != nil {
		panic(err)
	}
	return cp
}

// ParseChessPosition reads exactly one file letter followed by one rank digit.
func ParseChessPosition(text string) (ChessPosition, error) {
	if len(text) != 2 {
		return ChessPosition{}, errors.Wrapf(errors.ErrInvalidSquare,
			"%q: expected a file letter and a rank digit", text)
	}
	file := text[0]
	rank := text[1]
	if rank < '1' || rank > '8' {
		return ChessPosition{}, errors.Wrapf(errors.ErrInvalidSquare,
			"%q: valid values are from a1 to h8", text)
	}
	return NewChessPosition(file, int(rank-'0'))
}

// ToPosition converts the square to board indices.
func (cp ChessPosition) ToPosition() Position {
	return Position{Row: BoardSize - cp.Rank, Column: int(cp.File - FileBase)}
}

// FromPosition converts board indices back to an algebraic square.
func FromPosition(p Position) ChessPosition {
	return ChessPosition{File: byte(FileBase + p.Column), Rank: BoardSize - p.Row}
}

// String returns the algebraic form, e.g. "e4".
func (cp ChessPosition) String() string {
	return fmt.Sprintf("%c%d", cp.File, cp.Rank)
}
