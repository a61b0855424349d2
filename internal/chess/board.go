package chess

import "github.com/lgbarn/chessmatch-go/internal/errors"

// Board is a rows x columns grid where each cell holds at most one piece.
// A piece's recorded position always equals the cell holding it.
type Board struct {
	rows    int
	columns int
	pieces  [][]*Piece
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(rows, columns int) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, &errors.BoardError{
			Err:    errors.ErrBoard,
			Row:    -1,
			Column: -1,
			Reason: "there must be at least 1 row and 1 column",
		}
	}
	pieces := make([][]*Piece, rows)
	for row := range pieces {
		pieces[row] = make([]*Piece, columns)
	}
	return &Board{rows: rows, columns: columns, pieces: pieces}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.columns
}

// PositionExists reports whether pos lies inside the grid. It never fails.
func (b *Board) PositionExists(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Column >= 0 && pos.Column < b.columns
}

// Piece returns the piece at pos, or nil if the cell is empty.
func (b *Board) Piece(pos Position) (*Piece, error) {
	if !b.PositionExists(pos) {
		return nil, outOfGrid(pos)
	}
	return b.pieces[pos.Row][pos.Column], nil
}

// Get returns the piece at pos, or nil for an empty or out-of-grid cell.
func (b *Board) Get(pos Position) *Piece {
	if !b.PositionExists(pos) {
		return nil
	}
	return b.pieces[pos.Row][pos.Column]
}

// ThereIsAPiece reports whether the cell at pos is occupied.
func (b *Board) ThereIsAPiece(pos Position) (bool, error) {
	if !b.PositionExists(pos) {
		return false, outOfGrid(pos)
	}
	return b.pieces[pos.Row][pos.Column] != nil, nil
}

// PlacePiece puts piece on the empty cell at pos and records its position.
func (b *Board) PlacePiece(piece *Piece, pos Position) error {
	occupied, err := b.ThereIsAPiece(pos)
	if err != nil {
		return err
	}
	if occupied {
		return &errors.BoardError{
			Err:    errors.ErrBoard,
			Row:    pos.Row,
			Column: pos.Column,
			Reason: "there is already a piece on position",
		}
	}
	b.pieces[pos.Row][pos.Column] = piece
	piece.position = pos
	piece.placed = true
	return nil
}

// RemovePiece clears the cell at pos and returns the piece it held, if any.
// The removed piece no longer has a position.
func (b *Board) RemovePiece(pos Position) (*Piece, error) {
	if !b.PositionExists(pos) {
		return nil, outOfGrid(pos)
	}
	piece := b.pieces[pos.Row][pos.Column]
	if piece == nil {
		return nil, nil
	}
	piece.placed = false
	piece.position = Position{}
	b.pieces[pos.Row][pos.Column] = nil
	return piece, nil
}

// Snapshot returns a copy of the grid for read-only use.
func (b *Board) Snapshot() [][]*Piece {
	mat := make([][]*Piece, b.rows)
	for row := range mat {
		mat[row] = make([]*Piece, b.columns)
		copy(mat[row], b.pieces[row])
	}
	return mat
}

func outOfGrid(pos Position) error {
	return &errors.BoardError{
		Err:    errors.ErrBoard,
		Row:    pos.Row,
		Column: pos.Column,
		Reason: "position not on the board",
	}
}
