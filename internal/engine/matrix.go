package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Matrix is a legality matrix: one flag per board cell, true where a piece
// may move ignoring self-check.
type Matrix [][]bool

// NewMatrix creates an all-false matrix of the given dimensions.
func NewMatrix(rows, columns int) Matrix {
	mat := make(Matrix, rows)
	for row := range mat {
		mat[row] = make([]bool, columns)
	}
	return mat
}

// At reports whether pos is marked. Positions outside the matrix are never marked.
func (m Matrix) At(pos chess.Position) bool {
	if pos.Row < 0 || pos.Row >= len(m) || pos.Column < 0 || pos.Column >= len(m[pos.Row]) {
		return false
	}
	return m[pos.Row][pos.Column]
}

func (m Matrix) mark(pos chess.Position) {
	m[pos.Row][pos.Column] = true
}

// Any reports whether at least one cell is marked.
func (m Matrix) Any() bool {
	for _, row := range m {
		for _, ok := range row {
			if ok {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked cells.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}

// Positions lists the marked cells in row-major order.
func (m Matrix) Positions() []chess.Position {
	var out []chess.Position
	for row := range m {
		for col, ok := range m[row] {
			if ok {
				out = append(out, chess.Position{Row: row, Column: col})
			}
		}
	}
	return out
}
