// Package chess provides core chess types and board storage.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "WHITE"
	}
	return "BLACK"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour advances by.
// White moves toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PieceKind is the closed set of chess piece variants.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PromotionKind maps a promotion code to a piece kind.
// Only "B", "N", "R" and "Q" are accepted.
func PromotionKind(code string) (PieceKind, bool) {
	switch code {
	case "B":
		return Bishop, true
	case "N":
		return Knight, true
	case "R":
		return Rook, true
	case "Q":
		return Queen, true
	}
	return 0, false
}

// Piece is a single chess piece. Its position is maintained by the Board
// that holds it; a piece off the board has no position.
type Piece struct {
	kind      PieceKind
	colour    Colour
	moveCount int
	position  Position
	placed    bool
}

// NewPiece creates a piece that is not yet on any board.
func NewPiece(kind PieceKind, colour Colour) *Piece {
	return &Piece{kind: kind, colour: colour}
}

// Kind returns the piece variant.
func (p *Piece) Kind() PieceKind {
	return p.kind
}

// Colour returns the colour of the piece.
func (p *Piece) Colour() Colour {
	return p.colour
}

// MoveCount returns how many times the piece has moved.
func (p *Piece) MoveCount() int {
	return p.moveCount
}

// IncreaseMoveCount records one more move made by the piece.
func (p *Piece) IncreaseMoveCount() {
	p.moveCount++
}

// DecreaseMoveCount reverts the last recorded move.
func (p *Piece) DecreaseMoveCount() {
	p.moveCount--
}

// Position returns the cell holding the piece and whether it is on a board.
func (p *Piece) Position() (Position, bool) {
	return p.position, p.placed
}

// ChessPosition returns the algebraic square of the piece.
// The second result is false if the piece is off the board.
func (p *Piece) ChessPosition() (ChessPosition, bool) {
	if !p.placed {
		return ChessPosition{}, false
	}
	return FromPosition(p.position), true
}

// String returns the piece letter, uppercase for White and lowercase for Black.
func (p *Piece) String() string {
	letter := p.kind.Letter()
	if p.colour == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// PromotedTo returns a new off-board piece of kind with this piece's colour
// and move count.
func (p *Piece) PromotedTo(kind PieceKind) *Piece {
	return &Piece{kind: kind, colour: p.colour, moveCount: p.moveCount}
}
