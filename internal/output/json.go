package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// Snapshot is the read-only state of a match in JSON form.
type Snapshot struct {
	ID            string         `json:"id"`
	Turn          int            `json:"turn"`
	CurrentPlayer string         `json:"currentPlayer"`
	Check         bool           `json:"check"`
	Checkmate     bool           `json:"checkmate"`
	Winner        string         `json:"winner,omitempty"`
	EnPassant     string         `json:"enPassant,omitempty"`
	Promoted      string         `json:"promoted,omitempty"`
	Pieces        []JSONPiece    `json:"pieces"`
	Captured      []JSONPiece    `json:"captured,omitempty"`
	Moves         *JSONMoveHints `json:"moves,omitempty"`
}

// JSONPiece is a piece and, when on the board, its square.
type JSONPiece struct {
	Colour string `json:"colour"`
	Kind   string `json:"kind"`
	Square string `json:"square,omitempty"`
	Moves  int    `json:"moves"`
}

// JSONMoveHints lists the squares reachable from a chosen source.
type JSONMoveHints struct {
	Source  string   `json:"source"`
	Targets []string `json:"targets"`
}

// NewSnapshot captures the state of m. Pieces are listed rank 8 to rank 1,
// file a to h.
func NewSnapshot(m *engine.Match) *Snapshot {
	snap := &Snapshot{
		ID:            m.ID().String(),
		Turn:          m.Turn(),
		CurrentPlayer: m.CurrentPlayer().String(),
		Check:         m.Check(),
		Checkmate:     m.Checkmate(),
		Pieces:        []JSONPiece{},
	}
	if m.Checkmate() {
		snap.Winner = m.CurrentPlayer().String()
	}
	if p := m.EnPassantVulnerable(); p != nil {
		if cp, ok := p.ChessPosition(); ok {
			snap.EnPassant = cp.String()
		}
	}
	if p := m.Promoted(); p != nil {
		if cp, ok := p.ChessPosition(); ok {
			snap.Promoted = cp.String()
		}
	}

	for _, row := range m.Pieces() {
		for _, p := range row {
			if p != nil {
				snap.Pieces = append(snap.Pieces, pieceToJSON(p))
			}
		}
	}
	for _, p := range m.CapturedPieces() {
		snap.Captured = append(snap.Captured, pieceToJSON(p))
	}
	return snap
}

// WithMoves attaches the reachable squares from source to the snapshot.
func (s *Snapshot) WithMoves(source chess.ChessPosition, moves engine.Matrix) *Snapshot {
	hints := &JSONMoveHints{Source: source.String(), Targets: []string{}}
	for _, pos := range moves.Positions() {
		hints.Targets = append(hints.Targets, chess.FromPosition(pos).String())
	}
	s.Moves = hints
	return s
}

func pieceToJSON(p *chess.Piece) JSONPiece {
	jp := JSONPiece{
		Colour: p.Colour().String(),
		Kind:   p.Kind().String(),
		Moves:  p.MoveCount(),
	}
	if cp, ok := p.ChessPosition(); ok {
		jp.Square = cp.String()
	}
	return jp
}

// WriteJSON writes the snapshot as indented JSON.
func WriteJSON(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
