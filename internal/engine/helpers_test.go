package engine

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

var letterKinds = map[byte]chess.PieceKind{
	'P': chess.Pawn, 'N': chess.Knight, 'B': chess.Bishop,
	'R': chess.Rook, 'Q': chess.Queen, 'K': chess.King,
}

// parsePlacement reads "Ke1" (White) or "ke8" (Black).
func parsePlacement(t *testing.T, entry string) Placement {
	t.Helper()
	if len(entry) != 3 {
		t.Fatalf("bad placement %q", entry)
	}
	letter := entry[0]
	colour := chess.White
	if letter >= 'a' && letter <= 'z' {
		colour = chess.Black
		letter -= 'a' - 'A'
	}
	kind, ok := letterKinds[letter]
	if !ok {
		t.Fatalf("bad piece letter in %q", entry)
	}
	return Placement{Square: entry[1:], Kind: kind, Colour: colour}
}

// setupBoard builds a bare board from placements for move generation tests.
func setupBoard(t *testing.T, entries ...string) *chess.Board {
	t.Helper()
	board, err := chess.NewBoard(chess.BoardSize, chess.BoardSize)
	if err != nil {
		t.Fatalf("NewBoard() error: %v", err)
	}
	for _, entry := range entries {
		pl := parsePlacement(t, entry)
		pos := chess.MustChessPosition(pl.Square).ToPosition()
		if err := board.PlacePiece(chess.NewPiece(pl.Kind, pl.Colour), pos); err != nil {
			t.Fatalf("PlacePiece(%s) error: %v", entry, err)
		}
	}
	return board
}

// customMatch builds a match from placements with toMove to play.
func customMatch(t *testing.T, toMove chess.Colour, entries ...string) *Match {
	t.Helper()
	placements := make([]Placement, 0, len(entries))
	for _, entry := range entries {
		placements = append(placements, parsePlacement(t, entry))
	}
	m, err := NewCustomMatch(nil, toMove, placements...)
	if err != nil {
		t.Fatalf("NewCustomMatch() error: %v", err)
	}
	return m
}

func at(square string) chess.Position {
	return chess.MustChessPosition(square).ToPosition()
}

func sq(square string) chess.ChessPosition {
	return chess.MustChessPosition(square)
}

// movesFrom returns the reachable squares of the piece on square.
func movesFrom(board *chess.Board, square string, ctx MoveContext) []string {
	piece := board.Get(at(square))
	if piece == nil {
		return nil
	}
	return testutil.Squares(PossibleMoves(board, piece, ctx))
}

// play performs moves written as "e2e4" and fails the test on the first error.
func play(t *testing.T, m *Match, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if _, err := m.PerformChessMove(sq(mv[:2]), sq(mv[2:])); err != nil {
			t.Fatalf("PerformChessMove(%s) error: %v", mv, err)
		}
	}
}

// matchState is a plain-value copy of everything a move may change.
type matchState struct {
	Diagram       string
	Cells         []string
	OnBoard       []string
	Captured      []string
	Turn          int
	CurrentPlayer chess.Colour
	Check         bool
	Checkmate     bool
	EnPassant     string
}

func describe(p *chess.Piece) string {
	if cp, ok := p.ChessPosition(); ok {
		return fmt.Sprintf("%s@%s#%d", p, cp, p.MoveCount())
	}
	return fmt.Sprintf("%s#%d", p, p.MoveCount())
}

func stateOf(m *Match) matchState {
	pieces := m.Pieces()
	s := matchState{
		Diagram:       testutil.Diagram(pieces),
		Turn:          m.Turn(),
		CurrentPlayer: m.CurrentPlayer(),
		Check:         m.Check(),
		Checkmate:     m.Checkmate(),
	}
	for _, row := range pieces {
		for _, p := range row {
			if p != nil {
				s.Cells = append(s.Cells, describe(p))
			}
		}
	}
	for _, p := range m.onBoard {
		s.OnBoard = append(s.OnBoard, describe(p))
	}
	for _, p := range m.captured {
		s.Captured = append(s.Captured, describe(p))
	}
	if ep := m.EnPassantVulnerable(); ep != nil {
		s.EnPassant = describe(ep)
	}
	return s
}
