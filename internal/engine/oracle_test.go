package engine

import (
	"sort"
	"strconv"
	"strings"
	"testing"

	oracle "github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// fenBoard renders pieces as the board field of a FEN record.
func fenBoard(pieces [][]*chess.Piece) string {
	var sb strings.Builder
	for row, cells := range pieces {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for _, p := range cells {
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}

// oracleMoves returns the distinct source-target pairs the reference
// library accepts, ignoring the promotion piece.
func oracleMoves(game *oracle.Game) []string {
	seen := map[string]bool{}
	var out []string
	for _, mv := range game.ValidMoves() {
		key := mv.S1().String() + mv.S2().String()
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func engineMoves(m *Match) []string {
	var out []string
	for _, mv := range m.LegalMoves(m.CurrentPlayer()) {
		out = append(out, mv.String())
	}
	sort.Strings(out)
	return out
}

func oracleMove(t *testing.T, game *oracle.Game, text string) *oracle.Move {
	t.Helper()
	for _, mv := range game.ValidMoves() {
		if mv.S1().String()+mv.S2().String() != text {
			continue
		}
		if mv.Promo() == oracle.NoPieceType || mv.Promo() == oracle.Queen {
			return mv
		}
	}
	t.Fatalf("reference library rejects %s", text)
	return nil
}

func TestLegalMoves_MatchReference(t *testing.T) {
	games := []struct {
		name  string
		moves []string
	}{
		{"italian with both castles", []string{
			"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1g1", "g8f6", "d2d3", "e8g8",
		}},
		{"en passant", []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6", "c7d6"}},
		{"promotion by capture", []string{
			"a2a4", "b7b5", "a4b5", "a7a6", "b5a6", "c8b7", "a6b7", "b8c6", "b7a8", "e7e6",
		}},
		{"fool's mate", []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
		{"queen check and block", []string{"e2e4", "f7f5", "d1h5", "g7g6", "h5g6", "h7g6"}},
	}

	for _, tt := range games {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewMatch(nil)
			game := oracle.NewGame()

			for ply, text := range tt.moves {
				require.Equal(t, oracleMoves(game), engineMoves(m), "legal moves before ply %d (%s)", ply, text)

				_, err := m.PerformChessMove(sq(text[:2]), sq(text[2:]))
				require.NoError(t, err, text)
				require.NoError(t, game.Move(oracleMove(t, game, text)))

				assert.Equal(t, game.Position().Board().String(), fenBoard(m.Pieces()), "board after %s", text)
			}

			assert.Equal(t, game.Method() == oracle.Checkmate, m.Checkmate())
			if !m.Checkmate() {
				assert.Equal(t, oracleMoves(game), engineMoves(m))
			}
		})
	}
}
