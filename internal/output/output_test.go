package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func play(t *testing.T, m *engine.Match, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		src := chess.MustChessPosition(mv[:2])
		dst := chess.MustChessPosition(mv[2:])
		if _, err := m.PerformChessMove(src, dst); err != nil {
			t.Fatalf("PerformChessMove(%s) error: %v", mv, err)
		}
	}
}

func TestWriteBoard_InitialPosition(t *testing.T) {
	m := engine.NewMatch(nil)
	var buf bytes.Buffer

	if err := WriteBoard(&buf, m.Pieces(), nil, config.NewOutputConfig()); err != nil {
		t.Fatalf("WriteBoard() error: %v", err)
	}

	want := "8 r n b q k b n r \n" +
		"7 p p p p p p p p \n" +
		"6 - - - - - - - - \n" +
		"5 - - - - - - - - \n" +
		"4 - - - - - - - - \n" +
		"3 - - - - - - - - \n" +
		"2 P P P P P P P P \n" +
		"1 R N B Q K B N R \n" +
		"  a b c d e f g h\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestWriteBoard_Highlight(t *testing.T) {
	m := engine.NewMatch(nil)
	moves, err := m.PossibleMoves(chess.MustChessPosition("b1"))
	if err != nil {
		t.Fatalf("PossibleMoves(b1) error: %v", err)
	}

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteBoard(&buf, m.Pieces(), moves, nil); err != nil {
			t.Fatalf("WriteBoard() error: %v", err)
		}
		lines := strings.Split(buf.String(), "\n")
		if got, want := lines[5], "3 * - * - - - - - "; got != want {
			t.Errorf("rank 3 = %q, want %q", got, want)
		}
	})

	t.Run("color", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.NewConfigBuilder().WithColor(true).Build().Output
		if err := WriteBoard(&buf, m.Pieces(), moves, cfg); err != nil {
			t.Fatalf("WriteBoard() error: %v", err)
		}
		out := buf.String()
		if n := strings.Count(out, ansiGreenBackground); n != 2 {
			t.Errorf("highlighted cells = %d, want 2", n)
		}
		if !strings.Contains(out, ansiRed+"k"+ansiReset) {
			t.Error("black king is not drawn in red")
		}
		if !strings.Contains(out, ansiWhite+"K"+ansiReset) {
			t.Error("white king is not drawn in white")
		}
	})
}

func TestWriteBoard_Unicode(t *testing.T) {
	m := engine.NewMatch(nil)
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithUnicode(true).Build().Output

	if err := WriteBoard(&buf, m.Pieces(), nil, cfg); err != nil {
		t.Fatalf("WriteBoard() error: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if got, want := lines[0], "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜ "; got != want {
		t.Errorf("rank 8 = %q, want %q", got, want)
	}
	if got, want := lines[6], "2 ♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙ "; got != want {
		t.Errorf("rank 2 = %q, want %q", got, want)
	}
}

func TestWriteStatus(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{
			name:  "start",
			moves: nil,
			want: "Captured pieces:\nWhite: []\nBlack: []\n\n" +
				"Turn: 1\nWaiting player: WHITE\n",
		},
		{
			name:  "capture and check",
			moves: []string{"e2e4", "d7d5", "e4d5", "e7e6", "f1b5"},
			want: "Captured pieces:\nWhite: []\nBlack: [p]\n\n" +
				"Turn: 6\nWaiting player: BLACK\nCHECK!\n",
		},
		{
			name:  "checkmate",
			moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			want: "Captured pieces:\nWhite: []\nBlack: []\n\n" +
				"Turn: 4\nCHECKMATE!\nWinner: BLACK\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := engine.NewMatch(nil)
			play(t, m, tt.moves...)

			var buf bytes.Buffer
			if err := WriteStatus(&buf, m, config.NewOutputConfig()); err != nil {
				t.Fatalf("WriteStatus() error: %v", err)
			}
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestWriteStatus_HideCaptured(t *testing.T) {
	m := engine.NewMatch(nil)
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithShowCaptured(false).Build().Output

	if err := WriteStatus(&buf, m, cfg); err != nil {
		t.Fatalf("WriteStatus() error: %v", err)
	}
	if strings.Contains(buf.String(), "Captured") {
		t.Errorf("captured pieces listed with ShowCaptured off:\n%s", buf.String())
	}
}
