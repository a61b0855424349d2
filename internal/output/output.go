// Package output renders match state for the console: a text board,
// a status block and a JSON snapshot.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// ANSI escape codes used when color output is enabled.
const (
	ansiReset           = "\u001B[0m"
	ansiRed             = "\u001B[31m"
	ansiWhite           = "\u001B[37m"
	ansiGreenBackground = "\u001B[42m"
)

// Cell markers for plain output. Without color a reachable capture is
// indistinguishable from an unreachable piece.
const (
	emptyCell     = "-"
	reachableCell = "*"
)

var glyphs = [2][chess.NumPieceKinds]string{
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// WriteBoard prints the board from rank 8 down to rank 1 followed by the
// file letters. Cells set in highlight are marked as reachable; highlight
// may be nil.
func WriteBoard(w io.Writer, pieces [][]*chess.Piece, highlight [][]bool, cfg *config.OutputConfig) error {
	var sb strings.Builder
	for row, cells := range pieces {
		fmt.Fprintf(&sb, "%d ", len(pieces)-row)
		for col, piece := range cells {
			marked := row < len(highlight) && col < len(highlight[row]) && highlight[row][col]
			writeCell(&sb, piece, marked, cfg)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < len(pieces); col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(chess.FileBase + col))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCell(sb *strings.Builder, piece *chess.Piece, marked bool, cfg *config.OutputConfig) {
	if cfg == nil || !cfg.Color {
		switch {
		case piece != nil:
			sb.WriteString(pieceText(piece, cfg))
		case marked:
			sb.WriteString(reachableCell)
		default:
			sb.WriteString(emptyCell)
		}
		return
	}

	if marked {
		sb.WriteString(ansiGreenBackground)
	}
	switch {
	case piece == nil:
		sb.WriteString(emptyCell)
	case piece.Colour() == chess.White:
		sb.WriteString(ansiWhite + pieceText(piece, cfg))
	default:
		sb.WriteString(ansiRed + pieceText(piece, cfg))
	}
	if marked || piece != nil {
		sb.WriteString(ansiReset)
	}
}

func pieceText(piece *chess.Piece, cfg *config.OutputConfig) string {
	if cfg != nil && cfg.Unicode && piece.Kind() < chess.NumPieceKinds {
		return glyphs[piece.Colour()][piece.Kind()]
	}
	return piece.String()
}

// WriteStatus prints the captured pieces, the turn and either the player to
// move or the winner.
func WriteStatus(w io.Writer, m *engine.Match, cfg *config.OutputConfig) error {
	var sb strings.Builder
	if cfg == nil || cfg.ShowCaptured {
		writeCaptured(&sb, m.CapturedPieces(), cfg)
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "Turn: %d\n", m.Turn())
	if m.Checkmate() {
		sb.WriteString("CHECKMATE!\n")
		fmt.Fprintf(&sb, "Winner: %s\n", m.CurrentPlayer())
	} else {
		fmt.Fprintf(&sb, "Waiting player: %s\n", m.CurrentPlayer())
		if m.Check() {
			sb.WriteString("CHECK!\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCaptured(sb *strings.Builder, captured []*chess.Piece, cfg *config.OutputConfig) {
	sb.WriteString("Captured pieces:\n")
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		var names []string
		for _, p := range captured {
			if p.Colour() == colour {
				names = append(names, pieceText(p, cfg))
			}
		}
		fmt.Fprintf(sb, "%s: [%s]\n", colourLabel(colour), strings.Join(names, ", "))
	}
}

func colourLabel(c chess.Colour) string {
	if c == chess.White {
		return "White"
	}
	return "Black"
}
