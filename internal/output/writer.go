package output

import (
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// MatchWriter renders a match after each move and the reachable squares
// while a player picks a target.
type MatchWriter interface {
	// WriteMatch writes the board and status of m.
	WriteMatch(m *engine.Match) error

	// WritePossibleMoves writes the board with the moves from source marked.
	WritePossibleMoves(m *engine.Match, source chess.ChessPosition, moves engine.Matrix) error
}

// NewMatchWriter returns the writer selected by cfg.Output.
func NewMatchWriter(w io.Writer, cfg *config.Config) MatchWriter {
	if cfg.Output != nil && cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output)
}

// TextWriter writes the board as text.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteMatch writes the board, a blank line and the status block.
func (tw *TextWriter) WriteMatch(m *engine.Match) error {
	if err := WriteBoard(tw.w, m.Pieces(), nil, tw.cfg); err != nil {
		return err
	}
	if _, err := io.WriteString(tw.w, "\n"); err != nil {
		return err
	}
	return WriteStatus(tw.w, m, tw.cfg)
}

// WritePossibleMoves writes the board with reachable cells marked.
func (tw *TextWriter) WritePossibleMoves(m *engine.Match, _ chess.ChessPosition, moves engine.Matrix) error {
	return WriteBoard(tw.w, m.Pieces(), moves, tw.cfg)
}

// JSONWriter writes one snapshot per call, each on its own.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteMatch writes a snapshot of m.
func (jw *JSONWriter) WriteMatch(m *engine.Match) error {
	return WriteJSON(jw.w, NewSnapshot(m))
}

// WritePossibleMoves writes a snapshot of m including the reachable squares.
func (jw *JSONWriter) WritePossibleMoves(m *engine.Match, source chess.ChessPosition, moves engine.Matrix) error {
	return WriteJSON(jw.w, NewSnapshot(m).WithMoves(source, moves))
}
