package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// scriptedMove is one move read from a replay file.
type scriptedMove struct {
	source    chess.ChessPosition
	target    chess.ChessPosition
	promotion string
	line      int
}

// parseMoveLine reads "e2e4", "e2 e4" or "e7e8N". Whitespace between the
// parts is ignored.
func parseMoveLine(line string) (scriptedMove, error) {
	text := strings.Join(strings.Fields(line), "")
	if len(text) != 4 && len(text) != 5 {
		return scriptedMove{}, errors.Wrapf(errors.ErrInvalidSquare, "%q: expected a source and a target square", line)
	}

	source, err := chess.ParseChessPosition(text[:2])
	if err != nil {
		return scriptedMove{}, err
	}
	target, err := chess.ParseChessPosition(text[2:4])
	if err != nil {
		return scriptedMove{}, err
	}

	mv := scriptedMove{source: source, target: target}
	if len(text) == 5 {
		code := strings.ToUpper(text[4:])
		if _, ok := chess.PromotionKind(code); !ok {
			return scriptedMove{}, fmt.Errorf("%q: promotion %q is not one of B, N, R, Q", line, text[4:])
		}
		mv.promotion = code
	}
	return mv, nil
}

// readMoves parses one move per line, skipping blank lines and # comments.
func readMoves(r io.Reader) ([]scriptedMove, error) {
	var moves []scriptedMove
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		mv, err := parseMoveLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		mv.line = lineNum
		moves = append(moves, mv)
	}
	return moves, scanner.Err()
}

// loadMovesFile reads a replay file.
func loadMovesFile(path string) ([]scriptedMove, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readMoves(file)
}
