package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/output"
)

const (
	clearSequence = "\033[H\033[2J"
	hintCommand   = "?"
)

// console drives a match from line-oriented input.
type console struct {
	match  *engine.Match
	cfg    *config.Config
	in     *bufio.Scanner
	out    io.Writer
	writer output.MatchWriter
	clear  bool
}

func newConsole(m *engine.Match, in io.Reader, cfg *config.Config) *console {
	return &console{
		match:  m,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    cfg.OutputFile,
		writer: output.NewMatchWriter(cfg.OutputFile, cfg),
	}
}

// run plays turns until checkmate or end of input and then draws the
// final position.
func (c *console) run() error {
	for !c.match.Checkmate() {
		if err := c.turn(); err != nil {
			if stderrors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	c.redraw()
	return c.writer.WriteMatch(c.match)
}

// turn reads one source and target pair and performs the move. Bad input
// and rejected moves are reported and leave the match unchanged.
func (c *console) turn() error {
	c.redraw()
	if err := c.writer.WriteMatch(c.match); err != nil {
		return err
	}

	c.prompt("\nSource: ")
	line, err := c.readLine()
	if err != nil {
		return c.report(err)
	}
	if strings.TrimSpace(line) == hintCommand {
		c.writeHint()
		return nil
	}
	source, err := chess.ParseChessPosition(strings.TrimSpace(line))
	if err != nil {
		return c.report(err)
	}
	moves, err := c.match.PossibleMoves(source)
	if err != nil {
		return c.report(err)
	}

	c.redraw()
	if err := c.writer.WritePossibleMoves(c.match, source, moves); err != nil {
		return err
	}
	c.prompt("Target: ")
	target, err := c.readPosition()
	if err != nil {
		return c.report(err)
	}
	if _, err := c.match.PerformChessMove(source, target); err != nil {
		return c.report(err)
	}

	if c.match.Promoted() != nil {
		return c.choosePromotion()
	}
	return nil
}

func (c *console) choosePromotion() error {
	c.prompt("Enter piece for promotion (B/N/R/Q): ")
	for {
		line, err := c.readLine()
		if err != nil {
			return err
		}
		code := strings.ToUpper(strings.TrimSpace(line))
		if _, ok := chess.PromotionKind(code); ok {
			_, err := c.match.ReplacePromotedPiece(code)
			return err
		}
		c.prompt("Invalid value! Enter piece for promotion (B/N/R/Q): ")
	}
}

// replay performs scripted moves, applying each promotion choice.
func (c *console) replay(moves []scriptedMove) error {
	for _, mv := range moves {
		if _, err := c.match.PerformChessMove(mv.source, mv.target); err != nil {
			return fmt.Errorf("line %d: %w", mv.line, err)
		}
		if mv.promotion == "" {
			continue
		}
		if c.match.Promoted() == nil {
			return fmt.Errorf("line %d: %s%s does not promote a pawn", mv.line, mv.source, mv.target)
		}
		if _, err := c.match.ReplacePromotedPiece(mv.promotion); err != nil {
			return fmt.Errorf("line %d: %w", mv.line, err)
		}
	}
	c.cfg.Logf(config.Summary, "[%s] replayed %d moves\n", c.match.ID().String()[:8], len(moves))
	return nil
}

// writeHint lists every legal move of the player to move.
func (c *console) writeHint() {
	moves := c.match.LegalMoves(c.match.CurrentPlayer())
	names := make([]string, 0, len(moves))
	for _, mv := range moves {
		names = append(names, mv.String())
	}
	fmt.Fprintf(c.out, "Legal moves (%d): %s\n", len(names), strings.Join(names, " "))
}

func (c *console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *console) readPosition() (chess.ChessPosition, error) {
	line, err := c.readLine()
	if err != nil {
		return chess.ChessPosition{}, err
	}
	return chess.ParseChessPosition(strings.TrimSpace(line))
}

// report prints a recoverable error labelled by its kind. End of input and
// errors that are not about the player's input are passed through.
func (c *console) report(err error) error {
	if stderrors.Is(err, io.EOF) {
		return err
	}
	switch errors.KindOf(err) {
	case errors.KindFormat:
		fmt.Fprintf(c.out, "Input error: %v\n", err)
	case errors.KindRule:
		fmt.Fprintf(c.out, "Move rejected: %v\n", err)
	case errors.KindState:
		fmt.Fprintf(c.out, "Not now: %v\n", err)
	default:
		return err
	}
	return nil
}

func (c *console) prompt(text string) {
	if c.cfg.Output.JSONFormat {
		return
	}
	fmt.Fprint(c.out, text)
}

func (c *console) redraw() {
	if c.clear && !c.cfg.Output.JSONFormat {
		fmt.Fprint(c.out, clearSequence)
	}
}
