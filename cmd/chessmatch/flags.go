// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

var (
	// Output options
	jsonOutput  = flag.Bool("J", false, "Write match state as JSON instead of a text board")
	unicode     = flag.Bool("unicode", false, "Draw pieces as chess glyphs")
	color       = flag.Bool("color", false, "Use ANSI colors for pieces and reachable squares")
	noCaptured  = flag.Bool("nocaptured", false, "Don't list captured pieces")
	clearScreen = flag.Bool("clear", false, "Clear the screen before drawing the board")

	// Match options
	promotion  = flag.String("promote", "Q", "Piece a pawn becomes until the player chooses (B, N, R, Q)")
	replayFile = flag.String("replay", "", "Play the moves in this file before reading from stdin")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Log verbosity: 0=quiet, 1=match events, 2=every move")
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")
	quiet     = flag.Bool("s", false, "Silent mode, same as -v 0")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyMatchFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Unicode = *unicode
	cfg.Output.Color = *color
	cfg.Output.ShowCaptured = !*noCaptured
}

func applyMatchFlags(cfg *config.Config) {
	cfg.Match.DefaultPromotion = *promotion
}
