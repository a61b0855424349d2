// chessmatch is a two-player console chess game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)

	m := engine.NewMatch(cfg)
	cfg.Logf(config.Summary, "[%s] new match\n", m.ID())

	con := newConsole(m, os.Stdin, cfg)
	con.clear = *clearScreen

	if *replayFile != "" {
		moves, err := loadMovesFile(*replayFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *replayFile, err)
			os.Exit(1)
		}
		if err := con.replay(moves); err != nil {
			fmt.Fprintf(os.Stderr, "Error replaying %s: %v\n", *replayFile, err)
			os.Exit(1)
		}
	}

	if err := con.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmatch [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the console.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are entered as a source square, then a target square (e.g. e2, e4).\n")
	fmt.Fprintf(os.Stderr, "Enter ? instead of a source square to list the legal moves.\n")
	fmt.Fprintf(os.Stderr, "A replay file holds one move per line: e2e4, \"e2 e4\" or e7e8N to promote.\n")
	fmt.Fprintf(os.Stderr, "Lines starting with # are ignored.\n")
}
