package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func TestParseMoveLine(t *testing.T) {
	tests := []struct {
		line      string
		want      string
		promotion string
		wantErr   bool
	}{
		{"e2e4", "e2e4", "", false},
		{"e2 e4", "e2e4", "", false},
		{"  g1   f3 ", "g1f3", "", false},
		{"e7e8N", "e7e8", "N", false},
		{"e7 e8 q", "e7e8", "Q", false},
		{"e7e8K", "", "", true},
		{"e2", "", "", true},
		{"e2e4e5", "", "", true},
		{"i2e4", "", "", true},
		{"e2e9", "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseMoveLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseMoveLine(%q) = %+v, want error", tt.line, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMoveLine(%q) error: %v", tt.line, err)
			}
			if s := got.source.String() + got.target.String(); s != tt.want {
				t.Errorf("parseMoveLine(%q) = %s, want %s", tt.line, s, tt.want)
			}
			if got.promotion != tt.promotion {
				t.Errorf("promotion = %q, want %q", got.promotion, tt.promotion)
			}
		})
	}
}

func TestParseMoveLine_SquareErrors(t *testing.T) {
	_, err := parseMoveLine("z9e4")
	if !errors.Is(err, chesserrors.ErrInvalidSquare) {
		t.Errorf("parseMoveLine() error = %v, want ErrInvalidSquare", err)
	}
}

func TestReadMoves(t *testing.T) {
	input := "# opening\ne2e4\n\n  e7 e5\n# done\n"
	moves, err := readMoves(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readMoves() error: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("len(moves) = %d, want 2", len(moves))
	}
	if moves[0].line != 2 || moves[1].line != 4 {
		t.Errorf("line numbers = %d, %d; want 2, 4", moves[0].line, moves[1].line)
	}

	_, err = readMoves(strings.NewReader("e2e4\nbogus\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("readMoves() error = %v, want failure on line 2", err)
	}
}

func TestLoadMovesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moves.txt")
	if err := os.WriteFile(path, []byte("f2f3\ne7e5\n"), 0600); err != nil {
		t.Fatal(err)
	}

	moves, err := loadMovesFile(path)
	if err != nil {
		t.Fatalf("loadMovesFile() error: %v", err)
	}
	if len(moves) != 2 {
		t.Errorf("len(moves) = %d, want 2", len(moves))
	}

	if _, err := loadMovesFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("loadMovesFile() expected error for missing file")
	}
}
