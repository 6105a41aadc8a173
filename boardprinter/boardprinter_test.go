package boardprinter

import (
	"strings"
	"testing"

	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

func TestBoardStartingPositionHasExpectedRows(t *testing.T) {
	out := Board(board.Starting())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 8 rank lines plus a file footer, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "r n b q k b n r") {
		t.Fatalf("expected rank 8 to show the black back rank, got %q", lines[0])
	}
	if !strings.Contains(lines[7], "R N B Q K B N R") {
		t.Fatalf("expected rank 1 to show the white back rank, got %q", lines[7])
	}
}

func TestBoardEmptyHasNoPieces(t *testing.T) {
	out := Board(board.Empty())
	// Only the eight rank lines hold squares; the footer spells out the files.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines[:8] {
		if strings.ContainsAny(line, "PNBRQKpnbrqkX") {
			t.Fatalf("expected an empty board to print only dots, got %q", out)
		}
	}
}

func TestBitboardMarksSetSquares(t *testing.T) {
	out := Bitboard(square.Bb(square.SquareOf(0, 0)))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Rank 1 is the last body line.
	if !strings.HasPrefix(lines[len(lines)-1], "1 | * ") {
		t.Fatalf("expected a1 marked on the rank-1 line, got %q", lines[len(lines)-1])
	}
}
