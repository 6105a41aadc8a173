package perft

import (
	"testing"

	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

func TestStartingPositionShallow(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
	}
	for _, tc := range cases {
		stats := Walk(board.Starting(), square.White, tc.depth)
		if stats.Nodes != tc.nodes {
			t.Fatalf("depth %d: expected %d nodes, got %d", tc.depth, tc.nodes, stats.Nodes)
		}
		if stats.Invalids != 0 {
			t.Fatalf("depth %d: expected no invalid positions, got %d", tc.depth, stats.Invalids)
		}
	}
}

func TestStartingPositionDepth1HasNoSpecialMoves(t *testing.T) {
	stats := Walk(board.Starting(), square.White, 1)
	if stats.Captures != 0 || stats.EnPassants != 0 || stats.Castles != 0 ||
		stats.Promotions != 0 || stats.Checks != 0 || stats.Checkmates != 0 {
		t.Fatalf("expected all sub-counters zero at depth 1 from the starting position, got %+v", stats)
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	// 1. f3 e5 2. g4 Qh4#
	b := board.Empty()
	b.Colors[square.White].PieceSquares[board.TheKing] = square.SquareOf(0, 4)
	b.Colors[square.White].PieceSquares[board.Rook1] = square.SquareOf(0, 0)
	b.Colors[square.White].PieceSquares[board.Rook2] = square.SquareOf(0, 7)
	b.Colors[square.White].PieceSquares[board.Knight1] = square.SquareOf(0, 1)
	b.Colors[square.White].PieceSquares[board.Knight2] = square.SquareOf(0, 6)
	b.Colors[square.White].PieceSquares[board.Bishop1] = square.SquareOf(0, 2)
	b.Colors[square.White].PieceSquares[board.Bishop2] = square.SquareOf(0, 5)
	b.Colors[square.White].PieceSquares[board.TheQueen] = square.SquareOf(0, 3)
	b.Colors[square.White].PawnsBb = square.Bb(square.SquareOf(1, 0)) | square.Bb(square.SquareOf(1, 1)) |
		square.Bb(square.SquareOf(1, 2)) | square.Bb(square.SquareOf(1, 3)) | square.Bb(square.SquareOf(1, 4)) |
		square.Bb(square.SquareOf(2, 5)) | square.Bb(square.SquareOf(3, 6)) | square.Bb(square.SquareOf(1, 7))

	b.Colors[square.Black].PieceSquares[board.TheKing] = square.SquareOf(7, 4)
	b.Colors[square.Black].PieceSquares[board.Rook1] = square.SquareOf(7, 0)
	b.Colors[square.Black].PieceSquares[board.Rook2] = square.SquareOf(7, 7)
	b.Colors[square.Black].PieceSquares[board.Knight1] = square.SquareOf(7, 1)
	b.Colors[square.Black].PieceSquares[board.Knight2] = square.SquareOf(7, 6)
	b.Colors[square.Black].PieceSquares[board.Bishop1] = square.SquareOf(7, 2)
	b.Colors[square.Black].PieceSquares[board.Bishop2] = square.SquareOf(7, 5)
	b.Colors[square.Black].PieceSquares[board.TheQueen] = square.SquareOf(3, 7) // h4
	b.Colors[square.Black].PawnsBb = square.Bb(square.SquareOf(6, 0)) | square.Bb(square.SquareOf(6, 1)) |
		square.Bb(square.SquareOf(6, 2)) | square.Bb(square.SquareOf(6, 3)) | square.Bb(square.SquareOf(4, 4)) |
		square.Bb(square.SquareOf(6, 5)) | square.Bb(square.SquareOf(6, 6)) | square.Bb(square.SquareOf(6, 7))

	stats := Walk(b, square.White, 1)
	if stats.Nodes != 0 {
		t.Fatalf("expected white to have no legal moves (checkmated), got %d", stats.Nodes)
	}
}
