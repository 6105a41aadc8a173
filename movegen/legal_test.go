package movegen

import (
	"testing"

	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

func TestStartingPositionHas20Moves(t *testing.T) {
	ml := Generate(board.Starting(), square.White)
	if ml.N != 20 {
		t.Fatalf("expected 20 legal moves from the starting position, got %d", ml.N)
	}
}

func TestStartingPositionHasNoCaptures(t *testing.T) {
	ml := Generate(board.Starting(), square.White)
	for _, m := range ml.Slice() {
		if m.IsCapture {
			t.Fatalf("expected no captures in the starting position, got %+v", m)
		}
	}
}

func TestKingInCheckMustEvadeOrBlockOrCapture(t *testing.T) {
	// White king on e1, black rook checking along the e-file from e5, and a
	// white knight on c3 that can block on e2 or e4: a position with a
	// single checker, where every move result must leave the king safe.
	b := board.Empty()
	b.Colors[square.White].PieceSquares[board.TheKing] = square.SquareOf(0, 4) // e1
	b.Colors[square.Black].PieceSquares[board.TheKing] = square.SquareOf(7, 4) // e8
	b.Colors[square.Black].PieceSquares[board.Rook1] = square.SquareOf(4, 4)   // e5, checks along e-file
	b.Colors[square.White].PieceSquares[board.Knight1] = square.SquareOf(2, 2) // c3, can block on e2 or e4; cannot capture

	ml := Generate(b, square.White)
	for _, m := range ml.Slice() {
		next := ApplyMove(b, square.White, m)
		checkers := attackersTo(next.Colors[square.White].KingSquare(), square.White, &next.Colors[square.Black], next.OccupiedBb())
		if checkers != 0 {
			t.Fatalf("move %+v leaves white king in check", m)
		}
	}
	if ml.N == 0 {
		t.Fatalf("expected at least one legal move (the king can step aside)")
	}
}

func TestPinnedPieceCannotLeaveRay(t *testing.T) {
	b := board.Empty()
	b.Colors[square.White].PieceSquares[board.TheKing] = square.SquareOf(0, 4) // e1
	b.Colors[square.White].PieceSquares[board.Rook1] = square.SquareOf(2, 4)   // e3, pinned
	b.Colors[square.Black].PieceSquares[board.TheKing] = square.SquareOf(7, 0)
	b.Colors[square.Black].PieceSquares[board.Rook1] = square.SquareOf(6, 4) // e7, pins along e-file

	ml := Generate(b, square.White)
	for _, m := range ml.Slice() {
		if m.Slot == board.Rook1 && m.Mover == MoverSlot {
			if square.File(m.To) != 4 {
				t.Fatalf("pinned rook escaped its file: %+v", m)
			}
		}
	}
}

func TestCastlingBlockedWhenPathAttacked(t *testing.T) {
	b := board.Empty()
	b.Colors[square.White].PieceSquares[board.TheKing] = square.SquareOf(0, 4)
	b.Colors[square.White].PieceSquares[board.Rook2] = square.SquareOf(0, 7)
	b.Colors[square.White].CastlingRights = board.WhiteKingside
	b.Colors[square.Black].PieceSquares[board.TheKing] = square.SquareOf(7, 0)
	b.Colors[square.Black].PieceSquares[board.Rook1] = square.SquareOf(7, 5) // f-file rook attacks f1

	ml := Generate(b, square.White)
	for _, m := range ml.Slice() {
		if m.Kind == CastleKingside {
			t.Fatalf("castling should be blocked while f1 is attacked")
		}
	}
}

func TestCastlingAllowedWhenClear(t *testing.T) {
	b := board.Empty()
	b.Colors[square.White].PieceSquares[board.TheKing] = square.SquareOf(0, 4)
	b.Colors[square.White].PieceSquares[board.Rook2] = square.SquareOf(0, 7)
	b.Colors[square.White].CastlingRights = board.WhiteKingside
	b.Colors[square.Black].PieceSquares[board.TheKing] = square.SquareOf(7, 0)

	ml := Generate(b, square.White)
	found := false
	for _, m := range ml.Slice() {
		if m.Kind == CastleKingside {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected kingside castling to be available")
	}
}

func TestEnPassantRejectedOnRankPin(t *testing.T) {
	// 8/8/8/KPp4r/5p1k/8/4P1P1/8 w - c6 0 1: white pawn on b5 capturing en
	// passant onto c6 would expose the white king on a5 to the black rook
	// on h5 along rank 5.
	b := board.Empty()
	b.Colors[square.White].PieceSquares[board.TheKing] = square.SquareOf(4, 0) // a5
	b.Colors[square.White].PawnsBb = square.Bb(square.SquareOf(4, 1)) | square.Bb(square.SquareOf(1, 4)) | square.Bb(square.SquareOf(1, 6)) // b5, e2, g2
	b.Colors[square.Black].PieceSquares[board.TheKing] = square.SquareOf(3, 7) // h4
	b.Colors[square.Black].PieceSquares[board.Rook1] = square.SquareOf(4, 7)   // h5
	b.Colors[square.Black].PawnsBb = square.Bb(square.SquareOf(4, 2)) | square.Bb(square.SquareOf(3, 5)) // c5, f4
	b.Colors[square.Black].EpSquare = square.SquareOf(5, 2)                                             // c6

	ml := Generate(b, square.White)
	for _, m := range ml.Slice() {
		if m.Kind == EnPassant {
			t.Fatalf("en passant capture should be rejected due to rank pin, got %+v", m)
		}
	}
}
