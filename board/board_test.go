package board

import (
	"testing"

	"github.com/rolandpj1968/oom-skaak-go/square"
)

func TestEmptyBoardHasNoPieces(t *testing.T) {
	b := Empty()
	for c := square.White; c <= square.Black; c++ {
		cs := b.Colors[c]
		if cs.PawnsBb != square.BbNone {
			t.Fatalf("color %d: expected no pawns", c)
		}
		for slot, sq := range cs.PieceSquares {
			if sq != square.InvalidSquare {
				t.Fatalf("color %d slot %d: expected InvalidSquare, got %v", c, slot, sq)
			}
		}
		if cs.EpSquare != square.InvalidSquare {
			t.Fatalf("color %d: expected no ep square", c)
		}
		if cs.ActivePromos != 0 {
			t.Fatalf("color %d: expected no active promos", c)
		}
	}
	if b.OccupiedBb() != square.BbNone {
		t.Fatalf("expected empty board to have no occupied squares")
	}
}

func TestStartingPositionPieceCount(t *testing.T) {
	b := Starting()
	occ := b.OccupiedBb()
	if got := popcount(occ); got != 32 {
		t.Fatalf("expected 32 pieces, got %d", got)
	}
	white := b.Colors[square.White]
	if popcount(white.PawnsBb) != 8 {
		t.Fatalf("expected 8 white pawns")
	}
	if white.KingSquare() != square.SquareOf(0, 4) {
		t.Fatalf("expected white king on e1, got %v", white.KingSquare())
	}
	if white.CastlingRights != WhiteKingside|WhiteQueenside {
		t.Fatalf("expected white to have both castling rights")
	}
}

func TestPushPieceMovesAndClearsEp(t *testing.T) {
	b := Starting()
	b.Colors[square.White].EpSquare = square.SquareOf(2, 4)

	knightFrom := b.Colors[square.White].PieceSquares[Knight1]
	knightTo := square.SquareOf(2, 0)
	next := PushPiece(b, square.White, Knight1, knightFrom, knightTo)

	if next.Colors[square.White].PieceSquares[Knight1] != knightTo {
		t.Fatalf("expected knight on new square")
	}
	if next.Colors[square.White].EpSquare != square.InvalidSquare {
		t.Fatalf("expected ep square cleared")
	}
	// Original untouched.
	if b.Colors[square.White].PieceSquares[Knight1] != knightFrom {
		t.Fatalf("original board must not mutate")
	}
}

func TestRookMoveLosesCastlingRightOnThatSideOnly(t *testing.T) {
	b := Starting()
	rookFrom := b.Colors[square.White].PieceSquares[Rook1]
	next := PushPiece(b, square.White, Rook1, rookFrom, square.SquareOf(1, 0))

	cr := next.Colors[square.White].CastlingRights
	if cr&WhiteQueenside != 0 {
		t.Fatalf("expected queenside right lost")
	}
	if cr&WhiteKingside == 0 {
		t.Fatalf("expected kingside right retained")
	}
}

func TestCaptureWithPawnRemovesEnemyPiece(t *testing.T) {
	b := Starting()
	enemyMap := BuildPieceMap(&b.Colors[square.Black])
	knightSq := b.Colors[square.Black].PieceSquares[Knight1]

	next := CaptureWithPawn(b, square.White, &enemyMap,
		square.SquareOf(1, 0), knightSq)

	if next.Colors[square.Black].PieceSquares[Knight1] != square.InvalidSquare {
		t.Fatalf("expected black knight removed")
	}
	if square.Bb(knightSq)&next.Colors[square.White].PawnsBb == 0 {
		t.Fatalf("expected white pawn to land on capture square")
	}
}

func TestPushPawnTwoSetsMidpointEpSquare(t *testing.T) {
	b := Empty()
	from := square.SquareOf(1, 4)
	to := square.SquareOf(3, 4)
	next := PushPawnTwo(b, square.White, from, to)
	if next.Colors[square.White].EpSquare != square.SquareOf(2, 4) {
		t.Fatalf("expected ep square e3, got %v", next.Colors[square.White].EpSquare)
	}
}

func TestPushPawnToPromoAllocatesLowestFreeSlot(t *testing.T) {
	b := Empty()
	b.Colors[square.White].ActivePromos = 0b00000001 // slot 0 occupied
	next := PushPawnToPromo(b, square.White, square.SquareOf(6, 0), square.SquareOf(7, 0), PromoQueen)

	if next.Colors[square.White].ActivePromos&0b00000010 == 0 {
		t.Fatalf("expected slot 1 allocated")
	}
	if next.Colors[square.White].Promos[1].Kind != PromoQueen {
		t.Fatalf("expected new promo piece to be a queen")
	}
	if next.Colors[square.White].Promos[1].Square != square.SquareOf(7, 0) {
		t.Fatalf("expected new promo piece on a8")
	}
}

func TestCaptureEpRemovesPassedPawn(t *testing.T) {
	b := Empty()
	b.Colors[square.Black].PawnsBb = square.Bb(square.SquareOf(4, 3)) // d5
	b.Colors[square.White].PawnsBb = square.Bb(square.SquareOf(4, 4)) // e5

	next := CaptureEp(b, square.White, square.SquareOf(4, 4), square.SquareOf(5, 3), square.SquareOf(4, 3))

	if next.Colors[square.Black].PawnsBb != square.BbNone {
		t.Fatalf("expected captured black pawn removed")
	}
	if square.Bb(square.SquareOf(5, 3))&next.Colors[square.White].PawnsBb == 0 {
		t.Fatalf("expected white pawn on d6")
	}
}

func TestCastleMovesKingAndRook(t *testing.T) {
	b := Starting()
	next := Castle(b, square.White, square.SquareOf(0, 6), Rook2, square.SquareOf(0, 5))

	if next.Colors[square.White].KingSquare() != square.SquareOf(0, 6) {
		t.Fatalf("expected king on g1")
	}
	if next.Colors[square.White].PieceSquares[Rook2] != square.SquareOf(0, 5) {
		t.Fatalf("expected rook on f1")
	}
	if next.Colors[square.White].CastlingRights != 0 {
		t.Fatalf("expected all white castling rights lost")
	}
}

func popcount(bb square.BitBoard) int {
	n := 0
	for ; bb != 0; n++ {
		bb &= bb - 1
	}
	return n
}
