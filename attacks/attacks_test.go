package attacks

import (
	"testing"

	"github.com/rolandpj1968/oom-skaak-go/square"
)

// TestMagicRoundTrip checks that, for every square and every subset of its
// blocker mask, the magic-hashed table lookup agrees with a from-scratch
// ray walk. This is the round-trip property a magic table must satisfy: no
// two distinct occupancies that produce different attack sets may collide
// on the same index.
func TestMagicRoundTrip(t *testing.T) {
	for s := 0; s < 64; s++ {
		sq := square.Square(s)

		checkSlider := func(name string, mask square.BitBoard,
			magicFn func(square.Square, square.BitBoard) square.BitBoard,
			refFn func(square.Square, square.BitBoard) square.BitBoard) {

			squares := make([]int, 0, 16)
			for bb := mask; bb != 0; {
				lsb := bb & -bb
				for i := 0; i < 64; i++ {
					if square.Bb(square.Square(i)) == lsb {
						squares = append(squares, i)
						break
					}
				}
				bb &= bb - 1
			}
			if len(squares) > 14 {
				t.Fatalf("%s square %d: unexpectedly large blocker mask (%d bits)", name, s, len(squares))
			}

			subsets := 1 << len(squares)
			for i := 0; i < subsets; i++ {
				var occ square.BitBoard
				for bit, sqIdx := range squares {
					if i&(1<<bit) != 0 {
						occ |= square.Bb(square.Square(sqIdx))
					}
				}
				got := magicFn(sq, occ)
				want := refFn(sq, occ)
				if got != want {
					t.Fatalf("%s square %d occupancy %x: got %x want %x", name, s, occ, got, want)
				}
			}
		}

		checkSlider("bishop", BishopBlockerMask(sq), BishopAttacks, ReferenceBishopAttacks)
		checkSlider("rook", RookBlockerMask(sq), RookAttacks, ReferenceRookAttacks)
	}
}

func TestInvalidSquareAttacksAreEmpty(t *testing.T) {
	if got := BishopAttacks(square.InvalidSquare, square.BbAll); got != square.BbNone {
		t.Fatalf("expected empty bishop attacks for invalid square, got %x", got)
	}
	if got := RookAttacks(square.InvalidSquare, square.BbAll); got != square.BbNone {
		t.Fatalf("expected empty rook attacks for invalid square, got %x", got)
	}
	if got := QueenAttacks(square.InvalidSquare, square.BbAll); got != square.BbNone {
		t.Fatalf("expected empty queen attacks for invalid square, got %x", got)
	}
}

func TestKnightAndKingAttacksCornerCases(t *testing.T) {
	// A1 knight attacks only b3/c2.
	a1Knight := KnightAttacks[0]
	want := square.Bb(square.SquareOf(2, 1)) | square.Bb(square.SquareOf(1, 2))
	if a1Knight != want {
		t.Fatalf("a1 knight attacks: got %x want %x", a1Knight, want)
	}

	// A1 king attacks a2/b1/b2.
	a1King := KingAttacks[0]
	wantKing := square.Bb(square.SquareOf(1, 0)) | square.Bb(square.SquareOf(0, 1)) | square.Bb(square.SquareOf(1, 1))
	if a1King != wantKing {
		t.Fatalf("a1 king attacks: got %x want %x", a1King, wantKing)
	}
}

func TestRayTablesStopAtEdge(t *testing.T) {
	// North ray from a1 should cover a2..a8.
	var want square.BitBoard
	for r := 1; r < 8; r++ {
		want |= square.Bb(square.SquareOf(r, 0))
	}
	if got := Rays[North][0]; got != want {
		t.Fatalf("north ray from a1: got %x want %x", got, want)
	}
	// No ray escapes the board: h8's east/north rays are empty.
	h8 := int(square.SquareOf(7, 7))
	if Rays[East][h8] != square.BbNone || Rays[North][h8] != square.BbNone {
		t.Fatalf("h8 should have empty east/north rays")
	}
}
