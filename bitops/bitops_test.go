package bitops

import (
	"testing"

	"github.com/rolandpj1968/oom-skaak-go/square"
)

func TestLsb(t *testing.T) {
	for i := 0; i < 64; i++ {
		bb := square.Bb(square.Square(i))
		if got := Lsb(bb); got != i {
			t.Fatalf("square %d: expected %d got %d", i, i, got)
		}
	}
	if got := Lsb(square.BbNone); got != -1 {
		t.Fatalf("empty bitboard: expected -1 got %d", got)
	}
}

func TestMsb(t *testing.T) {
	for i := 0; i < 64; i++ {
		bb := square.Bb(square.Square(i))
		if got := Msb(bb); got != i {
			t.Fatalf("square %d: expected %d got %d", i, i, got)
		}
	}
	if got := Msb(square.BbNone); got != -1 {
		t.Fatalf("empty bitboard: expected -1 got %d", got)
	}
}

func TestPopLsb(t *testing.T) {
	bb := square.BitBoard(0)
	for i := 0; i < 64; i++ {
		bb |= square.Bb(square.Square(i))
	}
	for i := 0; i < 64; i++ {
		got := PopLsb(&bb)
		if got != i {
			t.Fatalf("expected %d got %d", i, got)
		}
	}
	if got := PopLsb(&bb); got != -1 {
		t.Fatalf("expected -1 on empty, got %d", got)
	}
}

func TestPopcount(t *testing.T) {
	var bb square.BitBoard
	for i := 0; i < 64; i++ {
		bb |= square.Bb(square.Square(i))
		if got := Popcount(bb); got != i+1 {
			t.Fatalf("expected %d got %d", i+1, got)
		}
	}
}

func TestShiftEastWest(t *testing.T) {
	a1 := square.Bb(0)
	if got := ShiftEast(a1, 7); got != square.Bb(7) {
		t.Fatalf("a1 shifted east 7 should land on h1, got %x", got)
	}
	// Shifting off the H file must not wrap onto the A file.
	h1 := square.Bb(7)
	if got := ShiftEast(h1, 1); got != square.BbNone {
		t.Fatalf("h1 shifted east should vanish, got %x", got)
	}
	b1 := square.Bb(1)
	if got := ShiftWest(b1, 1); got != square.Bb(0) {
		t.Fatalf("b1 shifted west 1 should land on a1, got %x", got)
	}
	if got := ShiftWest(a1, 1); got != square.BbNone {
		t.Fatalf("a1 shifted west should vanish, got %x", got)
	}
}
