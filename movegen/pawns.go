package movegen

import (
	"github.com/rolandpj1968/oom-skaak-go/bitops"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

// White pawns attack toward higher ranks, black toward lower ranks. The two
// color variants differ only in shift direction, so each helper below
// branches once on color rather than duplicating the whole move generator
// per color, matching how the rest of this engine's pack handles color
// symmetry at runtime rather than via compile-time specialisation.

// PawnAttacksLeft returns the set of squares attacked toward the a-file side
// (white: NW, black: SW) by the pawns in bb.
func PawnAttacksLeft(bb square.BitBoard, color square.Color) square.BitBoard {
	if color == square.White {
		return (bb & bitops.NotAFile) << 7
	}
	return (bb & bitops.NotAFile) >> 9
}

// PawnAttacksRight returns the set of squares attacked toward the h-file
// side (white: NE, black: SE) by the pawns in bb.
func PawnAttacksRight(bb square.BitBoard, color square.Color) square.BitBoard {
	if color == square.White {
		return (bb & bitops.NotHFile) << 9
	}
	return (bb & bitops.NotHFile) >> 7
}

// PawnSinglePush returns the squares pawns in bb can advance to, given the
// full board occupancy.
func PawnSinglePush(bb, occupancy square.BitBoard, color square.Color) square.BitBoard {
	if color == square.White {
		return (bb << 8) &^ occupancy
	}
	return (bb >> 8) &^ occupancy
}

// PawnDoublePush returns the squares pawns still on their home rank can
// reach via a two-square advance, given single-push destinations already
// computed and the full occupancy.
func PawnDoublePush(singlePush, occupancy square.BitBoard, color square.Color) square.BitBoard {
	const rank3 = square.BitBoard(0x0000000000FF0000)
	const rank6 = square.BitBoard(0x0000FF0000000000)
	if color == square.White {
		return ((singlePush & rank3) << 8) &^ occupancy
	}
	return ((singlePush & rank6) >> 8) &^ occupancy
}

// pawnHomeRank returns the 0-based home rank pawns of color start on.
func pawnHomeRank(color square.Color) int {
	if color == square.White {
		return 1
	}
	return 6
}

// pawnPromoRank returns the 0-based rank pawns of color promote on.
func pawnPromoRank(color square.Color) int {
	if color == square.White {
		return 7
	}
	return 0
}
