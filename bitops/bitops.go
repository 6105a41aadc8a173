// Package bitops implements the 64-bit primitives the rest of the engine
// builds on: population count, least/most significant bit, and file-masked
// shifts. They are not branch-free: Popcount and Msb loop once per set bit,
// the shifts loop once per file, and Lsb/PopLsb test for an empty bitboard.
package bitops

import "github.com/rolandpj1968/oom-skaak-go/square"

// bitScanLookup maps the isolated least significant bit of a 64-bit word,
// multiplied by bitscanMagic and shifted down, to that bit's index.
//
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// Popcount returns the number of set bits in bb.
func Popcount(bb square.BitBoard) int {
	var cnt int
	for b := uint64(bb); b != 0; cnt++ {
		b &= b - 1
	}
	return cnt
}

// Lsb returns the index of the least significant set bit, or -1 if bb is
// empty.
func Lsb(bb square.BitBoard) int {
	if bb == 0 {
		return -1
	}
	b := uint64(bb)
	return bitScanLookup[(b&-b)*bitscanMagic>>58]
}

// Msb returns the index of the most significant set bit, or -1 if bb is
// empty.
func Msb(bb square.BitBoard) int {
	if bb == 0 {
		return -1
	}
	idx := -1
	b := uint64(bb)
	for b != 0 {
		idx = bitScanLookup[(b&-b)*bitscanMagic>>58]
		b &= b - 1
	}
	return idx
}

// PopLsb clears the least significant set bit of *bb and returns its index,
// or -1 without modifying *bb if it was already empty.
func PopLsb(bb *square.BitBoard) int {
	idx := Lsb(*bb)
	if idx < 0 {
		return -1
	}
	*bb &= *bb - 1
	return idx
}

// Bitmasks used to keep shifts from wrapping around the board's edges.
const (
	NotAFile  square.BitBoard = 0xFEFEFEFEFEFEFEFE
	NotBFile  square.BitBoard = 0xFDFDFDFDFDFDFDFD
	NotGFile  square.BitBoard = 0xBFBFBFBFBFBFBFBF
	NotHFile  square.BitBoard = 0x7F7F7F7F7F7F7F7F
	NotABFile square.BitBoard = 0xFCFCFCFCFCFCFCFC
	NotGHFile square.BitBoard = 0x3F3F3F3F3F3F3F3F
)

// ShiftEast shifts bb by n files toward the H file, masking away bits that
// would otherwise wrap from the H file back onto the A file. n must be in
// 0..7.
func ShiftEast(bb square.BitBoard, n int) square.BitBoard {
	for i := 0; i < n; i++ {
		bb = (bb & NotHFile) << 1
	}
	return bb
}

// ShiftWest shifts bb by n files toward the A file, masking away bits that
// would otherwise wrap from the A file back onto the H file. n must be in
// 0..7.
func ShiftWest(bb square.BitBoard, n int) square.BitBoard {
	for i := 0; i < n; i++ {
		bb = (bb & NotAFile) >> 1
	}
	return bb
}
