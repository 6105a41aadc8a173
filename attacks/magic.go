package attacks

import "github.com/rolandpj1968/oom-skaak-go/square"

// bishopMagicNumbers and rookMagicNumbers are precalculated multipliers
// chosen so that ((occupancy & blockerMask[s]) * magic[s]) >> (64 - bits[s])
// is a perfect hash into a dense per-square attack table.
//
// Values carried over unchanged from the teacher engine's precalc.go.
var bishopMagicNumbers = [64]uint64{
	0x11410121040100, 0x2084820928010, 0xa010208481080040, 0x214240082000610,
	0x4d104000400480, 0x1012010804408, 0x42044101452000c, 0x2844804050104880,
	0x814204290a0a00, 0x10280688224500, 0x1080410101010084, 0x10020a108408004,
	0x2482020210c80080, 0x480104a0040400, 0x411006404200810, 0x1024010908024292,
	0x1004401001011a, 0x810006081220080, 0x1040404206004100, 0x58080000820041ce,
	0x3406000422010890, 0x1a004100520210, 0x202a000048040400, 0x225004441180110,
	0x8064240102240, 0x1424200404010402, 0x1041100041024200, 0x8082002012008200,
	0x1010008104000, 0x8808004000806000, 0x380a000080c400, 0x31040100042d0101,
	0x110109008082220, 0x4010880204201, 0x4006462082100300, 0x4002010040140041,
	0x40090200250880, 0x2010100c40c08040, 0x12800ac01910104, 0x10b20051020100,
	0x210894104828c000, 0x50440220004800, 0x1002011044180800, 0x4220404010410204,
	0x1002204a2020401, 0x21021001000210, 0x4880081009402, 0xc208088c088e0040,
	0x4188464200080, 0x3810440618022200, 0xc020310401040420, 0x2000008208800e0,
	0x4c910240020, 0x425100a8602a0, 0x20c4206a0c030510, 0x4c10010801184000,
	0x200202020a026200, 0x6000004400841080, 0xc14004121082200, 0x400324804208800,
	0x1802200040504100, 0x1820000848488820, 0x8620682a908400, 0x8010600084204240,
}

var rookMagicNumbers = [64]uint64{
	0x2080008040002010, 0x40200010004000, 0x100090010200040, 0x2080080010000480,
	0x880040080080102, 0x8200106200042108, 0x410041000408b200, 0x100009a00402100,
	0x5800800020804000, 0x848404010002000, 0x101001820010041, 0x10a0040100420080,
	0x8a02002006001008, 0x926000844110200, 0x8000800200800100, 0x28060001008c2042,
	0x10818002204000, 0x10004020004001, 0x110002008002400, 0x11a020010082040,
	0x2001010008000410, 0x42010100080400, 0x4004040008020110, 0x820000840041,
	0x400080208000, 0x2080200040005000, 0x8000200080100080, 0x4400080180500080,
	0x4900080080040080, 0x4004004480020080, 0x8006000200040108, 0xc481000100006396,
	0x1000400080800020, 0x201004400040, 0x10008010802000, 0x204012000a00,
	0x800400800802, 0x284000200800480, 0x3000403000200, 0x840a6000514,
	0x4080c000228012, 0x10002000444010, 0x620001000808020, 0xc210010010009,
	0x100c001008010100, 0xc10020004008080, 0x20100802040001, 0x808008305420014,
	0xc010800840043080, 0x208401020890100, 0x10b0081020028280, 0x6087001001220900,
	0xc080011000500, 0x9810200040080, 0x2000010882100400, 0x2000050880540200,
	0x800020104200810a, 0x6220250242008016, 0x9180402202900a, 0x40210500100009,
	0x6000814102026, 0x410100080a040013, 0x10405008022d1184, 0x1000009400410822,
}

var bishopBitCount = [64]int{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

var rookBitCount = [64]int{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

// blockerMask[s] holds the "relevant occupancy" squares: inner squares along
// the slider's rays from s, excluding the board's outer edge, since edge
// squares never block further movement off the board.
var (
	bishopBlockerMask [65]square.BitBoard
	rookBlockerMask   [65]square.BitBoard
	// Dense per-square attack tables, indexed by the magic hash of occupancy.
	// Row 64 (the InvalidSquare sentinel) is a single always-zero entry.
	bishopAttackTable [65][]square.BitBoard
	rookAttackTable   [65][]square.BitBoard
	bishopMultiplier  [65]uint64
	rookMultiplier    [65]uint64
	bishopIndexBits   [65]uint
	rookIndexBits     [65]uint
)

func init() {
	for s := 0; s < 64; s++ {
		// The rays are generated here rather than read from Rays: this file's
		// init runs before tables.go's, so Rays is still all zero at this point.
		bishopBlockerMask[s] = genRay(s, 1, 1) | genRay(s, 1, -1) | genRay(s, -1, 1) | genRay(s, -1, -1)
		bishopBlockerMask[s] &^= edgeMask(s)

		rookBlockerMask[s] = genRay(s, 1, 0) | genRay(s, -1, 0) | genRay(s, 0, 1) | genRay(s, 0, -1)
		rookBlockerMask[s] &^= edgeMaskOrtho(s)

		bishopIndexBits[s] = uint(bishopBitCount[s])
		rookIndexBits[s] = uint(rookBitCount[s])
		bishopMultiplier[s] = bishopMagicNumbers[s]
		rookMultiplier[s] = rookMagicNumbers[s]

		bishopAttackTable[s] = make([]square.BitBoard, 1<<bishopIndexBits[s])
		rookAttackTable[s] = make([]square.BitBoard, 1<<rookIndexBits[s])

		fillMagicTable(s, bishopBlockerMask[s], bishopMultiplier[s], bishopIndexBits[s],
			bishopAttackTable[s], bishopRayAttacks)
		fillMagicTable(s, rookBlockerMask[s], rookMultiplier[s], rookIndexBits[s],
			rookAttackTable[s], rookRayAttacks)
	}

	// Sentinel row: InvalidSquare always attacks nothing. A zero multiplier
	// and zero index-bit count make the magic hash collapse to index 0 for
	// any occupancy, so the lookup never needs a special case.
	bishopAttackTable[square.InvalidSquare] = []square.BitBoard{0}
	rookAttackTable[square.InvalidSquare] = []square.BitBoard{0}
}

// edgeMask returns the diagonal board edge squares not reachable as blockers
// for a bishop standing on s (rank 0/7 and file 0/7), since a blocker there
// cannot hide anything further along the ray.
func edgeMask(s int) square.BitBoard {
	const edges = square.BitBoard(0xFF818181818181FF)
	return edges
}

// edgeMaskOrtho excludes the rank/file edge squares beyond a rook's own
// rank and file respectively.
func edgeMaskOrtho(s int) square.BitBoard {
	rank, file := square.Rank(square.Square(s)), square.File(square.Square(s))
	var mask square.BitBoard
	if rank != 0 {
		mask |= square.BitBoard(0xFF)
	}
	if rank != 7 {
		mask |= square.BitBoard(0xFF00000000000000)
	}
	if file != 0 {
		mask |= fileMask(0)
	}
	if file != 7 {
		mask |= fileMask(7)
	}
	return mask
}

func fileMask(file int) square.BitBoard {
	var m square.BitBoard
	for r := 0; r < 8; r++ {
		m |= square.Bb(square.SquareOf(r, file))
	}
	return m
}

// fillMagicTable enumerates every subset of blockerMask and fills table at
// the magic-hashed index with the reference ray-walk attack set.
func fillMagicTable(s int, blockerMask square.BitBoard, multiplier uint64, indexBits uint,
	table []square.BitBoard, rayAttacks func(int, square.BitBoard) square.BitBoard) {

	blockerSquares := make([]int, 0, bitsIn(blockerMask))
	for bb := blockerMask; bb != 0; {
		sq := popLsbLocal(&bb)
		blockerSquares = append(blockerSquares, sq)
	}

	subsets := 1 << len(blockerSquares)
	for i := 0; i < subsets; i++ {
		var occupancy square.BitBoard
		for bit, sq := range blockerSquares {
			if i&(1<<bit) != 0 {
				occupancy |= square.Bb(square.Square(sq))
			}
		}
		key := (uint64(occupancy&blockerMask) * multiplier) >> (64 - indexBits)
		table[key] = rayAttacks(s, occupancy)
	}
}

func bitsIn(bb square.BitBoard) int {
	n := 0
	for ; bb != 0; n++ {
		bb &= bb - 1
	}
	return n
}

func popLsbLocal(bb *square.BitBoard) int {
	b := *bb
	lsb := b & -b
	*bb &= *bb - 1
	// Trivial scan; this only runs at init time while building tables.
	for i := 0; i < 64; i++ {
		if square.Bb(square.Square(i)) == lsb {
			return i
		}
	}
	return -1
}

// bishopRayAttacks walks the four diagonal rays from s, stopping at (and
// including) the first occupied square in each direction.
func bishopRayAttacks(s int, occupancy square.BitBoard) square.BitBoard {
	return walkRay(s, 1, 1, occupancy) | walkRay(s, 1, -1, occupancy) |
		walkRay(s, -1, 1, occupancy) | walkRay(s, -1, -1, occupancy)
}

// rookRayAttacks walks the four orthogonal rays from s, stopping at (and
// including) the first occupied square in each direction.
func rookRayAttacks(s int, occupancy square.BitBoard) square.BitBoard {
	return walkRay(s, 1, 0, occupancy) | walkRay(s, -1, 0, occupancy) |
		walkRay(s, 0, 1, occupancy) | walkRay(s, 0, -1, occupancy)
}

func walkRay(s int, drank, dfile int, occupancy square.BitBoard) square.BitBoard {
	var attacks square.BitBoard
	rank, file := square.Rank(square.Square(s)), square.File(square.Square(s))
	for {
		rank += drank
		file += dfile
		if rank < 0 || rank > 7 || file < 0 || file > 7 {
			break
		}
		sq := square.SquareOf(rank, file)
		attacks |= square.Bb(sq)
		if occupancy&square.Bb(sq) != 0 {
			break
		}
	}
	return attacks
}

// BishopAttacks returns the bishop's attack set from s given the board's
// full occupancy, via the magic-bitboard perfect hash.
func BishopAttacks(s square.Square, occupancy square.BitBoard) square.BitBoard {
	occ := occupancy & bishopBlockerMask[s]
	key := (uint64(occ) * bishopMultiplier[s]) >> (64 - bishopIndexBits[s])
	return bishopAttackTable[s][key]
}

// RookAttacks returns the rook's attack set from s given the board's full
// occupancy, via the magic-bitboard perfect hash.
func RookAttacks(s square.Square, occupancy square.BitBoard) square.BitBoard {
	occ := occupancy & rookBlockerMask[s]
	key := (uint64(occ) * rookMultiplier[s]) >> (64 - rookIndexBits[s])
	return rookAttackTable[s][key]
}

// QueenAttacks is the union of a rook's and a bishop's attacks from s.
func QueenAttacks(s square.Square, occupancy square.BitBoard) square.BitBoard {
	return BishopAttacks(s, occupancy) | RookAttacks(s, occupancy)
}

// BishopBlockerMask and RookBlockerMask expose the relevant-occupancy mask
// for a given slider kind,
// used by callers (and tests) that need to enumerate blocker subsets
// directly, e.g. the magic-table round-trip property in §8.
func BishopBlockerMask(s square.Square) square.BitBoard { return bishopBlockerMask[s] }
func RookBlockerMask(s square.Square) square.BitBoard   { return rookBlockerMask[s] }

// ReferenceBishopAttacks and ReferenceRookAttacks recompute a slider's
// attack set by walking rays directly rather than via the magic table, for
// cross-checking the magic tables in tests.
func ReferenceBishopAttacks(s square.Square, occupancy square.BitBoard) square.BitBoard {
	return bishopRayAttacks(int(s), occupancy)
}
func ReferenceRookAttacks(s square.Square, occupancy square.BitBoard) square.BitBoard {
	return rookRayAttacks(int(s), occupancy)
}
