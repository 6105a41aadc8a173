// Package board holds the position representation the rest of the engine
// operates on: a per-color pawn bitboard plus named piece slots, and a
// small promo-piece arena for the queens/rooks/bishops/knights that arise
// from pawn promotion.
package board

import "github.com/rolandpj1968/oom-skaak-go/square"

// PieceSlot names one of the eight non-pawn pieces a side starts the game
// with. A slot holds the square of that piece, or square.InvalidSquare once
// it is captured. Promoted pawns never occupy these slots; promo pieces live
// only in Promos.
type PieceSlot int

const (
	Knight1 PieceSlot = iota
	Knight2
	Bishop1
	Bishop2
	Rook1
	Rook2
	TheQueen
	TheKing
	NumPieceSlots
)

func (p PieceSlot) String() string {
	switch p {
	case Knight1:
		return "Knight1"
	case Knight2:
		return "Knight2"
	case Bishop1:
		return "Bishop1"
	case Bishop2:
		return "Bishop2"
	case Rook1:
		return "Rook1"
	case Rook2:
		return "Rook2"
	case TheQueen:
		return "TheQueen"
	case TheKing:
		return "TheKing"
	default:
		return "InvalidSlot"
	}
}

// PromoPieceKind is the piece type a promoted pawn becomes. Unlike
// PieceSlot, many promo pieces of the same kind can coexist (e.g. two
// extra queens), so they are not given individual named slots.
type PromoPieceKind int

const (
	PromoQueen PromoPieceKind = iota
	PromoRook
	PromoBishop
	PromoKnight
)

func (k PromoPieceKind) String() string {
	switch k {
	case PromoQueen:
		return "Queen"
	case PromoRook:
		return "Rook"
	case PromoBishop:
		return "Bishop"
	case PromoKnight:
		return "Knight"
	default:
		return "?"
	}
}

// NumPromoSlots bounds the promo arena: a side can never have more than
// eight pawns, hence never more than eight live promo pieces at once.
const NumPromoSlots = 8

// PromoPiece is one live entry in the promo arena.
type PromoPiece struct {
	Kind   PromoPieceKind
	Square square.Square
}

// CastlingRights is a bitmask of the four individual castling privileges
// still available. A side loses a right permanently once its king or the
// relevant rook moves or is captured; it is never regained.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// castlingRightsForSlot clears exactly the rights that are lost forever
// when the piece in that slot, for that color, moves away from its
// starting square (or is captured there).
var castlingRightsForSlot = [2][NumPieceSlots]CastlingRights{
	square.White: {
		Rook1:   WhiteQueenside,
		Rook2:   WhiteKingside,
		TheKing: WhiteKingside | WhiteQueenside,
	},
	square.Black: {
		Rook1:   BlackQueenside,
		Rook2:   BlackKingside,
		TheKing: BlackKingside | BlackQueenside,
	},
}

// ColorState is the complete, self-contained representation of one side's
// pieces.
type ColorState struct {
	PawnsBb square.BitBoard

	// PieceSquares[slot] is square.InvalidSquare if that slot's piece is
	// gone (captured, or promoted pawns never occupy these slots).
	PieceSquares [NumPieceSlots]square.Square

	// ActivePromos is a bitmap over Promos: bit i set means Promos[i] holds
	// a live promo piece.
	ActivePromos uint8
	Promos       [NumPromoSlots]PromoPiece

	// EpSquare is the square behind a pawn that just advanced two squares,
	// or square.InvalidSquare if the last move wasn't such a push.
	EpSquare square.Square

	CastlingRights CastlingRights
}

// Board is the full two-sided position. It is always passed and returned by
// value: every mutation primitive in this package takes a Board and
// returns a new one, leaving the original untouched.
type Board struct {
	Colors [2]ColorState
}

// Empty returns a board with no pieces on it, all squares InvalidSquare,
// and no castling rights. Never build a Board via a bare struct literal:
// the zero value of square.Square is a1, not InvalidSquare, so piece
// slots would silently look occupied.
func Empty() Board {
	var b Board
	for c := square.White; c <= square.Black; c++ {
		cs := &b.Colors[c]
		for slot := range cs.PieceSquares {
			cs.PieceSquares[slot] = square.InvalidSquare
		}
		cs.EpSquare = square.InvalidSquare
	}
	return b
}

// Starting returns the standard chess starting position.
func Starting() Board {
	b := Empty()

	b.Colors[square.White] = ColorState{
		PawnsBb: 0x000000000000FF00,
		PieceSquares: [NumPieceSlots]square.Square{
			Knight1: square.SquareOf(0, 1),
			Knight2: square.SquareOf(0, 6),
			Bishop1: square.SquareOf(0, 2),
			Bishop2: square.SquareOf(0, 5),
			Rook1:   square.SquareOf(0, 0),
			Rook2:   square.SquareOf(0, 7),
			TheQueen: square.SquareOf(0, 3),
			TheKing:  square.SquareOf(0, 4),
		},
		EpSquare:       square.InvalidSquare,
		CastlingRights: WhiteKingside | WhiteQueenside,
	}
	b.Colors[square.Black] = ColorState{
		PawnsBb: 0x00FF000000000000,
		PieceSquares: [NumPieceSlots]square.Square{
			Knight1: square.SquareOf(7, 1),
			Knight2: square.SquareOf(7, 6),
			Bishop1: square.SquareOf(7, 2),
			Bishop2: square.SquareOf(7, 5),
			Rook1:   square.SquareOf(7, 0),
			Rook2:   square.SquareOf(7, 7),
			TheQueen: square.SquareOf(7, 3),
			TheKing:  square.SquareOf(7, 4),
		},
		EpSquare:       square.InvalidSquare,
		CastlingRights: BlackKingside | BlackQueenside,
	}

	return b
}

// NonPawnsBb is the union of every live piece square (named slots and promo
// arena) for one color, excluding pawns.
func (cs *ColorState) NonPawnsBb() square.BitBoard {
	var bb square.BitBoard
	for _, sq := range cs.PieceSquares {
		bb |= square.Bb(sq)
	}
	for promos := cs.ActivePromos; promos != 0; promos &= promos - 1 {
		idx := trailingZeros8(promos)
		bb |= square.Bb(cs.Promos[idx].Square)
	}
	return bb
}

// OccupiedBb is every square occupied by this color's pieces, pawns
// included.
func (cs *ColorState) OccupiedBb() square.BitBoard {
	return cs.PawnsBb | cs.NonPawnsBb()
}

// OccupiedBb is every occupied square on the board, either color.
func (b *Board) OccupiedBb() square.BitBoard {
	return b.Colors[square.White].OccupiedBb() | b.Colors[square.Black].OccupiedBb()
}

// KingSquare returns the square of one color's king.
func (cs *ColorState) KingSquare() square.Square {
	return cs.PieceSquares[TheKing]
}

func trailingZeros8(b uint8) int {
	for i := 0; i < 8; i++ {
		if b&(1<<uint(i)) != 0 {
			return i
		}
	}
	return 8
}

// firstFreePromoSlot returns the lowest-numbered index not set in
// ActivePromos, mirroring the arena's lowest-free-slot allocation rule.
func firstFreePromoSlot(activePromos uint8) int {
	for i := 0; i < NumPromoSlots; i++ {
		if activePromos&(1<<uint(i)) == 0 {
			return i
		}
	}
	return -1
}

// PieceMap resolves a square to whichever of a color's pieces sits there,
// built once per side per node so captures don't need an O(n) scan of
// PieceSquares/Promos for every candidate move.
type PieceMap struct {
	slot       [65]PieceSlot
	hasSlot    [65]bool
	promoIndex [65]int
	hasPromo   [65]bool
}

// NoSlot is the sentinel PieceMap.slot value for squares holding no named
// piece (either empty, a pawn, or a promo piece).
const NoSlot PieceSlot = -1

// BuildPieceMap indexes every named-slot piece and every live promo piece
// of cs by square.
func BuildPieceMap(cs *ColorState) PieceMap {
	var pm PieceMap
	for sq := range pm.slot {
		pm.slot[sq] = NoSlot
		pm.promoIndex[sq] = -1
	}
	for slot, sq := range cs.PieceSquares {
		if sq == square.InvalidSquare {
			continue
		}
		pm.slot[sq] = PieceSlot(slot)
		pm.hasSlot[sq] = true
	}
	for promos := cs.ActivePromos; promos != 0; promos &= promos - 1 {
		idx := trailingZeros8(promos)
		sq := cs.Promos[idx].Square
		pm.promoIndex[sq] = idx
		pm.hasPromo[sq] = true
	}
	return pm
}

// SlotAt returns the named-slot piece occupying sq, and whether there is
// one.
func (pm *PieceMap) SlotAt(sq square.Square) (PieceSlot, bool) {
	return pm.slot[sq], pm.hasSlot[sq]
}

// PromoIndexAt returns the promo-arena index occupying sq, and whether
// there is one.
func (pm *PieceMap) PromoIndexAt(sq square.Square) (int, bool) {
	return pm.promoIndex[sq], pm.hasPromo[sq]
}
