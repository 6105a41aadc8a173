package board

import "github.com/rolandpj1968/oom-skaak-go/square"

// Every function below takes a Board by value and returns a new Board by
// value; Go already copies the (small, fixed-size) Board struct on
// assignment, so "copy, mutate the copy, return it" falls out for free.
// None of these functions touch the board passed in.

func other(c square.Color) square.Color { return square.Other(c) }

// clearEp clears the moving side's en-passant square, the default outcome
// of every move except a fresh two-square pawn push.
func clearEp(b *Board, color square.Color) {
	b.Colors[color].EpSquare = square.InvalidSquare
}

// removeSlotPiece removes the piece in slot for color, clearing any
// castling rights tied to that slot.
func removeSlotPiece(b *Board, color square.Color, slot PieceSlot) {
	cs := &b.Colors[color]
	cs.PieceSquares[slot] = square.InvalidSquare
	cs.CastlingRights &^= castlingRightsForSlot[color][slot]
}

func placeSlotPiece(b *Board, color square.Color, slot PieceSlot, to square.Square) {
	b.Colors[color].PieceSquares[slot] = to
}

func removePawnAt(b *Board, color square.Color, sq square.Square) {
	b.Colors[color].PawnsBb &^= square.Bb(sq)
}

func placePawnAt(b *Board, color square.Color, sq square.Square) {
	b.Colors[color].PawnsBb |= square.Bb(sq)
}

func removePromo(b *Board, color square.Color, promoIndex int) {
	b.Colors[color].ActivePromos &^= 1 << uint(promoIndex)
}

func addPromo(b *Board, color square.Color, kind PromoPieceKind, sq square.Square) {
	cs := &b.Colors[color]
	idx := firstFreePromoSlot(cs.ActivePromos)
	cs.ActivePromos |= 1 << uint(idx)
	cs.Promos[idx] = PromoPiece{Kind: kind, Square: sq}
}

func movePromo(b *Board, color square.Color, promoIndex int, kind PromoPieceKind, to square.Square) {
	b.Colors[color].Promos[promoIndex] = PromoPiece{Kind: kind, Square: to}
}

// removeEnemyAt clears whatever the enemy has on sq: a pawn, a named-slot
// piece, or a promo piece. pm must be the enemy's PieceMap, built before
// the capturing move. It is a no-op if sq happens to be empty, which never
// occurs for a legal capture but keeps the primitive total.
func removeEnemyAt(b *Board, enemy square.Color, pm *PieceMap, sq square.Square) {
	if square.Bb(sq)&b.Colors[enemy].PawnsBb != 0 {
		removePawnAt(b, enemy, sq)
		return
	}
	if slot, ok := pm.SlotAt(sq); ok {
		removeSlotPiece(b, enemy, slot)
		return
	}
	if idx, ok := pm.PromoIndexAt(sq); ok {
		removePromo(b, enemy, idx)
	}
}

// PushPiece moves the named-slot piece at from to the (empty) square to.
func PushPiece(board Board, color square.Color, slot PieceSlot, from, to square.Square) Board {
	b := board
	removeSlotPiece(&b, color, slot)
	placeSlotPiece(&b, color, slot, to)
	clearEp(&b, color)
	return b
}

// PushPromoPiece moves a live promo piece to the (empty) square to.
func PushPromoPiece(board Board, color square.Color, promoIndex int, kind PromoPieceKind, to square.Square) Board {
	b := board
	movePromo(&b, color, promoIndex, kind, to)
	clearEp(&b, color)
	return b
}

// PushPawn advances a pawn one square to the (empty) square to.
func PushPawn(board Board, color square.Color, from, to square.Square) Board {
	b := board
	removePawnAt(&b, color, from)
	placePawnAt(&b, color, to)
	clearEp(&b, color)
	return b
}

// PushPawnTwo advances a pawn two squares, setting the en-passant target
// square behind it.
func PushPawnTwo(board Board, color square.Color, from, to square.Square) Board {
	b := board
	removePawnAt(&b, color, from)
	placePawnAt(&b, color, to)
	b.Colors[color].EpSquare = square.Square((int(from) + int(to)) / 2)
	return b
}

// PushPawnToPromo advances a pawn to its back rank, replacing it with a new
// promo-arena piece of kind.
func PushPawnToPromo(board Board, color square.Color, from, to square.Square, kind PromoPieceKind) Board {
	b := board
	removePawnAt(&b, color, from)
	addPromo(&b, color, kind, to)
	clearEp(&b, color)
	return b
}

// CaptureWithPiece moves the named-slot piece at from onto to, removing
// whatever the enemy (identified via enemyMap) had there.
func CaptureWithPiece(board Board, color square.Color, slot PieceSlot, enemyMap *PieceMap, from, to square.Square) Board {
	b := board
	removeEnemyAt(&b, other(color), enemyMap, to)
	removeSlotPiece(&b, color, slot)
	placeSlotPiece(&b, color, slot, to)
	clearEp(&b, color)
	return b
}

// CapturePromoPieceWithPiece is CaptureWithPiece but the moving piece is a
// live promo piece.
func CapturePromoPieceWithPiece(board Board, color square.Color, promoIndex int, kind PromoPieceKind, enemyMap *PieceMap, to square.Square) Board {
	b := board
	removeEnemyAt(&b, other(color), enemyMap, to)
	movePromo(&b, color, promoIndex, kind, to)
	clearEp(&b, color)
	return b
}

// CaptureWithPawn captures with a pawn onto a non-promoting square.
func CaptureWithPawn(board Board, color square.Color, enemyMap *PieceMap, from, to square.Square) Board {
	b := board
	removeEnemyAt(&b, other(color), enemyMap, to)
	removePawnAt(&b, color, from)
	placePawnAt(&b, color, to)
	clearEp(&b, color)
	return b
}

// CaptureWithPawnToPromo captures with a pawn that lands on its back rank
// and promotes in the same move.
func CaptureWithPawnToPromo(board Board, color square.Color, enemyMap *PieceMap, from, to square.Square, kind PromoPieceKind) Board {
	b := board
	removeEnemyAt(&b, other(color), enemyMap, to)
	removePawnAt(&b, color, from)
	addPromo(&b, color, kind, to)
	clearEp(&b, color)
	return b
}

// CaptureEp captures en passant: the moving pawn lands on to, but the
// captured pawn sits on captureSquare (the same file as to, same rank as
// from).
func CaptureEp(board Board, color square.Color, from, to, captureSquare square.Square) Board {
	b := board
	removePawnAt(&b, other(color), captureSquare)
	removePawnAt(&b, color, from)
	placePawnAt(&b, color, to)
	clearEp(&b, color)
	return b
}

// Castle moves the king and its rook together. kingTo and rookTo must
// already reflect the side castled (kingside or queenside); rookSlot names
// which rook (Rook1 or Rook2) takes part.
func Castle(board Board, color square.Color, kingTo square.Square, rookSlot PieceSlot, rookTo square.Square) Board {
	b := board
	removeSlotPiece(&b, color, TheKing)
	placeSlotPiece(&b, color, TheKing, kingTo)
	removeSlotPiece(&b, color, rookSlot)
	placeSlotPiece(&b, color, rookSlot, rookTo)
	clearEp(&b, color)
	return b
}
