package movegen

import (
	"github.com/rolandpj1968/oom-skaak-go/attacks"
	"github.com/rolandpj1968/oom-skaak-go/bitops"
	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

// genCtx bundles the per-node state every move-generation step reads, so it
// is computed exactly once per call to Generate.
type genCtx struct {
	us, them               square.Color
	ours, theirs            *board.ColorState
	ourOcc, theirOcc, allOcc square.BitBoard
	kingSq, theirKingSq     square.Square

	ourSliders, theirSliders sliders

	checkers square.BitBoard
	nChecks  int
	moveMask square.BitBoard

	pins         [65]square.BitBoard
	discoveryRay [65]square.BitBoard

	knightChecksBb, bishopChecksBb, rookChecksBb, pawnChecksBb square.BitBoard

	enemyMap board.PieceMap
}

// Generate returns every legal move available to us in b.
func Generate(b board.Board, us square.Color) MoveList {
	var ml MoveList

	them := square.Other(us)
	ctx := genCtx{
		us:   us,
		them: them,
		ours: &b.Colors[us], theirs: &b.Colors[them],
	}
	ctx.ourOcc = ctx.ours.OccupiedBb()
	ctx.theirOcc = ctx.theirs.OccupiedBb()
	ctx.allOcc = ctx.ourOcc | ctx.theirOcc
	ctx.kingSq = ctx.ours.KingSquare()
	ctx.theirKingSq = ctx.theirs.KingSquare()

	ctx.ourSliders = classify(ctx.ours)
	ctx.theirSliders = classify(ctx.theirs)

	ctx.checkers = attackersTo(ctx.kingSq, us, ctx.theirs, ctx.allOcc)
	ctx.nChecks = bitops.Popcount(ctx.checkers)

	switch ctx.nChecks {
	case 0:
		ctx.moveMask = square.BbAll
	case 1:
		checkerSq := square.Square(bitops.Lsb(ctx.checkers))
		between, _ := lineBetween(ctx.kingSq, checkerSq)
		ctx.moveMask = ctx.checkers | between
	default:
		ctx.moveMask = square.BbNone
	}

	ctx.pins = pinRays(ctx.kingSq, ctx.allOcc, ctx.ourOcc, ctx.theirSliders.orth, ctx.theirSliders.diag)
	ctx.discoveryRay = pinRays(ctx.theirKingSq, ctx.allOcc, ctx.ourOcc, ctx.ourSliders.orth, ctx.ourSliders.diag)

	ctx.knightChecksBb = attacks.KnightAttacks[ctx.theirKingSq]
	ctx.bishopChecksBb = attacks.BishopAttacks(ctx.theirKingSq, ctx.allOcc)
	ctx.rookChecksBb = attacks.RookAttacks(ctx.theirKingSq, ctx.allOcc)
	ctx.pawnChecksBb = PawnAttacksLeft(square.Bb(ctx.theirKingSq), them) | PawnAttacksRight(square.Bb(ctx.theirKingSq), them)

	ctx.enemyMap = board.BuildPieceMap(ctx.theirs)

	if ctx.nChecks < 2 {
		genPawnMoves(&ctx, &ml)
		genEnPassant(&ctx, &ml)
		genPieceMoves(&ctx, &ml)
		genPromoMoves(&ctx, &ml)
	}
	genKingMoves(&ctx, &ml)
	if ctx.nChecks == 0 {
		genCastling(&ctx, &ml)
	}

	return ml
}

func genPawnMoves(ctx *genCtx, ml *MoveList) {
	us, them := ctx.us, ctx.them
	promoRank := pawnPromoRank(us)

	for pawns := ctx.ours.PawnsBb; pawns != 0; {
		from := square.Square(bitops.PopLsb(&pawns))
		fromBb := square.Bb(from)
		pin := ctx.pins[from]

		captures := (PawnAttacksLeft(fromBb, us) | PawnAttacksRight(fromBb, us)) & ctx.theirOcc & ctx.moveMask & pin
		for dest := captures; dest != 0; {
			to := square.Square(bitops.PopLsb(&dest))
			emitPawnAdvance(ctx, ml, from, to, true, promoRank, them)
		}

		singleRaw := PawnSinglePush(fromBb, ctx.allOcc, us)
		doubleRaw := PawnDoublePush(singleRaw, ctx.allOcc, us)

		for dest := singleRaw & ctx.moveMask & pin; dest != 0; {
			to := square.Square(bitops.PopLsb(&dest))
			emitPawnAdvance(ctx, ml, from, to, false, promoRank, them)
		}
		for dest := doubleRaw & ctx.moveMask & pin; dest != 0; {
			to := square.Square(bitops.PopLsb(&dest))
			m := Move{From: from, To: to, Kind: DoublePawnPush, Mover: MoverPawn}
			annotateCheck(ctx, &m)
			ml.add(m)
		}
	}
}

func emitPawnAdvance(ctx *genCtx, ml *MoveList, from, to square.Square, isCapture bool, promoRank int, them square.Color) {
	if square.Rank(to) == promoRank {
		kinds := [4]board.PromoPieceKind{board.PromoQueen, board.PromoRook, board.PromoBishop, board.PromoKnight}
		kind := Promotion
		if isCapture {
			kind = CapturePromotion
		}
		for _, pk := range kinds {
			m := Move{From: from, To: to, Kind: kind, Mover: MoverPawn, PromoKind: pk,
				IsCapture: isCapture, CaptureSquare: to}
			annotateCheck(ctx, &m)
			ml.add(m)
		}
		return
	}
	kind := Quiet
	if isCapture {
		kind = Capture
	}
	m := Move{From: from, To: to, Kind: kind, Mover: MoverPawn, IsCapture: isCapture, CaptureSquare: to}
	annotateCheck(ctx, &m)
	ml.add(m)
}

func epCaptureSquare(epSq square.Square, us square.Color) square.Square {
	if us == square.White {
		return epSq - 8
	}
	return epSq + 8
}

func genEnPassant(ctx *genCtx, ml *MoveList) {
	epSq := ctx.theirs.EpSquare
	if epSq == square.InvalidSquare {
		return
	}
	us := ctx.us
	captureSq := epCaptureSquare(epSq, us)

	origins := (PawnAttacksLeft(square.Bb(epSq), ctx.them) | PawnAttacksRight(square.Bb(epSq), ctx.them)) & ctx.ours.PawnsBb
	for o := origins; o != 0; {
		from := square.Square(bitops.PopLsb(&o))

		pin := ctx.pins[from]
		if pin != square.BbAll && pin&square.Bb(epSq) == 0 {
			continue
		}
		if ctx.moveMask&square.Bb(epSq) == 0 && ctx.checkers&square.Bb(captureSq) == 0 {
			continue
		}

		occAfter := ctx.allOcc &^ square.Bb(from) &^ square.Bb(captureSq) | square.Bb(epSq)
		if attacks.RookAttacks(ctx.kingSq, occAfter)&ctx.theirSliders.orth != 0 {
			continue
		}

		m := Move{From: from, To: epSq, Kind: EnPassant, Mover: MoverPawn,
			IsCapture: true, CaptureSquare: captureSq}
		annotateCheck(ctx, &m)
		ml.add(m)
	}
}

var nonKingSlots = [7]board.PieceSlot{
	board.Knight1, board.Knight2, board.Bishop1, board.Bishop2,
	board.Rook1, board.Rook2, board.TheQueen,
}

func slotAttacks(slot board.PieceSlot, sq square.Square, occ square.BitBoard) square.BitBoard {
	switch slot {
	case board.Knight1, board.Knight2:
		return attacks.KnightAttacks[sq]
	case board.Bishop1, board.Bishop2:
		return attacks.BishopAttacks(sq, occ)
	case board.Rook1, board.Rook2:
		return attacks.RookAttacks(sq, occ)
	case board.TheQueen:
		return attacks.QueenAttacks(sq, occ)
	}
	return square.BbNone
}

func promoKindAttacks(kind board.PromoPieceKind, sq square.Square, occ square.BitBoard) square.BitBoard {
	switch kind {
	case board.PromoKnight:
		return attacks.KnightAttacks[sq]
	case board.PromoBishop:
		return attacks.BishopAttacks(sq, occ)
	case board.PromoRook:
		return attacks.RookAttacks(sq, occ)
	default:
		return attacks.QueenAttacks(sq, occ)
	}
}

func genPieceMoves(ctx *genCtx, ml *MoveList) {
	for _, slot := range nonKingSlots {
		from := ctx.ours.PieceSquares[slot]
		if from == square.InvalidSquare {
			continue
		}
		pin := ctx.pins[from]
		dests := slotAttacks(slot, from, ctx.allOcc) &^ ctx.ourOcc & ctx.moveMask & pin

		for d := dests; d != 0; {
			to := square.Square(bitops.PopLsb(&d))
			isCapture := square.Bb(to)&ctx.theirOcc != 0
			kind := Quiet
			if isCapture {
				kind = Capture
			}
			m := Move{From: from, To: to, Kind: kind, Mover: MoverSlot, Slot: slot,
				IsCapture: isCapture, CaptureSquare: to}
			annotateCheck(ctx, &m)
			ml.add(m)
		}
	}
}

func genPromoMoves(ctx *genCtx, ml *MoveList) {
	for promos := ctx.ours.ActivePromos; promos != 0; promos &= promos - 1 {
		idx := trailingZeros8(promos)
		p := ctx.ours.Promos[idx]
		from := p.Square
		pin := ctx.pins[from]
		dests := promoKindAttacks(p.Kind, from, ctx.allOcc) &^ ctx.ourOcc & ctx.moveMask & pin

		for d := dests; d != 0; {
			to := square.Square(bitops.PopLsb(&d))
			isCapture := square.Bb(to)&ctx.theirOcc != 0
			kind := Quiet
			if isCapture {
				kind = Capture
			}
			m := Move{From: from, To: to, Kind: kind, Mover: MoverPromo, PromoIndex: idx, PromoMovingKind: p.Kind,
				IsCapture: isCapture, CaptureSquare: to}
			annotateCheck(ctx, &m)
			ml.add(m)
		}
	}
}

func genKingMoves(ctx *genCtx, ml *MoveList) {
	occNoKing := ctx.allOcc &^ square.Bb(ctx.kingSq)
	enemyAttacksNoKing := allAttacks(ctx.theirs, ctx.them, occNoKing)

	dests := attacks.KingAttacks[ctx.kingSq] &^ ctx.ourOcc &^ enemyAttacksNoKing
	for d := dests; d != 0; {
		to := square.Square(bitops.PopLsb(&d))
		isCapture := square.Bb(to)&ctx.theirOcc != 0
		kind := Quiet
		if isCapture {
			kind = Capture
		}
		m := Move{From: ctx.kingSq, To: to, Kind: kind, Mover: MoverSlot, Slot: board.TheKing,
			IsCapture: isCapture, CaptureSquare: to}
		annotateCheck(ctx, &m)
		ml.add(m)
	}
}

type castleSquares struct {
	kingFrom, kingsideKingTo, queensideKingTo           square.Square
	rookKingsideFrom, rookQueensideFrom                 square.Square
	rookKingsideTo, rookQueensideTo                     square.Square
	kingsideEmpty, queensideEmpty                       square.BitBoard
	kingsidePath, queensidePath                         square.BitBoard
}

func castleSquaresFor(color square.Color) castleSquares {
	rank := 0
	if color == square.Black {
		rank = 7
	}
	cs := castleSquares{
		kingFrom:            square.SquareOf(rank, 4),
		kingsideKingTo:       square.SquareOf(rank, 6),
		queensideKingTo:      square.SquareOf(rank, 2),
		rookKingsideFrom:    square.SquareOf(rank, 7),
		rookQueensideFrom:   square.SquareOf(rank, 0),
		rookKingsideTo:      square.SquareOf(rank, 5),
		rookQueensideTo:     square.SquareOf(rank, 3),
	}
	cs.kingsideEmpty = square.Bb(square.SquareOf(rank, 5)) | square.Bb(square.SquareOf(rank, 6))
	cs.queensideEmpty = square.Bb(square.SquareOf(rank, 1)) | square.Bb(square.SquareOf(rank, 2)) | square.Bb(square.SquareOf(rank, 3))
	cs.kingsidePath = square.Bb(square.SquareOf(rank, 4)) | square.Bb(square.SquareOf(rank, 5)) | square.Bb(square.SquareOf(rank, 6))
	cs.queensidePath = square.Bb(square.SquareOf(rank, 4)) | square.Bb(square.SquareOf(rank, 3)) | square.Bb(square.SquareOf(rank, 2))
	return cs
}

func genCastling(ctx *genCtx, ml *MoveList) {
	cs := castleSquaresFor(ctx.us)
	rights := ctx.ours.CastlingRights
	enemyAttacks := allAttacks(ctx.theirs, ctx.them, ctx.allOcc)

	var kingsideRight, queensideRight board.CastlingRights
	if ctx.us == square.White {
		kingsideRight, queensideRight = board.WhiteKingside, board.WhiteQueenside
	} else {
		kingsideRight, queensideRight = board.BlackKingside, board.BlackQueenside
	}

	if rights&kingsideRight != 0 &&
		ctx.ours.PieceSquares[board.Rook2] == cs.rookKingsideFrom &&
		ctx.allOcc&cs.kingsideEmpty == 0 &&
		enemyAttacks&cs.kingsidePath == 0 {

		m := Move{From: cs.kingFrom, To: cs.kingsideKingTo, Kind: CastleKingside, Mover: MoverSlot, Slot: board.Rook2}
		annotateCastleCheck(ctx, &m, cs, true)
		ml.add(m)
	}

	if rights&queensideRight != 0 &&
		ctx.ours.PieceSquares[board.Rook1] == cs.rookQueensideFrom &&
		ctx.allOcc&cs.queensideEmpty == 0 &&
		enemyAttacks&cs.queensidePath == 0 {

		m := Move{From: cs.kingFrom, To: cs.queensideKingTo, Kind: CastleQueenside, Mover: MoverSlot, Slot: board.Rook1}
		annotateCastleCheck(ctx, &m, cs, false)
		ml.add(m)
	}
}

// annotateCheck sets IsDirectCheck/IsDiscoveredCheck for every move shape
// except castling (handled separately by annotateCastleCheck, since two
// pieces move at once and the classification convention differs).
func annotateCheck(ctx *genCtx, m *Move) {
	if ctx.discoveryRay[m.From] != square.BbAll && ctx.discoveryRay[m.From]&square.Bb(m.To) == 0 {
		m.IsDiscoveredCheck = true
	}

	if m.Kind == EnPassant {
		if revealsSliderCheck(ctx, m.CaptureSquare) {
			m.IsDiscoveredCheck = true
		}
		m.IsDirectCheck = ctx.pawnChecksBb&square.Bb(m.To) != 0
		return
	}

	switch {
	case m.Kind == Promotion || m.Kind == CapturePromotion:
		// The pawn's own square empties as it promotes, so the promoted
		// piece's attacks are taken on the occupancy without it.
		occAfter := ctx.allOcc &^ square.Bb(m.From)
		m.IsDirectCheck = promoKindAttacks(m.PromoKind, m.To, occAfter)&square.Bb(ctx.theirKingSq) != 0
	case m.Mover == MoverPawn:
		m.IsDirectCheck = ctx.pawnChecksBb&square.Bb(m.To) != 0
	case m.Mover == MoverPromo:
		m.IsDirectCheck = directCheckFor(ctx, m.PromoMovingKind, m.To)
	case m.Slot == board.TheKing:
		m.IsDirectCheck = false
	default:
		m.IsDirectCheck = slotDirectCheckBb(ctx, m.Slot)&square.Bb(m.To) != 0
	}
}

func annotateCastleCheck(ctx *genCtx, m *Move, cs castleSquares, kingside bool) {
	if ctx.discoveryRay[ctx.kingSq] != square.BbAll {
		// The king itself always leaves its discovery ray when castling
		// (it moves two files), so this is a discovered check whenever it
		// was acting as a blocker.
		m.IsDiscoveredCheck = true
	}

	rookFrom, rookTo := cs.rookQueensideFrom, cs.rookQueensideTo
	if kingside {
		rookFrom, rookTo = cs.rookKingsideFrom, cs.rookKingsideTo
	}
	occAfter := ctx.allOcc &^ square.Bb(cs.kingFrom) &^ square.Bb(rookFrom) | square.Bb(m.To) | square.Bb(rookTo)
	if attacks.RookAttacks(ctx.theirKingSq, occAfter)&square.Bb(rookTo) != 0 {
		m.IsDiscoveredCheck = true
	}
	m.IsDirectCheck = false
}

func revealsSliderCheck(ctx *genCtx, vacated square.Square) bool {
	occAfter := ctx.allOcc &^ square.Bb(vacated)
	if attacks.RookAttacks(ctx.theirKingSq, occAfter)&ctx.ourSliders.orth&^attacks.RookAttacks(ctx.theirKingSq, ctx.allOcc) != 0 {
		return true
	}
	if attacks.BishopAttacks(ctx.theirKingSq, occAfter)&ctx.ourSliders.diag&^attacks.BishopAttacks(ctx.theirKingSq, ctx.allOcc) != 0 {
		return true
	}
	return false
}

func directCheckFor(ctx *genCtx, kind board.PromoPieceKind, to square.Square) bool {
	bit := square.Bb(to)
	switch kind {
	case board.PromoKnight:
		return ctx.knightChecksBb&bit != 0
	case board.PromoBishop:
		return ctx.bishopChecksBb&bit != 0
	case board.PromoRook:
		return ctx.rookChecksBb&bit != 0
	default:
		return (ctx.bishopChecksBb|ctx.rookChecksBb)&bit != 0
	}
}

func slotDirectCheckBb(ctx *genCtx, slot board.PieceSlot) square.BitBoard {
	switch slot {
	case board.Knight1, board.Knight2:
		return ctx.knightChecksBb
	case board.Bishop1, board.Bishop2:
		return ctx.bishopChecksBb
	case board.Rook1, board.Rook2:
		return ctx.rookChecksBb
	case board.TheQueen:
		return ctx.bishopChecksBb | ctx.rookChecksBb
	}
	return square.BbNone
}
