package movegen

import (
	"github.com/rolandpj1968/oom-skaak-go/attacks"
	"github.com/rolandpj1968/oom-skaak-go/bitops"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

// lineBetween returns the squares strictly between a and b along one of the
// eight ray directions, exclusive of both ends, and whether a and b are
// aligned at all.
func lineBetween(a, b square.Square) (square.BitBoard, bool) {
	for dir := 0; dir < 8; dir++ {
		if attacks.Rays[dir][a]&square.Bb(b) != 0 {
			return attacks.Rays[dir][a] &^ attacks.Rays[dir][b] &^ square.Bb(b), true
		}
	}
	return 0, false
}

// pinRays[sq] is square.BbAll for an unpinned piece, or the set of squares
// (the segment between kingSq and the pinner, inclusive of the pinner) a
// piece standing on sq may legally move to, for every sq holding one of
// blockerOccupancy's pieces.
//
// The same routine computes two distinct things depending on its caller:
// pin detection (kingSq = our own king, blockerOccupancy = our pieces,
// sliderOrth/Diag = enemy sliders) and discovered-check detection (kingSq =
// the opponent's king, blockerOccupancy = our pieces, sliderOrth/Diag = our
// own sliders) — both are "which of these pieces, if they leave this ray,
// change what attacks kingSq".
func pinRays(kingSq square.Square, occupancy, blockerOccupancy, sliderOrth, sliderDiag square.BitBoard) [65]square.BitBoard {
	var rays [65]square.BitBoard
	for i := range rays {
		rays[i] = square.BbAll
	}
	applyPinDirection(&rays, kingSq, occupancy, blockerOccupancy, sliderOrth, attacks.RookAttacks)
	applyPinDirection(&rays, kingSq, occupancy, blockerOccupancy, sliderDiag, attacks.BishopAttacks)
	return rays
}

func applyPinDirection(rays *[65]square.BitBoard, kingSq square.Square, occupancy, blockerOccupancy, enemySliders square.BitBoard,
	attackFn func(square.Square, square.BitBoard) square.BitBoard) {

	attacksFromKing := attackFn(kingSq, occupancy)
	blockers := attacksFromKing & blockerOccupancy
	xray := attackFn(kingSq, occupancy&^blockers) &^ attacksFromKing
	pinners := xray & enemySliders

	for p := pinners; p != 0; {
		pinnerSq := square.Square(bitops.PopLsb(&p))
		segment, ok := lineBetween(kingSq, pinnerSq)
		if !ok {
			continue
		}
		blockerOnLine := blockers & segment
		if blockerOnLine == 0 {
			continue
		}
		blockerSq := square.Square(bitops.Lsb(blockerOnLine))
		rays[blockerSq] = segment | square.Bb(pinnerSq)
	}
}
