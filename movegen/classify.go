package movegen

import (
	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

// sliders bundles the pieces of a color that attack like a rook and/or a
// bishop, plus the simple jump attackers, so check/pin/discovery detection
// never needs to re-walk PieceSquares and Promos per query.
type sliders struct {
	orth    square.BitBoard // rooks + queens
	diag    square.BitBoard // bishops + queens
	knights square.BitBoard
	kingBb  square.BitBoard
}

func classify(cs *board.ColorState) sliders {
	var s sliders

	rook1, rook2 := cs.PieceSquares[board.Rook1], cs.PieceSquares[board.Rook2]
	bishop1, bishop2 := cs.PieceSquares[board.Bishop1], cs.PieceSquares[board.Bishop2]
	queen := cs.PieceSquares[board.TheQueen]
	knight1, knight2 := cs.PieceSquares[board.Knight1], cs.PieceSquares[board.Knight2]

	s.orth = square.Bb(rook1) | square.Bb(rook2) | square.Bb(queen)
	s.diag = square.Bb(bishop1) | square.Bb(bishop2) | square.Bb(queen)
	s.knights = square.Bb(knight1) | square.Bb(knight2)
	s.kingBb = square.Bb(cs.PieceSquares[board.TheKing])

	for promos := cs.ActivePromos; promos != 0; promos &= promos - 1 {
		idx := trailingZeros8(promos)
		p := cs.Promos[idx]
		switch p.Kind {
		case board.PromoQueen:
			s.orth |= square.Bb(p.Square)
			s.diag |= square.Bb(p.Square)
		case board.PromoRook:
			s.orth |= square.Bb(p.Square)
		case board.PromoBishop:
			s.diag |= square.Bb(p.Square)
		case board.PromoKnight:
			s.knights |= square.Bb(p.Square)
		}
	}

	return s
}

func trailingZeros8(b uint8) int {
	for i := 0; i < 8; i++ {
		if b&(1<<uint(i)) != 0 {
			return i
		}
	}
	return 8
}
