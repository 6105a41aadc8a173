// Package boardprinter renders a Board (or a raw bitboard) as an 8x8 ASCII
// grid for debugging and test failure output. It is an external
// collaborator: nothing in board, movegen, or perft depends on it.
package boardprinter

import (
	"strings"

	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

var pieceChar = [2]map[board.PieceSlot]byte{
	square.White: {
		board.Knight1: 'N', board.Knight2: 'N',
		board.Bishop1: 'B', board.Bishop2: 'B',
		board.Rook1: 'R', board.Rook2: 'R',
		board.TheQueen: 'Q', board.TheKing: 'K',
	},
	square.Black: {
		board.Knight1: 'n', board.Knight2: 'n',
		board.Bishop1: 'b', board.Bishop2: 'b',
		board.Rook1: 'r', board.Rook2: 'r',
		board.TheQueen: 'q', board.TheKing: 'k',
	},
}

var promoChar = [2]map[board.PromoPieceKind]byte{
	square.White: {board.PromoQueen: 'Q', board.PromoRook: 'R', board.PromoBishop: 'B', board.PromoKnight: 'N'},
	square.Black: {board.PromoQueen: 'q', board.PromoRook: 'r', board.PromoBishop: 'b', board.PromoKnight: 'n'},
}

// Board renders b as an 8x8 grid, rank 8 at the top, file a on the left.
// A square occupied by more than one piece (an inconsistent Board, never
// produced by this module's own mutation primitives) prints as 'X'.
func Board(b board.Board) string {
	var grid [64]byte
	var clash [64]uint8

	place := func(sq square.Square, ch byte) {
		if sq == square.InvalidSquare {
			return
		}
		clash[sq]++
		grid[sq] = ch
	}

	for _, color := range [2]square.Color{square.White, square.Black} {
		cs := &b.Colors[color]
		for slot := board.PieceSlot(0); slot < board.NumPieceSlots; slot++ {
			place(cs.PieceSquares[slot], pieceChar[color][slot])
		}
		for sq := square.Square(0); sq < 64; sq++ {
			if cs.PawnsBb&square.Bb(sq) != 0 {
				ch := byte('P')
				if color == square.Black {
					ch = 'p'
				}
				place(sq, ch)
			}
		}
		for i := 0; i < board.NumPromoSlots; i++ {
			if cs.ActivePromos&(1<<uint(i)) == 0 {
				continue
			}
			p := cs.Promos[i]
			place(p.Square, promoChar[color][p.Kind])
		}
	}

	var out strings.Builder
	out.Grow(200)
	for rank := 7; rank >= 0; rank-- {
		out.WriteByte('1' + byte(rank))
		out.WriteString(" | ")
		for file := 0; file < 8; file++ {
			sq := square.SquareOf(rank, file)
			ch := byte('.')
			if clash[sq] > 1 {
				ch = 'X'
			} else if clash[sq] == 1 {
				ch = grid[sq]
			}
			out.WriteByte(ch)
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}
	out.WriteString("    a b c d e f g h\n")

	return out.String()
}

// Bitboard renders a single bitboard as an 8x8 grid of '*' (set) and '-'
// (clear), the way a raw attack or occupancy mask is inspected in tests.
func Bitboard(bb square.BitBoard) string {
	var out strings.Builder
	out.Grow(200)
	out.WriteString("    a b c d e f g h\n")
	for rank := 7; rank >= 0; rank-- {
		out.WriteByte('1' + byte(rank))
		out.WriteString(" | ")
		for file := 0; file < 8; file++ {
			sq := square.SquareOf(rank, file)
			if bb&square.Bb(sq) != 0 {
				out.WriteByte('*')
			} else {
				out.WriteByte('-')
			}
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}
	return out.String()
}
