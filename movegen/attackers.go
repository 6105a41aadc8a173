package movegen

import (
	"github.com/rolandpj1968/oom-skaak-go/attacks"
	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

// attackersTo returns every square holding one of enemy's pieces that
// attacks sq, where sqColor is the color that would stand on sq (a king's
// color, typically) — pawn attack geometry is not symmetric, so the
// "reverse attack" pattern must be generated from sqColor's perspective.
func attackersTo(sq square.Square, sqColor square.Color, enemy *board.ColorState, occupancy square.BitBoard) square.BitBoard {
	s := classify(enemy)

	var att square.BitBoard
	att |= attacks.KnightAttacks[sq] & s.knights
	att |= attacks.KingAttacks[sq] & s.kingBb
	att |= attacks.RookAttacks(sq, occupancy) & s.orth
	att |= attacks.BishopAttacks(sq, occupancy) & s.diag

	pawnReverse := PawnAttacksLeft(square.Bb(sq), sqColor) | PawnAttacksRight(square.Bb(sq), sqColor)
	att |= pawnReverse & enemy.PawnsBb

	return att
}

// allAttacks is the union of every square attacker's color attacks (pushes
// excluded), used for king-safety and castling-through-check checks.
func allAttacks(attacker *board.ColorState, attackerColor square.Color, occupancy square.BitBoard) square.BitBoard {
	s := classify(attacker)

	var att square.BitBoard
	for sq := 0; sq < 64; sq++ {
		bit := square.Bb(square.Square(sq))
		if s.knights&bit != 0 {
			att |= attacks.KnightAttacks[sq]
		}
		if s.kingBb&bit != 0 {
			att |= attacks.KingAttacks[sq]
		}
		if s.orth&bit != 0 {
			att |= attacks.RookAttacks(square.Square(sq), occupancy)
		}
		if s.diag&bit != 0 {
			att |= attacks.BishopAttacks(square.Square(sq), occupancy)
		}
	}

	att |= PawnAttacksLeft(attacker.PawnsBb, attackerColor)
	att |= PawnAttacksRight(attacker.PawnsBb, attackerColor)

	return att
}
