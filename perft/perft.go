// Package perft walks the legal-move tree produced by movegen to a fixed
// depth, classifying leaves the way the standard perft benchmark expects:
// total nodes plus captures, en-passant captures, castles, promotions,
// checks, double checks, and checkmates.
package perft

import (
	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/movegen"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

// Stats is the standard perft sub-counter bundle.
type Stats struct {
	Nodes        uint64
	Captures     uint64
	EnPassants   uint64
	Castles      uint64
	Promotions   uint64
	Checks       uint64
	DoubleChecks uint64
	Checkmates   uint64
	// Invalids counts positions the generator flagged as impossible; a
	// correct generator always leaves this at 0.
	Invalids uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassants += o.EnPassants
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
	s.DoubleChecks += o.DoubleChecks
	s.Checkmates += o.Checkmates
	s.Invalids += o.Invalids
}

// Walk computes perft statistics for b with color to move, to the given
// depth.
func Walk(b board.Board, color square.Color, depth int) Stats {
	if depth == 0 {
		return Stats{Nodes: 1}
	}

	var stats Stats
	moves := movegen.Generate(b, color)

	if depth == 1 {
		classifyLeaves(b, color, &moves, &stats)
		return stats
	}

	for _, m := range moves.Slice() {
		child := movegen.ApplyMove(b, color, m)
		stats.add(Walk(child, square.Other(color), depth-1))
	}
	return stats
}

// classifyLeaves counts the moves in ml as perft leaves without recursing
// further, since depth 1 means "count these moves, don't expand".
func classifyLeaves(b board.Board, color square.Color, ml *movegen.MoveList, stats *Stats) {
	for _, m := range ml.Slice() {
		stats.Nodes++

		if m.IsCapture {
			stats.Captures++
		}
		if m.Kind == movegen.EnPassant {
			stats.EnPassants++
		}
		if m.Kind == movegen.CastleKingside || m.Kind == movegen.CastleQueenside {
			stats.Castles++
		}
		if m.Kind == movegen.Promotion || m.Kind == movegen.CapturePromotion {
			stats.Promotions++
		}
		if m.IsCheck() {
			stats.Checks++
			if m.IsDirectCheck && m.IsDiscoveredCheck {
				stats.DoubleChecks++
			}

			child := movegen.ApplyMove(b, color, m)
			replies := movegen.Generate(child, square.Other(color))
			if replies.N == 0 {
				stats.Checkmates++
			}
		}
	}
}
