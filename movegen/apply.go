package movegen

import (
	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

// ApplyMove builds the successor board for a move generated by Generate.
// It rebuilds the defending side's PieceMap itself so callers never have to
// thread generation-time state through to the walker.
func ApplyMove(b board.Board, us square.Color, m Move) board.Board {
	them := square.Other(us)
	enemyMap := board.BuildPieceMap(&b.Colors[them])

	switch m.Mover {
	case MoverPawn:
		return applyPawnMove(b, us, &enemyMap, m)
	case MoverPromo:
		return applyPromoMove(b, us, &enemyMap, m)
	default:
		return applySlotMove(b, us, &enemyMap, m)
	}
}

func applyPawnMove(b board.Board, us square.Color, enemyMap *board.PieceMap, m Move) board.Board {
	switch m.Kind {
	case DoublePawnPush:
		return board.PushPawnTwo(b, us, m.From, m.To)
	case EnPassant:
		return board.CaptureEp(b, us, m.From, m.To, m.CaptureSquare)
	case Promotion:
		return board.PushPawnToPromo(b, us, m.From, m.To, m.PromoKind)
	case CapturePromotion:
		return board.CaptureWithPawnToPromo(b, us, enemyMap, m.From, m.To, m.PromoKind)
	case Capture:
		return board.CaptureWithPawn(b, us, enemyMap, m.From, m.To)
	default:
		return board.PushPawn(b, us, m.From, m.To)
	}
}

func applyPromoMove(b board.Board, us square.Color, enemyMap *board.PieceMap, m Move) board.Board {
	if m.IsCapture {
		return board.CapturePromoPieceWithPiece(b, us, m.PromoIndex, m.PromoMovingKind, enemyMap, m.To)
	}
	return board.PushPromoPiece(b, us, m.PromoIndex, m.PromoMovingKind, m.To)
}

func applySlotMove(b board.Board, us square.Color, enemyMap *board.PieceMap, m Move) board.Board {
	switch m.Kind {
	case CastleKingside, CastleQueenside:
		cs := castleSquaresFor(us)
		if m.Kind == CastleKingside {
			return board.Castle(b, us, cs.kingsideKingTo, board.Rook2, cs.rookKingsideTo)
		}
		return board.Castle(b, us, cs.queensideKingTo, board.Rook1, cs.rookQueensideTo)
	case Capture:
		return board.CaptureWithPiece(b, us, m.Slot, enemyMap, m.From, m.To)
	default:
		return board.PushPiece(b, us, m.Slot, m.From, m.To)
	}
}
