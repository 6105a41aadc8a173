// Package movegen is the heart of the engine: pin detection, check
// evasion, castling and en-passant legality, and direct/discovered check
// annotation, built on top of the board and attacks packages.
package movegen

import "github.com/rolandpj1968/oom-skaak-go/board"
import "github.com/rolandpj1968/oom-skaak-go/square"

// Kind distinguishes the shapes a move can take; it determines which board
// mutation primitive ApplyMove dispatches to.
type Kind int

const (
	Quiet Kind = iota
	DoublePawnPush
	Capture
	EnPassant
	CastleKingside
	CastleQueenside
	Promotion
	CapturePromotion
)

// Mover identifies which kind of piece is making the move, since the board
// package's mutation primitives are keyed on that distinction.
type Mover int

const (
	MoverPawn Mover = iota
	MoverSlot
	MoverPromo
)

// Move is a fully-resolved move: enough information to mutate the board
// (ApplyMove) and to classify the resulting position (perft) without
// re-deriving anything from the board itself.
type Move struct {
	From, To square.Square
	Kind     Kind

	Mover Mover
	// Slot is valid when Mover == MoverSlot, and also names which rook
	// castles when Kind is CastleKingside/CastleQueenside.
	Slot board.PieceSlot
	// PromoIndex and PromoMovingKind are valid when Mover == MoverPromo:
	// which arena slot is moving, and what kind of piece it currently is.
	PromoIndex      int
	PromoMovingKind board.PromoPieceKind

	// PromoKind is the kind a pawn becomes; valid when Kind is Promotion or
	// CapturePromotion.
	PromoKind board.PromoPieceKind

	// CaptureSquare is the square holding the captured piece. Equal to To
	// except for EnPassant, where the captured pawn sits behind To.
	CaptureSquare square.Square
	IsCapture     bool

	IsDirectCheck     bool
	IsDiscoveredCheck bool
}

func (m Move) IsCheck() bool { return m.IsDirectCheck || m.IsDiscoveredCheck }

// UCI renders m in long algebraic notation, e.g. "e2e4", "e1g1" for
// castling, "e7e8q" for a queen promotion. Used only for debugging perft
// divergences, never by move generation or application.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion || m.Kind == CapturePromotion {
		switch m.PromoKind {
		case board.PromoKnight:
			s += "n"
		case board.PromoBishop:
			s += "b"
		case board.PromoRook:
			s += "r"
		case board.PromoQueen:
			s += "q"
		}
	}
	return s
}

// MoveList is a fixed-capacity move buffer. 218 is the widely cited upper
// bound on legal moves in any reachable chess position.
type MoveList struct {
	Moves [218]Move
	N     int
}

func (ml *MoveList) add(m Move) {
	ml.Moves[ml.N] = m
	ml.N++
}

func (ml *MoveList) Slice() []Move {
	return ml.Moves[:ml.N]
}
