// Package fen implements conversions between Forsyth-Edwards Notation
// strings and the slot-based board representation. Unlike the core board
// and movegen packages, fen is an external collaborator: it validates its
// input and returns an error instead of panicking, since a FEN string is
// almost always attacker- or user-controlled text.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rolandpj1968/oom-skaak-go/board"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

// Position is the full result of parsing a FEN string: the board plus the
// fields the core Board type has no room for.
type Position struct {
	Board          board.Board
	ActiveColor    square.Color
	HalfmoveClock  int
	FullmoveNumber int
}

var (
	// ErrFieldCount is returned when a FEN string does not split into the
	// expected four to six space-separated fields.
	ErrFieldCount = errors.New("fen: expected 4 to 6 fields")
	// ErrBadPiecePlacement is returned for an unrecognised piece character
	// or a rank that does not sum to exactly 8 files.
	ErrBadPiecePlacement = errors.New("fen: malformed piece placement")
	// ErrTooManySlots is returned when a color has more live pieces than
	// the engine's eight named slots plus eight promo slots can hold.
	ErrTooManySlots = errors.New("fen: too many pieces for one color")
	// ErrKingCount is returned unless each color has exactly one king.
	ErrKingCount = errors.New("fen: each color must have exactly one king")
	// ErrPawnOnBackRank is returned for a pawn on rank 1 or rank 8.
	ErrPawnOnBackRank = errors.New("fen: pawn on the back rank")
	// ErrBadActiveColor is returned unless field 2 is "w" or "b".
	ErrBadActiveColor = errors.New("fen: active color must be \"w\" or \"b\"")
	// ErrBadEpSquare is returned for a malformed en-passant field.
	ErrBadEpSquare = errors.New("fen: malformed en-passant target square")
	// ErrBadCounter is returned when the halfmove or fullmove field is not
	// a valid non-negative integer.
	ErrBadCounter = errors.New("fen: malformed halfmove or fullmove counter")
)

// homeRank returns the back rank for a color: 0 (rank 1) for White, 7
// (rank 8) for Black.
func homeRank(c square.Color) int {
	if c == square.White {
		return 0
	}
	return 7
}

// Parse parses a FEN string into a Position. It never panics: any
// structural, lexical, or semantic defect is reported as an error and the
// zero Position is returned alongside it.
func Parse(fenStr string) (Position, error) {
	fields := strings.Fields(fenStr)
	if len(fields) < 4 || len(fields) > 6 {
		return Position{}, ErrFieldCount
	}

	b, err := parsePlacement(fields[0])
	if err != nil {
		return Position{}, err
	}

	var active square.Color
	switch fields[1] {
	case "w":
		active = square.White
	case "b":
		active = square.Black
	default:
		return Position{}, ErrBadActiveColor
	}

	if err := parseCastling(&b, fields[2]); err != nil {
		return Position{}, err
	}

	epSq, err := parseEpSquare(fields[3])
	if err != nil {
		return Position{}, err
	}
	// The core board stores epSquare on the color that just made the
	// double push, not on the side now to move; see DESIGN.md.
	if epSq != square.InvalidSquare {
		b.Colors[square.Other(active)].EpSquare = epSq
	}

	halfmove, fullmove := 0, 1
	if len(fields) >= 5 {
		halfmove, err = strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return Position{}, ErrBadCounter
		}
	}
	if len(fields) == 6 {
		fullmove, err = strconv.Atoi(fields[5])
		if err != nil || fullmove < 0 {
			return Position{}, ErrBadCounter
		}
	}

	if err := validateSemantics(&b); err != nil {
		return Position{}, err
	}

	return Position{
		Board:          b,
		ActiveColor:    active,
		HalfmoveClock:  halfmove,
		FullmoveNumber: fullmove,
	}, nil
}

// parsePlacement parses field 1 (piece placement) into a Board, assigning
// physical pieces to positional slots: scanning each color's home rank
// left to right, the first knight found occupies Knight1, the second
// Knight2, and likewise for bishops and rooks. Anything found off a
// color's home rank, or beyond that color's two home-rank slots, becomes
// a promo piece.
func parsePlacement(placement string) (board.Board, error) {
	b := board.Empty()

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return board.Board{}, ErrBadPiecePlacement
	}

	var nextKnight, nextBishop, nextRook [2]int

	for i, rankStr := range ranks {
		rank := 7 - i // FEN ranks run 8 down to 1.
		file := 0

		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return board.Board{}, ErrBadPiecePlacement
			}
			sq := square.SquareOf(rank, file)

			color, kind, ok := classifyChar(byte(ch))
			if !ok {
				return board.Board{}, ErrBadPiecePlacement
			}
			onHomeRank := rank == homeRank(color)

			var placeErr error
			switch kind {
			case 'P':
				if rank == 0 || rank == 7 {
					return board.Board{}, ErrPawnOnBackRank
				}
				b.Colors[color].PawnsBb |= square.Bb(sq)
			case 'K':
				if b.Colors[color].PieceSquares[board.TheKing] != square.InvalidSquare {
					return board.Board{}, ErrKingCount
				}
				b.Colors[color].PieceSquares[board.TheKing] = sq
			case 'Q':
				if onHomeRank && b.Colors[color].PieceSquares[board.TheQueen] == square.InvalidSquare {
					b.Colors[color].PieceSquares[board.TheQueen] = sq
				} else {
					placeErr = addOffHomePiece(&b, color, board.PromoQueen, sq)
				}
			case 'N':
				placeErr = placeHomeSlot(&b, color, onHomeRank, &nextKnight[color], board.Knight1, board.Knight2, board.PromoKnight, sq)
			case 'B':
				placeErr = placeHomeSlot(&b, color, onHomeRank, &nextBishop[color], board.Bishop1, board.Bishop2, board.PromoBishop, sq)
			case 'R':
				placeErr = placeHomeSlot(&b, color, onHomeRank, &nextRook[color], board.Rook1, board.Rook2, board.PromoRook, sq)
			}
			if placeErr != nil {
				return board.Board{}, placeErr
			}
			file++
		}
		if file != 8 {
			return board.Board{}, ErrBadPiecePlacement
		}
	}

	return b, nil
}

// placeHomeSlot fills the next free of two named slots (e.g. Knight1 then
// Knight2) for one color when the piece sits on that color's home rank,
// falling back to a promo piece otherwise (off the home rank, or the home
// rank's two slots are already full).
func placeHomeSlot(b *board.Board, color square.Color, onHomeRank bool, counter *int, first, second board.PieceSlot, promoKind board.PromoPieceKind, sq square.Square) error {
	if onHomeRank {
		switch *counter {
		case 0:
			b.Colors[color].PieceSquares[first] = sq
			*counter++
			return nil
		case 1:
			b.Colors[color].PieceSquares[second] = sq
			*counter++
			return nil
		}
	}
	return addOffHomePiece(b, color, promoKind, sq)
}

// addOffHomePiece records a piece that does not fit a named slot as a
// promo piece.
func addOffHomePiece(b *board.Board, color square.Color, kind board.PromoPieceKind, sq square.Square) error {
	cs := &b.Colors[color]
	for i := 0; i < board.NumPromoSlots; i++ {
		if cs.ActivePromos&(1<<uint(i)) == 0 {
			cs.ActivePromos |= 1 << uint(i)
			cs.Promos[i] = board.PromoPiece{Kind: kind, Square: sq}
			return nil
		}
	}
	return ErrTooManySlots
}

// classifyChar maps a FEN piece character to its color and piece-kind
// letter ('P','N','B','R','Q','K').
func classifyChar(ch byte) (color square.Color, kind byte, ok bool) {
	color = square.White
	c := ch
	if ch >= 'a' && ch <= 'z' {
		color = square.Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P', 'N', 'B', 'R', 'Q', 'K':
		return color, c, true
	default:
		return color, 0, false
	}
}

func parseCastling(b *board.Board, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			b.Colors[square.White].CastlingRights |= board.WhiteKingside
		case 'Q':
			b.Colors[square.White].CastlingRights |= board.WhiteQueenside
		case 'k':
			b.Colors[square.Black].CastlingRights |= board.BlackKingside
		case 'q':
			b.Colors[square.Black].CastlingRights |= board.BlackQueenside
		default:
			return fmt.Errorf("fen: unrecognised castling character %q", field[i])
		}
	}
	return nil
}

func parseEpSquare(field string) (square.Square, error) {
	if field == "-" {
		return square.InvalidSquare, nil
	}
	if len(field) != 2 {
		return square.InvalidSquare, ErrBadEpSquare
	}
	if field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return square.InvalidSquare, ErrBadEpSquare
	}
	file := int(field[0] - 'a')
	rank := int(field[1] - '1')
	return square.SquareOf(rank, file), nil
}

func validateSemantics(b *board.Board) error {
	for _, c := range [2]square.Color{square.White, square.Black} {
		if b.Colors[c].PieceSquares[board.TheKing] == square.InvalidSquare {
			return ErrKingCount
		}
	}
	return nil
}

// Serialize renders a Position back into a FEN string.
func Serialize(pos Position) string {
	var out strings.Builder
	out.Grow(64)

	out.WriteString(serializePlacement(&pos.Board))
	out.WriteByte(' ')

	if pos.ActiveColor == square.White {
		out.WriteString("w ")
	} else {
		out.WriteString("b ")
	}

	out.WriteString(serializeCastling(&pos.Board))
	out.WriteByte(' ')

	justMoved := square.Other(pos.ActiveColor)
	epSq := pos.Board.Colors[justMoved].EpSquare
	if epSq == square.InvalidSquare {
		out.WriteString("-")
	} else {
		out.WriteByte("abcdefgh"[square.File(epSq)])
		out.WriteByte('1' + byte(square.Rank(epSq)))
	}
	out.WriteByte(' ')

	out.WriteString(strconv.Itoa(pos.HalfmoveClock))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return out.String()
}

func serializePlacement(b *board.Board) string {
	var grid [8][8]byte

	for _, color := range [2]square.Color{square.White, square.Black} {
		cs := &b.Colors[color]
		place := func(sq square.Square, ch byte) {
			if sq == square.InvalidSquare {
				return
			}
			if color == square.Black {
				ch += 'a' - 'A'
			}
			grid[square.Rank(sq)][square.File(sq)] = ch
		}

		for slot := board.PieceSlot(0); slot < board.NumPieceSlots; slot++ {
			place(cs.PieceSquares[slot], slotSymbol(slot))
		}
		for sq := square.Square(0); sq < 64; sq++ {
			if cs.PawnsBb&square.Bb(sq) != 0 {
				place(sq, 'P')
			}
		}
		for i := 0; i < board.NumPromoSlots; i++ {
			if cs.ActivePromos&(1<<uint(i)) == 0 {
				continue
			}
			place(cs.Promos[i].Square, promoSymbol(cs.Promos[i].Kind))
		}
	}

	var out strings.Builder
	out.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			ch := grid[rank][file]
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteByte('0' + byte(empty))
				empty = 0
			}
			out.WriteByte(ch)
		}
		if empty > 0 {
			out.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}
	return out.String()
}

func slotSymbol(slot board.PieceSlot) byte {
	switch slot {
	case board.Knight1, board.Knight2:
		return 'N'
	case board.Bishop1, board.Bishop2:
		return 'B'
	case board.Rook1, board.Rook2:
		return 'R'
	case board.TheQueen:
		return 'Q'
	case board.TheKing:
		return 'K'
	default:
		return 0
	}
}

func promoSymbol(kind board.PromoPieceKind) byte {
	switch kind {
	case board.PromoRook:
		return 'R'
	case board.PromoBishop:
		return 'B'
	case board.PromoKnight:
		return 'N'
	default:
		return 'Q'
	}
}

func serializeCastling(b *board.Board) string {
	var out strings.Builder
	w := b.Colors[square.White].CastlingRights
	bl := b.Colors[square.Black].CastlingRights
	if w&board.WhiteKingside != 0 {
		out.WriteByte('K')
	}
	if w&board.WhiteQueenside != 0 {
		out.WriteByte('Q')
	}
	if bl&board.BlackKingside != 0 {
		out.WriteByte('k')
	}
	if bl&board.BlackQueenside != 0 {
		out.WriteByte('q')
	}
	if out.Len() == 0 {
		return "-"
	}
	return out.String()
}
