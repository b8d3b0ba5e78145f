/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package board provides the read-only position representation the
// evaluator consumes. A Board is only ever built by parsing a FEN
// string: there is no move generation or incremental update here, since
// both are out of scope for a static evaluator and are owned by the
// search engine that embeds one.
package board

import (
	"fmt"

	. "github.com/chessgo/staticeval/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is an immutable snapshot of a chess position, built from FEN.
type Board struct {
	colours [ColorLength]Bitboard
	pieces  [PieceTypeLength]Bitboard

	turn         Color
	castling     uint8
	enPassant    Square
	halfMoveClock int
	fullMoveNumber int

	psqMat   Score
	fullHash Key
	pkHash   Key
}

// Castling right bits, matching the FEN KQkq ordering.
const (
	CastleWhiteKing uint8 = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// Colours returns the occupancy bitboard of every piece of color c.
func (b *Board) Colours(c Color) Bitboard { return b.colours[c] }

// Pieces returns the bitboard of every piece of type pt, either color.
func (b *Board) Pieces(pt PieceType) Bitboard { return b.pieces[pt] }

// PiecesOf returns the bitboard of pieces of type pt belonging to c.
func (b *Board) PiecesOf(c Color, pt PieceType) Bitboard {
	return b.colours[c] & b.pieces[pt]
}

// Occupied returns the bitboard of all occupied squares.
func (b *Board) Occupied() Bitboard { return b.colours[White] | b.colours[Black] }

// Turn returns the side to move.
func (b *Board) Turn() Color { return b.turn }

// PsqMat returns the running material + piece-square-table sum, White
// relative, maintained at FEN-parse time.
func (b *Board) PsqMat() Score { return b.psqMat }

// PKHash returns the Zobrist hash restricted to pawns and kings, the key
// the pawn-king cache is indexed by.
func (b *Board) PKHash() Key { return b.pkHash }

// FullHash returns the full Zobrist hash of the position. The evaluator
// itself never reads this; it exists for test fixtures and for the
// (out of scope) main transposition table a search would maintain.
func (b *Board) FullHash() Key { return b.fullHash }

// EnPassant returns the en-passant target square, or SqNone if none.
func (b *Board) EnPassant() Square { return b.enPassant }

// CastlingRights returns the raw castling-rights bitmask.
func (b *Board) CastlingRights() uint8 { return b.castling }

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c Color) Square {
	return (b.colours[c] & b.pieces[King]).Lsb()
}

// PieceAt reports the piece occupying sq, if any, and whether one exists.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !b.Occupied().Has(sq) {
		return 0, false
	}
	for c := White; c <= Black; c++ {
		if !b.colours[c].Has(sq) {
			continue
		}
		for pt := Pawn; pt < PieceTypeLength; pt++ {
			if b.pieces[pt].Has(sq) {
				return MakePiece(c, pt), true
			}
		}
	}
	return 0, false
}

func (b *Board) String() string {
	return fmt.Sprintf("Board{turn=%s psq=%s pkhash=%x}", b.turn, b.psqMat, uint64(b.pkHash))
}
