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

// Package attacks stands in for the engine's magic-bitboard generator:
// it precomputes knight, king and pawn jump tables and answers sliding
// piece queries by ray-scanning rather than by magic multiplication.
// Behaviourally the two approaches are identical; only raw speed differs,
// and the evaluator never depends on which one backs its narrow interface.
package attacks

import (
	. "github.com/chessgo/staticeval/internal/types"
)

var (
	knightAttacksTable [SqLength]Bitboard
	kingAttacksTable   [SqLength]Bitboard
	pawnAttacksTable   [ColorLength][SqLength]Bitboard

	bishopDirs = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	rookDirs   = [4]Direction{North, South, East, West}

	knightDeltas = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

func init() {
	for s := SqA1; s <= SqH8; s++ {
		knightAttacksTable[s] = computeKnightAttacks(s)
		kingAttacksTable[s] = computeKingAttacks(s)
		pawnAttacksTable[White][s] = computePawnAttacks(White, s)
		pawnAttacksTable[Black][s] = computePawnAttacks(Black, s)
	}
}

func computeKnightAttacks(s Square) Bitboard {
	f, r := int(FileOf(s)), int(RankOf(s))
	var bb Bitboard
	for _, d := range knightDeltas {
		nf, nr := f+d[0], r+d[1]
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			bb = bb.PushSquare(SquareOf(File(nf), Rank(nr)))
		}
	}
	return bb
}

func computeKingAttacks(s Square) Bitboard {
	f, r := int(FileOf(s)), int(RankOf(s))
	var bb Bitboard
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			nf, nr := f+df, r+dr
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				bb = bb.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
	}
	return bb
}

func computePawnAttacks(c Color, s Square) Bitboard {
	bb := Bb(s)
	if c == White {
		return Shift(bb, NorthEast) | Shift(bb, NorthWest)
	}
	return Shift(bb, SouthEast) | Shift(bb, SouthWest)
}

// KnightAttacks returns the knight jump table entry for s.
func KnightAttacks(s Square) Bitboard { return knightAttacksTable[s] }

// KingAttacks returns the king step table entry for s.
func KingAttacks(s Square) Bitboard { return kingAttacksTable[s] }

// PawnAttacks returns the squares a pawn of color c on s attacks.
func PawnAttacks(c Color, s Square) Bitboard { return pawnAttacksTable[c][s] }

// PawnAttacksBb returns every square attacked by at least one pawn in pawns.
func PawnAttacksBb(c Color, pawns Bitboard) Bitboard {
	if c == White {
		return Shift(pawns, NorthEast) | Shift(pawns, NorthWest)
	}
	return Shift(pawns, SouthEast) | Shift(pawns, SouthWest)
}

// PawnAdvance returns the single-push destinations of pawns, masked to
// squares not already occupied.
func PawnAdvance(pawns, occupied Bitboard, c Color) Bitboard {
	if c == White {
		return Shift(pawns, North) &^ occupied
	}
	return Shift(pawns, South) &^ occupied
}

func slide(s Square, occ Bitboard, dirs [4]Direction) Bitboard {
	var bb Bitboard
	for _, d := range dirs {
		cur := s
		for {
			if !canStep(cur, d) {
				break
			}
			cur = Square(int(cur) + int(d))
			bb = bb.PushSquare(cur)
			if occ.Has(cur) {
				break
			}
		}
	}
	return bb
}

// canStep reports whether stepping from s in direction d stays on the board,
// guarding against file-A/H wraparound for the diagonal and horizontal steps.
func canStep(s Square, d Direction) bool {
	f := FileOf(s)
	r := RankOf(s)
	switch d {
	case North:
		return r < Rank8
	case South:
		return r > Rank1
	case East:
		return f < FileH
	case West:
		return f > FileA
	case NorthEast:
		return r < Rank8 && f < FileH
	case NorthWest:
		return r < Rank8 && f > FileA
	case SouthEast:
		return r > Rank1 && f < FileH
	case SouthWest:
		return r > Rank1 && f > FileA
	}
	return false
}

// BishopAttacks returns the diagonal slider attack set from s given occ.
func BishopAttacks(s Square, occ Bitboard) Bitboard { return slide(s, occ, bishopDirs) }

// RookAttacks returns the orthogonal slider attack set from s given occ.
func RookAttacks(s Square, occ Bitboard) Bitboard { return slide(s, occ, rookDirs) }

// QueenAttacks returns the union of bishop and rook attacks from s.
func QueenAttacks(s Square, occ Bitboard) Bitboard {
	return BishopAttacks(s, occ) | RookAttacks(s, occ)
}

// GetAttacksBb dispatches to the right slider/leaper table by piece type.
func GetAttacksBb(pt PieceType, s Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(s)
	case Bishop:
		return BishopAttacks(s, occ)
	case Rook:
		return RookAttacks(s, occ)
	case Queen:
		return QueenAttacks(s, occ)
	case King:
		return KingAttacks(s)
	default:
		return 0
	}
}
