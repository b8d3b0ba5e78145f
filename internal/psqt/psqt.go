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

// Package psqt builds the full 12x64 piece-square table from the six
// file-mirror-symmetric 32-entry half-tables, the way Ethereal's
// initializePSQT unfolds PawnPSQT32..KingPSQT32. Both the board package
// (to seed the running material+PSQT sum at FEN load time) and the eval
// package depend on this table, so it lives on its own to avoid a cycle
// between them.
package psqt

import (
	. "github.com/chessgo/staticeval/internal/types"
)

// PieceValues holds the material Score for each piece type, added on top
// of the purely positional half-table entries below.
var PieceValues = [PieceTypeLength]Score{
	Pawn:   S(110, 129),
	Knight: S(457, 377),
	Bishop: S(477, 391),
	Rook:   S(639, 683),
	Queen:  S(1311, 1293),
	King:   S(0, 0),
}

// half tables are indexed by relativeSquare32: 32 entries per piece,
// file-mirrored (file and its mirror share an entry) and already
// oriented with index 0 on the own back rank.
var (
	pawnHalf = [32]Score{
		S(0, 0), S(0, 0), S(0, 0), S(0, 0),
		S(-13, 7), S(0, -3), S(2, -7), S(5, -8),
		S(-19, -2), S(-9, -5), S(10, -10), S(13, -13),
		S(-17, 10), S(-7, 0), S(3, -10), S(21, -15),
		S(-12, 26), S(-4, 14), S(-6, 6), S(11, -3),
		S(-16, 50), S(-2, 40), S(2, 22), S(7, 15),
		S(-53, 76), S(-32, 78), S(1, 55), S(19, 42),
		S(0, 0), S(0, 0), S(0, 0), S(0, 0),
	}
	knightHalf = [32]Score{
		S(-138, -48), S(-44, -65), S(-48, -30), S(-17, -14),
		S(-40, -45), S(-32, -22), S(-15, -23), S(-8, -3),
		S(-27, -35), S(-3, -16), S(0, -6), S(13, 12),
		S(-13, -12), S(10, 2), S(15, 23), S(28, 33),
		S(-5, -9), S(18, 6), S(28, 31), S(33, 40),
		S(-33, -18), S(9, -4), S(36, 22), S(35, 38),
		S(-21, -33), S(-17, -8), S(29, -10), S(35, 17),
		S(-160, -68), S(-43, -43), S(-67, -15), S(-16, -22),
	}
	bishopHalf = [32]Score{
		S(-17, -25), S(6, -15), S(-14, -15), S(-19, -6),
		S(10, -22), S(14, -17), S(14, -9), S(-5, 0),
		S(-3, -12), S(17, -6), S(5, -1), S(5, 10),
		S(-3, -12), S(3, -1), S(2, 14), S(22, 16),
		S(-20, -7), S(0, 4), S(3, 16), S(26, 17),
		S(-9, -13), S(11, 1), S(13, 14), S(17, 20),
		S(-42, -5), S(-20, -6), S(-6, 1), S(-4, 7),
		S(-37, -20), S(-32, -13), S(-56, -5), S(-59, -2),
	}
	rookHalf = [32]Score{
		S(-26, -3), S(-21, 1), S(-14, 2), S(-6, -3),
		S(-43, -2), S(-21, -1), S(-20, 2), S(-13, -1),
		S(-34, 1), S(-14, 4), S(-20, 4), S(-16, 1),
		S(-31, 16), S(-22, 22), S(-16, 20), S(-9, 13),
		S(-15, 24), S(-2, 18), S(10, 24), S(16, 15),
		S(-8, 32), S(24, 15), S(16, 31), S(27, 19),
		S(3, 33), S(2, 34), S(32, 27), S(41, 27),
		S(23, 28), S(21, 33), S(6, 37), S(17, 29),
	}
	queenHalf = [32]Score{
		S(4, -68), S(-3, -48), S(-1, -34), S(6, -22),
		S(0, -48), S(7, -33), S(11, -22), S(6, -3),
		S(1, -34), S(12, -17), S(6, 0), S(1, 19),
		S(6, -22), S(8, 3), S(0, 21), S(-5, 42),
		S(6, -14), S(0, 14), S(-5, 23), S(-11, 50),
		S(-2, -8), S(5, 2), S(-7, 37), S(-6, 44),
		S(-8, -1), S(-38, 22), S(2, 22), S(-16, 55),
		S(-13, -15), S(4, -5), S(3, 2), S(2, 15),
	}
	kingHalf = [32]Score{
		S(268, 0), S(327, 30), S(271, 59), S(199, 72),
		S(278, 32), S(303, 68), S(234, 93), S(168, 104),
		S(196, 53), S(253, 82), S(168, 101), S(120, 108),
		S(169, 62), S(209, 94), S(121, 116), S(79, 119),
		S(150, 70), S(198, 105), S(105, 126), S(55, 129),
		S(116, 76), S(164, 114), S(80, 131), S(30, 133),
		S(84, 64), S(132, 98), S(47, 113), S(1, 115),
		S(40, 28), S(90, 60), S(17, 73), S(-33, 76),
	}
)

// Table is the fully-unfolded [12][64] piece-square table, White-relative
// for the White rows and negated for the Black rows, indexed with
// types.MakePiece(color, pieceType).
var Table [PieceLength][SqLength]Score

var halfTables = [PieceTypeLength]*[32]Score{
	Pawn:   &pawnHalf,
	Knight: &knightHalf,
	Bishop: &bishopHalf,
	Rook:   &rookHalf,
	Queen:  &queenHalf,
	King:   &kingHalf,
}

// relativeSquare32 folds a square into the 32-entry half-table index used
// by file-mirror-symmetric tables: ranks are made color-relative and
// files are folded onto their distance from the nearer edge.
func relativeSquare32(s Square, c Color) int {
	r := int(RelativeSquareRank(s, c))
	f := FileOf(s).EdgeDistance()
	return r*4 + f
}

// RelativeSquareRank exposes the color-relative rank used by
// relativeSquare32.
func RelativeSquareRank(s Square, c Color) Rank {
	if c == White {
		return RankOf(s)
	}
	return Rank(7 - int(RankOf(s)))
}

func init() {
	Init()
}

// Init (re)builds Table from the half-tables and PieceValues. It is safe
// to call more than once (e.g. after PieceValues has been changed) since
// it fully overwrites every entry.
func Init() {
	for pt := Pawn; pt < PieceTypeLength; pt++ {
		half := halfTables[pt]
		for s := SqA1; s <= SqH8; s++ {
			wv := PieceValues[pt].Add(half[relativeSquare32(s, White)])
			Table[MakePiece(White, pt)][s] = wv
			bv := PieceValues[pt].Add(half[relativeSquare32(s, Black)])
			Table[MakePiece(Black, pt)][s] = bv.Neg()
		}
	}
}
