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

package attacks

import (
	. "github.com/chessgo/staticeval/internal/types"
)

var (
	forwardRanks       [ColorLength][RankLength]Bitboard
	adjacentFiles      [FileLength]Bitboard
	passedPawnMasks    [ColorLength][SqLength]Bitboard
	outpostSquareMasks [ColorLength][SqLength]Bitboard
	pawnConnectedMasks [ColorLength][SqLength]Bitboard
	kingAreaMasks      [SqLength]Bitboard
	outpostRanks       [ColorLength]Bitboard
)

func init() {
	for r := Rank1; r <= Rank8; r++ {
		var ahead Bitboard
		for rr := r + 1; rr <= Rank8; rr++ {
			ahead |= RankBb(rr)
		}
		forwardRanks[White][r] = ahead
		var behind Bitboard
		for rr := Rank(int(r) - 1); rr >= Rank1; rr-- {
			behind |= RankBb(rr)
			if rr == Rank1 {
				break
			}
		}
		forwardRanks[Black][r] = behind
	}

	for f := FileA; f <= FileH; f++ {
		var m Bitboard
		if f > FileA {
			m |= FileBb(f - 1)
		}
		if f < FileH {
			m |= FileBb(f + 1)
		}
		adjacentFiles[f] = m
	}

	outpostRanks[White] = Rank4Bb | Rank5Bb | Rank6Bb
	outpostRanks[Black] = Rank5Bb | Rank4Bb | Rank3Bb

	for c := White; c <= Black; c++ {
		for s := SqA1; s <= SqH8; s++ {
			f, r := FileOf(s), RankOf(s)
			fwd := forwardRanks[c][r]
			passedPawnMasks[c][s] = (FileBb(f) | adjacentFiles[f]) & fwd
			outpostSquareMasks[c][s] = adjacentFiles[f] & fwd

			var supportRank Bitboard
			if c == White {
				if r > Rank1 {
					supportRank = RankBb(r - 1)
				}
			} else {
				if r < Rank8 {
					supportRank = RankBb(r + 1)
				}
			}
			pawnConnectedMasks[c][s] = adjacentFiles[f] & (RankBb(r) | supportRank)
		}
	}

	for s := SqA1; s <= SqH8; s++ {
		kingAreaMasks[s] = KingAttacks(s) | Bb(s)
	}
}

// ForwardRanksMasks returns every rank strictly ahead of r from color c's
// perspective.
func ForwardRanksMasks(c Color, r Rank) Bitboard { return forwardRanks[c][r] }

// AdjacentFilesMasks returns the file(s) immediately to either side of f.
func AdjacentFilesMasks(f File) Bitboard { return adjacentFiles[f] }

// PassedPawnMasks returns the triangle of squares (own file + adjacent
// files, ranks ahead) that must be free of enemy pawns for a pawn on s to
// be passed.
func PassedPawnMasks(c Color, s Square) Bitboard { return passedPawnMasks[c][s] }

// OutpostSquareMasks returns the adjacent-file squares ahead of s from
// which an enemy pawn could ever capture onto s.
func OutpostSquareMasks(c Color, s Square) Bitboard { return outpostSquareMasks[c][s] }

// OutpostRanksMasks returns the three ranks in which an outpost bonus can
// apply for color c.
func OutpostRanksMasks(c Color) Bitboard { return outpostRanks[c] }

// PawnConnectedMasks returns the adjacent-file squares, at s's rank or the
// rank directly behind it, that would support or flank a pawn on s.
func PawnConnectedMasks(c Color, s Square) Bitboard { return pawnConnectedMasks[c][s] }

// KingAreaMasks returns the fixed 3x3 (edge-clipped) zone around s used
// for king-safety accounting. The zone does not depend on color.
func KingAreaMasks(_ Color, s Square) Bitboard { return kingAreaMasks[s] }

// DistanceBetween returns the Chebyshev distance between two squares.
func DistanceBetween(a, b Square) int {
	df := int(FileOf(a)) - int(FileOf(b))
	dr := int(RankOf(a)) - int(RankOf(b))
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// RelativeRankOf returns the rank of s as seen by color c (0 == own back
// rank, 7 == promotion rank).
func RelativeRankOf(c Color, s Square) Rank {
	if c == White {
		return RankOf(s)
	}
	return Rank(7 - int(RankOf(s)))
}

// MirrorFile folds files 4..7 onto 0..3 for half-width tables such as
// king storm, which only distinguish distance from the center files.
func MirrorFile(f File) File {
	if f > 3 {
		return FileLength - 1 - f
	}
	return f
}

// Backmost returns the most rearward (from color c's perspective) square
// set in bb, or SqNone if bb is empty.
func Backmost(c Color, bb Bitboard) Square {
	if c == White {
		return bb.Lsb()
	}
	return bb.Msb()
}

// Frontmost returns the most advanced (from color c's perspective) square
// set in bb, or SqNone if bb is empty.
func Frontmost(c Color, bb Bitboard) Square {
	if c == White {
		return bb.Msb()
	}
	return bb.Lsb()
}
