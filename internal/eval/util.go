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

package eval

import (
	"github.com/chessgo/staticeval/internal/attacks"
	. "github.com/chessgo/staticeval/internal/types"
)

// relativeSquare32 folds a square into the 32-entry index used by the
// pawn-connectivity table, the same fold internal/psqt uses for the
// piece-square tables.
func relativeSquare32(sq Square, c Color) int {
	return int(attacks.RelativeRankOf(c, sq))*4 + FileOf(sq).EdgeDistance()
}

func kingDistance(a, b Square) int { return attacks.DistanceBetween(a, b) }

// squareAhead returns the square directly in front of sq from color c's
// perspective, and whether that square exists on the board.
func squareAhead(c Color, sq Square) (Square, bool) {
	r := RankOf(sq)
	if c == White {
		if r == Rank8 {
			return SqNone, false
		}
		return SquareOf(FileOf(sq), r+1), true
	}
	if r == Rank1 {
		return SqNone, false
	}
	return SquareOf(FileOf(sq), r-1), true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
